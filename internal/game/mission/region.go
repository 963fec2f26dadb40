package mission

// Region is an area of the wilds. Regions are never conquered, only stabilized.
type Region struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	ThreatLevel    int      `json:"threat_level" yaml:"threat_level"`
	Knowledge      int      `json:"knowledge" yaml:"knowledge"`
	Unlocked       bool     `json:"unlocked" yaml:"unlocked"`
	Discovered     bool     `json:"discovered" yaml:"discovered"`
	Faction        string   `json:"faction" yaml:"faction"`
	TraitsRevealed []string `json:"traits_revealed" yaml:"traits_revealed"`
	TraitsHidden   []string `json:"traits_hidden" yaml:"traits_hidden"`
}

// RevealKnowledge is gained each time a hidden trait comes to light.
const RevealKnowledge = 10

// DarkWoods is the starting region.
func DarkWoods() Region {
	return Region{
		ID:          "dark_woods",
		Name:        "The Dark Woods",
		Description: "Dense forest with twisted paths. Something moves between the trees.",
		ThreatLevel: 30,
		Knowledge:   10,
		Unlocked:    true,
		Faction:     "The Wild Hunt",
		TraitsHidden: []string{
			"Tangled Paths",
			"Shadow Beasts",
			"The Watcher",
		},
	}
}

// RevealTrait moves the oldest hidden trait to the revealed list.
//
// Postcondition: returns false and changes nothing when no trait is hidden.
func (r *Region) RevealTrait() (string, bool) {
	if len(r.TraitsHidden) == 0 {
		return "", false
	}
	t := r.TraitsHidden[0]
	r.TraitsHidden = r.TraitsHidden[1:]
	r.TraitsRevealed = append(r.TraitsRevealed, t)
	r.Knowledge += RevealKnowledge
	return t, true
}

// Stabilize lowers the threat level, flooring at 0.
func (r *Region) Stabilize(amount int) {
	r.ThreatLevel = max(r.ThreatLevel-amount, 0)
}

// Destabilize raises the threat level, capping at 100.
func (r *Region) Destabilize(amount int) {
	r.ThreatLevel = min(r.ThreatLevel+amount, 100)
}
