package mission

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/frontier/internal/game/dice"
	"github.com/cory-johannsen/frontier/internal/tagged"
)

// Event is a narrative encounter with choices. An empty Region matches every region.
type Event struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Region      string   `json:"region,omitempty" yaml:"region,omitempty"`
	Choices     []Choice `json:"choices" yaml:"choices"`
}

// Choice is one option the party may take at an event.
type Choice struct {
	Text     string   `json:"text" yaml:"text"`
	Outcomes Outcomes `json:"outcomes" yaml:"outcomes"`
}

// Outcome is one consequence of a choice. The set of variants is closed.
type Outcome interface {
	outcome()
}

type (
	// StressOutcome adds Amount stress to every party member; negative relieves it.
	StressOutcome struct{ Amount int }
	// HealOutcome restores Amount HP to every party member; negative wounds them.
	HealOutcome struct{ Amount int }
	// SuppliesOutcome adds Amount supplies to the expedition's haul.
	SuppliesOutcome struct{ Amount int }
	// KnowledgeOutcome adds Amount knowledge to the expedition's haul.
	KnowledgeOutcome struct{ Amount int }
	// CombatOutcome starts a fight with the enemy template EnemyID.
	CombatOutcome struct{ EnemyID string }
	// RevealTraitOutcome uncovers a hidden trait of the mission's region.
	RevealTraitOutcome struct{}
	// SkipNodeOutcome lets the party pass the next node without resolving it.
	SkipNodeOutcome struct{}
	// NothingOutcome has no effect.
	NothingOutcome struct{}
)

func (StressOutcome) outcome()      {}
func (HealOutcome) outcome()        {}
func (SuppliesOutcome) outcome()    {}
func (KnowledgeOutcome) outcome()   {}
func (CombatOutcome) outcome()      {}
func (RevealTraitOutcome) outcome() {}
func (SkipNodeOutcome) outcome()    {}
func (NothingOutcome) outcome()     {}

// Outcomes is an ordered outcome list with externally tagged YAML/JSON decoding.
type Outcomes []Outcome

var outcomeVariants = tagged.Registry[Outcome]{
	"Stress":      tagged.Int(func(n int) Outcome { return StressOutcome{n} }),
	"Heal":        tagged.Int(func(n int) Outcome { return HealOutcome{n} }),
	"Supplies":    tagged.Int(func(n int) Outcome { return SuppliesOutcome{n} }),
	"Knowledge":   tagged.Int(func(n int) Outcome { return KnowledgeOutcome{n} }),
	"Combat":      tagged.String(func(s string) Outcome { return CombatOutcome{s} }),
	"RevealTrait": tagged.Unit[Outcome](RevealTraitOutcome{}),
	"SkipNode":    tagged.Unit[Outcome](SkipNodeOutcome{}),
	"Nothing":     tagged.Unit[Outcome](NothingOutcome{}),
}

// UnmarshalYAML decodes an externally tagged outcome sequence.
func (o *Outcomes) UnmarshalYAML(node *yaml.Node) error {
	out, err := outcomeVariants.DecodeSeq(node)
	if err != nil {
		return fmt.Errorf("outcomes: %w", err)
	}
	*o = out
	return nil
}

// Validate checks that the event offers at least one choice.
func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event: id must not be empty")
	}
	if len(e.Choices) == 0 {
		return fmt.Errorf("event %q: must offer at least one choice", e.ID)
	}
	return nil
}

// PickEvent chooses the event for an Event node. The entry node always opens
// with the first event matching the region; later nodes draw at random from
// the matching events.
//
// Postcondition: returns false when no event matches regionID.
func PickEvent(nodeIndex int, regionID string, events []Event, src dice.Source) (Event, bool) {
	var matching []Event
	for _, e := range events {
		if e.Region == "" || e.Region == regionID {
			matching = append(matching, e)
		}
	}
	if len(matching) == 0 {
		return Event{}, false
	}
	if nodeIndex == 0 {
		return matching[0], true
	}
	return dice.Pick(src, matching)
}

// StarterEvents is the hardcoded event table used when content is missing.
func StarterEvents() []Event {
	return []Event{
		{
			ID:          "twisted_path",
			Title:       "The Twisted Path",
			Description: "The trail splits. One path is overgrown but direct. The other is clear but winds deeper into the forest.",
			Region:      "dark_woods",
			Choices: []Choice{
				{Text: "Take the overgrown path (+5 stress, skip node)", Outcomes: Outcomes{StressOutcome{5}, SkipNodeOutcome{}}},
				{Text: "Take the clear path (possible encounter)", Outcomes: Outcomes{CombatOutcome{"shadow_wolf"}}},
				{Text: "Scout both carefully (+10 stress, gain knowledge)", Outcomes: Outcomes{StressOutcome{10}, KnowledgeOutcome{5}}},
			},
		},
		{
			ID:          "ancient_marker",
			Title:       "Ancient Marker",
			Description: "A weathered stone marker stands at the crossroads. Strange symbols cover its surface.",
			Choices: []Choice{
				{Text: "Study the marker (+5 stress, reveal trait)", Outcomes: Outcomes{StressOutcome{5}, RevealTraitOutcome{}}},
				{Text: "Ignore it and continue", Outcomes: Outcomes{NothingOutcome{}}},
			},
		},
		{
			ID:          "forest_shrine",
			Title:       "Forest Shrine",
			Description: "A small shrine to forgotten gods. The air feels calmer here.",
			Choices: []Choice{
				{Text: "Rest briefly (-10 stress)", Outcomes: Outcomes{StressOutcome{-10}}},
				{Text: "Search for offerings (+10 supplies, +5 stress)", Outcomes: Outcomes{SuppliesOutcome{10}, StressOutcome{5}}},
			},
		},
	}
}
