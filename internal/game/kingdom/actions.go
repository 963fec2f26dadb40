package kingdom

import "fmt"

// Base action costs and magnitudes.
const (
	ActionSupplyCost = 10
	InfirmaryHeal    = 10
	TavernRelief     = 20
)

// Treat spends supplies at the infirmary to restore an adventurer's HP.
//
// Precondition: the infirmary must be built.
// Postcondition: on error neither k nor a is modified.
func (s *State) Treat(a *Adventurer) error {
	if !s.HasBuilt(Infirmary) {
		return fmt.Errorf("%w: %s", ErrBuildingRequired, Infirmary)
	}
	if err := s.Spend(0, ActionSupplyCost); err != nil {
		return err
	}
	a.Heal(InfirmaryHeal)
	return nil
}

// Tavern spends supplies at the chapel to ease an adventurer's stress.
//
// Precondition: the chapel must be built.
// Postcondition: on error neither k nor a is modified.
func (s *State) Tavern(a *Adventurer) error {
	if !s.HasBuilt(Chapel) {
		return fmt.Errorf("%w: %s", ErrBuildingRequired, Chapel)
	}
	if err := s.Spend(0, ActionSupplyCost); err != nil {
		return err
	}
	a.ReduceStress(TavernRelief)
	return nil
}

// Rewards are the resources an expedition brings home.
type Rewards struct {
	Gold      int `json:"gold"`
	Supplies  int `json:"supplies"`
	Knowledge int `json:"knowledge"`
	Influence int `json:"influence"`
}

// Add returns the sum of r and o.
func (r Rewards) Add(o Rewards) Rewards {
	return Rewards{
		Gold:      r.Gold + o.Gold,
		Supplies:  r.Supplies + o.Supplies,
		Knowledge: r.Knowledge + o.Knowledge,
		Influence: r.Influence + o.Influence,
	}
}

// VictoryGold is paid for every successful expedition on top of its rewards.
const VictoryGold = 20

// DefeatMorale is lost for every failed expedition.
const DefeatMorale = 10

// RecordExpedition folds an expedition's result into the kingdom and starts
// the next day. A retreat costs nothing and earns nothing.
//
// Postcondition: Day has advanced by one unless outcome is Retreat.
func (s *State) RecordExpedition(missionID string, outcome Outcome, rewards Rewards) {
	switch outcome {
	case Victory:
		s.Stats.Gold += VictoryGold + rewards.Gold
		s.Stats.Supplies += rewards.Supplies
		s.Stats.Knowledge += rewards.Knowledge
		s.Stats.Influence += rewards.Influence
		s.CompleteMission(missionID)
	case Defeat:
		s.Stats.Morale = max(0, s.Stats.Morale-DefeatMorale)
	case Retreat:
		return
	}
	s.Day++
}
