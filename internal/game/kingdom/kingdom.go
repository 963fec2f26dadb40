// Package kingdom holds the persistent meta-game: resource stats, buildings,
// the adventurer roster and mission parties.
package kingdom

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientFunds is returned when a cost exceeds the treasury.
	ErrInsufficientFunds = errors.New("insufficient resources")
	// ErrUnknownBuilding is returned for a building id not in the kingdom.
	ErrUnknownBuilding = errors.New("unknown building")
	// ErrAlreadyBuilt is returned when constructing a building twice.
	ErrAlreadyBuilt = errors.New("building already constructed")
)

// Stats are the kingdom resources that pull against each other.
type Stats struct {
	Gold      int `json:"gold"`
	Security  int `json:"security"`
	Morale    int `json:"morale"`
	Supplies  int `json:"supplies"`
	Knowledge int `json:"knowledge"`
	Influence int `json:"influence"`
}

// NewStats returns the opening treasury.
func NewStats() Stats {
	return Stats{Gold: 100, Security: 30, Morale: 50, Supplies: 50, Knowledge: 10, Influence: 20}
}

// State is the whole kingdom: stats, the day counter, buildings and the
// missions completed so far.
type State struct {
	Stats             Stats      `json:"stats"`
	Day               int        `json:"day"`
	Buildings         []Building `json:"buildings"`
	CompletedMissions []string   `json:"completed_missions"`
}

// NewState returns a fresh kingdom on day one with the starter buildings.
func NewState() *State {
	return &State{Stats: NewStats(), Day: 1, Buildings: StarterBuildings()}
}

// Building returns the building with id.
func (s *State) Building(id string) (*Building, bool) {
	for i := range s.Buildings {
		if s.Buildings[i].ID == id {
			return &s.Buildings[i], true
		}
	}
	return nil, false
}

// HasBuilt reports whether building id exists and is constructed.
func (s *State) HasBuilt(id string) bool {
	b, ok := s.Building(id)
	return ok && b.Built
}

// Spend deducts gold and supplies together, or neither.
//
// Postcondition: on ErrInsufficientFunds the stats are unchanged.
func (s *State) Spend(gold, supplies int) error {
	if s.Stats.Gold < gold || s.Stats.Supplies < supplies {
		return fmt.Errorf("%w: need %d gold and %d supplies, have %d and %d",
			ErrInsufficientFunds, gold, supplies, s.Stats.Gold, s.Stats.Supplies)
	}
	s.Stats.Gold -= gold
	s.Stats.Supplies -= supplies
	return nil
}

// Construct pays for and raises building id to level 1.
func (s *State) Construct(id string) error {
	b, ok := s.Building(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBuilding, id)
	}
	if b.Built {
		return fmt.Errorf("%w: %q", ErrAlreadyBuilt, id)
	}
	if err := s.Spend(b.CostGold, b.CostSupplies); err != nil {
		return err
	}
	b.Built = true
	b.Level = 1
	return nil
}

// CompleteMission records mission id once.
func (s *State) CompleteMission(id string) {
	if !s.HasCompleted(id) {
		s.CompletedMissions = append(s.CompletedMissions, id)
	}
}

// HasCompleted reports whether mission id has been completed.
func (s *State) HasCompleted(id string) bool {
	for _, m := range s.CompletedMissions {
		if m == id {
			return true
		}
	}
	return false
}

// BuiltIDs lists the constructed buildings.
func (s *State) BuiltIDs() []string {
	var out []string
	for _, b := range s.Buildings {
		if b.Built {
			out = append(out, b.ID)
		}
	}
	return out
}
