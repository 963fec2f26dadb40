package kingdom

import (
	"errors"
	"fmt"
)

// ErrAdventurerNotFound is returned when an id is not in the living roster.
var ErrAdventurerNotFound = errors.New("adventurer not found")

// Roster exclusively owns adventurer records. Parties refer into it by id.
type Roster struct {
	Adventurers []*Adventurer `json:"adventurers"`
	Graveyard   []*Adventurer `json:"graveyard"`
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// StarterRoster returns the three unremarkable volunteers every kingdom begins with.
// They already carry some stress from knowing what lies beyond the walls.
func StarterRoster() *Roster {
	r := NewRoster()
	r.Add(NewAdventurer("Marcus", Soldier, Male))
	r.Add(NewAdventurer("Elena", Scout, Female))
	r.Add(NewAdventurer("Brother Aldric", Healer, Male))
	for _, a := range r.Adventurers {
		a.Stress = 10
	}
	return r
}

// Add appends a new adventurer to the living roster.
func (r *Roster) Add(a *Adventurer) {
	r.Adventurers = append(r.Adventurers, a)
}

// Get returns the living adventurer with id.
func (r *Roster) Get(id string) (*Adventurer, bool) {
	for _, a := range r.Adventurers {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Available lists adventurers who may be sent on a mission.
func (r *Roster) Available() []*Adventurer {
	var out []*Adventurer
	for _, a := range r.Adventurers {
		if a.CanDeploy() {
			out = append(out, a)
		}
	}
	return out
}

// RecordDeath moves the adventurer with id from the living roster to the graveyard.
//
// Postcondition: on success the id is no longer returned by Get.
func (r *Roster) RecordDeath(id string) error {
	for i, a := range r.Adventurers {
		if a.ID == id {
			r.Adventurers = append(r.Adventurers[:i], r.Adventurers[i+1:]...)
			r.Graveyard = append(r.Graveyard, a)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAdventurerNotFound, id)
}

// Len counts living adventurers.
func (r *Roster) Len() int { return len(r.Adventurers) }

// FallenCount counts adventurers in the graveyard.
func (r *Roster) FallenCount() int { return len(r.Graveyard) }

// RestDay advances injury recovery for every living adventurer.
func (r *Roster) RestDay() {
	for _, a := range r.Adventurers {
		a.RestDay()
	}
}

// Expedition outcomes understood by Settle.
type Outcome int

const (
	Victory Outcome = iota
	Defeat
	Retreat
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case Retreat:
		return "retreat"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Settlement reports what Settle did to the roster.
type Settlement struct {
	Survivors []string
	Fallen    []string
	Traumas   map[string]TraumaType
}

// Settle writes a party's post-expedition snapshot back into the roster by id.
// Members at or below zero HP are moved to the graveyard. Survivors keep at
// least 1 HP, and stress gained on the road goes through AddStress so trauma
// thresholds apply. On Victory each survivor's mission count rises; on Defeat
// each survivor gains a Wounded Leg.
//
// Precondition: members were produced by Snapshot against this roster.
func (r *Roster) Settle(members []PartyMemberState, outcome Outcome) Settlement {
	s := Settlement{Traumas: map[string]TraumaType{}}
	for _, m := range members {
		a, ok := r.Get(m.ID)
		if !ok {
			continue
		}
		if m.HP <= 0 {
			_ = r.RecordDeath(m.ID)
			s.Fallen = append(s.Fallen, m.ID)
			continue
		}
		a.HP = clamp(m.HP, 1, a.MaxHP)
		if delta := min(m.Stress, MaxStress) - a.Stress; delta > 0 {
			if tr := a.AddStress(delta); tr != nil {
				s.Traumas[a.ID] = tr.Type
			}
		} else {
			a.ReduceStress(-delta)
		}
		switch outcome {
		case Victory:
			a.MissionsCompleted++
		case Defeat:
			a.AddInjury(WoundedLeg())
		}
		s.Survivors = append(s.Survivors, m.ID)
	}
	return s
}
