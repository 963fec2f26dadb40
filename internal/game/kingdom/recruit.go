package kingdom

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/frontier/internal/game/dice"
)

// ErrBuildingRequired is returned when an action needs a building that is not constructed.
var ErrBuildingRequired = errors.New("building required")

var recruitNames = []string{
	"Aldric", "Beatrix", "Cedric", "Diana", "Edmund", "Freya",
	"Godric", "Helena", "Ivan", "Jocelyn", "Klaus", "Lydia",
	"Magnus", "Nadia", "Oscar", "Petra", "Quinn", "Rosa",
	"Stefan", "Thea", "Ulric", "Vera", "Werner", "Xena",
}

// HireCost returns the gold needed to hire an adventurer of class c.
func (c Class) HireCost() int {
	switch c {
	case Soldier:
		return 50
	case Scout:
		return 40
	case Healer:
		return 60
	case Mystic:
		return 70
	}
	return 0
}

// Recruit is a candidate offered at the guild hall.
type Recruit struct {
	Name   string
	Class  Class
	Gender Gender
	Cost   int
}

// GenerateRecruits offers n candidates whose classes cycle through Classes().
// Names and genders come from src.
//
// Precondition: src must be non-nil.
func GenerateRecruits(src dice.Source, n int) []Recruit {
	classes := Classes()
	out := make([]Recruit, 0, n)
	for i := 0; i < n; i++ {
		name, _ := dice.Pick(src, recruitNames)
		gender := Male
		if src.Intn(2) == 1 {
			gender = Female
		}
		c := classes[i%len(classes)]
		out = append(out, Recruit{Name: name, Class: c, Gender: gender, Cost: c.HireCost()})
	}
	return out
}

// Hire pays the recruit's cost and adds the new adventurer to the roster.
//
// Precondition: the guild hall must be built.
// Postcondition: on error neither k nor r is modified.
func (rc Recruit) Hire(k *State, r *Roster) (*Adventurer, error) {
	if !k.HasBuilt(GuildHall) {
		return nil, fmt.Errorf("%w: %s", ErrBuildingRequired, GuildHall)
	}
	if err := k.Spend(rc.Cost, 0); err != nil {
		return nil, err
	}
	a := NewAdventurer(rc.Name, rc.Class, rc.Gender)
	r.Add(a)
	return a, nil
}
