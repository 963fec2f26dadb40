package kingdom

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxStress is the stress ceiling for every adventurer.
const MaxStress = 100

// StressedThreshold is the stress at which an adventurer refuses to deploy.
const StressedThreshold = 50

// Class is an adventurer's calling. It determines base HP and which cards they may draw.
type Class string

const (
	Soldier Class = "Soldier"
	Scout   Class = "Scout"
	Healer  Class = "Healer"
	Mystic  Class = "Mystic"
)

// Classes lists every adventurer class in recruit order.
func Classes() []Class { return []Class{Soldier, Scout, Healer, Mystic} }

// BaseHP returns the starting maximum HP for the class, or 0 for an unknown class.
func (c Class) BaseHP() int {
	switch c {
	case Soldier:
		return 45
	case Scout:
		return 35
	case Healer:
		return 30
	case Mystic:
		return 32
	}
	return 0
}

// Gender selects the portrait variant.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Trait is a positive or negative quirk.
type Trait struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPositive  bool   `json:"is_positive"`
}

// Injury is a physical wound that heals over days at the base.
type Injury struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    int    `json:"severity"`
	HealingDays int    `json:"healing_days"`
}

// WoundedLeg is inflicted on the survivors of a failed expedition.
func WoundedLeg() Injury {
	return Injury{ID: "wounded_leg", Name: "Wounded Leg", Description: "Movement cards cost +1 energy", Severity: 2, HealingDays: 3}
}

// BrokenArm is a heavier wound with a longer recovery.
func BrokenArm() Injury {
	return Injury{ID: "broken_arm", Name: "Broken Arm", Description: "Attack cards deal -2 damage", Severity: 3, HealingDays: 5}
}

// TraumaType names a lasting psychological scar.
type TraumaType string

const (
	Fearful  TraumaType = "Fearful"
	Paranoid TraumaType = "Paranoid"
	Broken   TraumaType = "Broken"
	Hopeless TraumaType = "Hopeless"
)

// Trauma is gained when stress crosses a threshold.
type Trauma struct {
	Type     TraumaType `json:"trauma_type"`
	Severity int        `json:"severity"`
}

// Adventurer is a persistent character owned by the Roster.
type Adventurer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Class  Class  `json:"class"`
	Gender Gender `json:"gender"`

	HP     int `json:"hp"`
	MaxHP  int `json:"max_hp"`
	Stress int `json:"stress"`
	Level  int `json:"level"`
	XP     int `json:"xp"`

	Traits        []Trait  `json:"traits"`
	Injuries      []Injury `json:"injuries"`
	Traumas       []Trauma `json:"traumas"`
	DeckAdditions []string `json:"deck_additions"`

	Available         bool   `json:"available"`
	MissionsCompleted int    `json:"missions_completed"`
	Kills             int    `json:"kills"`
	ImagePath         string `json:"image_path,omitempty"`
}

// NewAdventurer creates a level-one adventurer at full health with a fresh id.
//
// Precondition: class must be one of Classes().
// Postcondition: HP == MaxHP == class.BaseHP(); Stress == 0; Available is true.
func NewAdventurer(name string, class Class, gender Gender) *Adventurer {
	hp := class.BaseHP()
	return &Adventurer{
		ID:        uuid.NewString(),
		Name:      name,
		Class:     class,
		Gender:    gender,
		HP:        hp,
		MaxHP:     hp,
		Level:     1,
		Available: true,
		ImagePath: PortraitPath(class, gender),
	}
}

// PortraitPath returns the conventional portrait asset for a class and gender.
func PortraitPath(class Class, gender Gender) string {
	return fmt.Sprintf("assets/images/characters/%s_%s.png",
		strings.ToLower(string(class)), strings.ToLower(string(gender)))
}

// IsAlive reports whether HP is above zero.
func (a *Adventurer) IsAlive() bool { return a.HP > 0 }

// IsStressed reports whether stress bars the adventurer from deployment.
func (a *Adventurer) IsStressed() bool { return a.Stress >= StressedThreshold }

// IsInjured reports whether any injury is still healing.
func (a *Adventurer) IsInjured() bool { return len(a.Injuries) > 0 }

// CanDeploy reports whether the adventurer may join a party.
func (a *Adventurer) CanDeploy() bool { return a.Available && !a.IsStressed() && a.IsAlive() }

// HasTrauma reports whether a trauma of type t has been acquired.
func (a *Adventurer) HasTrauma(t TraumaType) bool {
	for _, tr := range a.Traumas {
		if tr.Type == t {
			return true
		}
	}
	return false
}

// AddStress raises stress and checks the trauma thresholds from the highest down.
// At most one trauma is gained per call.
//
// Postcondition: 0 <= Stress <= MaxStress.
// Postcondition: returns the trauma gained, or nil.
func (a *Adventurer) AddStress(amount int) *Trauma {
	a.Stress = clamp(a.Stress+amount, 0, MaxStress)

	var gained TraumaType
	switch {
	case a.Stress >= 100 && !a.HasTrauma(Broken):
		gained = Broken
	case a.Stress >= 75 && !a.HasTrauma(Paranoid):
		gained = Paranoid
	case a.Stress >= 50 && !a.HasTrauma(Fearful):
		gained = Fearful
	default:
		return nil
	}
	tr := Trauma{Type: gained, Severity: 1}
	a.Traumas = append(a.Traumas, tr)
	return &tr
}

// ReduceStress lowers stress, flooring at 0.
func (a *Adventurer) ReduceStress(amount int) {
	a.Stress = clamp(a.Stress-amount, 0, MaxStress)
}

// Heal restores HP up to MaxHP.
func (a *Adventurer) Heal(amount int) {
	if amount <= 0 {
		return
	}
	a.HP = min(a.HP+amount, a.MaxHP)
}

// AddInjury records an injury; a second wound of the same kind resets its healing time.
func (a *Adventurer) AddInjury(in Injury) {
	for i := range a.Injuries {
		if a.Injuries[i].ID == in.ID {
			a.Injuries[i].HealingDays = max(a.Injuries[i].HealingDays, in.HealingDays)
			return
		}
	}
	a.Injuries = append(a.Injuries, in)
}

// RestDay advances injury recovery by one day and drops healed injuries.
//
// Postcondition: returns the ids of injuries that healed.
func (a *Adventurer) RestDay() []string {
	var healed []string
	kept := a.Injuries[:0]
	for _, in := range a.Injuries {
		in.HealingDays--
		if in.HealingDays > 0 {
			kept = append(kept, in)
		} else {
			healed = append(healed, in.ID)
		}
	}
	a.Injuries = kept
	return healed
}

// AddCard unlocks an extra card for this adventurer's deck.
func (a *Adventurer) AddCard(cardID string) {
	for _, id := range a.DeckAdditions {
		if id == cardID {
			return
		}
	}
	a.DeckAdditions = append(a.DeckAdditions, cardID)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
