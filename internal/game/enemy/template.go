// Package enemy provides enemy template definitions and difficulty-based selection.
package enemy

import (
	"fmt"

	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/dice"
)

// Template defines a reusable enemy archetype loaded from the enemy table.
type Template struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	MaxHP       int    `yaml:"max_hp"`
	BaseDamage  int    `yaml:"base_damage"`
	ThreatLevel int    `yaml:"threat_level"`
	Region      string `yaml:"region"`
	ImagePath   string `yaml:"image_path,omitempty"`
}

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty, MaxHP >= 1,
// BaseDamage >= 0 and ThreatLevel >= 0; returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("enemy template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("enemy template %q: name must not be empty", t.ID)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("enemy template %q: max_hp must be >= 1", t.ID)
	}
	if t.BaseDamage < 0 {
		return fmt.Errorf("enemy template %q: base_damage must be >= 0", t.ID)
	}
	if t.ThreatLevel < 0 {
		return fmt.Errorf("enemy template %q: threat_level must be >= 0", t.ID)
	}
	return nil
}

// ToUnit builds a fresh combat unit at full health from the template.
func (t *Template) ToUnit() *combat.Unit {
	u := combat.NewEnemy(t.Name, t.MaxHP, t.BaseDamage)
	u.ImagePath = t.ImagePath
	return u
}

// Fallback is the enemy fought when no template fits at all.
func Fallback() Template {
	return Template{ID: "forest_beast", Name: "Forest Beast", MaxHP: 30, BaseDamage: 5, ThreatLevel: 1, Region: "dark_woods"}
}

// StarterEnemies is the built-in enemy table used when no table can be loaded.
func StarterEnemies() []Template {
	return []Template{
		Fallback(),
		{ID: "shadow_wolf", Name: "Shadow Wolf", MaxHP: 25, BaseDamage: 6, ThreatLevel: 2, Region: "dark_woods"},
	}
}

// ForDifficulty picks uniformly among templates whose threat level does not
// exceed difficulty. With none suitable it takes the first template, and with
// no templates at all the Forest Beast.
//
// Postcondition: Returns a non-nil unit at full health.
func ForDifficulty(templates []Template, difficulty int, src dice.Source) *combat.Unit {
	suitable := make([]Template, 0, len(templates))
	for _, t := range templates {
		if t.ThreatLevel <= difficulty {
			suitable = append(suitable, t)
		}
	}
	if t, ok := dice.Pick(src, suitable); ok {
		return t.ToUnit()
	}
	if len(templates) > 0 {
		return templates[0].ToUnit()
	}
	fb := Fallback()
	return fb.ToUnit()
}

// ByID returns the template with id.
func ByID(templates []Template, id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// MakeBoss scales u into a boss: half again the hit points and three more base damage.
func MakeBoss(u *combat.Unit) {
	u.MaxHP = u.MaxHP * 3 / 2
	u.HP = u.MaxHP
	u.BaseDamage += 3
	u.Name = u.Name + " Alpha"
}
