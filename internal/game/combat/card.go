package combat

import "fmt"

// Class restricts which adventurer class may use a card.
type Class string

const (
	ClassAny     Class = "Any"
	ClassSoldier Class = "Soldier"
	ClassScout   Class = "Scout"
	ClassHealer  Class = "Healer"
	ClassMystic  Class = "Mystic"
)

// Card is immutable content: metadata plus an ordered effect list.
// Cards never mutate units; the Resolver does.
type Card struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Cost        int     `yaml:"cost"`
	Description string  `yaml:"description"`
	Effects     Effects `yaml:"effects"`
	ImagePath   string  `yaml:"image_path,omitempty"`
	Class       Class   `yaml:"class,omitempty"`
}

// IsAttack reports whether any effect on the card deals damage.
func (c Card) IsAttack() bool {
	for _, e := range c.Effects {
		if IsDamage(e) {
			return true
		}
	}
	return false
}

// UsableBy reports whether an adventurer of class cls may play the card.
// An empty class means Any.
func (c Card) UsableBy(cls Class) bool {
	return c.Class == "" || c.Class == ClassAny || c.Class == cls
}

// Validate checks that the card is playable content.
func (c Card) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("card: id must not be empty")
	}
	if c.Cost < 0 {
		return fmt.Errorf("card %q: cost must be >= 0, got %d", c.ID, c.Cost)
	}
	if len(c.Effects) == 0 {
		return fmt.Errorf("card %q: must have at least one effect", c.ID)
	}
	for i, e := range c.Effects {
		if as, ok := e.(ApplyStatus); ok && as.Duration <= 0 {
			return fmt.Errorf("card %q: effect %d: %s duration must be > 0, got %d", c.ID, i, as.Type, as.Duration)
		}
	}
	switch c.Class {
	case "", ClassAny, ClassSoldier, ClassScout, ClassHealer, ClassMystic:
	default:
		return fmt.Errorf("card %q: unknown class %q", c.ID, c.Class)
	}
	return nil
}

// StarterCards is the built-in set used when no card table can be loaded.
func StarterCards() []Card {
	return []Card{
		{ID: "strike", Name: "Strike", Cost: 1, Description: "Deal 6 damage", Effects: Effects{Damage{6}}, ImagePath: "assets/images/cards/strike.png"},
		{ID: "guard", Name: "Guard", Cost: 1, Description: "Gain 5 Block", Effects: Effects{Block{5}}, ImagePath: "assets/images/cards/guard.png"},
		{ID: "desperate_swing", Name: "Desperate Swing", Cost: 0, Description: "Deal 5 dmg, +5 Stress", Effects: Effects{Damage{5}, SelfStress{5}}, ImagePath: "assets/images/cards/desperate_swing.png"},
		{ID: "recenter", Name: "Recenter", Cost: 1, Description: "Reduce Stress by 6", Effects: Effects{ReduceStress{6}}, ImagePath: "assets/images/cards/recenter.png"},
		{ID: "measured_strike", Name: "Measured Strike", Cost: 2, Description: "Deal 10 damage", Effects: Effects{Damage{10}}, ImagePath: "assets/images/cards/measured_strike.png"},
	}
}
