// Package status models typed, duration-bound status effects attached to a combat unit.
package status

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Type identifies one kind of status effect.
type Type int

const (
	Strength Type = iota
	Vulnerable
	Weak
	Stun
	Regen
	Block
	Poison
	Burn
)

var typeNames = [...]string{"Strength", "Vulnerable", "Weak", "Stun", "Regen", "Block", "Poison", "Burn"}

// Types lists every status type in declaration order.
func Types() []Type {
	return []Type{Strength, Vulnerable, Weak, Stun, Regen, Block, Poison, Burn}
}

// String returns the content-table name of the type.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// IsDebuff reports whether the type is harmful to its bearer.
func (t Type) IsDebuff() bool {
	switch t {
	case Vulnerable, Weak, Stun, Poison, Burn:
		return true
	}
	return false
}

// ParseType resolves a content-table name into a Type.
func ParseType(s string) (Type, error) {
	for i, n := range typeNames {
		if n == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown status type %q", s)
}

// UnmarshalYAML decodes a status type from its name.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the type by name.
func (t Type) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// Effect is one active status: Duration turns remaining and a magnitude.
type Effect struct {
	Type     Type `json:"type" yaml:"type"`
	Duration int  `json:"duration" yaml:"duration"`
	Value    int  `json:"value" yaml:"value"`
}

// TickResult reports what a status tick produced for the bearer to apply.
type TickResult struct {
	// Heal is the summed Regen value.
	Heal int
	// Damage is the summed Poison and Burn value.
	Damage int
	// Expired lists the types removed by this tick.
	Expired []Type
}

// List holds at most one Effect per Type, in application order.
// It is not safe for concurrent use.
type List struct {
	effects []Effect
}

// Add applies e using the refresh rule: a type already present takes
// max(duration) and max(value); it never gains a second entry.
//
// Precondition: e.Duration > 0.
// Postcondition: exactly one entry for e.Type exists.
func (l *List) Add(e Effect) {
	for i := range l.effects {
		if l.effects[i].Type == e.Type {
			l.effects[i].Duration = max(l.effects[i].Duration, e.Duration)
			l.effects[i].Value = max(l.effects[i].Value, e.Value)
			return
		}
	}
	l.effects = append(l.effects, e)
}

// Has reports whether a status of type t is active.
func (l *List) Has(t Type) bool {
	_, ok := l.Get(t)
	return ok
}

// Get returns the active effect of type t.
func (l *List) Get(t Type) (Effect, bool) {
	for _, e := range l.effects {
		if e.Type == t {
			return e, true
		}
	}
	return Effect{}, false
}

// Value returns the magnitude of t, or 0 when inactive.
func (l *List) Value(t Type) int {
	e, _ := l.Get(t)
	return e.Value
}

// Tick runs one turn boundary: Regen accumulates a pending heal, Poison and
// Burn accumulate pending damage, every duration drops by one and only
// durations still above zero are retained.
//
// Postcondition: no retained effect has Duration <= 0.
func (l *List) Tick() TickResult {
	var res TickResult
	kept := l.effects[:0]
	for _, e := range l.effects {
		switch e.Type {
		case Regen:
			res.Heal += e.Value
		case Poison, Burn:
			res.Damage += e.Value
		}
		e.Duration--
		if e.Duration > 0 {
			kept = append(kept, e)
		} else {
			res.Expired = append(res.Expired, e.Type)
		}
	}
	l.effects = kept
	return res
}

// ClearDebuffs removes every debuff and returns how many were removed.
func (l *List) ClearDebuffs() int {
	kept := l.effects[:0]
	removed := 0
	for _, e := range l.effects {
		if e.Type.IsDebuff() {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.effects = kept
	return removed
}

// All returns a copy of the active effects in application order.
func (l *List) All() []Effect {
	out := make([]Effect, len(l.effects))
	copy(out, l.effects)
	return out
}

// Len returns the number of active effects.
func (l *List) Len() int { return len(l.effects) }
