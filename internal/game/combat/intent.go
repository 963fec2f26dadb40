package combat

import (
	"fmt"

	"github.com/cory-johannsen/frontier/internal/game/status"
)

// IntentKind is the category of an enemy's telegraphed action.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentAttack
	IntentBlock
	IntentBuff
	IntentDebuff
)

// String returns the display label of the kind.
func (k IntentKind) String() string {
	switch k {
	case IntentAttack:
		return "attack"
	case IntentBlock:
		return "block"
	case IntentBuff:
		return "buff"
	case IntentDebuff:
		return "debuff"
	default:
		return "unknown"
	}
}

// Intent is the enemy's next planned action and its magnitude.
type Intent struct {
	Kind  IntentKind
	Value int
}

// String renders the intent as shown to the player, e.g. "attack 7".
func (i Intent) String() string {
	if i.Kind == IntentUnknown {
		return "???"
	}
	return fmt.Sprintf("%s %d", i.Kind, i.Value)
}

// enemyBlockAmount is the block an enemy gains from a Block intent.
const enemyBlockAmount = 5

// RollIntent picks the next intent from a four-phase cycle keyed on turn%4:
// phases 0 and 3 attack for BaseDamage, phase 1 attacks for BaseDamage+2,
// phase 2 blocks for 5. A stunned unit telegraphs nothing.
//
// Postcondition: the result depends only on turn%4, BaseDamage and Stun.
func (u *Unit) RollIntent(turn int) {
	if u.Statuses.Has(status.Stun) {
		u.Intent = Intent{Kind: IntentUnknown}
		return
	}
	switch turn % 4 {
	case 1:
		u.Intent = Intent{Kind: IntentAttack, Value: u.BaseDamage + 2}
	case 2:
		u.Intent = Intent{Kind: IntentBlock, Value: enemyBlockAmount}
	default:
		u.Intent = Intent{Kind: IntentAttack, Value: u.BaseDamage}
	}
}

// ExecuteIntent carries out the current intent. Self-targeted intents mutate
// the unit; the returned damage and stress are for the loop to apply to the
// opposing side. A stunned unit does nothing.
func (u *Unit) ExecuteIntent() (damage, stress int) {
	if u.Statuses.Has(status.Stun) {
		return 0, 0
	}
	switch u.Intent.Kind {
	case IntentAttack:
		return u.Intent.Value, 0
	case IntentBlock:
		u.AddBlock(u.Intent.Value)
	case IntentBuff:
		u.BaseDamage += 2
	case IntentDebuff:
		return 0, u.Intent.Value
	}
	return 0, 0
}

// WillAct reports whether executing the current intent does anything.
func (u *Unit) WillAct() bool {
	return !u.Statuses.Has(status.Stun) && u.Intent.Kind != IntentUnknown
}
