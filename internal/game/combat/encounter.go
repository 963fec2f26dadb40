package combat

import (
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game/dice"
	"github.com/cory-johannsen/frontier/internal/game/status"
)

var (
	// ErrNoSuchCard is returned when a hand index is out of range.
	ErrNoSuchCard = errors.New("no card at that hand position")
	// ErrInsufficientEnergy is returned when a card costs more than the energy left.
	ErrInsufficientEnergy = errors.New("not enough energy")
	// ErrAttacksDisabled is returned when an attack card is played under DisableAttacks.
	ErrAttacksDisabled = errors.New("attacks are disabled this turn")
	// ErrEncounterOver is returned when acting after victory or defeat.
	ErrEncounterOver = errors.New("encounter is over")
)

// Outcome is the state of an encounter.
type Outcome int

const (
	Ongoing Outcome = iota
	Victory
	Defeat
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "ongoing"
	}
}

// Member is one party member's unit inside an encounter.
type Member struct {
	ID    string
	Class Class
	Unit  *Unit
	// Extra names cards from the pool this member has learned regardless of class.
	Extra []string
}

// Rules holds the per-encounter tunables.
type Rules struct {
	MaxEnergy int
	HandSize  int
	// AmbientStress is added to the fighting member at every enemy phase.
	AmbientStress int
}

// DefaultRules returns three energy, a five-card hand and two ambient stress.
func DefaultRules() Rules {
	return Rules{MaxEnergy: 3, HandSize: 5, AmbientStress: 2}
}

// Encounter runs one fight between a party and a single enemy. The first
// living member fights; when it falls the next living member steps in.
// It is not safe for concurrent use.
type Encounter struct {
	Members  []Member
	Enemy    *Unit
	Resolver *Resolver
	Turn     int
	Energy   int

	rules   Rules
	cards   []Card
	active  int
	draw    []Card
	hand    []Card
	discard []Card
	outcome Outcome
	src     dice.Source
	logger  *zap.Logger
}

// NewEncounter builds an encounter, rolls the enemy's first intent and deals
// the opening hand.
//
// Precondition: members is non-empty; enemy, src and logger are non-nil.
// Postcondition: Outcome() is Ongoing unless every member is already down.
func NewEncounter(members []Member, enemy *Unit, cards []Card, rules Rules, src dice.Source, logger *zap.Logger) *Encounter {
	e := &Encounter{
		Members:  members,
		Enemy:    enemy,
		Resolver: NewResolver(logger),
		rules:    rules,
		cards:    cards,
		active:   -1,
		src:      src,
		logger:   logger,
	}
	if !e.nextMember() {
		e.outcome = Defeat
		return e
	}
	e.Enemy.RollIntent(e.Turn)
	e.startTurn(0)
	logger.Debug("encounter started",
		zap.String("enemy", enemy.Name),
		zap.Int("members", len(members)),
	)
	return e
}

// Active returns the member currently fighting.
func (e *Encounter) Active() Member { return e.Members[e.active] }

// Hand returns a copy of the current hand.
func (e *Encounter) Hand() []Card {
	out := make([]Card, len(e.hand))
	copy(out, e.hand)
	return out
}

// Outcome reports whether the encounter is still running.
func (e *Encounter) Outcome() Outcome { return e.outcome }

// PileSizes reports the draw and discard pile sizes.
func (e *Encounter) PileSizes() (draw, discard int) { return len(e.draw), len(e.discard) }

// PlayCard spends energy for the card at hand index i and resolves its
// effects strictly in order against the enemy.
//
// Postcondition: on success the card has moved to the discard pile and any
// immediate draw or energy it granted has been applied.
func (e *Encounter) PlayCard(i int) error {
	if e.outcome != Ongoing {
		return ErrEncounterOver
	}
	if i < 0 || i >= len(e.hand) {
		return ErrNoSuchCard
	}
	card := e.hand[i]
	if card.Cost > e.Energy {
		return ErrInsufficientEnergy
	}
	if e.Resolver.Mods.AttacksDisabled && card.IsAttack() {
		return ErrAttacksDisabled
	}

	e.Energy -= card.Cost
	e.hand = append(e.hand[:i], e.hand[i+1:]...)
	player := e.Active().Unit
	for _, eff := range card.Effects {
		e.Resolver.Resolve(eff, player, e.Enemy)
	}
	e.discard = append(e.discard, card)

	n, gain := e.Resolver.DrainImmediate()
	e.Energy += gain
	e.drawCards(n)

	e.logger.Debug("card played",
		zap.String("card", card.ID),
		zap.String("player", player.Name),
		zap.Int("energy_left", e.Energy),
	)
	e.checkOutcome()
	return nil
}

// EndTurn runs the enemy phase and opens the next player turn: enemy block
// expires, the enemy executes its intent, the fighting member takes the
// damage (after the enemy's Strength and Weak) and the resisted stress (plus ambient stress), both sides tick
// statuses, player block resets, turn modifiers close, the turn counter
// advances and the enemy telegraphs its next intent.
func (e *Encounter) EndTurn() error {
	if e.outcome != Ongoing {
		return ErrEncounterOver
	}
	player := e.Active().Unit

	e.Enemy.ResetBlock()
	acted := e.Enemy.WillAct()
	dmg, stress := e.Enemy.ExecuteIntent()
	if dmg > 0 {
		lost := player.TakeDamage(AttackDamage(dmg, e.Enemy))
		e.Resolver.logf("%s hits %s for %d", e.Enemy.Name, player.Name, lost)
	}
	incoming := e.Resolver.IncomingStress(stress + e.rules.AmbientStress)
	player.AddStress(incoming)

	e.Enemy.TickStatuses()
	player.TickStatuses()
	player.ResetBlock()

	pending := e.Resolver.EndTurn(acted)
	e.Turn++

	e.checkOutcome()
	if e.outcome != Ongoing {
		return nil
	}
	if player.IsDead() {
		e.Resolver.logf("%s falls", player.Name)
		e.nextMember()
	}
	e.Enemy.RollIntent(e.Turn)
	e.discard = append(e.discard, e.hand...)
	e.hand = nil
	e.startTurn(pending)
	return nil
}

func (e *Encounter) startTurn(bonusEnergy int) {
	e.Energy = e.rules.MaxEnergy + bonusEnergy
	for _, u := range []*Unit{e.Active().Unit, e.Enemy} {
		if b := u.Statuses.Value(status.Block); b > 0 {
			u.AddBlock(b)
		}
	}
	e.drawCards(e.rules.HandSize)
}

// nextMember advances to the next living member and rebuilds the deck for
// their class and learned cards. It reports false when nobody is left standing.
func (e *Encounter) nextMember() bool {
	for i := e.active + 1; i < len(e.Members); i++ {
		if !e.Members[i].Unit.IsDead() {
			e.active = i
			e.buildDeck(e.Members[i])
			return true
		}
	}
	return false
}

func (e *Encounter) buildDeck(m Member) {
	learned := make(map[string]bool, len(m.Extra))
	for _, id := range m.Extra {
		learned[id] = true
	}
	deck := make([]Card, 0, len(e.cards))
	for _, c := range e.cards {
		if c.UsableBy(m.Class) || learned[c.ID] {
			deck = append(deck, c)
		}
	}
	if len(deck) == 0 {
		deck = StarterCards()
	}
	dice.Shuffle(e.src, deck)
	e.draw, e.hand, e.discard = deck, nil, nil
}

func (e *Encounter) drawCards(n int) {
	for ; n > 0; n-- {
		if len(e.draw) == 0 {
			if len(e.discard) == 0 {
				return
			}
			e.draw, e.discard = e.discard, nil
			dice.Shuffle(e.src, e.draw)
		}
		e.hand = append(e.hand, e.draw[0])
		e.draw = e.draw[1:]
	}
}

func (e *Encounter) checkOutcome() {
	if e.Enemy.IsDead() {
		e.outcome = Victory
		return
	}
	for _, m := range e.Members {
		if !m.Unit.IsDead() {
			return
		}
	}
	e.outcome = Defeat
}
