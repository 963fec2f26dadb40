// Package state implements the per-mode game states and the typed
// transitions between them. Exactly one state is active at a time; a state
// either stays active or returns a Transition whose payload fully describes
// the next state.
package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/content"
	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/dice"
	"github.com/cory-johannsen/frontier/internal/game/kingdom"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// Kind names a game mode.
type Kind int

const (
	KindBase Kind = iota
	KindMissionSelect
	KindMission
	KindCombat
	KindEvent
	KindResults
	KindRecruit
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindMissionSelect:
		return "mission_select"
	case KindMission:
		return "mission"
	case KindCombat:
		return "combat"
	case KindEvent:
		return "event"
	case KindResults:
		return "results"
	case KindRecruit:
		return "recruit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Action is a host-independent player command. Key and mouse bindings map onto these.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	// ActionSelect picks Input.Index in the current list.
	ActionSelect
	ActionConfirm
	ActionCancel
	ActionEndTurn
	ActionMissions
	ActionRecruit
	// ActionBuild constructs the building named by Input.Target.
	ActionBuild
	// ActionHeal treats roster entry Input.Index at the infirmary.
	ActionHeal
	// ActionTavern sends roster entry Input.Index to the chapel.
	ActionTavern
	ActionRestDay
)

// Input is one frame's command.
type Input struct {
	Action Action
	Index  int
	Target string
}

// Rules are the tunables states need from configuration.
type Rules struct {
	Combat      combat.Rules
	PartySize   int
	RecruitPool int
}

// DefaultRules mirrors the configuration defaults.
func DefaultRules() Rules {
	return Rules{Combat: combat.DefaultRules(), PartySize: kingdom.MaxPartySize, RecruitPool: 3}
}

// Totals are lifetime counters persisted with the save.
type Totals struct {
	Missions int
	Deaths   int
}

// Env lends the long-lived aggregates and collaborators to the active state
// for the duration of one Update. States must not retain it.
type Env struct {
	Kingdom *kingdom.State
	Roster  *kingdom.Roster
	Regions map[string]*mission.Region
	Totals  *Totals
	Content content.Provider
	Src     dice.Source
	Rules   Rules
	Logger  *zap.Logger
}

// Region returns the region with id, if tracked.
func (e *Env) Region(id string) (*mission.Region, bool) {
	r, ok := e.Regions[id]
	return r, ok
}

// Renderer is the drawing collaborator. The core describes what to show; the
// host decides how.
type Renderer interface {
	Title(text string)
	Line(text string)
	Option(index int, text string, selected bool)
	Meter(label string, current, max int)
}

// State is one game mode.
type State interface {
	Kind() Kind
	// Update handles one input. A nil Transition means stay.
	Update(env *Env, in Input) Transition
	Draw(env *Env, r Renderer)
}

// Transition is a request to replace the active state. The set is closed.
type Transition interface {
	Next() State
}

type (
	// ToBase returns to the kingdom base with an optional notice.
	ToBase struct{ Notice string }
	// ToMissionSelect opens mission and party selection.
	ToMissionSelect struct{ State *MissionSelectState }
	// ToMission enters or resumes an expedition.
	ToMission struct{ State *MissionState }
	// ToCombat starts a fight; the mission to resume travels inside.
	ToCombat struct{ State *CombatState }
	// ToEvent presents a narrative event; the mission to resume travels inside.
	ToEvent struct{ State *EventState }
	// ToResults shows a finished expedition whose consequences are already applied.
	ToResults struct{ State *ResultsState }
	// ToRecruit opens the guild hall.
	ToRecruit struct{ State *RecruitState }
)

func (t ToBase) Next() State          { return &BaseState{Notice: t.Notice} }
func (t ToMissionSelect) Next() State { return t.State }
func (t ToMission) Next() State       { return t.State }
func (t ToCombat) Next() State        { return t.State }
func (t ToEvent) Next() State         { return t.State }
func (t ToResults) Next() State       { return t.State }
func (t ToRecruit) Next() State       { return t.State }
