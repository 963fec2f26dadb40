package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game/enemy"
	"github.com/cory-johannsen/frontier/internal/game/kingdom"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// RestHealDivisor sets a rest node's heal to a tenth of max HP.
const RestHealDivisor = 10

// RestRelief is the stress a rest node removes.
const RestRelief = 5

// MissionState walks a party across a generated map. Members are by-value
// snapshots; the roster only sees them again when the expedition is settled.
type MissionState struct {
	Mission   mission.Mission
	Traversal *mission.Traversal
	Members   []kingdom.PartyMemberState
	// Haul collects supplies and knowledge found on the road, paid on victory.
	Haul kingdom.Rewards
	// Kills counts enemies defeated per member id.
	Kills map[string]int
	Log   []string

	// pending is set while the current node has not been resolved.
	pending  bool
	skipNext bool
}

// NewMissionState stands the party on the entry node, which resolves on the first Confirm.
//
// Precondition: nodes is non-empty and members were snapshotted from the roster.
func NewMissionState(m mission.Mission, nodes []mission.MapNode, members []kingdom.PartyMemberState) *MissionState {
	return &MissionState{
		Mission:   m,
		Traversal: mission.NewTraversal(nodes),
		Members:   members,
		Kills:     map[string]int{},
		pending:   true,
	}
}

func (s *MissionState) Kind() Kind { return KindMission }

// Pending reports whether the current node still has to be resolved.
func (s *MissionState) Pending() bool { return s.pending }

// Update resolves the current node, moves on, or handles a path choice.
// Cancel retreats: the party goes home with what it has and no rewards.
func (s *MissionState) Update(env *Env, in Input) Transition {
	t := s.Traversal
	switch in.Action {
	case ActionUp:
		t.MoveSelection(-1)
	case ActionDown:
		t.MoveSelection(1)
	case ActionSelect:
		if err := t.Select(in.Index); err != nil {
			s.logf("%v", err)
		}
	case ActionConfirm:
		return s.step(env)
	case ActionCancel:
		return s.retreat(env)
	}
	return nil
}

func (s *MissionState) step(env *Env) Transition {
	t := s.Traversal
	if s.pending {
		return s.processCurrentNode(env)
	}
	if t.AwaitingChoice() {
		if _, err := t.Confirm(); err != nil {
			s.logf("%v", err)
			return nil
		}
		return s.processCurrentNode(env)
	}
	switch t.Advance() {
	case mission.StepComplete:
		return ToResults{State: NewResultsState(env, kingdom.Victory, s)}
	case mission.StepMoved:
		return s.processCurrentNode(env)
	}
	return nil
}

// processCurrentNode resolves the node the party stands on. Combat and Boss
// nodes hand the party to a fight, Event nodes to a narrative event, and
// Rest nodes heal in place.
func (s *MissionState) processCurrentNode(env *Env) Transition {
	s.pending = false
	node := s.Traversal.Current()
	if s.skipNext {
		s.skipNext = false
		s.logf("The party slips past the %s ahead.", node.Type)
		return nil
	}
	env.Logger.Debug("resolving node",
		zap.Int("node", node.ID),
		zap.Int("layer", node.Layer),
		zap.Stringer("type", node.Type),
	)

	switch node.Type {
	case mission.NodeCombat, mission.NodeBoss:
		foe := enemy.ForDifficulty(env.Content.Enemies(), s.Mission.CombatDifficulty(), env.Src)
		if node.Type == mission.NodeBoss {
			enemy.MakeBoss(foe)
		}
		s.logf("%s blocks the way.", foe.Name)
		return ToCombat{State: NewCombatState(env, s, foe)}
	case mission.NodeEvent:
		ev, ok := mission.PickEvent(node.ID, s.Mission.RegionID, env.Content.Events(), env.Src)
		if !ok {
			s.logf("The path is quiet.")
			return nil
		}
		return ToEvent{State: &EventState{Event: ev, Return: s}}
	case mission.NodeRest:
		s.eachLiving(func(p *kingdom.PartyMemberState) {
			p.Adjust(p.MaxHP/RestHealDivisor, -RestRelief)
		})
		s.logf("The party makes camp and rests.")
	}
	return nil
}

func (s *MissionState) retreat(env *Env) Transition {
	settled := env.Roster.Settle(s.Members, kingdom.Retreat)
	env.Kingdom.RecordExpedition(s.Mission.ID, kingdom.Retreat, kingdom.Rewards{})
	env.Totals.Deaths += len(settled.Fallen)
	env.Logger.Info("expedition retreated", zap.String("mission", s.Mission.ID))
	return ToBase{Notice: fmt.Sprintf("The party withdrew from %s.", s.Mission.Name)}
}

// member returns the snapshot for id.
func (s *MissionState) member(id string) (*kingdom.PartyMemberState, bool) {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i], true
		}
	}
	return nil, false
}

func (s *MissionState) logf(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
}

func (s *MissionState) Draw(_ *Env, r Renderer) {
	t := s.Traversal
	node := t.Current()
	r.Title(fmt.Sprintf("%s: layer %d of %d", s.Mission.Name, node.Layer+1, mission.LayerCount(t.Nodes())))
	for _, m := range s.Members {
		r.Meter(m.Name, m.HP, m.MaxHP)
		r.Line(fmt.Sprintf("  stress %d", m.Stress))
	}
	r.Line(fmt.Sprintf("Haul: %d supplies, %d knowledge", s.Haul.Supplies, s.Haul.Knowledge))
	switch {
	case s.pending:
		r.Line(fmt.Sprintf("Ahead: %s. Confirm to proceed.", node.Type))
	case t.AwaitingChoice():
		r.Line("The path forks:")
		for i, n := range t.Choices() {
			r.Option(i, n.Type.String(), i == t.Selected())
		}
	case node.IsTerminal():
		r.Line("The objective is reached. Confirm to return home.")
	default:
		r.Line("Confirm to press on, cancel to retreat.")
	}
	if n := len(s.Log); n > 0 {
		r.Line(s.Log[n-1])
	}
}
