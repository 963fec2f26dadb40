package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game/kingdom"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// SuppressStabilize is the threat a successful suppression removes from its region.
const SuppressStabilize = 10

// ResultsState shows a finished expedition. Its consequences are applied to
// the kingdom and roster once, when the state is built.
type ResultsState struct {
	Outcome       kingdom.Outcome
	Mission       mission.Mission
	Members       []kingdom.PartyMemberState
	Rewards       kingdom.Rewards
	Settlement    kingdom.Settlement
	LayersVisited int
	// Learned names the card survivors added to their decks, if any.
	Learned string
}

// NewResultsState settles the expedition carried by m: base stress reaches
// the survivors, kills are credited, the roster and kingdom absorb the
// outcome, and a victory marks the region discovered and teaches survivors
// the mission's reward card.
//
// Precondition: outcome is Victory or Defeat.
func NewResultsState(env *Env, outcome kingdom.Outcome, m *MissionState) *ResultsState {
	m.eachLiving(func(p *kingdom.PartyMemberState) { p.Adjust(0, m.Mission.BaseStress) })
	for id, n := range m.Kills {
		if a, ok := env.Roster.Get(id); ok {
			a.Kills += n
		}
	}

	s := &ResultsState{
		Outcome:       outcome,
		Mission:       m.Mission,
		Members:       append([]kingdom.PartyMemberState(nil), m.Members...),
		LayersVisited: m.Traversal.LayersVisited(),
	}
	var paid kingdom.Rewards
	if outcome == kingdom.Victory {
		paid = m.Mission.Rewards().Add(m.Haul)
		s.Rewards = paid
		s.Rewards.Gold += kingdom.VictoryGold
	}
	s.Settlement = env.Roster.Settle(m.Members, outcome)
	if outcome == kingdom.Victory && m.Mission.RewardCard != "" {
		for _, id := range s.Settlement.Survivors {
			if a, ok := env.Roster.Get(id); ok {
				a.AddCard(m.Mission.RewardCard)
			}
		}
		s.Learned = m.Mission.RewardCard
	}
	env.Kingdom.RecordExpedition(m.Mission.ID, outcome, paid)

	if r, ok := env.Region(m.Mission.RegionID); ok && outcome == kingdom.Victory {
		r.Discovered = true
		if m.Mission.Type == mission.Suppress {
			r.Stabilize(SuppressStabilize)
		}
	}
	env.Totals.Missions++
	env.Totals.Deaths += len(s.Settlement.Fallen)

	env.Logger.Info("expedition finished",
		zap.String("mission", m.Mission.ID),
		zap.Stringer("outcome", outcome),
		zap.Int("layers", s.LayersVisited),
		zap.Int("fallen", len(s.Settlement.Fallen)),
	)
	return s
}

func (s *ResultsState) Kind() Kind { return KindResults }

// Update returns to the base on Confirm or Cancel.
func (s *ResultsState) Update(_ *Env, in Input) Transition {
	switch in.Action {
	case ActionConfirm, ActionCancel:
		return ToBase{}
	}
	return nil
}

func (s *ResultsState) Draw(_ *Env, r Renderer) {
	switch s.Outcome {
	case kingdom.Victory:
		r.Title(fmt.Sprintf("Victory: %s", s.Mission.Name))
		r.Line(fmt.Sprintf("Earned %d gold, %d supplies, %d knowledge, %d influence.",
			s.Rewards.Gold, s.Rewards.Supplies, s.Rewards.Knowledge, s.Rewards.Influence))
	default:
		r.Title(fmt.Sprintf("Defeat: %s", s.Mission.Name))
		r.Line("The survivors limp home. Morale suffers.")
	}
	r.Line(fmt.Sprintf("Layers crossed: %d", s.LayersVisited))
	if s.Learned != "" {
		r.Line(fmt.Sprintf("Survivors learned %s.", s.Learned))
	}
	for _, m := range s.Members {
		line := fmt.Sprintf("%s: %d/%d HP, stress %d", m.Name, m.HP, m.MaxHP, m.Stress)
		if !m.IsAlive() {
			line = m.Name + " has fallen."
		} else if t, ok := s.Settlement.Traumas[m.ID]; ok {
			line += fmt.Sprintf(" (now %s)", t)
		}
		r.Line(line)
	}
}
