// Package game owns the long-lived kingdom and roster and the single active
// game state. The host calls Update once per command and Draw once per frame.
package game

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/content"
	"github.com/cory-johannsen/frontier/internal/game/dice"
	"github.com/cory-johannsen/frontier/internal/game/kingdom"
	"github.com/cory-johannsen/frontier/internal/game/mission"
	"github.com/cory-johannsen/frontier/internal/game/state"
	"github.com/cory-johannsen/frontier/internal/save"
)

// Game is the simulation root. It is not safe for concurrent use; the host
// drives it from one goroutine.
type Game struct {
	kingdom       *kingdom.State
	roster        *kingdom.Roster
	regions       map[string]*mission.Region
	totals        state.Totals
	unlockedCards []string

	content content.Provider
	src     dice.Source
	rules   state.Rules
	logger  *zap.Logger

	active state.State
}

// New starts a fresh kingdom at the base with the starter roster.
//
// Precondition: provider, src and logger must be non-nil.
// Postcondition: Kind() is state.KindBase.
func New(provider content.Provider, src dice.Source, rules state.Rules, logger *zap.Logger) *Game {
	g := &Game{
		kingdom: kingdom.NewState(),
		roster:  kingdom.StarterRoster(),
		content: provider,
		src:     dice.NewLoggedRoller(src, logger.Named("dice")),
		rules:   rules,
		logger:  logger,
		active:  &state.BaseState{},
	}
	woods := mission.DarkWoods()
	g.regions = map[string]*mission.Region{woods.ID: &woods}
	for _, c := range provider.Cards() {
		g.unlockedCards = append(g.unlockedCards, c.ID)
	}
	return g
}

func (g *Game) env() *state.Env {
	return &state.Env{
		Kingdom: g.kingdom,
		Roster:  g.roster,
		Regions: g.regions,
		Totals:  &g.totals,
		Content: g.content,
		Src:     g.src,
		Rules:   g.rules,
		Logger:  g.logger,
	}
}

// Update hands one input to the active state and applies the transition it returns.
//
// Postcondition: exactly one state is active.
func (g *Game) Update(in state.Input) {
	t := g.active.Update(g.env(), in)
	if t == nil {
		return
	}
	next := t.Next()
	g.logger.Debug("state transition",
		zap.Stringer("from", g.active.Kind()),
		zap.Stringer("to", next.Kind()),
	)
	g.active = next
}

// Draw renders the active state.
func (g *Game) Draw(r state.Renderer) { g.active.Draw(g.env(), r) }

// Active returns the active state.
func (g *Game) Active() state.State { return g.active }

// Kind names the active state.
func (g *Game) Kind() state.Kind { return g.active.Kind() }

// Kingdom returns the live kingdom.
func (g *Game) Kingdom() *kingdom.State { return g.kingdom }

// Roster returns the live roster.
func (g *Game) Roster() *kingdom.Roster { return g.roster }

// Region returns a tracked region.
func (g *Game) Region(id string) (*mission.Region, bool) {
	r, ok := g.regions[id]
	return r, ok
}

// Totals returns the lifetime counters.
func (g *Game) Totals() state.Totals { return g.totals }

// Snapshot captures the persistent meta-state. Mission progress is not saved.
func (g *Game) Snapshot() *save.Data {
	d := &save.Data{
		Version:           save.Version,
		Kingdom:           *g.kingdom,
		Roster:            *g.roster,
		UnlockedCards:     append([]string(nil), g.unlockedCards...),
		UnlockedBuildings: g.kingdom.BuiltIDs(),
		TotalMissions:     g.totals.Missions,
		TotalDeaths:       g.totals.Deaths,
	}
	ids := make([]string, 0, len(g.regions))
	for id := range g.regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		r := g.regions[id]
		d.Regions = append(d.Regions, *r)
		if r.Discovered {
			d.RegionsExplored = append(d.RegionsExplored, id)
		}
	}
	return d
}

// Save writes the snapshot to slot.
func (g *Game) Save(ctx context.Context, store save.Store, slot string) error {
	if err := store.Save(ctx, slot, g.Snapshot()); err != nil {
		return fmt.Errorf("saving %q: %w", slot, err)
	}
	g.logger.Info("kingdom saved", zap.String("slot", slot), zap.Int("day", g.kingdom.Day))
	return nil
}

// Load replaces the meta-state with slot's contents and returns to the base.
//
// Postcondition: on error the game is exactly as it was before the call.
func (g *Game) Load(ctx context.Context, store save.Store, slot string) error {
	d, err := store.Load(ctx, slot)
	if err != nil {
		return fmt.Errorf("loading %q: %w", slot, err)
	}
	g.restore(d)
	g.logger.Info("kingdom loaded", zap.String("slot", slot), zap.Int("day", g.kingdom.Day))
	return nil
}

func (g *Game) restore(d *save.Data) {
	k, r := d.Kingdom, d.Roster
	g.kingdom, g.roster = &k, &r
	g.unlockedCards = d.UnlockedCards
	g.totals = state.Totals{Missions: d.TotalMissions, Deaths: d.TotalDeaths}

	woods := mission.DarkWoods()
	g.regions = map[string]*mission.Region{woods.ID: &woods}
	for i := range d.Regions {
		reg := d.Regions[i]
		g.regions[reg.ID] = &reg
	}
	for _, id := range d.RegionsExplored {
		if reg, ok := g.regions[id]; ok {
			reg.Discovered = true
		}
	}
	g.active = &state.BaseState{Notice: fmt.Sprintf("Day %d. The kingdom endures.", g.kingdom.Day)}
}
