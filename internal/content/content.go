// Package content supplies the card, enemy, mission and event tables the
// core is built from.
package content

import (
	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/enemy"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// Provider is the content collaborator injected into the game. Every table
// is non-empty; a provider that could not load a table serves its fallback.
type Provider interface {
	Cards() []combat.Card
	Enemies() []enemy.Template
	Missions() []mission.Mission
	Events() []mission.Event
}

// Static is an in-memory Provider.
type Static struct {
	cards    []combat.Card
	enemies  []enemy.Template
	missions []mission.Mission
	events   []mission.Event
}

// NewStatic serves the given tables. An empty table is replaced by its built-in default.
func NewStatic(cards []combat.Card, enemies []enemy.Template, missions []mission.Mission, events []mission.Event) *Static {
	s := Defaults()
	if len(cards) > 0 {
		s.cards = cards
	}
	if len(enemies) > 0 {
		s.enemies = enemies
	}
	if len(missions) > 0 {
		s.missions = missions
	}
	if len(events) > 0 {
		s.events = events
	}
	return s
}

// Defaults serves only the hardcoded tables.
func Defaults() *Static {
	return &Static{
		cards:    combat.StarterCards(),
		enemies:  enemy.StarterEnemies(),
		missions: mission.StarterMissions(),
		events:   mission.StarterEvents(),
	}
}

func (s *Static) Cards() []combat.Card        { return s.cards }
func (s *Static) Enemies() []enemy.Template   { return s.enemies }
func (s *Static) Missions() []mission.Mission { return s.missions }
func (s *Static) Events() []mission.Event     { return s.events }
