// Package mission defines expedition contracts, generates their branching
// maps and walks a party through them.
package mission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/frontier/internal/game/kingdom"
)

// Type is the kind of contract; it sets the combat density of the map.
type Type string

const (
	Scout       Type = "Scout"
	Suppress    Type = "Suppress"
	Secure      Type = "Secure"
	Investigate Type = "Investigate"
)

// CombatChance is the probability that a middle node becomes a combat.
func (t Type) CombatChance() float64 {
	switch t {
	case Scout:
		return 0.25
	case Suppress:
		return 0.60
	case Secure:
		return 0.40
	case Investigate:
		return 0.20
	}
	return 0
}

// Valid reports whether t is a known mission type.
func (t Type) Valid() bool { return t.CombatChance() > 0 }

// FinalNode is the node type that closes a map of this mission type.
func (t Type) FinalNode() NodeType {
	if t == Suppress {
		return NodeBoss
	}
	return NodeEvent
}

// Mission is a static contract loaded from the mission table.
type Mission struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Description     string `json:"description" yaml:"description"`
	Type            Type   `json:"mission_type" yaml:"mission_type"`
	RegionID        string `json:"region_id" yaml:"region_id"`
	Length          int    `json:"length" yaml:"length"`
	Difficulty      int    `json:"difficulty" yaml:"difficulty"`
	RewardSupplies  int    `json:"reward_supplies" yaml:"reward_supplies"`
	RewardKnowledge int    `json:"reward_knowledge" yaml:"reward_knowledge"`
	RewardInfluence int    `json:"reward_influence" yaml:"reward_influence"`
	BaseStress      int    `json:"base_stress" yaml:"base_stress"`
	// RewardCard, when set, is learned by every survivor of a victory.
	RewardCard        string                    `json:"reward_card,omitempty" yaml:"reward_card"`
	UnlockRequirement kingdom.UnlockRequirement `json:"unlock_requirement" yaml:"unlock_requirement"`
}

// Validate checks that the mission can generate a map.
//
// Postcondition: Returns nil if valid, or an error listing every violation.
func (m Mission) Validate() error {
	var errs []string
	if m.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if m.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if !m.Type.Valid() {
		errs = append(errs, fmt.Sprintf("mission_type must be one of [Scout, Suppress, Secure, Investigate], got %q", m.Type))
	}
	if m.Length < 0 {
		errs = append(errs, fmt.Sprintf("length must be >= 0, got %d", m.Length))
	}
	if m.Difficulty < 0 {
		errs = append(errs, fmt.Sprintf("difficulty must be >= 0, got %d", m.Difficulty))
	}
	if len(errs) > 0 {
		return fmt.Errorf("mission %q: %w", m.ID, errors.New(strings.Join(errs, "; ")))
	}
	return nil
}

// CombatDifficulty is the threat ceiling for enemies met on this mission.
// Scouting is gentler and suppression harsher than the listed difficulty.
func (m Mission) CombatDifficulty() int {
	switch m.Type {
	case Scout:
		return max(m.Difficulty-1, 1)
	case Suppress:
		return m.Difficulty + 1
	}
	return m.Difficulty
}

// Rewards returns the resources paid on success.
func (m Mission) Rewards() kingdom.Rewards {
	return kingdom.Rewards{Supplies: m.RewardSupplies, Knowledge: m.RewardKnowledge, Influence: m.RewardInfluence}
}

// StarterMissions is the hardcoded mission table used when content is missing.
func StarterMissions() []Mission {
	return []Mission{
		{
			ID:              "scout_dark_woods",
			Name:            "Scout the Dark Woods",
			Description:     "Map the forest edge. Avoid direct confrontation if possible.",
			Type:            Scout,
			RegionID:        "dark_woods",
			Length:          5,
			Difficulty:      1,
			RewardSupplies:  10,
			RewardKnowledge: 15,
			BaseStress:      8,
		},
		{
			ID:              "suppress_beasts",
			Name:            "Suppress Forest Beasts",
			Description:     "Clear the creatures blocking the main road.",
			Type:            Suppress,
			RegionID:        "dark_woods",
			Length:          6,
			Difficulty:      2,
			RewardSupplies:  20,
			RewardKnowledge: 5,
			RewardInfluence: 10,
			BaseStress:      15,
		},
	}
}
