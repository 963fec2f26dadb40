package kingdom_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/frontier/internal/game/dice"
	"github.com/cory-johannsen/frontier/internal/game/kingdom"
)

func TestNewState_Defaults(t *testing.T) {
	k := kingdom.NewState()
	assert.Equal(t, 1, k.Day)
	assert.Equal(t, kingdom.Stats{Gold: 100, Security: 30, Morale: 50, Supplies: 50, Knowledge: 10, Influence: 20}, k.Stats)
	assert.True(t, k.HasBuilt(kingdom.GuildHall))
	assert.False(t, k.HasBuilt(kingdom.Infirmary))
	assert.Equal(t, []string{kingdom.GuildHall}, k.BuiltIDs())
}

func TestConstruct(t *testing.T) {
	k := kingdom.NewState()
	require.NoError(t, k.Construct(kingdom.Infirmary))
	assert.True(t, k.HasBuilt(kingdom.Infirmary))
	assert.Equal(t, 50, k.Stats.Gold)
	assert.Equal(t, 30, k.Stats.Supplies)

	assert.True(t, errors.Is(k.Construct(kingdom.Infirmary), kingdom.ErrAlreadyBuilt))
	assert.True(t, errors.Is(k.Construct("moat"), kingdom.ErrUnknownBuilding))
}

func TestConstruct_InsufficientFundsLeavesStatsUnchanged(t *testing.T) {
	k := kingdom.NewState()
	before := k.Stats
	err := k.Construct(kingdom.Foundry) // 100 gold, 50 supplies: exactly affordable
	require.NoError(t, err)
	err = k.Construct(kingdom.Watchtowers)
	assert.True(t, errors.Is(err, kingdom.ErrInsufficientFunds))
	assert.Equal(t, before.Gold-100, k.Stats.Gold)
	assert.False(t, k.HasBuilt(kingdom.Watchtowers))
}

func TestCompleteMission_Idempotent(t *testing.T) {
	k := kingdom.NewState()
	k.CompleteMission("scout_dark_woods")
	k.CompleteMission("scout_dark_woods")
	assert.Equal(t, []string{"scout_dark_woods"}, k.CompletedMissions)
	assert.True(t, k.HasCompleted("scout_dark_woods"))
}

func TestUnlockRequirement(t *testing.T) {
	k := kingdom.NewState()

	none := kingdom.UnlockRequirement{}
	assert.True(t, none.IsMet(k))
	assert.Equal(t, "Available", none.Description())

	b := kingdom.UnlockRequirement{Type: kingdom.UnlockBuilding, Building: "guild_hall"}
	assert.True(t, b.IsMet(k))
	assert.Equal(t, "Requires: guild hall (Building)", b.Description())
	assert.False(t, kingdom.UnlockRequirement{Type: kingdom.UnlockBuilding, Building: kingdom.Chapel}.IsMet(k))

	kn := kingdom.UnlockRequirement{Type: kingdom.UnlockKnowledge, Amount: 25}
	assert.False(t, kn.IsMet(k))
	k.Stats.Knowledge = 25
	assert.True(t, kn.IsMet(k))
	assert.Equal(t, "Requires: 25 Knowledge", kn.Description())

	mc := kingdom.UnlockRequirement{Type: kingdom.UnlockMissionComplete, MissionID: "scout_dark_woods"}
	assert.False(t, mc.IsMet(k))
	k.CompleteMission("scout_dark_woods")
	assert.True(t, mc.IsMet(k))
	assert.Equal(t, `Requires: Complete "scout dark woods"`, mc.Description())
}

func TestRecordExpedition(t *testing.T) {
	k := kingdom.NewState()
	k.RecordExpedition("m1", kingdom.Victory, kingdom.Rewards{Supplies: 10, Knowledge: 15})
	assert.Equal(t, 120, k.Stats.Gold)
	assert.Equal(t, 60, k.Stats.Supplies)
	assert.Equal(t, 25, k.Stats.Knowledge)
	assert.Equal(t, 2, k.Day)
	assert.True(t, k.HasCompleted("m1"))

	k.RecordExpedition("m2", kingdom.Defeat, kingdom.Rewards{Supplies: 99})
	assert.Equal(t, 40, k.Stats.Morale)
	assert.Equal(t, 60, k.Stats.Supplies)
	assert.Equal(t, 3, k.Day)
	assert.False(t, k.HasCompleted("m2"))

	k.RecordExpedition("m3", kingdom.Retreat, kingdom.Rewards{})
	assert.Equal(t, 3, k.Day)
}

func TestTreatAndTavern(t *testing.T) {
	k := kingdom.NewState()
	a := kingdom.NewAdventurer("Ivan", kingdom.Soldier, kingdom.Male)
	a.HP = 20
	a.Stress = 40

	assert.True(t, errors.Is(k.Treat(a), kingdom.ErrBuildingRequired))
	assert.True(t, errors.Is(k.Tavern(a), kingdom.ErrBuildingRequired))

	require.NoError(t, k.Construct(kingdom.Infirmary))
	require.NoError(t, k.Construct(kingdom.Chapel))
	supplies := k.Stats.Supplies

	require.NoError(t, k.Treat(a))
	assert.Equal(t, 30, a.HP)
	require.NoError(t, k.Tavern(a))
	assert.Equal(t, 20, a.Stress)
	assert.Equal(t, supplies-20, k.Stats.Supplies)

	k.Stats.Supplies = 5
	assert.True(t, errors.Is(k.Treat(a), kingdom.ErrInsufficientFunds))
	assert.Equal(t, 30, a.HP)
}

func TestPropertySpendIsAllOrNothing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := kingdom.NewState()
		gold := rapid.IntRange(0, 200).Draw(t, "gold")
		supplies := rapid.IntRange(0, 100).Draw(t, "supplies")
		before := k.Stats
		err := k.Spend(gold, supplies)
		if err != nil {
			if k.Stats != before {
				t.Fatalf("failed spend changed stats: %+v -> %+v", before, k.Stats)
			}
			return
		}
		if k.Stats.Gold != before.Gold-gold || k.Stats.Supplies != before.Supplies-supplies {
			t.Fatalf("wrong deduction")
		}
		if k.Stats.Gold < 0 || k.Stats.Supplies < 0 {
			t.Fatalf("went negative: %+v", k.Stats)
		}
	})
}

func TestGenerateRecruits(t *testing.T) {
	rs := kingdom.GenerateRecruits(dice.NewSeededSource(3), 3)
	require.Len(t, rs, 3)
	assert.Equal(t, kingdom.Soldier, rs[0].Class)
	assert.Equal(t, kingdom.Scout, rs[1].Class)
	assert.Equal(t, kingdom.Healer, rs[2].Class)
	assert.Equal(t, 50, rs[0].Cost)
	assert.Equal(t, 40, rs[1].Cost)
	assert.Equal(t, 60, rs[2].Cost)
	for _, r := range rs {
		assert.NotEmpty(t, r.Name)
	}
	assert.Equal(t, 70, kingdom.Mystic.HireCost())
}

func TestHire(t *testing.T) {
	k := kingdom.NewState()
	r := kingdom.NewRoster()
	rc := kingdom.Recruit{Name: "Thea", Class: kingdom.Mystic, Gender: kingdom.Female, Cost: 70}

	a, err := rc.Hire(k, r)
	require.NoError(t, err)
	assert.Equal(t, 30, k.Stats.Gold)
	assert.Equal(t, 32, a.MaxHP)
	assert.Equal(t, "assets/images/characters/mystic_female.png", a.ImagePath)
	assert.Equal(t, 1, r.Len())

	_, err = rc.Hire(k, r)
	assert.True(t, errors.Is(err, kingdom.ErrInsufficientFunds))
	assert.Equal(t, 1, r.Len())
}

func TestHire_NeedsGuildHall(t *testing.T) {
	k := kingdom.NewState()
	b, ok := k.Building(kingdom.GuildHall)
	require.True(t, ok)
	b.Built = false

	_, err := kingdom.Recruit{Name: "X", Class: kingdom.Scout, Cost: 40}.Hire(k, kingdom.NewRoster())
	assert.True(t, errors.Is(err, kingdom.ErrBuildingRequired))
	assert.Equal(t, 100, k.Stats.Gold)
}
