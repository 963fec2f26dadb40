package dice_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/frontier/internal/game/dice"
)

func TestCryptoSource_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 200; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(-1) })
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(99)
	b := dice.NewSeededSource(99)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000), "draw %d diverged", i)
	}
}

func TestSequenceSource_CyclesAndWraps(t *testing.T) {
	src := dice.NewSequenceSource(1, 7, -1)
	assert.Equal(t, 1, src.Intn(5))
	assert.Equal(t, 2, src.Intn(5)) // 7 % 5
	assert.Equal(t, 4, src.Intn(5)) // -1 wraps to 4
	assert.Equal(t, 1, src.Intn(5))
}

func TestChance_Bounds(t *testing.T) {
	src := dice.NewSequenceSource(9999)
	assert.False(t, dice.Chance(src, 0))
	assert.True(t, dice.Chance(src, 1))
	assert.False(t, dice.Chance(src, 0.5))
	assert.True(t, dice.Chance(dice.NewSequenceSource(0), 0.01))
}

func TestRange_Inclusive(t *testing.T) {
	assert.Equal(t, 3, dice.Range(dice.NewSequenceSource(0), 3, 5))
	assert.Equal(t, 5, dice.Range(dice.NewSequenceSource(2), 3, 5))
}

func TestPick_Empty(t *testing.T) {
	_, ok := dice.Pick[int](dice.NewSequenceSource(), nil)
	assert.False(t, ok)
}

func TestRoller_LogsAndDelegates(t *testing.T) {
	r := dice.NewLoggedRoller(dice.NewSequenceSource(4), zap.NewNop())
	assert.Equal(t, 4, r.Intn(10))
	assert.True(t, r.Chance("test", 1))
}

func TestRoll_LogsPurposeOnlyThroughRoller(t *testing.T) {
	assert.True(t, dice.Roll(dice.NewSequenceSource(0), "plain", 0.5))
	assert.False(t, dice.Roll(dice.NewSequenceSource(9999), "plain", 0.5))

	core, logs := observer.New(zap.DebugLevel)
	r := dice.NewLoggedRoller(dice.NewSequenceSource(0), zap.New(core))
	assert.True(t, dice.Roll(r, "ambush", 0.5))
	entries := logs.FilterMessage("chance roll").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ambush", entries[0].ContextMap()["purpose"])
	assert.Zero(t, logs.FilterMessage("random draw").Len())
}

func TestPropertyShufflePreservesElements(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		in := rapid.SliceOf(rapid.IntRange(0, 50)).Draw(t, "in")
		out := append([]int(nil), in...)
		dice.Shuffle(dice.NewSeededSource(seed), out)
		sort.Ints(in)
		sort.Ints(out)
		if len(in) != len(out) {
			t.Fatalf("length changed: %d -> %d", len(in), len(out))
		}
		for i := range in {
			if in[i] != out[i] {
				t.Fatalf("multiset changed at %d", i)
			}
		}
	})
}

func TestPropertySampleDistinct(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		n := rapid.IntRange(0, 10).Draw(t, "n")
		k := rapid.IntRange(0, 12).Draw(t, "k")
		pool := make([]int, n)
		for i := range pool {
			pool[i] = i
		}
		got := dice.Sample(dice.NewSeededSource(seed), pool, k)
		want := k
		if want > n {
			want = n
		}
		if len(got) != want {
			t.Fatalf("len=%d want %d", len(got), want)
		}
		seen := map[int]bool{}
		for _, v := range got {
			if seen[v] {
				t.Fatalf("duplicate %d", v)
			}
			seen[v] = true
		}
	})
}
