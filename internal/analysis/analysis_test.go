package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
)

func TestMineNGrams(t *testing.T) {
	sources := map[string]string{
		"a": cubesim.SexyMove + cubesim.SexyMove + "F",
		"b": "D" + cubesim.SexyMove,
	}

	report := MineNGrams(sources, 4, 5, 3)

	fours := report.TopNGrams[4]
	require.NotEmpty(t, fours)
	assert.Equal(t, "RUru", fours[0].Sequence)
	assert.Equal(t, 3, fours[0].Count)
	require.Len(t, fours[0].Occurrences, 3)
	assert.Equal(t, NGramOccurrence{Source: "a", StartIndex: 0}, fours[0].Occurrences[0])
	assert.Equal(t, NGramOccurrence{Source: "b", StartIndex: 1}, fours[0].Occurrences[2])

	for _, ng := range report.TopNGrams[5] {
		assert.GreaterOrEqual(t, ng.Count, 2)
		assert.Len(t, ng.Sequence, 5)
	}
}

func TestMineNGramsShortInput(t *testing.T) {
	report := MineNGrams(map[string]string{"a": "RU"}, 4, 6, 5)
	assert.Empty(t, report.TopNGrams)
}

func TestRollingHashMatchesForEqualWindows(t *testing.T) {
	a := NewRollingHash(3)
	b := NewRollingHash(3)

	for _, m := range []cubesim.Move{cubesim.F, cubesim.U, cubesim.R, cubesim.U} {
		a.Roll(m)
	}
	for _, m := range []cubesim.Move{cubesim.U, cubesim.R, cubesim.U} {
		b.Roll(m)
	}

	require.True(t, a.Ready())
	assert.Equal(t, "URU", cubesim.FormatMoves(a.Window()))
	assert.Equal(t, b.Hash(), a.Hash())
}

func TestSummarize(t *testing.T) {
	s := Summarize("RRRUuxX", true)
	assert.Equal(t, 7, s.TotalMoves)
	assert.Equal(t, 1, s.SimplifiedMoves)
	assert.InDelta(t, 1.0/7.0, s.Efficiency, 1e-9)
	assert.Equal(t, 2, s.Rotations)
	assert.Equal(t, 2, s.Undos)
	assert.True(t, s.Solved)

	empty := Summarize("", false)
	assert.Equal(t, 1.0, empty.Efficiency)
}

func TestAggregateSummaries(t *testing.T) {
	agg := AggregateSummaries([]AttemptSummary{
		{TotalMoves: 10, Efficiency: 1, Solved: true},
		{TotalMoves: 6, Efficiency: 0.5, Solved: true},
		{TotalMoves: 20, Efficiency: 0.75},
	})

	assert.Equal(t, 3, agg.Attempts)
	assert.Equal(t, 2, agg.Solved)
	assert.InDelta(t, 2.0/3.0, agg.SolveRate, 1e-9)
	assert.InDelta(t, 12.0, agg.AvgMoves, 1e-9)
	assert.InDelta(t, 0.75, agg.AvgEfficiency, 1e-9)
	assert.Equal(t, 6, agg.BestSolveMoves)

	assert.Equal(t, Aggregate{}, AggregateSummaries(nil))
}

func hashOf(moves []cubesim.Move) uint64 {
	rh := NewRollingHash(len(moves))
	for _, m := range moves {
		rh.Roll(m)
	}
	return rh.Hash()
}

func TestCountNGramsKeysByHash(t *testing.T) {
	sexy := []cubesim.Move{cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime}
	moves := append(append([]cubesim.Move{}, sexy...), sexy...)

	counts := make(map[uint64]*ngramEntry)
	countNGrams(counts, "a", moves, 4)

	entry, ok := counts[hashOf(sexy)]
	require.True(t, ok)
	assert.Equal(t, sexy, entry.moves)
	assert.Equal(t, 2, entry.count)
	assert.Len(t, counts, 4) // RUru, UruR, ruRU, uRUr
}

func TestCountNGramsIgnoresHashCollision(t *testing.T) {
	window := []cubesim.Move{cubesim.F, cubesim.F}
	other := []cubesim.Move{cubesim.D, cubesim.D}

	// Plant a different sequence under the hash FF will produce.
	counts := map[uint64]*ngramEntry{
		hashOf(window): {moves: other, count: 1},
	}
	countNGrams(counts, "a", window, 2)

	require.Len(t, counts, 1)
	entry := counts[hashOf(window)]
	assert.Equal(t, other, entry.moves)
	assert.Equal(t, 1, entry.count)
}
