// Package analysis computes statistics over recorded trainer attempts.
package analysis

import (
	"github.com/SeamusWaldron/cubesim"
)

// AttemptSummary contains statistics for a single attempt.
type AttemptSummary struct {
	TotalMoves      int     `json:"total_moves"`
	SimplifiedMoves int     `json:"simplified_moves"`
	Efficiency      float64 `json:"efficiency"`
	Rotations       int     `json:"rotations"`
	Undos           int     `json:"undos"`
	Solved          bool    `json:"solved"`
}

// Summarize computes statistics for one attempt's moves.
func Summarize(moves string, solved bool) AttemptSummary {
	parsed := parseMoves(moves)
	simplified := parseMoves(cubesim.Simplify(moves))

	s := AttemptSummary{
		TotalMoves:      len(parsed),
		SimplifiedMoves: len(simplified),
		Efficiency:      CalculateEfficiency(len(parsed), len(simplified)),
		Rotations:       CountRotations(parsed),
		Undos:           CountUndos(parsed),
		Solved:          solved,
	}
	return s
}

// CalculateEfficiency returns simplified/total, or 1 for an empty attempt.
func CalculateEfficiency(total, simplified int) float64 {
	if total == 0 {
		return 1
	}
	return float64(simplified) / float64(total)
}

// CountRotations counts whole-cube rotations.
func CountRotations(moves []cubesim.Move) int {
	n := 0
	for _, m := range moves {
		if m.IsRotation() {
			n++
		}
	}
	return n
}

// CountUndos counts moves immediately followed by their inverse.
func CountUndos(moves []cubesim.Move) int {
	n := 0
	for i := 1; i < len(moves); i++ {
		if moves[i] == moves[i-1].Inverse() {
			n++
		}
	}
	return n
}

// Aggregate holds totals across many attempts.
type Aggregate struct {
	Attempts       int     `json:"attempts"`
	Solved         int     `json:"solved"`
	SolveRate      float64 `json:"solve_rate"`
	AvgMoves       float64 `json:"avg_moves"`
	AvgEfficiency  float64 `json:"avg_efficiency"`
	BestSolveMoves int     `json:"best_solve_moves,omitempty"`
}

// AggregateSummaries combines per-attempt summaries.
func AggregateSummaries(summaries []AttemptSummary) Aggregate {
	var agg Aggregate
	agg.Attempts = len(summaries)
	if agg.Attempts == 0 {
		return agg
	}

	var totalMoves int
	var totalEff float64
	for _, s := range summaries {
		totalMoves += s.TotalMoves
		totalEff += s.Efficiency
		if s.Solved {
			agg.Solved++
			if agg.BestSolveMoves == 0 || s.TotalMoves < agg.BestSolveMoves {
				agg.BestSolveMoves = s.TotalMoves
			}
		}
	}

	agg.SolveRate = float64(agg.Solved) / float64(agg.Attempts)
	agg.AvgMoves = float64(totalMoves) / float64(agg.Attempts)
	agg.AvgEfficiency = totalEff / float64(agg.Attempts)
	return agg
}
