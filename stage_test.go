package cubesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectStage(t *testing.T) {
	tests := []struct {
		name string
		ops  string
		want Stage
	}{
		{"solved", "", StageSolved},
		{"rotated solved", "XYz", StageSolved},
		{"up turn", "U", StageScrambled},
		{"right turn", "R", StageScrambled},
		{"cross only", "XXRUruXX", StageCross},
		{"first layer", "XXURurufUFXX", StageFirstLayer},
		{"second layer", "XXFRUrufXX", StageSecondLayer},
		{"down turn", "D", StageLastCross},
		{"sune on last layer", "XXRUrURUUrXX", StageLastCross},
		{"double sune", "XXRUrURUUrRUrURUUrXX", StageCornersPositioned},
		{"edge cycle", "XXRuRURURuruRRXX", StageCornersOriented},
		{"upside down", "XXD", StageLastCross},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCube().Do(tt.ops).DetectStage())
		})
	}
}

func TestStageOrdering(t *testing.T) {
	c := NewCube().Do("XXRuRURURuruRRXX")

	assert.True(t, c.IsCrossComplete())
	assert.True(t, c.IsFirstLayerComplete())
	assert.True(t, c.IsSecondLayerComplete())
	assert.True(t, c.IsLastCrossComplete())
	assert.True(t, c.AreCornersPositioned())
	assert.True(t, c.AreCornersOriented())
	assert.False(t, c.IsSolved())
	assert.Greater(t, StageSolved, c.DetectStage())
}

func TestStageNames(t *testing.T) {
	for s := StageScrambled; s <= StageSolved; s++ {
		assert.NotEqual(t, "unknown", s.String())
		assert.NotEqual(t, "Unknown", s.DisplayName())
	}
	assert.Equal(t, "unknown", Stage(99).String())
}
