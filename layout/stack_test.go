package layout_test

import (
	"testing"

	"github.com/dasdy/foamslides/layout"
	"github.com/dasdy/foamslides/model"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestStack(t *testing.T) {
	anchor := model.Box{Min: model.Vec{X: -2, Y: 1}, Max: model.Vec{X: 3, Y: 2}}

	tests := []struct {
		name     string
		heights  []float64
		distance float64
		buff     float64
		want     []model.Vec
	}{
		{
			name:     "empty",
			heights:  nil,
			distance: 1,
			buff:     0.25,
			want:     nil,
		},
		{
			name:     "single block",
			heights:  []float64{0.5},
			distance: 2,
			buff:     0.25,
			want:     []model.Vec{{X: -2, Y: 0.5}},
		},
		{
			name:     "three blocks of different height",
			heights:  []float64{0.5, 1, 0.25},
			distance: 1.5,
			buff:     0.25,
			want: []model.Vec{
				{X: -2, Y: 0.625},
				{X: -2, Y: -0.125},
				{X: -2, Y: -1.375},
			},
		},
		{
			name:     "zero buffer packs blocks tightly",
			heights:  []float64{1, 1},
			distance: 1,
			buff:     0,
			want:     []model.Vec{{X: -2, Y: 1}, {X: -2, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.Stack(anchor, tt.heights, tt.distance, tt.buff)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Stack() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStack_BlocksNeverOverlap(t *testing.T) {
	heights := []float64{0.3, 0.9, 0.1, 0.4, 0.4}
	pos := layout.Stack(model.PointBox(model.Origin), heights, 1, 0.25)

	for i := 1; i < len(pos); i++ {
		prevBottom := pos[i-1].Y - heights[i-1]
		assert.Less(t, pos[i].Y, prevBottom, "block %d must start below block %d", i, i-1)
		assert.InDelta(t, pos[i-1].X, pos[i].X, 1e-9, "left edges must coincide")
	}
}

func TestIndentOffsets(t *testing.T) {
	tests := []struct {
		name    string
		indents []float64
	}{
		{"empty", nil},
		{"single", []float64{0.7}},
		{"increasing", []float64{0, 0.5, 1, 1.5}},
		{"negative deltas", []float64{1, 0.5, 2, -0.5, 0}},
		{"negative start", []float64{-1, -3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.IndentOffsets(tt.indents)
			// Accumulated deltas telescope back to the absolute indent.
			if diff := cmp.Diff(tt.indents, got, approx, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("IndentOffsets() mismatch (-want +got):\n%s", diff)
			}

			for i := 1; i < len(got); i++ {
				assert.InDelta(t, got[i-1]+(tt.indents[i]-tt.indents[i-1]), got[i], 1e-9)
			}
		})
	}
}
