package model_test

import (
	"testing"

	"github.com/dasdy/foamslides/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		spans []model.Span
		want  []model.Segment
	}{
		{
			name: "no spans",
			text: "plain",
			want: []model.Segment{{Text: "plain", Color: model.White}},
		},
		{
			name:  "prefix bold and coloured",
			text:  "1• A",
			spans: []model.Span{{Match: "1•", Color: model.TealA, Bold: true}},
			want: []model.Segment{
				{Text: "1•", Color: model.TealA, Bold: true},
				{Text: " A", Color: model.White},
			},
		},
		{
			name:  "every occurrence",
			text:  "x-y-x",
			spans: []model.Span{{Match: "x", Color: model.RedC}},
			want: []model.Segment{
				{Text: "x", Color: model.RedC},
				{Text: "-y-", Color: model.White},
				{Text: "x", Color: model.RedC},
			},
		},
		{
			name: "overlapping spans merge",
			text: "Challenge 1: must",
			spans: []model.Span{
				{Match: "Challenge 1:", Bold: true},
				{Match: "Challenge 1:", Color: model.RedC},
			},
			want: []model.Segment{
				{Text: "Challenge 1:", Color: model.RedC, Bold: true},
				{Text: " must", Color: model.White},
			},
		},
		{
			name:  "missing match is ignored",
			text:  "abc",
			spans: []model.Span{{Match: "zzz", Bold: true}, {Match: ""}},
			want:  []model.Segment{{Text: "abc", Color: model.White}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Segments(tt.text, tt.spans, model.White))
		})
	}
}

func TestSegments_Empty(t *testing.T) {
	assert.Nil(t, model.Segments("", nil, model.White))
}

func TestTheme_Validate(t *testing.T) {
	require.NoError(t, model.DefaultTheme().Validate())

	tests := []struct {
		name   string
		mutate func(*model.Theme)
	}{
		{"zero size", func(th *model.Theme) { th.Sizes.Small = 0 }},
		{"negative metric", func(th *model.Theme) { th.Metrics.CharWidth = -1 }},
		{"negative buff", func(th *model.Theme) { th.Buff = -0.1 }},
		{"zero tab width", func(th *model.Theme) { th.Code.TabWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := model.DefaultTheme()
			tt.mutate(&th)
			assert.ErrorIs(t, th.Validate(), model.ErrInvalidTheme)
		})
	}
}

func TestTheme_IsAValue(t *testing.T) {
	a := model.DefaultTheme()
	b := a
	b.Main = model.RedC

	assert.Equal(t, model.TealA, a.Main)
	assert.InDelta(t, 16.0/48, a.Em(16), 1e-9)
}
