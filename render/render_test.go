package render_test

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/render"
	"github.com/dasdy/foamslides/render/highlight"
	"github.com/dasdy/foamslides/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTransform(t *testing.T) {
	tests := []struct {
		name  string
		point model.Vec
		want  string
	}{
		{
			name:  "origin is the frame centre",
			point: model.Origin,
			want:  "translate(960.00, 540.00)",
		},
		{
			name:  "up is towards the top",
			point: model.Vec{X: 0, Y: 4},
			want:  "translate(960.00, 0.00)",
		},
		{
			name:  "bottom left corner",
			point: model.Vec{X: -model.FrameWidth / 2, Y: -model.FrameHeight / 2},
			want:  "translate(0.00, 1080.00)",
		},
		{
			name:  "fractional",
			point: model.Vec{X: 1.5, Y: -0.5},
			want:  "translate(1162.50, 607.50)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render.ToTransform(tt.point); got != tt.want {
				t.Errorf("ToTransform() = %v, want %v", got, tt.want)
			}
		})
	}
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	h, err := highlight.New()
	require.NoError(t, err)

	r, err := render.New(model.DefaultTheme(), h)
	require.NoError(t, err)

	r.AssetURL = func(src string) string { return "/assets/" + src + "?v=1&x=2" }

	return r
}

func sampleObjects(f *model.Factory) []*model.Object {
	title := f.Text("2.3 foamUT <tests>", model.Bold("2.3")).ToEdge(model.UL, 0.5)
	c1 := f.Text("Make")
	box := f.Group(c1, f.SurroundingRect(c1, model.TealA, 0.3), f.BackgroundRect(c1, model.TealA, 0.3, 0.3))

	return []*model.Object{
		title,
		box,
		f.Arrow(model.Origin, model.Right, model.YellowC, 0.1),
		f.CurvedArrow(model.Left, model.Up, model.RedC),
		f.Line(model.UR, model.DL, model.RedC, 3),
		f.Polygon(model.Yellow, 0.1, model.Origin, model.Right, model.Up),
		f.Image("images/bamr.png", 2, 1),
		f.Code("#include \"a.H\"\nconst int x = 1;", "cpp"),
	}
}

func TestRender_ProducesValidSVG(t *testing.T) {
	r := newRenderer(t)
	f := model.NewFactory(model.DefaultTheme())

	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, sampleObjects(f)))

	out := buf.String()
	assert.Contains(t, out, `viewBox="0 0 1920 1080"`)
	assert.Contains(t, out, `fill="#222222"`, "background")
	assert.Contains(t, out, "&lt;tests&gt;", "text is escaped")
	assert.Contains(t, out, `font-weight="bold">2.3</tspan>`)
	assert.Contains(t, out, `href="/assets/images/bamr.png?v=1&amp;x=2"`)
	assert.Contains(t, out, " A ", "curved arrows are arcs")
	assert.Contains(t, out, `fill-opacity="0.3"`)
	assert.Contains(t, out, `#include`)
	assert.Contains(t, out, `fill="#006699"`, "keywords use the listing palette")

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)
	}
}

func TestRender_DrawingOrderFollowsObjects(t *testing.T) {
	r := newRenderer(t)
	f := model.NewFactory(model.DefaultTheme())
	first, second := f.Text("first"), f.Text("second")

	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, []*model.Object{second, first}))

	out := buf.String()
	assert.Less(t, strings.Index(out, `id="`+second.ID+`"`), strings.Index(out, `id="`+first.ID+`"`))
}

func TestRender_RejectsBrokenArrow(t *testing.T) {
	r := newRenderer(t)
	f := model.NewFactory(model.DefaultTheme())
	a := f.Arrow(model.Origin, model.Right, model.White, 0)
	a.Points = a.Points[:1]

	err := r.Render(context.Background(), io.Discard, []*model.Object{a})
	require.Error(t, err)
	assert.Contains(t, err.Error(), a.ID)
}

func TestKey(t *testing.T) {
	theme := model.DefaultTheme()
	build := func() scene.Slide {
		return scene.Slide{Index: 3, Objects: sampleObjects(model.NewFactory(theme))}
	}

	k1, err := render.Key(theme, build())
	require.NoError(t, err)
	k2, err := render.Key(theme, build())
	require.NoError(t, err)

	assert.Equal(t, k1, k2, "identical scenes share a key")
	assert.Len(t, k1, 64)

	moved := build()
	moved.Objects[0].Shift(model.Down)
	k3, err := render.Key(theme, moved)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	other := theme
	other.Background = model.White
	k4, err := render.Key(other, build())
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4)
}

func TestNew_UnknownStyle(t *testing.T) {
	theme := model.DefaultTheme()
	theme.Code.Style = "nope"

	_, err := render.New(theme, nil)
	require.Error(t, err)
}
