package deck_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/dasdy/foamslides/assets"
	"github.com/dasdy/foamslides/deck"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
	"github.com/stretchr/testify/require"
)

// CountingPlayer records calls without touching any scene.
type CountingPlayer struct {
	Plays      [][]scene.Animation
	Resets     [][]*model.Object
	Boundaries []string
}

func (p *CountingPlayer) Play(anims ...scene.Animation) {
	p.Plays = append(p.Plays, anims)
}

func (p *CountingPlayer) Reset(allow ...*model.Object) {
	p.Resets = append(p.Resets, allow)
}

func (p *CountingPlayer) NextSlide(name string) {
	p.Boundaries = append(p.Boundaries, name)
}

func (p *CountingPlayer) Err() error { return nil }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))

	return buf.Bytes()
}

// talkAssets holds a small stand-in for every picture the talk shows.
func talkAssets(t *testing.T) fstest.MapFS {
	t.Helper()

	fsys := fstest.MapFS{
		assets.UserCircle: {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24"></svg>`)},
	}

	for _, name := range []string{assets.Logo, assets.FoamUTQR, assets.BlastAMR, assets.Reflections, assets.SmartSim} {
		fsys[name] = &fstest.MapFile{Data: pngBytes(t, 540, 270)}
	}

	return fsys
}

func testConfig(t *testing.T) deck.Config {
	t.Helper()

	return deck.Config{
		Theme:  model.DefaultTheme(),
		Assets: assets.NewResolver(talkAssets(t)),
	}
}
