package foamslides

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dasdy/foamslides/assets"
	"github.com/dasdy/foamslides/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAssets fills dir with every image the deck loads.
func writeAssets(t *testing.T, dir string) {
	t.Helper()

	for _, name := range assets.Required() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

		var data []byte

		if strings.HasSuffix(name, ".svg") {
			data = []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24"><circle r="5"/></svg>`)
		} else {
			var buf bytes.Buffer
			require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 320, 180))))
			data = buf.Bytes()
		}

		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
}

// useAssets points the command globals at a fresh asset directory for the
// duration of the test.
func useAssets(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	writeAssets(t, dir)

	oldAssets, oldStepwise, oldOut := assetsDir, stepwise, outDir
	t.Cleanup(func() { assetsDir, stepwise, outDir = oldAssets, oldStepwise, oldOut })

	assetsDir, stepwise = dir, false

	return dir
}

func TestBuildSlides_RenderEverySlide(t *testing.T) {
	useAssets(t)

	slides, cfg, err := buildSlides(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, slides)

	renderer, err := newRenderer(cfg.Theme, web.AssetURL)
	require.NoError(t, err)

	for _, s := range slides {
		svg, err := renderer.RenderSlide(t.Context(), s)
		require.NoError(t, err, "slide %d %s", s.Index, s.Name)
		assert.Contains(t, string(svg), "<svg", "slide %d", s.Index)
	}
}

func TestBuildSlides_MissingAssets(t *testing.T) {
	dir := useAssets(t)
	require.NoError(t, os.Remove(filepath.Join(dir, filepath.FromSlash(assets.FoamUTQR))))

	_, _, err := buildSlides(t.Context())
	require.ErrorIs(t, err, assets.ErrMissing)
}

func TestWriteSlide_UsesCache(t *testing.T) {
	useAssets(t)

	slides, cfg, err := buildSlides(t.Context())
	require.NoError(t, err)

	renderer, err := newRenderer(cfg.Theme, web.AssetURL)
	require.NoError(t, err)

	tmp := t.TempDir()
	outDir = filepath.Join(tmp, "slides")
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	storage, err := openCache(filepath.Join(tmp, "cache.sqlite"))
	require.NoError(t, err)
	t.Cleanup(storage.Close)

	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())

	hit, err := writeSlide(cmd, renderer, storage, slides[0])
	require.NoError(t, err)
	assert.False(t, hit)

	written, err := os.ReadFile(filepath.Join(outDir, "slide-000.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "<svg")

	hit, err = writeSlide(cmd, renderer, storage, slides[0])
	require.NoError(t, err)
	assert.True(t, hit, "second write comes from the cache")
}

func TestOpenCache_EmptyPath(t *testing.T) {
	storage, err := openCache("")
	require.NoError(t, err)
	assert.Nil(t, storage)
}
