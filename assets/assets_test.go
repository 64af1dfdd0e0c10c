package assets_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/dasdy/foamslides/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))

	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()

	return fstest.MapFS{
		"images/nhr-tu-logo.png": {Data: pngBytes(t, 300, 120)},
		"images/user-circle.svg": {Data: []byte(`<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="24px" height="24" viewBox="0 0 48 48"><circle r="5"/></svg>`)},
		"images/viewbox.svg": {Data: []byte(`<svg viewBox="0 0 64,32"></svg>`)},
		"images/nosize.svg":  {Data: []byte(`<svg></svg>`)},
		"images/broken.png":  {Data: []byte("not a png")},
	}
}

func TestResolver_ImageSize(t *testing.T) {
	r := assets.NewResolver(testFS(t))

	tests := []struct {
		name  string
		path  string
		wantW int
		wantH int
	}{
		{"png header", "images/nhr-tu-logo.png", 300, 120},
		{"dot slash prefix", "./images/nhr-tu-logo.png", 300, 120},
		{"svg attributes", "images/user-circle.svg", 24, 24},
		{"svg view box", "images/viewbox.svg", 64, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := r.ImageSize(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestResolver_ImageSizeErrors(t *testing.T) {
	r := assets.NewResolver(testFS(t))

	_, _, err := r.ImageSize("images/missing.png")
	require.ErrorIs(t, err, assets.ErrMissing)
	assert.Contains(t, err.Error(), "images/missing.png")

	_, _, err = r.ImageSize("images/broken.png")
	require.ErrorIs(t, err, assets.ErrUnsupported)

	_, _, err = r.ImageSize("images/nosize.svg")
	require.ErrorIs(t, err, assets.ErrUnsupported)
}

func TestResolver_Missing(t *testing.T) {
	r := assets.NewResolver(testFS(t))

	assert.True(t, r.Exists("images/nhr-tu-logo.png"))
	assert.False(t, r.Exists("images"), "directories are not assets")

	missing := r.Missing(assets.Required()...)
	assert.Equal(t, []string{
		assets.FoamUTQR,
		assets.BlastAMR,
		assets.Reflections,
		assets.SmartSim,
	}, missing)
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"./images/a.png", "images/a.png"},
		{"images/a.png", "images/a.png"},
		{"/images/../images/a.png", "images/a.png"},
		{"../../etc/passwd", "etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, assets.Clean(tt.in))
		})
	}
}

func TestDir(t *testing.T) {
	_, err := assets.Dir(t.TempDir())
	require.NoError(t, err)

	_, err = assets.Dir("/definitely/not/here")
	require.Error(t, err)
}
