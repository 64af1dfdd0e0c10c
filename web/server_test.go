package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/present"
	"github.com/dasdy/foamslides/scene"
	"github.com/dasdy/foamslides/web"
	"github.com/dasdy/foamslides/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct{}

func (stubRenderer) Theme() model.Theme { return model.DefaultTheme() }

func (stubRenderer) RenderSlide(_ context.Context, s scene.Slide) ([]byte, error) {
	return []byte("<svg>" + s.Name + "</svg>"), nil
}

func buildServer(t *testing.T, dev bool) (http.Handler, *present.Navigator) {
	t.Helper()

	slides := []scene.Slide{{Index: 0, Name: "intro"}, {Index: 1, Name: "cycle"}}

	nav, err := present.NewNavigator(len(slides))
	require.NoError(t, err)

	handler := &routes.ServerHandler{
		Nav:      nav,
		Slides:   present.NewSlideSet(slides),
		Renderer: stubRenderer{},
	}
	assets := fstest.MapFS{
		"images/logo.svg": {Data: []byte(`<svg width="10" height="10"/>`)},
	}

	return web.BuildServer(handler, assets, dev), nav
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))

	return w
}

func TestBuildServer(t *testing.T) {
	tests := []struct {
		method       string
		target       string
		expectedCode int
		expectedBody string
	}{
		{http.MethodGet, "/", http.StatusOK, `src="/svg?index=0"`},
		{http.MethodGet, "/slide?index=1", http.StatusOK, "2/2 cycle"},
		{http.MethodGet, "/slide?index=2", http.StatusBadRequest, ""},
		{http.MethodGet, "/svg?index=1", http.StatusOK, "<svg>cycle</svg>"},
		{http.MethodGet, "/assets/images/logo.svg", http.StatusOK, "<svg"},
		{http.MethodGet, "/assets/images/missing.png", http.StatusNotFound, ""},
		{http.MethodGet, "/nope", http.StatusNotFound, ""},
		{http.MethodGet, "/next", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/stats", http.StatusNotFound, ""},
	}

	h, _ := buildServer(t, false)

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := serve(h, tt.method, tt.target)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.Empty(t, w.Header().Get("Cache-Control"))
		})
	}
}

func TestBuildServer_Navigation(t *testing.T) {
	h, nav := buildServer(t, false)

	w := serve(h, http.MethodPost, "/next?follow=1")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?follow=1", w.Header().Get("Location"))
	assert.Equal(t, 1, nav.Current())

	w = serve(h, http.MethodGet, "/?follow=1")
	assert.Contains(t, w.Body.String(), `src="/svg?index=1"`)

	w = serve(h, http.MethodPost, "/goto?index=0")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 0, nav.Current())
}

func TestBuildServer_DevModeDisablesCaching(t *testing.T) {
	h, _ := buildServer(t, true)

	for _, target := range []string{"/", "/svg?index=0", "/assets/images/logo.svg"} {
		w := serve(h, http.MethodGet, target)

		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"), target)
	}
}

func TestAssetURL(t *testing.T) {
	assert.True(t, strings.HasPrefix(web.AssetURL("images/qr.png"), "/assets/"))
	assert.Equal(t, "/assets/images/qr.png", web.AssetURL("images/qr.png"))
}
