package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dasdy/foamslides/db"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/present"
	"github.com/dasdy/foamslides/scene"
)

var errBadIndex = errors.New("bad slide index")

type Navigator interface {
	Current() int
	Total() int
	Next() int
	Prev() int
	First() int
	Last() int
	Goto(index int) error
}

type SlideRenderer interface {
	Theme() model.Theme
	RenderSlide(ctx context.Context, s scene.Slide) ([]byte, error)
}

// ServerHandler holds all dependencies needed for the web server handlers.
// Cache, Storage and Tracker are optional.
type ServerHandler struct {
	Nav      Navigator
	Slides   *present.SlideSet
	Renderer SlideRenderer
	Cache    db.Cache
	Storage  db.Storage
	Tracker  db.Tracker
	// RefreshSeconds is how often a following page reloads.
	RefreshSeconds int
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// renderPage writes component, or a 500 when it fails to render.
func renderPage(component templ.Component, w http.ResponseWriter) {
	if err := SafeRenderTemplate(component, w); err != nil {
		slog.Error("Failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// slideIndex reads the "index" query parameter and checks it against the
// number of slides.
func (s *ServerHandler) slideIndex(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("index")

	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadIndex, raw)
	}

	if total := s.Slides.Len(); index < 0 || index >= total {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", errBadIndex, index, total)
	}

	return index, nil
}

// slideAt reads the "index" query parameter and returns that slide. The
// range check and the lookup happen together, so a deck shrinking under a
// rebuild gives errBadIndex instead of an empty slide.
func (s *ServerHandler) slideAt(r *http.Request) (scene.Slide, int, error) {
	raw := r.URL.Query().Get("index")

	index, err := strconv.Atoi(raw)
	if err != nil {
		return scene.Slide{}, 0, fmt.Errorf("%w: %q", errBadIndex, raw)
	}

	slide, ok := s.Slides.At(index)
	if !ok {
		return scene.Slide{}, index, fmt.Errorf("%w: %d not in [0, %d)", errBadIndex, index, s.Slides.Len())
	}

	return slide, index, nil
}

func following(r *http.Request) bool {
	return r.URL.Query().Get("follow") == "1"
}
