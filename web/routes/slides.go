package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/foamslides/render"
	"github.com/dasdy/foamslides/scene"
	cs "github.com/dasdy/foamslides/web/components"
)

// BuildSlideContext describes the page for the slide at index.
func (s *ServerHandler) BuildSlideContext(index int, follow bool) cs.SlideContext {
	c := cs.SlideContext{
		Index:          index,
		Total:          s.Slides.Len(),
		Follow:         follow,
		RefreshSeconds: s.RefreshSeconds,
	}

	if slide, ok := s.Slides.At(index); ok {
		c.Name = slide.Name
	}

	return c
}

// CurrentHandle shows the slide the navigator is on.
func (s *ServerHandler) CurrentHandle(w http.ResponseWriter, r *http.Request) {
	c := s.BuildSlideContext(s.Nav.Current(), following(r))
	renderPage(cs.SlidePage(&c), w)
}

// SlideHandle shows the slide given by the "index" parameter.
func (s *ServerHandler) SlideHandle(w http.ResponseWriter, r *http.Request) {
	index, err := s.slideIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	c := s.BuildSlideContext(index, false)
	renderPage(cs.SlidePage(&c), w)
}

// SVGHandle returns the rendered slide, going through the cache when there
// is one.
func (s *ServerHandler) SVGHandle(w http.ResponseWriter, r *http.Request) {
	slide, index, err := s.slideAt(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	svg, err := s.renderCached(r, index, slide)
	if err != nil {
		slog.Error("Failed to render slide", "index", index, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")

	if _, err := w.Write(svg); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

func (s *ServerHandler) renderCached(r *http.Request, index int, slide scene.Slide) ([]byte, error) {
	if s.Cache == nil {
		return s.Renderer.RenderSlide(r.Context(), slide)
	}

	key, err := render.Key(s.Renderer.Theme(), slide)
	if err != nil {
		return nil, err
	}

	svg, ok, err := s.Cache.Get(key)
	if err != nil {
		slog.Warn("Render cache lookup failed", "index", index, "error", err)
	} else if ok {
		slog.Debug("Render cache hit", "index", index)

		return svg, nil
	}

	svg, err = s.Renderer.RenderSlide(r.Context(), slide)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Put(key, svg); err != nil {
		slog.Warn("Could not store rendered slide", "index", index, "error", err)
	}

	return svg, nil
}
