package routes

import (
	"fmt"
	"log/slog"
	"net/http"
)

func (s *ServerHandler) redirectAfterMove(w http.ResponseWriter, r *http.Request, index int) {
	target := fmt.Sprintf("/slide?index=%d", index)
	if following(r) {
		target = "/?follow=1"
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// MoveHandle applies a navigator move and sends the browser to the new slide.
func (s *ServerHandler) MoveHandle(move func(Navigator) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index := move(s.Nav)
		slog.Debug("Moved", "path", r.URL.Path, "index", index)

		s.redirectAfterMove(w, r, index)
	}
}

func (s *ServerHandler) NextHandle() http.HandlerFunc  { return s.MoveHandle(Navigator.Next) }
func (s *ServerHandler) PrevHandle() http.HandlerFunc  { return s.MoveHandle(Navigator.Prev) }
func (s *ServerHandler) FirstHandle() http.HandlerFunc { return s.MoveHandle(Navigator.First) }
func (s *ServerHandler) LastHandle() http.HandlerFunc  { return s.MoveHandle(Navigator.Last) }

// GotoHandle jumps to the slide given by the "index" parameter.
func (s *ServerHandler) GotoHandle(w http.ResponseWriter, r *http.Request) {
	index, err := s.slideIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err := s.Nav.Goto(index); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.redirectAfterMove(w, r, index)
}
