package present

import (
	"sync"

	"github.com/dasdy/foamslides/scene"
)

// SlideSet holds the slides being presented. A rebuilt deck replaces them
// while readers keep going.
type SlideSet struct {
	stateLock sync.RWMutex
	slides    []scene.Slide
}

func NewSlideSet(slides []scene.Slide) *SlideSet {
	return &SlideSet{slides: slides}
}

func (s *SlideSet) Set(slides []scene.Slide) {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	s.slides = slides
}

func (s *SlideSet) All() []scene.Slide {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	return s.slides
}

func (s *SlideSet) At(index int) (scene.Slide, bool) {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	if index < 0 || index >= len(s.slides) {
		return scene.Slide{}, false
	}

	return s.slides[index], true
}

func (s *SlideSet) Len() int {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	return len(s.slides)
}

// Names returns the slide names by index.
func (s *SlideSet) Names() []string {
	s.stateLock.RLock()
	defer s.stateLock.RUnlock()

	names := make([]string, len(s.slides))
	for i, sl := range s.slides {
		names[i] = sl.Name
	}

	return names
}

// Name returns the name of the slide at index, or "" past the end.
func (s *SlideSet) Name(index int) string {
	sl, _ := s.At(index)

	return sl.Name
}
