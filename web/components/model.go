package components

import (
	"time"

	"github.com/dasdy/foamslides/model"
)

type PageType string

const (
	PageTypeSlide PageType = "slide"
	PageTypeStats PageType = "stats"
)

// SlideContext is everything the slide page shows.
type SlideContext struct {
	Index int
	Total int
	Name  string
	// Follow makes the page track the navigator instead of a fixed slide.
	Follow bool
	// RefreshSeconds is how often a following page reloads.
	RefreshSeconds int
}

type StatRow struct {
	Slide       int
	Name        string
	Count       int
	Last        time.Time
	Transitions []model.Transition
}

type StatsContext struct {
	Rows     []StatRow
	MaxCount int
	Total    int
}
