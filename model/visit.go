package model

import (
	"time"
)

// SlideVisit records that a slide was shown.
type SlideVisit struct {
	Slide     int
	Name      string
	Timestamp time.Time
}

type SlideStat struct {
	Slide int
	Name  string
	Count int
	Last  time.Time
}

// Transition counts how often slide To was shown right after slide From.
type Transition struct {
	From  int
	To    int
	Count int
}
