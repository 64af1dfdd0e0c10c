package db

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/dasdy/foamslides/model"
)

// TransitionCounter tracks which slide was shown right after which.
type TransitionCounter struct {
	last      int
	counts    map[int]map[int]int
	stateLock sync.RWMutex
}

func NewTransitionCounter() *TransitionCounter {
	return &TransitionCounter{
		last:   -1,
		counts: make(map[int]map[int]int),
	}
}

// NewTransitionCounterFromDb replays every stored visit into a new counter.
func NewTransitionCounterFromDb(storage Storage) (*TransitionCounter, error) {
	tracker := NewTransitionCounter()

	visits, err := storage.AllIterator()
	if err != nil {
		return nil, fmt.Errorf("could not load visits: %w", err)
	}

	tracker.initCounter(visits)

	return tracker, nil
}

func (tc *TransitionCounter) initCounter(visits iter.Seq[model.SlideVisit]) {
	tc.stateLock.Lock()
	defer tc.stateLock.Unlock()

	n := 0
	for v := range visits {
		tc.handleVisit(v.Slide)
		n++
	}

	slog.Debug("Transition counter initialised", "visits", n)
}

func (tc *TransitionCounter) HandleVisit(slide int) {
	tc.stateLock.Lock()
	defer tc.stateLock.Unlock()

	tc.handleVisit(slide)
}

func (tc *TransitionCounter) handleVisit(slide int) {
	if tc.last >= 0 && tc.last != slide {
		if _, exists := tc.counts[tc.last]; !exists {
			tc.counts[tc.last] = make(map[int]int)
		}

		tc.counts[tc.last][slide]++
	}

	tc.last = slide
}

// GatherTransitions returns the slides reached from slide, most frequent
// first.
func (tc *TransitionCounter) GatherTransitions(slide int) []model.Transition {
	tc.stateLock.RLock()
	defer tc.stateLock.RUnlock()

	counts := tc.counts[slide]
	result := make([]model.Transition, 0, len(counts))

	for to, n := range counts {
		result = append(result, model.Transition{From: slide, To: to, Count: n})
	}

	slices.SortFunc(result, func(a, b model.Transition) int {
		if c := -cmp.Compare(a.Count, b.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.To, b.To)
	})

	return result
}
