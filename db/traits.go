package db

import (
	"iter"

	"github.com/dasdy/foamslides/model"
)

// Storage persists slide visits.
type Storage interface {
	StoreVisit(visit model.SlideVisit) error
	GatherAll() ([]model.SlideStat, error)
	AllIterator() (iter.Seq[model.SlideVisit], error)
	Close()
}

// Cache keeps rendered slides keyed by content hash.
type Cache interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, svg []byte) error
}

// Tracker counts which slide followed which.
type Tracker interface {
	HandleVisit(slide int)
	GatherTransitions(slide int) []model.Transition
}
