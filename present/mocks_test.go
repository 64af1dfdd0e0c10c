package present_test

import (
	"errors"
	"iter"
	"sync"

	"github.com/dasdy/foamslides/model"
)

// StorageMock keeps visits in memory.
type StorageMock struct {
	lock        sync.Mutex
	Visits      []model.SlideVisit
	ReturnError error
}

func (m *StorageMock) StoreVisit(visit model.SlideVisit) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.ReturnError != nil {
		return m.ReturnError
	}

	m.Visits = append(m.Visits, visit)

	return nil
}

func (m *StorageMock) GatherAll() ([]model.SlideStat, error) {
	return nil, errors.New("not implemented")
}

func (m *StorageMock) AllIterator() (iter.Seq[model.SlideVisit], error) {
	return func(func(model.SlideVisit) bool) {}, nil
}

func (m *StorageMock) Close() {}

// TrackerMock remembers the slides it was told about.
type TrackerMock struct {
	Slides []int
}

func (m *TrackerMock) HandleVisit(slide int) {
	m.Slides = append(m.Slides, slide)
}

func (m *TrackerMock) GatherTransitions(int) []model.Transition { return nil }
