package routes_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/present"
	"github.com/dasdy/foamslides/scene"
	"github.com/dasdy/foamslides/web/routes"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// RendererMock renders a slide as a tiny svg naming it.
type RendererMock struct {
	Calls       int
	ReturnError error
}

func (m *RendererMock) Theme() model.Theme { return model.DefaultTheme() }

func (m *RendererMock) RenderSlide(_ context.Context, s scene.Slide) ([]byte, error) {
	m.Calls++
	if m.ReturnError != nil {
		return nil, m.ReturnError
	}

	return []byte("<svg>" + s.Name + "</svg>"), nil
}

type CacheMock struct {
	Items    map[string][]byte
	GetError error
	PutError error
	Puts     int
}

func (m *CacheMock) Get(key string) ([]byte, bool, error) {
	if m.GetError != nil {
		return nil, false, m.GetError
	}

	svg, ok := m.Items[key]

	return svg, ok, nil
}

func (m *CacheMock) Put(key string, svg []byte) error {
	m.Puts++
	if m.PutError != nil {
		return m.PutError
	}

	m.Items[key] = svg

	return nil
}

// SimpleStorageMock is a simple manual mock implementation of the Storage interface
type SimpleStorageMock struct {
	ReturnStats []model.SlideStat
	ReturnError error
	CallCount   int
}

func (m *SimpleStorageMock) GatherAll() ([]model.SlideStat, error) {
	m.CallCount++

	return m.ReturnStats, m.ReturnError
}

func (m *SimpleStorageMock) AllIterator() (iter.Seq[model.SlideVisit], error) {
	return func(func(model.SlideVisit) bool) {}, nil
}

func (m *SimpleStorageMock) StoreVisit(model.SlideVisit) error { return nil }

func (m *SimpleStorageMock) Close() {}

type TrackerMock struct {
	Transitions map[int][]model.Transition
}

func (m *TrackerMock) HandleVisit(int) {}

func (m *TrackerMock) GatherTransitions(slide int) []model.Transition {
	return m.Transitions[slide]
}

type MockServerHandler struct {
	routes.ServerHandler

	MockRenderer *RendererMock
	MockCache    *CacheMock
	MockStorage  *SimpleStorageMock
	Navigator    *present.Navigator
}

func setupMockServerHandler(t *testing.T) MockServerHandler {
	t.Helper()

	slides := []scene.Slide{
		{Index: 0, Name: "Unit testing"},
		{Index: 1, Name: "0.0 Motivation"},
		{Index: 2, Name: "1.1 What OpenFOAM code to test?"},
	}

	nav, err := present.NewNavigator(len(slides))
	require.NoError(t, err)

	renderer := &RendererMock{}
	cache := &CacheMock{Items: map[string][]byte{}}
	storage := &SimpleStorageMock{}

	return MockServerHandler{
		ServerHandler: routes.ServerHandler{
			Nav:      nav,
			Slides:   present.NewSlideSet(slides),
			Renderer: renderer,
			Cache:    cache,
			Storage:  storage,
			Tracker:  &TrackerMock{},
		},
		MockRenderer: renderer,
		MockCache:    cache,
		MockStorage:  storage,
		Navigator:    nav,
	}
}
