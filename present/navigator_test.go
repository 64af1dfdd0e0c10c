package present_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/dasdy/foamslides/present"
	"github.com/dasdy/foamslides/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_Moves(t *testing.T) {
	tests := []struct {
		name  string
		start int
		move  func(n *present.Navigator) int
		want  int
	}{
		{"next", 0, (*present.Navigator).Next, 1},
		{"next stops at the end", 4, (*present.Navigator).Next, 4},
		{"prev", 3, (*present.Navigator).Prev, 2},
		{"prev stops at the start", 0, (*present.Navigator).Prev, 0},
		{"first", 3, (*present.Navigator).First, 0},
		{"last", 1, (*present.Navigator).Last, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := present.NewNavigator(5)
			require.NoError(t, err)
			require.NoError(t, n.Goto(tt.start))

			assert.Equal(t, tt.want, tt.move(n))
			assert.Equal(t, tt.want, n.Current())
		})
	}
}

func TestNavigator_Goto(t *testing.T) {
	n, err := present.NewNavigator(3)
	require.NoError(t, err)

	require.NoError(t, n.Goto(2))
	assert.Equal(t, 2, n.Current())

	for _, bad := range []int{-1, 3, 100} {
		err := n.Goto(bad)
		require.ErrorIs(t, err, present.ErrOutOfRange)
		assert.Equal(t, 2, n.Current(), "failed goto must not move")
	}
}

func TestNewNavigator_Empty(t *testing.T) {
	_, err := present.NewNavigator(0)
	require.ErrorIs(t, err, present.ErrEmptyDeck)
}

func TestNavigator_OnChange(t *testing.T) {
	n, err := present.NewNavigator(3)
	require.NoError(t, err)

	var changes [][2]int
	n.OnChange(func(from, to int) { changes = append(changes, [2]int{from, to}) })

	n.Next()
	n.Next()
	n.Next() // already on the last slide
	n.First()
	require.NoError(t, n.Goto(0))

	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, changes)
}

func TestNavigator_SetTotal(t *testing.T) {
	n, err := present.NewNavigator(10)
	require.NoError(t, err)
	n.Last()

	require.NoError(t, n.SetTotal(4))
	assert.Equal(t, 3, n.Current())
	assert.Equal(t, 4, n.Total())

	require.ErrorIs(t, n.SetTotal(0), present.ErrEmptyDeck)
}

func TestNavigator_Concurrent(t *testing.T) {
	n, err := present.NewNavigator(1000)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 50 {
				n.Next()
				_ = n.Current()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 500, n.Current())
}

func TestRecordVisits(t *testing.T) {
	n, err := present.NewNavigator(3)
	require.NoError(t, err)

	storage := &StorageMock{}
	tracker := &TrackerMock{}
	slides := present.NewSlideSet([]scene.Slide{{Name: "intro"}, {Name: "cycle"}})
	present.RecordVisits(n, storage, tracker, slides)

	n.Next()
	n.Next()
	n.Prev()

	require.Len(t, storage.Visits, 4)
	assert.Equal(t, []int{0, 1, 2, 1}, tracker.Slides)
	assert.Equal(t, "intro", storage.Visits[0].Name)
	assert.Equal(t, "cycle", storage.Visits[1].Name)
	assert.Empty(t, storage.Visits[2].Name, "no name past the known slides")
	assert.False(t, storage.Visits[3].Timestamp.IsZero())
}

func TestRecordVisits_UsesRebuiltNames(t *testing.T) {
	n, err := present.NewNavigator(2)
	require.NoError(t, err)

	storage := &StorageMock{}
	slides := present.NewSlideSet([]scene.Slide{{Name: "intro"}, {Name: "cycle"}})
	present.RecordVisits(n, storage, nil, slides)

	slides.Set([]scene.Slide{{Name: "title"}, {Name: "motivation"}})
	n.Next()

	require.Len(t, storage.Visits, 2)
	assert.Equal(t, "intro", storage.Visits[0].Name)
	assert.Equal(t, "motivation", storage.Visits[1].Name)
}

func TestRecordVisits_StorageErrorDoesNotBlockNavigation(t *testing.T) {
	n, err := present.NewNavigator(3)
	require.NoError(t, err)

	storage := &StorageMock{ReturnError: errors.New("disk full")}
	present.RecordVisits(n, storage, nil, nil)

	assert.Equal(t, 1, n.Next())
	assert.Empty(t, storage.Visits)
}
