package present_test

import (
	"sync"
	"testing"

	"github.com/dasdy/foamslides/present"
	"github.com/dasdy/foamslides/scene"
	"github.com/stretchr/testify/assert"
)

func TestSlideSet(t *testing.T) {
	set := present.NewSlideSet([]scene.Slide{{Index: 0, Name: "intro"}, {Index: 1, Name: "cycle"}})

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"intro", "cycle"}, set.Names())

	s, ok := set.At(1)
	assert.True(t, ok)
	assert.Equal(t, "cycle", s.Name)

	_, ok = set.At(2)
	assert.False(t, ok)

	_, ok = set.At(-1)
	assert.False(t, ok)

	set.Set([]scene.Slide{{Index: 0, Name: "only"}})
	assert.Equal(t, 1, set.Len())
	assert.Len(t, set.All(), 1)
}

func TestSlideSet_Concurrent(t *testing.T) {
	set := present.NewSlideSet(nil)

	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(2)

		go func() {
			defer wg.Done()
			set.Set(make([]scene.Slide, i+1))
		}()

		go func() {
			defer wg.Done()
			_, _ = set.At(0)
			_ = set.Names()
		}()
	}

	wg.Wait()

	assert.Positive(t, set.Len())
}
