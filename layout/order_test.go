package layout_test

import (
	"testing"

	"github.com/dasdy/foamslides/layout"
	"github.com/dasdy/foamslides/model"
	"github.com/stretchr/testify/assert"
)

func TestReadingOrder(t *testing.T) {
	f := model.NewFactory(model.DefaultTheme())

	bottom := f.Text("bottom").MoveTo(model.Vec{X: -3, Y: -2})
	right := f.Text("right").MoveTo(model.Vec{X: 2, Y: 1})
	left := f.Text("left").MoveTo(model.Vec{X: -2, Y: 1.01})
	top := f.Text("top").MoveTo(model.Vec{X: 4, Y: 3})
	group := f.Group(bottom, right)

	got := layout.ReadingOrder([]*model.Object{group, left, top})

	texts := make([]string, len(got))
	for i, o := range got {
		texts[i] = o.Text
	}

	assert.Equal(t, []string{"top", "left", "right", "bottom"}, texts)
}
