package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/dasdy/foamslides/model"
)

// rowTolerance is how close two tops must be, in units, to count as one row.
const rowTolerance = 0.05

// ReadingOrder returns the leaves of objs top to bottom, left to right.
func ReadingOrder(objs []*model.Object) []*model.Object {
	var leaves []*model.Object
	for _, o := range objs {
		leaves = append(leaves, o.Leaves()...)
	}

	row := func(o *model.Object) float64 {
		return math.Round(o.Box().Top() / rowTolerance)
	}

	slices.SortStableFunc(leaves, func(a, b *model.Object) int {
		if c := cmp.Compare(row(b), row(a)); c != 0 {
			return c
		}

		return cmp.Compare(a.Box().Left(), b.Box().Left())
	})

	return leaves
}
