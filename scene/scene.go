package scene

import (
	"slices"

	"github.com/dasdy/foamslides/model"
)

// Scene is the ordered set of top-level objects currently on screen.
type Scene struct {
	objects []*model.Object
}

func New() *Scene {
	return &Scene{}
}

// Add appends objects that are not already on screen.
func (s *Scene) Add(objs ...*model.Object) {
	for _, o := range objs {
		if o == nil || slices.Contains(s.objects, o) {
			continue
		}

		s.objects = append(s.objects, o)
	}
}

// Remove takes top-level objects off screen. Unknown objects are ignored.
func (s *Scene) Remove(objs ...*model.Object) {
	s.objects = slices.DeleteFunc(s.objects, func(o *model.Object) bool {
		return slices.Contains(objs, o)
	})
}

// Contains reports whether o is on screen, either at the top level or
// nested in a group.
func (s *Scene) Contains(o *model.Object) bool {
	for _, top := range s.objects {
		found := false

		top.Walk(func(x *model.Object) {
			if x == o {
				found = true
			}
		})

		if found {
			return true
		}
	}

	return false
}

// Reset replaces the whole visible set with allow in a single operation.
// Duplicates and nils are dropped.
func (s *Scene) Reset(allow ...*model.Object) {
	next := make([]*model.Object, 0, len(allow))

	for _, o := range allow {
		if o == nil || slices.Contains(next, o) {
			continue
		}

		next = append(next, o)
	}

	s.objects = next
}

// Objects returns the visible objects in drawing order. The slice is a
// copy; the objects are not.
func (s *Scene) Objects() []*model.Object {
	return slices.Clone(s.objects)
}

// Snapshot deep-copies the visible objects so later mutations do not leak
// into recorded slides.
func (s *Scene) Snapshot() []*model.Object {
	out := make([]*model.Object, len(s.objects))
	for i, o := range s.objects {
		out[i] = o.Copy()
	}

	return out
}

func (s *Scene) Len() int { return len(s.objects) }
