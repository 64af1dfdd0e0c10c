package scene

import (
	"errors"
	"fmt"

	"github.com/dasdy/foamslides/model"
)

type Kind string

const (
	KindFadeIn              Kind = "fade_in"
	KindCreate              Kind = "create"
	KindFadeOut             Kind = "fade_out"
	KindTransform           Kind = "transform"
	KindFadeTransformPieces Kind = "fade_transform_pieces"
	KindScaleInPlace        Kind = "scale_in_place"
	KindGroup               Kind = "group"
)

var (
	ErrNilObject    = errors.New("animation target is nil")
	ErrBadAnimation = errors.New("invalid animation")
)

// Animation describes one change to the scene. Only the end state is kept;
// there is no tweening.
type Animation struct {
	Kind    Kind
	Targets []*model.Object
	// Into is the end state of Transform and FadeTransformPieces.
	Into   *model.Object
	Factor float64
	Parts  []Animation
}

func FadeIn(objs ...*model.Object) Animation {
	return Animation{Kind: KindFadeIn, Targets: objs}
}

func Create(objs ...*model.Object) Animation {
	return Animation{Kind: KindCreate, Targets: objs}
}

func FadeOut(objs ...*model.Object) Animation {
	return Animation{Kind: KindFadeOut, Targets: objs}
}

// Transform morphs src into dst. src keeps its identity and stays on screen
// with dst's look; dst itself is never added.
func Transform(src, dst *model.Object) Animation {
	return Animation{Kind: KindTransform, Targets: []*model.Object{src}, Into: dst}
}

// FadeTransformPieces replaces src on screen with dst.
func FadeTransformPieces(src, dst *model.Object) Animation {
	return Animation{Kind: KindFadeTransformPieces, Targets: []*model.Object{src}, Into: dst}
}

// ScaleInPlace resizes obj about its centre.
func ScaleInPlace(obj *model.Object, factor float64) Animation {
	return Animation{Kind: KindScaleInPlace, Targets: []*model.Object{obj}, Factor: factor}
}

// Group plays several animations as a single step.
func Group(anims ...Animation) Animation {
	return Animation{Kind: KindGroup, Parts: anims}
}

func (a Animation) validate() error {
	for _, t := range a.Targets {
		if t == nil {
			return fmt.Errorf("%w: %s", ErrNilObject, a.Kind)
		}
	}

	switch a.Kind {
	case KindFadeIn, KindCreate, KindFadeOut:
		if len(a.Targets) == 0 {
			return fmt.Errorf("%w: %s without targets", ErrBadAnimation, a.Kind)
		}
	case KindTransform, KindFadeTransformPieces:
		if len(a.Targets) != 1 {
			return fmt.Errorf("%w: %s needs exactly one source, got %d", ErrBadAnimation, a.Kind, len(a.Targets))
		}

		if a.Into == nil {
			return fmt.Errorf("%w: %s into", ErrNilObject, a.Kind)
		}
	case KindScaleInPlace:
		if len(a.Targets) != 1 || a.Factor <= 0 {
			return fmt.Errorf("%w: scale by %v", ErrBadAnimation, a.Factor)
		}
	case KindGroup:
		for _, p := range a.Parts {
			if err := p.validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrBadAnimation, a.Kind)
	}

	return nil
}

// Apply validates the animation and moves the scene to its end state.
// Nothing is applied when validation fails.
func (a Animation) Apply(s *Scene) error {
	if err := a.validate(); err != nil {
		return err
	}

	a.apply(s)

	return nil
}

func (a Animation) apply(s *Scene) {
	switch a.Kind {
	case KindFadeIn, KindCreate:
		s.Add(a.Targets...)
	case KindFadeOut:
		s.Remove(a.Targets...)
	case KindTransform:
		src := a.Targets[0]
		src.Become(a.Into)

		if !s.Contains(src) {
			s.Add(src)
		}
	case KindFadeTransformPieces:
		s.Remove(a.Targets[0])
		s.Add(a.Into)
	case KindScaleInPlace:
		a.Targets[0].Scale(a.Factor)
	case KindGroup:
		for _, p := range a.Parts {
			p.apply(s)
		}
	}
}

// Count is the number of leaf animations, groups excluded.
func (a Animation) Count() int {
	if a.Kind != KindGroup {
		return 1
	}

	n := 0
	for _, p := range a.Parts {
		n += p.Count()
	}

	return n
}

// Describe flattens the animation into the records kept for a step.
func (a Animation) Describe() []Action {
	if a.Kind == KindGroup {
		var out []Action
		for _, p := range a.Parts {
			out = append(out, p.Describe()...)
		}

		return out
	}

	act := Action{Kind: a.Kind}
	for _, t := range a.Targets {
		act.Targets = append(act.Targets, t.ID)
	}

	if a.Into != nil {
		act.Into = a.Into.ID
	}

	return []Action{act}
}
