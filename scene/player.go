package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dasdy/foamslides/model"
)

var ErrEmptyStep = errors.New("play called without animations")

// Action is the recorded form of one leaf animation.
type Action struct {
	Kind    Kind     `json:"kind" yaml:"kind"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty"`
	Into    string   `json:"into,omitempty" yaml:"into,omitempty"`
}

// Step is everything played by one Play call.
type Step struct {
	Actions []Action `json:"actions" yaml:"actions"`
}

// Slide is the state of the scene at a slide boundary together with the
// steps that led to it since the previous boundary.
type Slide struct {
	Index   int             `json:"index"`
	Name    string          `json:"name"`
	Steps   []Step          `json:"steps"`
	Objects []*model.Object `json:"objects"`
}

// Player drives the presentation. Errors are sticky: after the first
// failure every call is a no-op and Err reports that failure.
type Player interface {
	// Play runs anims as one step.
	Play(anims ...Animation)
	// Reset replaces the visible set with allow.
	Reset(allow ...*model.Object)
	// NextSlide closes the current slide.
	NextSlide(name string)
	Err() error
}

// Recorder is a Player that applies every step to its scene and cuts a
// snapshot at each slide boundary.
type Recorder struct {
	scene  *Scene
	slides []Slide
	steps  []Step
	err    error
}

func NewRecorder() *Recorder {
	return &Recorder{scene: New()}
}

func (r *Recorder) Scene() *Scene { return r.scene }

func (r *Recorder) Play(anims ...Animation) {
	if r.err != nil {
		return
	}

	if len(anims) == 0 {
		r.err = fmt.Errorf("slide %d: %w", len(r.slides), ErrEmptyStep)

		return
	}

	all := Group(anims...)
	if err := all.Apply(r.scene); err != nil {
		r.err = fmt.Errorf("slide %d, step %d: %w", len(r.slides), len(r.steps), err)

		return
	}

	r.steps = append(r.steps, Step{Actions: all.Describe()})
}

func (r *Recorder) Reset(allow ...*model.Object) {
	if r.err != nil {
		return
	}

	r.scene.Reset(allow...)
}

func (r *Recorder) NextSlide(name string) {
	if r.err != nil {
		return
	}

	slide := Slide{
		Index:   len(r.slides),
		Name:    name,
		Steps:   r.steps,
		Objects: r.scene.Snapshot(),
	}
	r.slides = append(r.slides, slide)
	r.steps = nil

	slog.Debug("Slide recorded", "index", slide.Index, "name", name, "steps", len(slide.Steps), "objects", len(slide.Objects))
}

func (r *Recorder) Err() error { return r.err }

// Finish flushes steps played after the last boundary into a final slide
// and returns every recorded slide.
func (r *Recorder) Finish() ([]Slide, error) {
	if r.err != nil {
		return nil, r.err
	}

	if len(r.steps) > 0 {
		r.NextSlide("end")
	}

	return r.slides, nil
}

// Reveal shows objs with animations of the given kind. Stepwise reveal plays
// one step per object; otherwise all objects appear in one grouped step.
func Reveal(p Player, objs []*model.Object, kind Kind, stepwise bool) {
	if len(objs) == 0 {
		return
	}

	anims := make([]Animation, len(objs))
	for i, o := range objs {
		anims[i] = Animation{Kind: kind, Targets: []*model.Object{o}}
	}

	if stepwise {
		for _, a := range anims {
			p.Play(a)
		}

		return
	}

	p.Play(Group(anims...))
}
