package scene_test

import (
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
)

// CountingPlayer records calls without touching any scene.
type CountingPlayer struct {
	Plays      [][]scene.Animation
	Resets     [][]*model.Object
	Boundaries []string
}

func (p *CountingPlayer) Play(anims ...scene.Animation) {
	p.Plays = append(p.Plays, anims)
}

func (p *CountingPlayer) Reset(allow ...*model.Object) {
	p.Resets = append(p.Resets, allow)
}

func (p *CountingPlayer) NextSlide(name string) {
	p.Boundaries = append(p.Boundaries, name)
}

func (p *CountingPlayer) Err() error { return nil }
