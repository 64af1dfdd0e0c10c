// Package deck scripts the foamUT talk on top of a scene.Player.
package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dasdy/foamslides/assets"
	"github.com/dasdy/foamslides/layout"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
)

const (
	// itemDistance is how far below its header a list starts, in layout
	// buffers.
	itemDistance = 1.5
	// imageResolution is the pixel height that maps to the full frame height.
	imageResolution = 1080.0
)

var ErrNoAssets = errors.New("no asset resolver configured")

type Config struct {
	Theme  model.Theme
	Assets *assets.Resolver
	// Stepwise reveals list items one step at a time instead of all at once.
	Stepwise bool
}

// Deck drives a Player through the talk. A Deck runs once.
type Deck struct {
	cfg   Config
	theme model.Theme
	f     *model.Factory
	p     scene.Player

	layout  *model.Object
	logo    *model.Object
	title   *model.Object
	section string

	err error
}

// New checks the theme and the assets and prepares a deck playing into p.
func New(cfg Config, p scene.Player) (*Deck, error) {
	if err := cfg.Theme.Validate(); err != nil {
		return nil, err
	}

	if cfg.Assets == nil {
		return nil, ErrNoAssets
	}

	if missing := cfg.Assets.Missing(assets.Required()...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", assets.ErrMissing, strings.Join(missing, ", "))
	}

	return &Deck{
		cfg:   cfg,
		theme: cfg.Theme,
		f:     model.NewFactory(cfg.Theme),
		p:     p,
	}, nil
}

// Run plays every section in order. It stops at the first failure of the
// deck or of the player.
func (d *Deck) Run(ctx context.Context) error {
	sections := []struct {
		name string
		run  func()
	}{
		{"intro", d.intro},
		{"cycle", d.cycle},
		{"motivation", d.motivation},
		{"what", d.whatToTest},
		{"how", d.howToTest},
		{"testable", d.testableCode},
		{"unfriendly", d.unfriendly},
		{"foamut", d.foamUT},
		{"hands-on", d.handsOn},
		{"advanced", d.advanced},
		{"espionage", d.espionageMode},
		{"ci", d.ciSetup},
		{"rts", d.rtsClasses},
		{"objectives", d.objectives},
		{"reflections", d.reflections},
		{"skeleton", d.skeleton},
		{"stories", d.stories},
		{"chat", d.chat},
	}

	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.run()

		if d.err != nil {
			return fmt.Errorf("section %s: %w", s.name, d.err)
		}

		if err := d.p.Err(); err != nil {
			return fmt.Errorf("section %s: %w", s.name, err)
		}

		slog.Debug("Section built", "section", s.name)
	}

	return nil
}

// Build records the whole talk and returns its slides.
func Build(ctx context.Context, cfg Config) ([]scene.Slide, error) {
	rec := scene.NewRecorder()

	d, err := New(cfg, rec)
	if err != nil {
		return nil, err
	}

	if err := d.Run(ctx); err != nil {
		return nil, err
	}

	return rec.Finish()
}

func (d *Deck) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Deck) next() {
	d.p.NextSlide(d.section)
}

// keepOnly clears the scene down to the page layout, the title and extra.
func (d *Deck) keepOnly(extra ...*model.Object) {
	d.p.Reset(append([]*model.Object{d.layout, d.title}, extra...)...)
}

func (d *Deck) heading(label, text string) *model.Object {
	return d.f.Text(label+" "+text,
		model.Bold(label),
		model.WithSize(d.theme.Sizes.Big),
	).ToEdge(model.UL, d.theme.EdgeBuff)
}

// retitle starts a new section and returns the animation that morphs the
// current title into its heading.
func (d *Deck) retitle(label, text string) scene.Animation {
	d.section = label + " " + text

	return scene.Transform(d.title, d.heading(label, text))
}

// box frames a label with an outline and, when filled, a translucent
// background in the same colour.
func (d *Deck) box(label string, c model.Color, filled bool) *model.Object {
	text := d.f.Text(label)
	rect := d.f.SurroundingRect(text, c, d.theme.BoxBuff)

	if !filled {
		return d.f.Group(rect, text)
	}

	bg := d.f.BackgroundRect(text, c, 0.3, d.theme.BoxBuff)

	return d.f.Group(bg, rect, text)
}

// list shows a header gap buffers below the title and a numbered list
// under it.
func (d *Deck) list(header string, gap float64, items []string, c model.Color, opts ...model.TextOption) {
	h := d.f.Text(header, model.WithSize(d.theme.Sizes.Mid)).
		NextTo(d.title.Box(), model.Down.Scale(gap), d.theme.Buff).
		AlignTo(d.title.Box(), model.Left)
	d.p.Play(scene.Create(h))

	objs, err := layout.Itemize(d.f, items, h.Box(), itemDistance, c, opts...)
	if err != nil {
		d.fail(fmt.Errorf("list %q: %w", header, err))

		return
	}

	scene.Reveal(d.p, objs, scene.KindFadeIn, d.cfg.Stepwise)
}

// keyValues shows a dictionary with indented entries under anchor. All
// entries appear in one step.
func (d *Deck) keyValues(pairs []layout.Pair, indents []float64, anchor *model.Object) {
	objs, err := layout.KeyValues(d.f, pairs, indents, anchor.Box(), itemDistance)
	if err != nil {
		d.fail(fmt.Errorf("key values: %w", err))

		return
	}

	scene.Reveal(d.p, objs, scene.KindCreate, false)
}

// annotate places first beside anchor in direction dir, moves it by shift
// and chains the remaining lines under it. The lines fade in together.
func (d *Deck) annotate(anchor *model.Object, dir, shift model.Vec, first *model.Object, rest ...*model.Object) {
	first.NextTo(anchor.Box(), dir, d.theme.Buff).Shift(shift)
	d.p.Play(scene.FadeIn(d.chain(first, rest...)))
}

// chain stacks rest under first, each one centred under its predecessor.
func (d *Deck) chain(first *model.Object, rest ...*model.Object) *model.Object {
	prev := first
	for _, o := range rest {
		o.NextTo(prev.Box(), model.Down.Scale(0.5), d.theme.Buff)
		prev = o
	}

	return d.f.Group(append([]*model.Object{first}, rest...)...)
}

func (d *Deck) text(s string, opts ...model.TextOption) *model.Object {
	return d.f.Text(s, opts...)
}

func (d *Deck) code(source string) *model.Object {
	return d.f.Code(source, "cpp")
}

// image loads a picture at its natural size: imageResolution pixels span
// the frame height.
func (d *Deck) image(name string) *model.Object {
	w, h, err := d.cfg.Assets.ImageSize(name)
	if err != nil {
		d.fail(err)

		return d.f.Image(name, 1, 1)
	}

	unit := model.FrameHeight / imageResolution

	return d.f.Image(name, float64(w)*unit, float64(h)*unit)
}

// icon loads a picture scaled to the given height.
func (d *Deck) icon(name string, height float64) *model.Object {
	img := d.image(name)
	if b := img.Box(); b.Height() > 0 {
		img.Scale(height / b.Height())
	}

	return img
}
