package deck

import (
	"github.com/dasdy/foamslides/assets"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
)

// project shows a screenshot with a caption of three lines under it.
func (d *Deck) project(image string, side model.Vec, name string, lines ...string) {
	t := d.theme

	img := d.image(image).Shift(side.Scale(3)).Scale(0.3).Shift(model.Up)
	objs := []*model.Object{img}
	prev := d.text(name, model.WithColor(t.Good)).NextTo(img.Box(), model.Down, t.Buff)
	objs = append(objs, prev)

	for _, l := range lines {
		prev = d.text(l).NextTo(prev.Box(), model.Down, t.Buff)
		objs = append(objs, prev)
	}

	d.p.Play(scene.FadeIn(objs...))
}

func (d *Deck) stories() {
	d.keepOnly()
	d.p.Play(d.retitle("4.1", "Success stories"))
	d.next()

	d.project(assets.BlastAMR, model.Left, "STFS-TUDa/blastAMR",
		"25% git adds/dels for tests/",
		"Includes custom cases, with history",
	)
	d.next()

	d.project(assets.Reflections, model.Right, "FoamScience/openfoam-reflections",
		"Unit tests are most of the docs",
		"Porting features control!",
	)
	d.next()

	d.keepOnly()
	d.project(assets.SmartSim, model.Left, "OFDataCommittee/openfoam-smartsim",
		"0.2% git adds/dels for tests/",
		"Super-efficient testing",
	)
	d.next()
}

// message is one chat entry: an avatar, the author line and the text.
func (d *Deck) message(c model.Color, user, msg string) *model.Object {
	t := d.theme

	avatar := d.icon(assets.UserCircle, 1)
	author := d.text(user, model.WithSize(t.Sizes.Mid), model.WithColor(c)).
		NextTo(avatar.Box(), model.Right, 0.1).
		Shift(model.Up.Scale(0.25))
	body := d.text(msg).
		NextTo(author.Box(), model.Down, 0.2).
		AlignTo(author.Box(), model.Left)

	return d.f.Group(avatar, author, body)
}

// chat replays a team chat where the unit tests settle a version question.
func (d *Deck) chat() {
	t := d.theme

	divider := d.f.Line(model.Up.Scale(3), model.Down.Scale(3), t.Graph, 4)
	release := d.text("OpenFOAM v2406 lands", model.Bold("OpenFOAM v2406 lands")).
		NextTo(divider.Box(), model.Right, t.Buff).
		Shift(model.Up.Scale(2.5))
	d.p.Play(scene.FadeIn(divider, release))
	d.next()

	below := func(o, prev *model.Object) *model.Object {
		return o.NextTo(prev.Box(), model.Down, t.Buff).AlignTo(prev.Box(), model.Left)
	}

	question := below(d.message(t.Graph, "Dev1 - 5 mins ago", "Has anyone tested the FO with v2406?"), release)
	d.p.Play(scene.FadeIn(question))
	d.next()

	a1 := below(d.message(t.Good, "Dev2 - 5 mins ago", "No, CI only handles v2312 and v2012"), question)
	a2 := below(d.message(t.Good, "Dev2 - 4 mins ago", "1 sec, let me run the unit tests..."), a1)
	a3 := below(d.message(t.Good, "Dev2 - 1 secs ago", "FO is fine; smth wrong in ur env?"), a2)
	d.p.Play(scene.FadeIn(a1, a2, a3))
	d.next()
}
