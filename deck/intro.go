package deck

import (
	"github.com/dasdy/foamslides/assets"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
)

func (d *Deck) intro() {
	t := d.theme
	d.section = "Unit testing OpenFOAM code with foamUT"

	d.title = d.text(d.section, model.WithSize(t.Sizes.Big))
	footer := d.text("NHR4CES", model.Bold("NHR4CES"), model.WithSize(t.Sizes.VerySmall)).
		ToEdge(model.DR, t.EdgeBuff)
	author := d.text("Mohammed Elwardi Fadeli, Sept. 2024", model.WithSize(t.Sizes.VerySmall)).
		ToEdge(model.DL, t.EdgeBuff)
	d.logo = d.image(assets.Logo).NextTo(d.title.Box(), model.Up, t.Buff).Scale(0.6)
	d.layout = d.f.Group(footer, author, d.logo)

	d.p.Play(scene.FadeIn(d.layout, d.title))
	d.next()
}

// cycle draws the development cycle. The title turns into its first box.
func (d *Deck) cycle() {
	t := d.theme
	d.section = "Development cycle"

	arc := func(from, to model.Vec, c model.Color) scene.Animation {
		return scene.Create(d.f.CurvedArrow(from, to, c))
	}

	plan := d.box("Plan Features", t.Main, true).
		ToEdge(model.Up, t.EdgeBuff).
		Shift(model.DL.Scale(2))
	corner := d.logo.Copy().Scale(0.5).ToEdge(model.UR, t.EdgeBuff)
	d.p.Play(scene.Transform(d.title, plan), scene.Transform(d.logo, corner))
	d.next()

	code := d.box("Code", t.Main, true).NextTo(plan.Box(), model.DL.Scale(1.5), t.Buff)
	d.p.Play(arc(plan.Box().Critical(model.Left), code.Box().Critical(model.Up), t.Main), scene.FadeIn(code))
	d.next()

	build := d.box("Build", t.Main, true).NextTo(plan.Box(), model.Down.Scale(6), t.Buff)
	d.p.Play(arc(code.Box().Critical(model.Down), build.Box().Critical(model.Left), t.Main), scene.FadeIn(build))
	d.next()

	tests := d.box("Testing", t.Main, true).NextTo(plan.Box(), model.DR.Scale(1.5), t.Buff)
	d.p.Play(arc(build.Box().Critical(model.Right), tests.Box().Critical(model.Down), t.Main), scene.FadeIn(tests))
	d.next()

	release := d.box("Release", t.Dot, true).NextTo(tests.Box(), model.Down.Scale(4.5), t.Buff)
	offset := model.Right.Scale(0.5)
	d.p.Play(
		scene.Create(d.f.Arrow(
			tests.Box().Critical(model.Down).Add(offset),
			release.Box().Critical(model.Up).Add(offset),
			t.Dot, 0.1,
		)),
		scene.FadeIn(release),
	)
	d.next()

	deploy := d.box("Deploy", t.Dot, true).NextTo(tests.Box(), model.DR.Scale(1.5), t.Buff)
	d.p.Play(arc(release.Box().Critical(model.Down), deploy.Box().Critical(model.Down), t.Dot), scene.FadeIn(deploy))
	d.next()

	d.p.Play(arc(deploy.Box().Critical(model.Up), tests.Box().Critical(model.Right), t.Dot))
	d.next()

	d.p.Play(arc(tests.Box().Critical(model.Up), plan.Box().Critical(model.Right), t.Dot))
	d.next()

	// The whole diagram collapses into the next heading and stays the title.
	diagram := d.f.Group(d.title, code, build, tests, release, deploy)
	d.p.Reset(d.layout, diagram)
	d.title = diagram
	d.p.Play(d.retitle("0.0", "Why unit-test OpenFOAM code?"))
	d.next()
}
