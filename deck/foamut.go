package deck

import (
	"github.com/dasdy/foamslides/assets"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
)

// foamUT draws the repository layout around a test file, then zooms into
// a test case and its failure report.
func (d *Deck) foamUT() {
	t := d.theme

	d.keepOnly()
	d.p.Play(d.retitle("2.3", "foamUT: Effective OpenFOAM unit-testing"))
	d.next()

	qr := d.image(assets.FoamUTQR).Scale(0.3).ToEdge(model.DR, t.EdgeBuff).Shift(model.Up)

	file := d.box("myClassTests.C", t.Main, true).Shift(model.Down.Scale(0.5))
	label := file.Box()
	if n := len(file.Children); n > 0 {
		label = file.Children[n-1].Box()
	}

	serial := d.text("serial").NextToAligned(label, model.UR, model.Left, t.BoxBuff).Shift(model.Up.Scale(0.1))
	parallel := d.text("parallel").NextToAligned(label, model.DR, model.Left, t.BoxBuff).Shift(model.Down.Scale(0.1))
	mk := d.box("Make", t.Main, true).NextTo(file.Box(), model.Left.Scale(3), t.Buff)
	tests := d.f.SurroundingRect(d.f.Group(file, mk, serial, parallel), t.Main, t.BoxBuff)
	caption := d.text("tests", model.WithColor(t.Main)).NextTo(tests.Box(), model.Down, t.BoxBuff)
	d.p.Play(scene.FadeIn(file, mk, serial, parallel, tests, caption, qr))
	d.next()

	libs := d.box("src/libs", t.Dot, true).NextTo(tests.Box(), model.UL.Scale(3), t.Buff)
	d.p.Play(
		scene.FadeIn(libs),
		scene.Create(d.f.CurvedArrow(libs.Box().Critical(model.Down), tests.Box().Critical(model.Left), t.Dot)),
	)
	d.next()

	// "your repository" hugs the tests block and the libraries in an L shape.
	block := tests.Box().Union(caption.Box())
	lib := libs.Box()
	n1 := block.Corner(model.UR).Add(model.UR.Scale(0.5))
	n2 := lib.Corner(model.UR).Add(model.UR.Scale(0.5))
	n12 := model.Vec{X: n2.X, Y: n1.Y}
	n3 := lib.Corner(model.UL).Add(model.UL.Scale(0.5))
	n4 := block.Corner(model.DR).Add(model.DR.Scale(0.5))
	n34 := model.Vec{X: n3.X, Y: n4.Y}
	repo := d.f.Polygon(t.Highlight, 0.1, n1, n12, n2, n3, n34, n4)
	repoLabel := d.text("your repository", model.WithColor(t.Highlight)).NextTo(model.PointBox(n34), model.UR, t.Buff)
	d.p.Play(scene.FadeIn(repo, repoLabel))

	driver := d.box("Test driver", t.Highlight, false).NextTo(tests.Box(), model.Up.Scale(4.5), t.Buff)
	d.p.Play(
		scene.FadeIn(driver),
		scene.Create(d.f.Arrow(tests.Box().Critical(model.Up), driver.Box().Critical(model.Down), t.Highlight, 0.1)),
	)
	d.next()

	cases := d.box("OpenFOAM cases", t.Dot, true).NextTo(tests.Box(), model.UR.Scale(4.5), t.Buff)
	d.p.Play(
		scene.FadeIn(cases),
		scene.Create(d.f.Arrow(driver.Box().Critical(model.Right), cases.Box().Critical(model.Left), t.Highlight, 0.1)),
	)
	d.next()

	d.p.Play(scene.ScaleInPlace(file, 1.5))
	d.keepOnly(file)
	d.p.Play(scene.Transform(file, d.code(testCase).ToEdge(model.Right, t.EdgeBuff)))
	d.next()

	d.annotate(file, model.Left, model.Up.Scale(1.5),
		d.text("Test case tagging with"),
		d.text("OF case name, and"),
		d.text("run mode"),
	)
	d.next()

	d.annotate(file, model.Left, model.Origin, d.text("foamUT provides a time obj", model.WithColor(t.Good)))
	d.next()

	d.annotate(file, model.Left, model.Down.Scale(0.75), d.text("Reporting is 1st-class citizen", model.WithColor(t.Main)))
	d.next()

	d.annotate(file, model.Left, model.Down.Scale(1.5), d.text("Catch2 expressions evaluation", model.WithColor(t.Main)))
	d.next()

	d.keepOnly(file)
	d.p.Play(scene.Transform(file, d.f.Code(testCaseLog, "Makefile")))
	d.next()
}

func (d *Deck) handsOn() {
	t := d.theme

	d.keepOnly()
	d.p.Play(d.retitle("2.4", "Basic foamUT usage - Hands-on"))
	d.next()

	code := d.code(handsOnClass)
	d.p.Play(scene.Create(code))
	d.next()

	both := d.f.Group(
		d.code(handsOnProduction).ToEdge(model.Right, t.EdgeBuff),
		d.code(handsOnTest).ToEdge(model.Left, t.EdgeBuff),
	)
	d.p.Play(scene.Transform(code, both))
	d.next()
}

func (d *Deck) advanced() {
	d.keepOnly()
	d.p.Play(d.retitle("2.5", "Advanced foamUT usage - Hands-on"))
	d.next()

	d.p.Play(scene.Create(d.code(handsOnCatch2)))
	d.next()
}

func (d *Deck) espionageMode() {
	t := d.theme

	d.keepOnly()
	d.p.Play(d.retitle("2.6", "Advanced foamUT usage - Espionage Mode"))
	d.next()

	code := d.code(espionage)
	d.p.Play(scene.Create(code))
	d.next()

	warning := d.text("PLEASE don't do this for YOUR classes though!",
		model.Bold("PLEASE"), model.Bold("YOUR"), model.WithColor(t.Dot),
	).NextTo(code.Box(), model.Down, t.Buff)
	strike := d.f.Line(code.Box().Corner(model.UR), code.Box().Corner(model.DL), t.Dot, 3)
	d.p.Play(scene.FadeIn(warning, strike))
	d.next()
}

func (d *Deck) ciSetup() {
	t := d.theme

	d.keepOnly()
	code := d.code(timeouts)
	d.p.Play(d.retitle("2.7", "Advanced foamUT usage - CI setup"), scene.Create(code))
	d.next()

	works := d.text("POSIX signaling works for serial tests", model.WithColor(t.Graph)).
		NextTo(code.Box(), model.Down, t.Buff)
	mpi := d.text("What about MPI race conditions??? -> no graceful recovery guarantees!", model.WithColor(t.Dot)).
		NextTo(works.Box(), model.Down.Scale(0.7), t.Buff)
	d.p.Play(scene.FadeIn(works, mpi))
	d.next()
}
