package deck

import (
	"github.com/dasdy/foamslides/layout"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
)

// testableCode grows the MyClass listing from a bare constructor to the
// fully configurable one.
func (d *Deck) testableCode() {
	t := d.theme

	d.keepOnly()
	d.p.Play(d.retitle("2.1", "Write testable code - Basics"))
	d.next()

	bare := layout.ReplaceNthLine(layout.BlankLines(testableCode, 3, 4, 6, 7, 14, 15), 11, "    MyClass();")
	code := d.code(bare).ToEdge(model.Right, t.EdgeBuff)
	d.p.Play(scene.Create(code))
	d.next()

	withMesh := layout.ReplaceNthLine(layout.BlankLines(testableCode, 6, 7), 11, "    MyClass(const fvMesh&);")
	d.p.Play(scene.Transform(code, d.code(withMesh).ToEdge(model.Right, t.EdgeBuff)))
	d.next()

	d.annotate(code, model.Left, model.Down.Scale(0.5),
		d.text("Access to important objects"),
		d.text("with little API dependency"),
	)
	d.next()

	d.annotate(code, model.Left, model.Up,
		d.text("Having a reference can", model.WithColor(t.Dot)),
		d.text("complicate MPI comms", model.WithColor(t.Dot)),
	)
	d.next()

	d.keepOnly(code)
	d.p.Play(scene.Transform(code, d.code(testableCode).ToEdge(model.Right, t.EdgeBuff)))
	d.next()

	d.annotate(code, model.Left, model.Up.Scale(0.2),
		d.text("Caller is responsible"),
		d.text("for configuration"),
	)
	d.next()

	d.annotate(code, model.Left, model.Up.Scale(1.5),
		d.text("Required entries in dict_", model.WithColor(t.Good)),
		d.text("are explicitly documented", model.WithColor(t.Good)),
	)
	d.next()
}

func (d *Deck) unfriendly() {
	d.keepOnly()
	d.p.Play(d.retitle("2.2", "Not so-test-friendly classes!"))
	d.next()

	d.p.Play(scene.Create(d.code(selfConfigured)))
	d.next()
}
