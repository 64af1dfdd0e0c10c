package deck

import (
	"github.com/dasdy/foamslides/layout"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
)

// rtsTestWith rewrites the run-time selection test: blank empties lines
// and replace swaps one line for another.
func rtsTestWith(blank []int, line int, replace string) string {
	src := rtsTest
	for _, n := range blank {
		src = layout.ReplaceNthLine(src, n, "   ")
	}

	return layout.ReplaceNthLine(src, line, replace)
}

// rtsClasses walks from the ideal run-time selection test to the one that
// needs a generated configuration skeleton.
func (d *Deck) rtsClasses() {
	t := d.theme

	d.keepOnly()
	d.p.Play(d.retitle("3.1", "Testing RTS Classes in a perfect world"))
	d.next()

	ideal := d.code(rtsTestWith([]int{8, 9, 10}, 12, "    autoPtr<baseModel> bm = baseModel::New(mesh);")).
		ToEdge(model.Right, t.EdgeBuff)
	d.p.Play(scene.Create(ideal))
	d.next()

	d.annotate(ideal, model.Left, model.Up.Scale(2),
		d.text("Only include the", model.Bold("Only")),
		d.text("RTS base header"),
	)
	d.next()

	d.annotate(ideal, model.Left, model.Down.Scale(1.2),
		d.text("Create a concrete object", model.Bold("concrete")),
		d.text("and test its interface"),
	)
	d.next()

	d.annotate(ideal, model.Left, model.Down.Scale(0.2),
		d.text("Painful SetUp???", model.Colored("Painful SetUp???", t.Warn)),
	)
	d.next()

	d.keepOnly(ideal)
	skel := d.code(rtsTestWith([]int{8, 9}, 10, "    auto skel = generateSchema<baseModel>();")).
		ToEdge(model.Right, t.EdgeBuff)
	note := d.chain(
		d.text("Generate a config", model.Bold("config")).
			NextTo(skel.Box(), model.Left, t.Buff).Shift(model.Down.Scale(0.1)),
		d.text("skeleton first", model.Bold("skeleton")),
	)
	d.p.Play(scene.FadeTransformPieces(ideal, skel), scene.FadeIn(note))
	d.next()

	d.annotate(skel, model.Left, model.Up,
		d.text("Challenge 1: must match", model.Emphasis("Challenge 1:", t.Dot)),
		d.text("ctor-defaulted members"),
	)
	d.next()

	d.annotate(skel, model.Left, model.Up.Scale(2),
		d.text("Challenge 2: do Chal. 1", model.Emphasis("Challenge 2:", t.Dot), model.Emphasis("Chal. 1", t.Dot)),
		d.text("mostly at compile-time"),
	)
	d.next()

	d.keepOnly(skel)
	full := d.code(rtsTest).ToEdge(model.Right, t.EdgeBuff)
	note = d.chain(
		d.text("Oops, need to create a", model.Colored("Oops,", t.Warn)).
			NextTo(full.Box(), model.Left, t.Buff).Shift(model.Down),
		d.text("concrete object", model.Bold("concrete object")),
	)
	d.p.Play(scene.FadeTransformPieces(skel, full), scene.FadeIn(note))
	d.next()

	icon := t.ItemIcon
	d.annotate(full, model.Left.Scale(2), model.Origin,
		d.text(icon+" passing config helps", model.Colored(icon, t.Warn)),
		d.text("with nested models"),
	)
	d.next()

	d.annotate(full, model.Left.Scale(2), model.Up,
		d.text(icon+" can abuse the RTS", model.Colored(icon, t.Warn)),
		d.text("mechanism"),
	)
	d.next()

	d.keepOnly(full)
	d.annotate(full, model.Left, model.Up.Scale(2),
		d.text("Still including only"),
		d.text("the base header"),
	)
	d.next()

	d.annotate(full, model.Left, model.Down.Scale(0.2),
		d.text("Super-convenient SetUp", model.Colored("Super-convenient", t.Main)),
	)
	d.next()

	graph := model.WithColor(t.Graph)
	d.annotate(full, model.Left, model.Down.Scale(1.2),
		d.text("can remove/add class", graph),
		d.text("members without the", graph),
		d.text("need to update test", graph),
		d.text("code", graph),
	)
	d.next()
}

func (d *Deck) objectives() {
	good := d.theme.Good

	d.keepOnly()
	d.list("- Objectives again?", 2, []string{
		"Test in an isolated environment.",
		"but keep it identical to real-world solvers.",
		"The unit tests are (always-up-to-date) documentation.",
		"with minimal burden on the programmer (i.e. Test author).",
	}, good)
	d.next()

	d.list("- How much can we realistically achieve?", 14, []string{
		"Isolated environment? not really! eg. dependency on a mesh.",
		"foamUT sets up testing drivers as native solver code.",
		"Reflections go a long way, but sacrifices to be made! eg. API Design constraints.",
	}, good)
	d.next()
}

func (d *Deck) reflections() {
	t := d.theme

	d.keepOnly()
	d.p.Play(d.retitle("3.2", "Reflections for unit-testing"))

	d.list("- A little bit of setup can get us:", 2, []string{
		"Automatically-generated dictionaries of required keywords for a class -> generic.",
		"The skeleton dicts get built (mostly) at compile-time -> generic.",
		"These skeleton dicts can fetch default-values that constuctors will set -> special.",
	}, t.Good, model.Colored("-> special", t.Graph), model.Colored("-> generic", t.Graph))
	d.next()

	d.list("- Fetching default values accurately is important because:", 13, []string{
		"No one wants to test non-standard class configurations prematurely",
		"But if you need to, fetch default-values skeleton and mutate it!",
		"Ctor sets default values, skeletons generated at compile-time, how does that work?",
		"Obviously, shouldn't have to construct the object to get its members' defaults!",
	}, t.Good)
	d.next()
}

// skeletonDict is what generateSchema<baseModel> hands back for a concrete
// model with one nested sub-model.
var skeletonDict = []struct {
	pair   layout.Pair
	indent float64
}{
	{layout.Pair{Key: "baseModelType", Label: "concrete1"}, 0},
	{layout.Pair{Key: "concrete1Coeffs", Label: "<dictionary>"}, 0},
	{layout.Pair{Key: "setting", Label: "<label> 4"}, 0.5},
	{layout.Pair{Key: "tolerance", Label: "<scalar> 1e-6 (ctor default)"}, 0.5},
	{layout.Pair{Key: "nestedModel", Label: "<dictionary>"}, 0.5},
	{layout.Pair{Key: "nestedModelType", Label: "concrete2"}, 1},
	{layout.Pair{Key: "writeFields", Label: "<bool> false (ctor default)"}, 1},
	{layout.Pair{Key: "relaxation", Label: "<scalar> 0.7 (ctor default)"}, 0.5},
}

// skeleton shows a generated configuration skeleton with its keywords
// highlighted and nesting shown by indentation.
func (d *Deck) skeleton() {
	t := d.theme

	d.keepOnly()
	header := d.text("- A generated skeleton, defaults included:", model.WithSize(t.Sizes.Mid)).
		NextTo(d.title.Box(), model.Down.Scale(2), t.Buff).
		AlignTo(d.title.Box(), model.Left)
	d.p.Play(scene.Create(header))

	pairs := make([]layout.Pair, len(skeletonDict))
	indents := make([]float64, len(skeletonDict))

	for i, e := range skeletonDict {
		pairs[i] = e.pair
		indents[i] = e.indent
	}

	d.keyValues(pairs, indents, header)
	d.next()
}
