package layout

import "github.com/dasdy/foamslides/model"

// Stack computes the top-left corner of each block in a vertical list.
//
// Block 0 hangs buff*distance below the anchor and shares its left edge.
// Every later block hangs buff below the previous one and shares its left
// edge. The result is a pure function of its inputs.
func Stack(anchor model.Box, heights []float64, distance, buff float64) []model.Vec {
	if len(heights) == 0 {
		return nil
	}

	out := make([]model.Vec, len(heights))
	out[0] = model.Vec{X: anchor.Left(), Y: anchor.Bottom() - buff*distance}

	for i := 1; i < len(heights); i++ {
		prevBottom := out[i-1].Y - heights[i-1]
		out[i] = model.Vec{X: out[i-1].X, Y: prevBottom - buff}
	}

	return out
}

// IndentOffsets turns per-item indents into horizontal offsets by
// accumulating the deltas between neighbours. The first item is offset by
// its own indent.
func IndentOffsets(indents []float64) []float64 {
	if len(indents) == 0 {
		return nil
	}

	out := make([]float64, len(indents))
	out[0] = indents[0]

	for i := 1; i < len(indents); i++ {
		out[i] = out[i-1] + (indents[i] - indents[i-1])
	}

	return out
}

// placeTopLeft moves o so that its top-left corner sits on p.
func placeTopLeft(o *model.Object, p model.Vec) {
	o.Shift(p.Sub(o.Box().TopLeft()))
}
