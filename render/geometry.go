package render

import (
	"fmt"
	"math"

	"github.com/dasdy/foamslides/model"
)

// Output size of every slide, in pixels.
const (
	PixelWidth  = 1920
	PixelHeight = 1080
	// PixelsPerUnit converts scene units to pixels.
	PixelsPerUnit = PixelHeight / model.FrameHeight
)

// ToPixel maps a frame point to SVG pixel coordinates, with y pointing down.
func ToPixel(v model.Vec) (float64, float64) {
	return v.X*PixelsPerUnit + PixelWidth/2, PixelHeight/2 - v.Y*PixelsPerUnit
}

// ToTransform returns an SVG translate for the given frame point.
func ToTransform(v model.Vec) string {
	x, y := ToPixel(v)

	return fmt.Sprintf("translate(%.2f, %.2f)", x, y)
}

func px(units float64) float64 { return units * PixelsPerUnit }

// arrowHead returns the polygon of an arrow tip sitting on tip and pointing
// along dir.
func arrowHead(tip, dir model.Vec, length float64) []model.Vec {
	l := dir.Len()
	if l == 0 {
		return nil
	}

	u := dir.Scale(1 / l)
	n := model.Vec{X: -u.Y, Y: u.X}
	base := tip.Sub(u.Scale(length))

	return []model.Vec{
		tip,
		base.Add(n.Scale(length / 2)),
		base.Sub(n.Scale(length / 2)),
	}
}

// rotate turns v counterclockwise by angle radians.
func rotate(v model.Vec, angle float64) model.Vec {
	s, c := math.Sincos(angle)

	return model.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

func pointList(pts []model.Vec) string {
	out := ""

	for i, p := range pts {
		x, y := ToPixel(p)
		if i > 0 {
			out += " "
		}

		out += fmt.Sprintf("%.2f,%.2f", x, y)
	}

	return out
}
