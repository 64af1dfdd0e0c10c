package model

import "math"

// Frame dimensions in scene units. Origin is the frame centre, y points up.
const (
	FrameHeight = 8.0
	FrameWidth  = FrameHeight * 16 / 9
)

type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var (
	Origin = Vec{0, 0}
	Up     = Vec{0, 1}
	Down   = Vec{0, -1}
	Left   = Vec{-1, 0}
	Right  = Vec{1, 0}
	UL     = Vec{-1, 1}
	UR     = Vec{1, 1}
	DL     = Vec{-1, -1}
	DR     = Vec{1, -1}
)

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// Mul multiplies component-wise. Used to pick single axes out of a point,
// e.g. p.Mul(Up) keeps only the Y component.
func (v Vec) Mul(o Vec) Vec { return Vec{v.X * o.X, v.Y * o.Y} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Box is an axis aligned bounding box.
type Box struct {
	Min Vec `json:"min"`
	Max Vec `json:"max"`
}

// BoxAt returns a box of the given size centred on c.
func BoxAt(c Vec, w, h float64) Box {
	return Box{
		Min: Vec{c.X - w/2, c.Y - h/2},
		Max: Vec{c.X + w/2, c.Y + h/2},
	}
}

// PointBox is a zero sized box, handy as a layout anchor.
func PointBox(p Vec) Box { return Box{Min: p, Max: p} }

// FrameBox is the visible frame.
func FrameBox() Box { return BoxAt(Origin, FrameWidth, FrameHeight) }

func (b Box) Width() float64  { return b.Max.X - b.Min.X }
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }
func (b Box) Left() float64   { return b.Min.X }
func (b Box) Right() float64  { return b.Max.X }
func (b Box) Top() float64    { return b.Max.Y }
func (b Box) Bottom() float64 { return b.Min.Y }

func (b Box) Center() Vec {
	return Vec{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

func (b Box) TopLeft() Vec { return Vec{b.Min.X, b.Max.Y} }

// Critical returns the point of the box selected by the sign of each
// component of dir: max for positive, min for negative, centre for zero.
func (b Box) Critical(dir Vec) Vec {
	c := b.Center()

	return Vec{pick(dir.X, b.Min.X, c.X, b.Max.X), pick(dir.Y, b.Min.Y, c.Y, b.Max.Y)}
}

// Corner is an alias of Critical kept for readability at call sites.
func (b Box) Corner(dir Vec) Vec { return b.Critical(dir) }

func (b Box) Shift(v Vec) Box { return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)} }

func (b Box) Union(o Box) Box {
	return Box{
		Min: Vec{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Vec{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Pad grows the box by buff on every side.
func (b Box) Pad(buff float64) Box {
	return Box{
		Min: Vec{b.Min.X - buff, b.Min.Y - buff},
		Max: Vec{b.Max.X + buff, b.Max.Y + buff},
	}
}

// Overlaps reports whether the interiors of two boxes intersect.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X && b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y
}

func pick(sign, lo, mid, hi float64) float64 {
	switch {
	case sign > 0:
		return hi
	case sign < 0:
		return lo
	default:
		return mid
	}
}

func signOf(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
