package model

import (
	"fmt"
	"math"
	"slices"
)

type Kind string

const (
	KindText           Kind = "text"
	KindRect           Kind = "rect"
	KindBackgroundRect Kind = "background_rect"
	KindArrow          Kind = "arrow"
	KindCurvedArrow    Kind = "curved_arrow"
	KindLine           Kind = "line"
	KindPolygon        Kind = "polygon"
	KindImage          Kind = "image"
	KindCode           Kind = "code"
	KindGroup          Kind = "group"
)

// Span styles every occurrence of Match inside a text object.
type Span struct {
	Match string `json:"match"`
	Color Color  `json:"color,omitempty"`
	Bold  bool   `json:"bold,omitempty"`
}

type Style struct {
	Stroke      Color   `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Fill        Color   `json:"fill,omitempty"`
	FillOpacity float64 `json:"fill_opacity,omitempty"`
}

type Code struct {
	Source   string  `json:"source"`
	Language string  `json:"language"`
	Size     float64 `json:"size"`
}

// Object is a node of the scene graph. Groups carry only children and
// derive their bounds from them; every other kind carries its own bounds.
type Object struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Bounds Box    `json:"bounds"`
	Style  Style  `json:"style"`

	Text  string  `json:"text,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Spans []Span  `json:"spans,omitempty"`

	Points []Vec   `json:"points,omitempty"`
	Angle  float64 `json:"angle,omitempty"`

	Src  string `json:"src,omitempty"`
	Code *Code  `json:"code,omitempty"`

	Children []*Object `json:"children,omitempty"`
}

// Box returns the current bounds of the object.
func (o *Object) Box() Box {
	if o.Kind != KindGroup {
		return o.Bounds
	}

	var (
		b     Box
		found bool
	)

	for _, c := range o.Children {
		if c.Kind == KindGroup && len(c.Children) == 0 {
			continue
		}

		if !found {
			b = c.Box()
			found = true

			continue
		}

		b = b.Union(c.Box())
	}

	return b
}

func (o *Object) Shift(v Vec) *Object {
	if o.Kind == KindGroup {
		for _, c := range o.Children {
			c.Shift(v)
		}

		return o
	}

	o.Bounds = o.Bounds.Shift(v)
	for i := range o.Points {
		o.Points[i] = o.Points[i].Add(v)
	}

	return o
}

// MoveTo centres the object on p.
func (o *Object) MoveTo(p Vec) *Object {
	return o.Shift(p.Sub(o.Box().Center()))
}

// NextTo places the object beside target in direction dir, leaving buff*|dir|
// between them. Along axes where dir is zero the centres are aligned.
func (o *Object) NextTo(target Box, dir Vec, buff float64) *Object {
	return o.NextToAligned(target, dir, Origin, buff)
}

// NextToAligned is NextTo with the edge selected by edge kept in line with
// the same edge of target.
func (o *Object) NextToAligned(target Box, dir, edge Vec, buff float64) *Object {
	to := target.Critical(edge.Add(dir))
	from := o.Box().Critical(edge.Sub(dir))

	return o.Shift(to.Sub(from).Add(dir.Scale(buff)))
}

// AlignTo lines up the edge selected by dir with the same edge of target.
// Axes where dir is zero are left untouched.
func (o *Object) AlignTo(target Box, dir Vec) *Object {
	mask := Vec{math.Abs(signOf(dir.X)), math.Abs(signOf(dir.Y))}
	delta := target.Critical(dir).Sub(o.Box().Critical(dir)).Mul(mask)

	return o.Shift(delta)
}

// ToEdge moves the object against the frame border selected by dir.
func (o *Object) ToEdge(dir Vec, buff float64) *Object {
	mask := Vec{math.Abs(signOf(dir.X)), math.Abs(signOf(dir.Y))}
	border := Vec{signOf(dir.X) * FrameWidth / 2, signOf(dir.Y) * FrameHeight / 2}
	delta := border.Sub(o.Box().Critical(dir)).Sub(dir.Scale(buff)).Mul(mask)

	return o.Shift(delta)
}

// Scale resizes the object about its centre.
func (o *Object) Scale(f float64) *Object {
	return o.scaleAbout(o.Box().Center(), f)
}

func (o *Object) scaleAbout(c Vec, f float64) *Object {
	if o.Kind == KindGroup {
		for _, ch := range o.Children {
			ch.scaleAbout(c, f)
		}

		return o
	}

	o.Bounds = Box{
		Min: c.Add(o.Bounds.Min.Sub(c).Scale(f)),
		Max: c.Add(o.Bounds.Max.Sub(c).Scale(f)),
	}
	for i := range o.Points {
		o.Points[i] = c.Add(o.Points[i].Sub(c).Scale(f))
	}

	o.Size *= f
	if o.Code != nil {
		o.Code.Size *= f
	}

	return o
}

// Copy returns a deep copy that keeps every ID.
func (o *Object) Copy() *Object {
	if o == nil {
		return nil
	}

	c := *o
	c.Spans = slices.Clone(o.Spans)
	c.Points = slices.Clone(o.Points)

	if o.Code != nil {
		code := *o.Code
		c.Code = &code
	}

	if o.Children != nil {
		c.Children = make([]*Object, len(o.Children))
		for i, ch := range o.Children {
			c.Children[i] = ch.Copy()
		}
	}

	return &c
}

// Become turns o into a copy of other while keeping o's identity. Copied
// children get IDs derived from o so they never collide with other's.
func (o *Object) Become(other *Object) *Object {
	id := o.ID
	*o = *other.Copy()
	o.ID = id
	o.renumber()

	return o
}

func (o *Object) renumber() {
	for i, ch := range o.Children {
		ch.ID = fmt.Sprintf("%s/%d", o.ID, i)
		ch.renumber()
	}
}

// Add appends children to a group.
func (o *Object) Add(children ...*Object) *Object {
	o.Children = append(o.Children, children...)

	return o
}

// Remove drops a direct child from a group.
func (o *Object) Remove(child *Object) *Object {
	o.Children = slices.DeleteFunc(o.Children, func(c *Object) bool { return c == child })

	return o
}

// Walk visits o and all of its descendants depth first.
func (o *Object) Walk(fn func(*Object)) {
	fn(o)

	for _, c := range o.Children {
		c.Walk(fn)
	}
}

// Leaves returns every non-group descendant in drawing order.
func (o *Object) Leaves() []*Object {
	var out []*Object

	o.Walk(func(x *Object) {
		if x.Kind != KindGroup {
			out = append(out, x)
		}
	})

	return out
}
