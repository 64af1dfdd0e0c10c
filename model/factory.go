package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	defaultStrokeWidth = 4.0
	arrowTip           = 0.1
)

// Factory creates scene objects with sequential IDs. Two factories fed the
// same calls hand out the same IDs, which keeps snapshots reproducible.
type Factory struct {
	theme Theme
	next  int
}

func NewFactory(theme Theme) *Factory {
	return &Factory{theme: theme}
}

func (f *Factory) Theme() Theme { return f.theme }

func (f *Factory) id() string {
	f.next++

	return fmt.Sprintf("obj-%d", f.next)
}

type TextOption func(*Object)

func WithSize(size float64) TextOption {
	return func(o *Object) { o.Size = size }
}

func WithColor(c Color) TextOption {
	return func(o *Object) { o.Style.Fill = c }
}

// Bold makes every occurrence of match bold.
func Bold(match string) TextOption {
	return func(o *Object) { o.Spans = append(o.Spans, Span{Match: match, Bold: true}) }
}

// Colored paints every occurrence of match.
func Colored(match string, c Color) TextOption {
	return func(o *Object) { o.Spans = append(o.Spans, Span{Match: match, Color: c}) }
}

// Emphasis is Bold and Colored at once.
func Emphasis(match string, c Color) TextOption {
	return func(o *Object) { o.Spans = append(o.Spans, Span{Match: match, Color: c, Bold: true}) }
}

// Text creates a text object centred on the origin, sized from the monospace
// metrics of the theme.
func (f *Factory) Text(content string, opts ...TextOption) *Object {
	o := &Object{
		ID:    f.id(),
		Kind:  KindText,
		Text:  content,
		Size:  f.theme.Sizes.Small,
		Style: Style{Fill: f.theme.Text, FillOpacity: 1},
	}

	for _, opt := range opts {
		opt(o)
	}

	w, h := f.TextExtent(content, o.Size)
	o.Bounds = BoxAt(Origin, w, h)

	return o
}

// TextExtent measures content at the given font size.
func (f *Factory) TextExtent(content string, size float64) (float64, float64) {
	lines := strings.Split(content, "\n")

	cells := 0
	for _, l := range lines {
		cells = max(cells, runewidth.StringWidth(l))
	}

	w := float64(cells) * f.theme.Metrics.CharWidth * f.theme.Em(size)
	h := float64(len(lines)) * f.theme.LineHeight(size)

	return w, h
}

// SurroundingRect outlines target with buff of space on every side.
func (f *Factory) SurroundingRect(target *Object, c Color, buff float64) *Object {
	return &Object{
		ID:     f.id(),
		Kind:   KindRect,
		Bounds: target.Box().Pad(buff),
		Style:  Style{Stroke: c, StrokeWidth: defaultStrokeWidth},
	}
}

// BackgroundRect fills the area behind target.
func (f *Factory) BackgroundRect(target *Object, c Color, opacity, buff float64) *Object {
	return &Object{
		ID:     f.id(),
		Kind:   KindBackgroundRect,
		Bounds: target.Box().Pad(buff),
		Style:  Style{Fill: c, FillOpacity: opacity},
	}
}

// Arrow is a straight arrow from one point to another, shortened by buff at
// both ends.
func (f *Factory) Arrow(from, to Vec, c Color, buff float64) *Object {
	d := to.Sub(from)
	if l := d.Len(); l > 2*buff && l > 0 {
		u := d.Scale(1 / l)
		from = from.Add(u.Scale(buff))
		to = to.Sub(u.Scale(buff))
	}

	return &Object{
		ID:     f.id(),
		Kind:   KindArrow,
		Points: []Vec{from, to},
		Bounds: PointBox(from).Union(PointBox(to)).Pad(arrowTip),
		Style:  Style{Stroke: c, StrokeWidth: defaultStrokeWidth, Fill: c, FillOpacity: 1},
	}
}

// CurvedArrow bends a quarter turn counterclockwise from one point to another.
func (f *Factory) CurvedArrow(from, to Vec, c Color) *Object {
	const angle = math.Pi / 2

	o := &Object{
		ID:     f.id(),
		Kind:   KindCurvedArrow,
		Points: []Vec{from, to},
		Angle:  angle,
		Style:  Style{Stroke: c, StrokeWidth: defaultStrokeWidth, Fill: c, FillOpacity: 1},
	}
	o.Bounds = PointBox(from).Union(PointBox(to)).Union(PointBox(ArcMidpoint(from, to, angle))).Pad(arrowTip)

	return o
}

// ArcMidpoint is the middle of the circular arc that runs counterclockwise
// from a to b and spans angle radians.
func ArcMidpoint(a, b Vec, angle float64) Vec {
	d := b.Sub(a)

	chord := d.Len()
	if chord == 0 || angle == 0 {
		return a
	}

	r := ArcRadius(a, b, angle)
	sagitta := r * (1 - math.Cos(angle/2))
	right := Vec{d.Y, -d.X}.Scale(1 / chord)

	return a.Add(d.Scale(0.5)).Add(right.Scale(sagitta))
}

// ArcRadius is the radius of the arc between a and b spanning angle radians.
func ArcRadius(a, b Vec, angle float64) float64 {
	return b.Sub(a).Len() / (2 * math.Sin(angle/2))
}

func (f *Factory) Line(from, to Vec, c Color, width float64) *Object {
	return &Object{
		ID:     f.id(),
		Kind:   KindLine,
		Points: []Vec{from, to},
		Bounds: PointBox(from).Union(PointBox(to)),
		Style:  Style{Stroke: c, StrokeWidth: width},
	}
}

func (f *Factory) Polygon(c Color, fillOpacity float64, pts ...Vec) *Object {
	o := &Object{
		ID:     f.id(),
		Kind:   KindPolygon,
		Points: pts,
		Style:  Style{Stroke: c, StrokeWidth: defaultStrokeWidth, Fill: c, FillOpacity: fillOpacity},
	}

	for i, p := range pts {
		if i == 0 {
			o.Bounds = PointBox(p)

			continue
		}

		o.Bounds = o.Bounds.Union(PointBox(p))
	}

	return o
}

// Image places a picture of the given size on the origin. src is relative
// to the asset directory.
func (f *Factory) Image(src string, w, h float64) *Object {
	return &Object{
		ID:     f.id(),
		Kind:   KindImage,
		Src:    src,
		Bounds: BoxAt(Origin, w, h),
	}
}

// Code is a code window: a title bar plus the listing, centred on the origin.
// Tabs are expanded with the theme tab width.
func (f *Factory) Code(source, language string) *Object {
	src := ExpandTabs(strings.TrimSuffix(source, "\n"), f.theme.Code.TabWidth)
	size := f.theme.Sizes.Small

	o := &Object{
		ID:    f.id(),
		Kind:  KindCode,
		Code:  &Code{Source: src, Language: language, Size: size},
		Style: Style{Fill: f.theme.Code.Background, FillOpacity: 1},
	}

	lines := strings.Split(src, "\n")

	cells := 0
	for _, l := range lines {
		cells = max(cells, runewidth.StringWidth(l))
	}

	pad := f.theme.Code.Padding
	w := float64(cells)*f.theme.Metrics.CharWidth*f.theme.Em(size) + 2*pad
	h := float64(len(lines))*f.theme.CodeLineHeight(size) + f.theme.Code.BarHeight + 2*pad
	o.Bounds = BoxAt(Origin, w, h)

	return o
}

func (f *Factory) Group(children ...*Object) *Object {
	return &Object{
		ID:       f.id(),
		Kind:     KindGroup,
		Children: children,
	}
}

// ExpandTabs replaces tabs with spaces up to the next multiple of width.
func ExpandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var (
		b   strings.Builder
		col int
	)

	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}

	return b.String()
}
