package render

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/render/highlight"
	"github.com/dasdy/foamslides/scene"
)

const (
	arrowTipLength = 0.25
	// baselineDrop is how far the baseline sits below the middle of a line,
	// in em.
	baselineDrop = 0.35
)

// Window buttons of a code listing.
var buttonColors = []model.Color{"#FF5F56", "#FFBD2E", "#27C93F"}

type span struct {
	Text   string
	Fill   string
	Bold   bool
	Italic bool
}

type line struct {
	X, Y  float64
	Spans []span
}

type button struct {
	X, Y, R float64
	Fill    string
}

type element struct {
	Kind        string
	ID          string
	X, Y, W, H  float64
	Stroke      string
	StrokeWidth float64
	Fill        string
	FillOpacity float64
	Points      string
	Path        string
	Head        string
	Href        string
	FontSize    float64
	Radius      float64
	Lines       []line
	Buttons     []button
}

type document struct {
	Width, Height int
	Background    string
	Font          string
	Elements      []element
}

// Renderer draws scene objects as SVG.
type Renderer struct {
	theme       model.Theme
	highlighter *highlight.Highlighter
	palette     highlight.Palette
	// AssetURL maps an asset path to the href used for images.
	AssetURL func(src string) string
}

func New(theme model.Theme, h *highlight.Highlighter) (*Renderer, error) {
	palette, err := highlight.Lookup(theme.Code.Style)
	if err != nil {
		return nil, fmt.Errorf("could not build renderer: %w", err)
	}

	return &Renderer{
		theme:       theme,
		highlighter: h,
		palette:     palette,
		AssetURL:    func(src string) string { return src },
	}, nil
}

func (r *Renderer) Theme() model.Theme { return r.theme }

// Render writes one SVG document showing objs in drawing order.
func (r *Renderer) Render(ctx context.Context, w io.Writer, objs []*model.Object) error {
	doc := document{
		Width:      PixelWidth,
		Height:     PixelHeight,
		Background: string(r.theme.Background),
		Font:       r.theme.Font,
	}

	for _, top := range objs {
		for _, o := range top.Leaves() {
			el, err := r.element(ctx, o)
			if err != nil {
				return fmt.Errorf("could not render %s: %w", o.ID, err)
			}

			doc.Elements = append(doc.Elements, el)
		}
	}

	if err := svgTpl.Execute(w, doc); err != nil {
		return fmt.Errorf("could not execute svg template: %w", err)
	}

	return nil
}

// RenderSlide renders the end state of a recorded slide.
func (r *Renderer) RenderSlide(ctx context.Context, s scene.Slide) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(ctx, &buf, s.Objects); err != nil {
		return nil, fmt.Errorf("slide %d: %w", s.Index, err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) element(ctx context.Context, o *model.Object) (element, error) {
	b := o.Box()
	x, y := ToPixel(b.TopLeft())

	el := element{
		Kind:        string(o.Kind),
		ID:          o.ID,
		X:           x,
		Y:           y,
		W:           px(b.Width()),
		H:           px(b.Height()),
		Stroke:      string(o.Style.Stroke),
		StrokeWidth: o.Style.StrokeWidth,
		Fill:        string(o.Style.Fill),
		FillOpacity: o.Style.FillOpacity,
	}

	switch o.Kind {
	case model.KindLine, model.KindPolygon:
		el.Points = pointList(o.Points)
	case model.KindArrow:
		if len(o.Points) != 2 {
			return el, fmt.Errorf("arrow needs 2 points, got %d", len(o.Points))
		}

		from, to := o.Points[0], o.Points[1]
		fx, fy := ToPixel(from)
		tx, ty := ToPixel(to)
		el.Path = fmt.Sprintf("M %.2f %.2f L %.2f %.2f", fx, fy, tx, ty)
		el.Head = pointList(arrowHead(to, to.Sub(from), arrowTipLength))
	case model.KindCurvedArrow:
		if len(o.Points) != 2 {
			return el, fmt.Errorf("curved arrow needs 2 points, got %d", len(o.Points))
		}

		from, to := o.Points[0], o.Points[1]
		fx, fy := ToPixel(from)
		tx, ty := ToPixel(to)
		radius := px(model.ArcRadius(from, to, o.Angle))
		// Counterclockwise in frame space is clockwise once y is flipped.
		el.Path = fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 0 0 %.2f %.2f", fx, fy, radius, radius, tx, ty)
		el.Head = pointList(arrowHead(to, rotate(to.Sub(from), o.Angle/2), arrowTipLength))
	case model.KindImage:
		el.Href = r.AssetURL(o.Src)
	case model.KindText:
		el.FontSize = px(r.theme.Em(o.Size))
		el.Lines = r.textLines(o)
	case model.KindCode:
		if err := r.codeWindow(ctx, o, &el); err != nil {
			return el, err
		}
	case model.KindRect, model.KindBackgroundRect:
	default:
		return el, fmt.Errorf("unsupported kind %q", o.Kind)
	}

	return el, nil
}

func (r *Renderer) textLines(o *model.Object) []line {
	b := o.Box()
	lh := r.theme.LineHeight(o.Size)
	em := r.theme.Em(o.Size)

	var (
		out []line
		cur line
	)

	newLine := func(i int) line {
		x, y := ToPixel(model.Vec{X: b.Left(), Y: b.Top() - lh*(float64(i)+0.5) - baselineDrop*em})

		return line{X: x, Y: y}
	}

	cur = newLine(0)

	for _, seg := range model.Segments(o.Text, o.Spans, o.Style.Fill) {
		parts := strings.Split(seg.Text, "\n")
		for i, p := range parts {
			if i > 0 {
				out = append(out, cur)
				cur = newLine(len(out))
			}

			if p != "" {
				cur.Spans = append(cur.Spans, span{Text: p, Fill: string(seg.Color), Bold: seg.Bold})
			}
		}
	}

	return append(out, cur)
}

func (r *Renderer) codeWindow(ctx context.Context, o *model.Object, el *element) error {
	if o.Code == nil {
		return errors.New("code object without listing")
	}

	scale := 1.0
	if r.theme.Sizes.Small > 0 {
		scale = o.Code.Size / r.theme.Sizes.Small
	}

	b := o.Box()
	pad := r.theme.Code.Padding * scale
	bar := r.theme.Code.BarHeight * scale
	em := r.theme.Em(o.Code.Size)
	clh := r.theme.CodeLineHeight(o.Code.Size)

	el.Radius = px(0.1 * scale)
	el.FontSize = px(em)

	for i, c := range buttonColors {
		x, y := ToPixel(model.Vec{X: b.Left() + pad + 0.2*scale*float64(i), Y: b.Top() - bar/2 - pad/2})
		el.Buttons = append(el.Buttons, button{X: x, Y: y, R: px(0.06 * scale), Fill: string(c)})
	}

	var (
		lines []highlight.Line
		err   error
	)

	if r.highlighter != nil {
		lines, err = r.highlighter.Highlight(ctx, o.Code.Source, o.Code.Language)
		if err != nil {
			return fmt.Errorf("could not highlight listing: %w", err)
		}
	} else {
		for _, l := range strings.Split(o.Code.Source, "\n") {
			lines = append(lines, highlight.Line{{Text: l, Class: highlight.Plain}})
		}
	}

	for i, l := range lines {
		x, y := ToPixel(model.Vec{
			X: b.Left() + pad,
			Y: b.Top() - bar - pad - clh*(float64(i)+0.5) - baselineDrop*em,
		})

		ln := line{X: x, Y: y}
		for _, tok := range l {
			st := r.palette.Of(tok.Class)
			ln.Spans = append(ln.Spans, span{Text: tok.Text, Fill: st.Color, Bold: st.Bold, Italic: st.Italic})
		}

		el.Lines = append(el.Lines, ln)
	}

	return nil
}

// Key identifies the rendering of a slide under a theme. It changes whenever
// an object or a theme setting changes.
func Key(theme model.Theme, s scene.Slide) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)

	if err := enc.Encode(theme); err != nil {
		return "", fmt.Errorf("could not hash theme: %w", err)
	}

	if err := enc.Encode(s.Objects); err != nil {
		return "", fmt.Errorf("could not hash slide %d: %w", s.Index, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
