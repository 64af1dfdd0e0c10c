package layout

import (
	"errors"
	"fmt"

	"github.com/dasdy/foamslides/model"
)

var (
	ErrNoItems        = errors.New("no items to lay out")
	ErrIndentMismatch = errors.New("indents and pairs differ in length")
)

// Pair is one "key: label" line.
type Pair struct {
	Key   string
	Label string
}

// Itemize lays out a numbered list under anchor. Each line reads
// "<n><icon> <item>" with the "<n><icon>" prefix bold and painted in
// color. Extra options are applied to every line after the defaults.
func Itemize(
	f *model.Factory,
	items []string,
	anchor model.Box,
	distance float64,
	color model.Color,
	opts ...model.TextOption,
) ([]*model.Object, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	theme := f.Theme()
	objs := make([]*model.Object, len(items))
	heights := make([]float64, len(items))

	for i, item := range items {
		prefix := fmt.Sprintf("%d%s", i+1, theme.ItemIcon)
		lineOpts := append([]model.TextOption{
			model.WithSize(theme.Sizes.Small),
			model.Emphasis(prefix, color),
		}, opts...)

		objs[i] = f.Text(fmt.Sprintf("%s %s", prefix, item), lineOpts...)
		heights[i] = objs[i].Box().Height()
	}

	for i, p := range Stack(anchor, heights, distance, theme.Buff) {
		placeTopLeft(objs[i], p)
	}

	return objs, nil
}

// KeyValues lays out "key: label" lines under anchor with the "key:" part
// bold and green. Block 0 is pushed right by indents[0]; every later block
// by the change in indent against its predecessor.
func KeyValues(
	f *model.Factory,
	pairs []Pair,
	indents []float64,
	anchor model.Box,
	distance float64,
) ([]*model.Object, error) {
	if len(pairs) == 0 {
		return nil, ErrNoItems
	}

	if len(indents) != len(pairs) {
		return nil, fmt.Errorf("%w: %d pairs, %d indents", ErrIndentMismatch, len(pairs), len(indents))
	}

	theme := f.Theme()
	objs := make([]*model.Object, len(pairs))
	heights := make([]float64, len(pairs))

	for i, p := range pairs {
		key := p.Key + ":"
		objs[i] = f.Text(fmt.Sprintf("%s %s", key, p.Label),
			model.WithSize(theme.Sizes.Small),
			model.Emphasis(key, theme.Good),
		)
		heights[i] = objs[i].Box().Height()
	}

	// Vertical placement does not depend on the horizontal shifts, so the
	// offsets can be applied on top of the plain stack.
	offsets := IndentOffsets(indents)
	for i, p := range Stack(anchor, heights, distance, theme.Buff) {
		placeTopLeft(objs[i], p.Add(model.Right.Scale(offsets[i])))
	}

	return objs, nil
}
