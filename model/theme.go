package model

import (
	"errors"
	"fmt"
)

type Color string

// Palette used by the talk.
const (
	TealA   Color = "#ACEAD7"
	GrayE   Color = "#222222"
	White   Color = "#FFFFFF"
	BlueB   Color = "#9CDCEB"
	YellowC Color = "#FFFF00"
	RedC    Color = "#FC6255"
	Green   Color = "#83C167"
	Yellow  Color = "#FFFF00"
)

var ErrInvalidTheme = errors.New("invalid theme")

// Metrics approximates text extents for a monospace face.
type Metrics struct {
	// PointsPerUnit converts font size in points to scene units.
	PointsPerUnit float64 `mapstructure:"points_per_unit"`
	// CharWidth is the advance of one terminal cell, in em.
	CharWidth float64 `mapstructure:"char_width"`
	// LineHeight is the height of one text line, in em.
	LineHeight float64 `mapstructure:"line_height"`
}

type CodeStyle struct {
	Style       string  `mapstructure:"style"`
	Background  Color   `mapstructure:"background"`
	TabWidth    int     `mapstructure:"tab_width"`
	LineSpacing float64 `mapstructure:"line_spacing"`
	Padding     float64 `mapstructure:"padding"`
	BarHeight   float64 `mapstructure:"bar_height"`
}

type Sizes struct {
	VerySmall float64 `mapstructure:"very_small"`
	Small     float64 `mapstructure:"small"`
	Mid       float64 `mapstructure:"mid"`
	Big       float64 `mapstructure:"big"`
}

// Theme carries every styling constant of the deck. It is a value type:
// copy it, override fields, and hand it to the builders.
type Theme struct {
	Font       string `mapstructure:"font"`
	Main       Color  `mapstructure:"main"`
	Background Color  `mapstructure:"background"`
	Text       Color  `mapstructure:"text"`
	Graph      Color  `mapstructure:"graph"`
	Warn       Color  `mapstructure:"warn"`
	Dot        Color  `mapstructure:"dot"`
	Good       Color  `mapstructure:"good"`
	Highlight  Color  `mapstructure:"highlight"`

	ItemIcon string  `mapstructure:"item_icon"`
	BoxBuff  float64 `mapstructure:"box_buff"`
	// Buff is the gap left by NextTo when no explicit buffer is given.
	Buff float64 `mapstructure:"buff"`
	// EdgeBuff is the margin kept by ToEdge.
	EdgeBuff float64 `mapstructure:"edge_buff"`

	Sizes   Sizes     `mapstructure:"sizes"`
	Metrics Metrics   `mapstructure:"metrics"`
	Code    CodeStyle `mapstructure:"code"`
}

func DefaultTheme() Theme {
	return Theme{
		Font:       "Comic Code Ligatures",
		Main:       TealA,
		Background: GrayE,
		Text:       White,
		Graph:      BlueB,
		Warn:       YellowC,
		Dot:        RedC,
		Good:       Green,
		Highlight:  Yellow,
		ItemIcon:   "•",
		BoxBuff:    0.3,
		Buff:       0.25,
		EdgeBuff:   0.5,
		Sizes: Sizes{
			VerySmall: 12,
			Small:     16,
			Mid:       20,
			Big:       25,
		},
		Metrics: Metrics{
			PointsPerUnit: 48,
			CharWidth:     0.6,
			LineHeight:    1.2,
		},
		Code: CodeStyle{
			Style:       "manni",
			Background:  "#F0F3F3",
			TabWidth:    4,
			LineSpacing: 0.65,
			Padding:     0.2,
			BarHeight:   0.3,
		},
	}
}

// Validate checks the numeric fields the layout code divides or multiplies by.
func (t Theme) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"sizes.very_small", t.Sizes.VerySmall},
		{"sizes.small", t.Sizes.Small},
		{"sizes.mid", t.Sizes.Mid},
		{"sizes.big", t.Sizes.Big},
		{"metrics.points_per_unit", t.Metrics.PointsPerUnit},
		{"metrics.char_width", t.Metrics.CharWidth},
		{"metrics.line_height", t.Metrics.LineHeight},
	}

	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTheme, c.name, c.value)
		}
	}

	if t.Buff < 0 || t.BoxBuff < 0 || t.EdgeBuff < 0 {
		return fmt.Errorf("%w: buffers must not be negative", ErrInvalidTheme)
	}

	if t.Code.TabWidth <= 0 {
		return fmt.Errorf("%w: code.tab_width must be positive, got %d", ErrInvalidTheme, t.Code.TabWidth)
	}

	return nil
}

// Em is the size of one em for the given font size, in scene units.
func (t Theme) Em(size float64) float64 {
	return size / t.Metrics.PointsPerUnit
}

// LineHeight is the height of one text line at the given font size.
func (t Theme) LineHeight(size float64) float64 {
	return t.Em(size) * t.Metrics.LineHeight
}

// CodeLineHeight is the distance between two listing lines. LineSpacing is
// added to a half em of glyph height.
func (t Theme) CodeLineHeight(size float64) float64 {
	return t.Em(size) * (0.5 + t.Code.LineSpacing)
}
