package model

import "strings"

// Segment is a run of text sharing one style.
type Segment struct {
	Text  string
	Color Color
	Bold  bool
}

// Segments splits text into styled runs. Every occurrence of every span's
// Match is styled; when spans overlap the later colour wins and boldness
// accumulates. Unstyled runs carry base as their colour.
func Segments(text string, spans []Span, base Color) []Segment {
	if text == "" {
		return nil
	}

	type style struct {
		color Color
		bold  bool
	}

	styles := make([]style, len(text))
	for i := range styles {
		styles[i].color = base
	}

	for _, sp := range spans {
		if sp.Match == "" {
			continue
		}

		for off := 0; off < len(text); {
			idx := strings.Index(text[off:], sp.Match)
			if idx < 0 {
				break
			}

			start := off + idx
			for i := start; i < start+len(sp.Match); i++ {
				if sp.Color != "" {
					styles[i].color = sp.Color
				}

				styles[i].bold = styles[i].bold || sp.Bold
			}

			off = start + len(sp.Match)
		}
	}

	var (
		out   []Segment
		start int
	)

	for i := 1; i <= len(text); i++ {
		if i < len(text) && styles[i] == styles[start] {
			continue
		}

		out = append(out, Segment{Text: text[start:i], Color: styles[start].color, Bold: styles[start].bold})
		start = i
	}

	return out
}
