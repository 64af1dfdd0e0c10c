package deck

import (
	"fmt"
	"io"
	"strings"

	"github.com/dasdy/foamslides/layout"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
	"gopkg.in/yaml.v3"
)

// Entry summarises one slide.
type Entry struct {
	Index    int      `yaml:"index"`
	Section  string   `yaml:"section"`
	Steps    int      `yaml:"steps"`
	Actions  int      `yaml:"actions"`
	Text     []string `yaml:"text,omitempty"`
	Listings []string `yaml:"listings,omitempty"`
	Images   []string `yaml:"images,omitempty"`
}

// Outline lists the visible content of every slide in reading order.
func Outline(slides []scene.Slide) []Entry {
	out := make([]Entry, 0, len(slides))

	for _, s := range slides {
		e := Entry{Index: s.Index, Section: s.Name, Steps: len(s.Steps)}
		for _, st := range s.Steps {
			e.Actions += len(st.Actions)
		}

		for _, o := range layout.ReadingOrder(s.Objects) {
			switch o.Kind {
			case model.KindText:
				e.Text = append(e.Text, o.Text)
			case model.KindCode:
				if o.Code != nil {
					e.Listings = append(e.Listings, listingSummary(o.Code))
				}
			case model.KindImage:
				e.Images = append(e.Images, o.Src)
			}
		}

		out = append(out, e)
	}

	return out
}

func listingSummary(c *model.Code) string {
	first, _, _ := strings.Cut(c.Source, "\n")

	return fmt.Sprintf("%s, %d lines: %s", c.Language, strings.Count(c.Source, "\n")+1, strings.TrimSpace(first))
}

// WriteOutline writes the outline of slides as YAML.
func WriteOutline(w io.Writer, slides []scene.Slide) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(Outline(slides)); err != nil {
		return fmt.Errorf("could not encode outline: %w", err)
	}

	return enc.Close()
}
