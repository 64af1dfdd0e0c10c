// Package tui presents the deck in a terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/foamslides/layout"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/scene"
	"github.com/mattn/go-runewidth"
)

type Navigator interface {
	Next() int
	Prev() int
	First() int
	Last() int
	Current() int
	Total() int
}

// NavigatedMsg tells the model the navigator was moved from outside, e.g. by
// a clicker.
type NavigatedMsg struct {
	Index int
}

type Model struct {
	slides []scene.Slide
	nav    Navigator
	keys   KeyMap
	help   help.Model
	styles styles
	width  int
}

func New(slides []scene.Slide, nav Navigator, theme model.Theme) Model {
	return Model{
		slides: slides,
		nav:    nav,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: newStyles(theme),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case NavigatedMsg:
		// The navigator already holds the new index, the next View shows it.
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Next):
			m.nav.Next()
		case key.Matches(msg, m.keys.Prev):
			m.nav.Prev()
		case key.Matches(msg, m.keys.First):
			m.nav.First()
		case key.Matches(msg, m.keys.Last):
			m.nav.Last()
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	idx := m.nav.Current()
	if idx >= 0 && idx < len(m.slides) {
		b.WriteString(m.renderSlide(m.slides[idx]))
	} else {
		b.WriteString(m.styles.empty.Render("no slide"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.statusBar(idx))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) statusBar(idx int) string {
	status := fmt.Sprintf("%d/%d", idx+1, m.nav.Total())
	if idx >= 0 && idx < len(m.slides) && m.slides[idx].Name != "" {
		status += "  " + m.slides[idx].Name
	}

	if m.width > 2 {
		status = runewidth.Truncate(status, m.width-2, "…")
	}

	return m.styles.status.Render(status)
}

// renderSlide lays out the end state of s top to bottom. Shapes without text
// are left out.
func (m Model) renderSlide(s scene.Slide) string {
	blocks := make([]string, 0)

	for _, o := range layout.ReadingOrder(s.Objects) {
		switch o.Kind {
		case model.KindText:
			blocks = append(blocks, renderText(o))
		case model.KindCode:
			blocks = append(blocks, m.styles.code.Render(o.Code.Source))
		case model.KindImage:
			blocks = append(blocks, m.styles.image.Render("[image: "+o.Src+"]"))
		}
	}

	if len(blocks) == 0 {
		return m.styles.empty.Render("(empty slide)")
	}

	return strings.Join(blocks, "\n")
}

func renderText(o *model.Object) string {
	var b strings.Builder

	for _, seg := range model.Segments(o.Text, o.Spans, o.Style.Fill) {
		b.WriteString(segmentStyle(seg).Render(seg.Text))
	}

	return b.String()
}
