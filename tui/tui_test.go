package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/present"
	"github.com/dasdy/foamslides/scene"
	"github.com/dasdy/foamslides/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func testSlides() []scene.Slide {
	f := model.NewFactory(model.DefaultTheme())

	title := f.Text("2.1 Write testable code", model.Bold("2.1")).Shift(model.Up.Scale(3))
	code := f.Code("class MyClass\n{\n};", "cpp")
	qr := f.Image("images/qr.png", 1, 1).Shift(model.Down.Scale(3))
	arrow := f.Arrow(model.Origin, model.Right, model.White, 0)

	return []scene.Slide{
		{Index: 0, Name: "Unit testing", Objects: []*model.Object{f.Text("Unit testing")}},
		{Index: 1, Name: "2.1 Write testable code", Objects: []*model.Object{qr, arrow, code, title}},
		{Index: 2, Name: "", Objects: nil},
	}
}

func newModel(t *testing.T) (tui.Model, *present.Navigator) {
	t.Helper()

	nav, err := present.NewNavigator(3)
	require.NoError(t, err)

	return tui.New(testSlides(), nav, model.DefaultTheme()), nav
}

func update(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()

	next, _ := m.Update(msg)

	return next
}

func TestModel_Navigation(t *testing.T) {
	testCases := []struct {
		name     string
		keys     []tea.KeyMsg
		expected int
	}{
		{"l moves forward", []tea.KeyMsg{runes("l")}, 1},
		{"space moves forward", []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune(" ")}}, 1},
		{"right arrow", []tea.KeyMsg{{Type: tea.KeyRight}}, 1},
		{"enter", []tea.KeyMsg{{Type: tea.KeyEnter}}, 1},
		{"stops at the last slide", []tea.KeyMsg{runes("l"), runes("l"), runes("l")}, 2},
		{"h goes back", []tea.KeyMsg{runes("l"), runes("l"), runes("h")}, 1},
		{"G jumps to the end", []tea.KeyMsg{runes("G")}, 2},
		{"g jumps to the start", []tea.KeyMsg{runes("G"), runes("g")}, 0},
		{"end and home", []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyLeft}, {Type: tea.KeyHome}}, 0},
		{"unbound key", []tea.KeyMsg{runes("x")}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var m tea.Model

			m, nav := newModel(t)

			for _, k := range tc.keys {
				m = update(t, m, k)
			}

			assert.Equal(t, tc.expected, nav.Current())
		})
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t)

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_View(t *testing.T) {
	var m tea.Model

	m, nav := newModel(t)

	view := m.View()
	assert.Contains(t, view, "Unit testing")
	assert.Contains(t, view, "1/3")

	require.NoError(t, nav.Goto(1))
	m = update(t, m, tui.NavigatedMsg{Index: 1})

	view = m.View()
	assert.Contains(t, view, "2.1 Write testable code")
	assert.Contains(t, view, "class MyClass")
	assert.Contains(t, view, "[image: images/qr.png]")
	assert.Contains(t, view, "2/3")

	title := strings.Index(view, "2.1 Write testable code")
	code := strings.Index(view, "class MyClass")
	image := strings.Index(view, "[image: images/qr.png]")
	assert.Less(t, title, code, "title is above the code")
	assert.Less(t, code, image, "code is above the image")

	nav.Last()
	assert.Contains(t, m.View(), "(empty slide)")
}

func TestModel_Help(t *testing.T) {
	var m tea.Model

	m, _ = newModel(t)

	assert.NotContains(t, m.View(), "first")

	m = update(t, m, runes("?"))
	assert.Contains(t, m.View(), "first")

	m = update(t, m, runes("?"))
	assert.NotContains(t, m.View(), "first")
}

func TestModel_NarrowStatusBar(t *testing.T) {
	var m tea.Model

	m, nav := newModel(t)
	require.NoError(t, nav.Goto(1))

	m = update(t, m, tea.WindowSizeMsg{Width: 12, Height: 10})

	assert.Contains(t, m.View(), "…")
}
