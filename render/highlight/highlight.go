package highlight

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

type Class string

const (
	Plain   Class = "plain"
	Keyword Class = "keyword"
	Type    Class = "type"
	String  Class = "string"
	Number  Class = "number"
	Comment Class = "comment"
	Preproc Class = "preproc"
)

type Token struct {
	Text  string
	Class Class
}

type Line []Token

// Text joins the tokens of the line back together.
func (l Line) Text() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.Text)
	}

	return b.String()
}

// Named node types and the class they get.
const classQuery = `
(comment) @comment
(string_literal) @string
(raw_string_literal) @string
(char_literal) @string
(system_lib_string) @string
(number_literal) @number
(primitive_type) @type
(type_identifier) @type
(namespace_identifier) @type
(true) @keyword
(false) @keyword
(this) @keyword
(null) @keyword
`

// Highlighter splits source code into classified tokens, line by line.
type Highlighter struct {
	lang  *sitter.Language
	query *sitter.Query
}

func New() (*Highlighter, error) {
	lang := cpp.GetLanguage()

	q, err := sitter.NewQuery([]byte(classQuery), lang)
	if err != nil {
		return nil, fmt.Errorf("could not compile highlight query: %w", err)
	}

	return &Highlighter{lang: lang, query: q}, nil
}

// Supports reports whether language gets real highlighting.
func Supports(language string) bool {
	switch strings.ToLower(language) {
	case "cpp", "c++", "cxx", "cc", "c":
		return true
	default:
		return false
	}
}

// Highlight classifies source. Languages without a grammar come back as
// plain lines.
func (h *Highlighter) Highlight(ctx context.Context, source, language string) ([]Line, error) {
	if !Supports(language) {
		return plainLines(source), nil
	}

	src := []byte(source)

	parser := sitter.NewParser()
	parser.SetLanguage(h.lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s source: %w", language, err)
	}

	classes := make([]Class, len(src))
	for i := range classes {
		classes[i] = Plain
	}

	markAnonymous(tree.RootNode(), classes)

	qc := sitter.NewQueryCursor()
	qc.Exec(h.query, tree.RootNode())

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}

		for _, c := range m.Captures {
			class := Class(h.query.CaptureNameForId(c.Index))
			fill(classes, c.Node.StartByte(), c.Node.EndByte(), class)
		}
	}

	return split(source, classes), nil
}

// markAnonymous classifies unnamed leaves: words are keywords and
// directives such as #include are preprocessor tokens.
func markAnonymous(n *sitter.Node, classes []Class) {
	count := int(n.ChildCount())
	if count == 0 {
		if n.IsNamed() {
			return
		}

		typ := n.Type()

		switch {
		case strings.HasPrefix(typ, "#"):
			fill(classes, n.StartByte(), n.EndByte(), Preproc)
		case isWord(typ):
			fill(classes, n.StartByte(), n.EndByte(), Keyword)
		}

		return
	}

	for i := range count {
		markAnonymous(n.Child(i), classes)
	}
}

func isWord(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}

func fill(classes []Class, start, end uint32, class Class) {
	for i := int(start); i < int(end) && i < len(classes); i++ {
		classes[i] = class
	}
}

// split cuts the source into lines of same-class runs.
func split(source string, classes []Class) []Line {
	lines := []Line{nil}

	start := 0
	flush := func(end int) {
		if end > start {
			cur := &lines[len(lines)-1]
			*cur = append(*cur, Token{Text: source[start:end], Class: classes[start]})
		}
	}

	for i := 0; i < len(source); i++ {
		switch {
		case source[i] == '\n':
			flush(i)
			lines = append(lines, nil)
			start = i + 1
		case i > start && classes[i] != classes[start]:
			flush(i)
			start = i
		}
	}

	flush(len(source))

	return lines
}

func plainLines(source string) []Line {
	raw := strings.Split(source, "\n")
	out := make([]Line, len(raw))

	for i, l := range raw {
		if l != "" {
			out[i] = Line{{Text: l, Class: Plain}}
		}
	}

	return out
}
