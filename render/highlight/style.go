package highlight

import "fmt"

type Style struct {
	Color  string
	Bold   bool
	Italic bool
}

// Palette maps token classes to styles.
type Palette map[Class]Style

// Manni is the light "manni" palette listings are drawn with.
var Manni = Palette{
	Plain:   {Color: "#000000"},
	Keyword: {Color: "#006699", Bold: true},
	Type:    {Color: "#007788", Bold: true},
	String:  {Color: "#CC3300"},
	Number:  {Color: "#FF6600"},
	Comment: {Color: "#0099FF", Italic: true},
	Preproc: {Color: "#009999"},
}

// Monokai is a dark alternative.
var Monokai = Palette{
	Plain:   {Color: "#F8F8F2"},
	Keyword: {Color: "#66D9EF"},
	Type:    {Color: "#66D9EF"},
	String:  {Color: "#E6DB74"},
	Number:  {Color: "#AE81FF"},
	Comment: {Color: "#75715E"},
	Preproc: {Color: "#F92672"},
}

// Lookup returns the palette registered under name.
func Lookup(name string) (Palette, error) {
	switch name {
	case "manni", "":
		return Manni, nil
	case "monokai":
		return Monokai, nil
	default:
		return nil, fmt.Errorf("unknown code style %q", name)
	}
}

// Of returns the style of class, falling back to Plain.
func (p Palette) Of(class Class) Style {
	if s, ok := p[class]; ok {
		return s
	}

	return p[Plain]
}
