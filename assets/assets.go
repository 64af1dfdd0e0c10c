package assets

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrMissing     = errors.New("asset missing")
	ErrUnsupported = errors.New("unsupported image")
)

// Images used by the talk, relative to the asset directory.
const (
	Logo        = "images/nhr-tu-logo.png"
	FoamUTQR    = "images/foamUT-qr.png"
	BlastAMR    = "images/bamr.png"
	Reflections = "images/reflections.png"
	SmartSim    = "images/smartsim.png"
	UserCircle  = "images/user-circle.svg"
)

// Required lists every asset the deck loads.
func Required() []string {
	return []string{Logo, FoamUTQR, BlastAMR, Reflections, SmartSim, UserCircle}
}

// Resolver looks assets up in a file system rooted at the asset directory.
type Resolver struct {
	fsys fs.FS
}

func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{fsys: fsys}
}

// Dir opens the asset directory at dir. Relative paths are taken from the
// working directory.
func Dir(dir string) (*Resolver, error) {
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("could not resolve asset dir %s: %w", dir, err)
		}

		dir = abs
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("could not open asset dir %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("asset dir %s is not a directory", dir)
	}

	slog.Info("Using asset directory", "path", dir)

	return NewResolver(os.DirFS(dir)), nil
}

func (r *Resolver) FS() fs.FS { return r.fsys }

// Clean turns "./images/x.png" style names into fs.FS names.
func Clean(name string) string {
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(name)), "/")
}

func (r *Resolver) Open(name string) (fs.File, error) {
	f, err := r.fsys.Open(Clean(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, name)
		}

		return nil, fmt.Errorf("could not open asset %s: %w", name, err)
	}

	return f, nil
}

func (r *Resolver) Exists(name string) bool {
	info, err := fs.Stat(r.fsys, Clean(name))

	return err == nil && !info.IsDir()
}

// Missing returns the names that do not resolve to a file, in input order.
func (r *Resolver) Missing(names ...string) []string {
	var out []string

	for _, n := range names {
		if !r.Exists(n) {
			out = append(out, n)
		}
	}

	return out
}

// ImageSize reads the pixel size of a raster image, or the declared size of
// an SVG document.
func (r *Resolver) ImageSize(name string) (int, int, error) {
	f, err := r.Open(name)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	if strings.EqualFold(path.Ext(name), ".svg") {
		return svgSize(f, name)
	}

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %w", ErrUnsupported, name, err)
	}

	return cfg.Width, cfg.Height, nil
}

func svgSize(rd io.Reader, name string) (int, int, error) {
	dec := xml.NewDecoder(rd)

	for {
		tok, err := dec.Token()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %s: no svg element: %w", ErrUnsupported, name, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "svg" {
			continue
		}

		var (
			w, h    float64
			viewBox string
		)

		for _, a := range start.Attr {
			switch a.Name.Local {
			case "width":
				w = parseLength(a.Value)
			case "height":
				h = parseLength(a.Value)
			case "viewBox":
				viewBox = a.Value
			}
		}

		if (w <= 0 || h <= 0) && viewBox != "" {
			fields := strings.FieldsFunc(viewBox, func(r rune) bool { return r == ' ' || r == ',' })
			if len(fields) == 4 {
				w = parseLength(fields[2])
				h = parseLength(fields[3])
			}
		}

		if w <= 0 || h <= 0 {
			return 0, 0, fmt.Errorf("%w: %s: svg without size", ErrUnsupported, name)
		}

		return int(w), int(h), nil
	}
}

func parseLength(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}
