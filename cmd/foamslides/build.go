package foamslides

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dasdy/foamslides/db"
	"github.com/dasdy/foamslides/render"
	"github.com/dasdy/foamslides/scene"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	outDir    string
	cachePath string
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render every slide to SVG",
	Long:  `Build the deck and write one SVG per slide into the output directory, reusing the render cache.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		slides, cfg, err := buildSlides(ctx)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("could not create %s: %w", outDir, err)
		}

		assetsRel, err := relativeAssets(outDir, assetsDir)
		if err != nil {
			return err
		}

		renderer, err := newRenderer(cfg.Theme, func(src string) string {
			return filepath.ToSlash(filepath.Join(assetsRel, src))
		})
		if err != nil {
			return err
		}

		storage, err := openCache(cachePath)
		if err != nil {
			return err
		}

		var cache db.Cache
		if storage != nil {
			defer storage.Close()

			cache = storage
		}

		bar := progressbar.Default(int64(len(slides)), "rendering")

		hits := 0

		for _, s := range slides {
			if err := ctx.Err(); err != nil {
				return err
			}

			hit, err := writeSlide(cmd, renderer, cache, s)
			if err != nil {
				return err
			}

			if hit {
				hits++
			}

			_ = bar.Add(1)
		}

		slog.Info("Slides written", "out", outDir, "slides", len(slides), "cached", hits)

		return nil
	},
}

func relativeAssets(out, assets string) (string, error) {
	absOut, err := filepath.Abs(out)
	if err != nil {
		return "", err
	}

	absAssets, err := filepath.Abs(assets)
	if err != nil {
		return "", err
	}

	return filepath.Rel(absOut, absAssets)
}

// writeSlide renders s, or takes it from the cache, and writes it to the
// output directory. It reports whether the cache had it.
func writeSlide(cmd *cobra.Command, renderer *render.Renderer, cache db.Cache, s scene.Slide) (bool, error) {
	var (
		svg []byte
		hit bool
		key string
		err error
	)

	if cache != nil {
		key, err = render.Key(renderer.Theme(), s)
		if err != nil {
			return false, err
		}

		svg, hit, err = cache.Get(key)
		if err != nil {
			slog.Warn("Render cache lookup failed", "slide", s.Index, "error", err)
		}
	}

	if !hit {
		svg, err = renderer.RenderSlide(cmd.Context(), s)
		if err != nil {
			return false, err
		}

		if cache != nil {
			if err := cache.Put(key, svg); err != nil {
				slog.Warn("Could not store rendered slide", "slide", s.Index, "error", err)
			}
		}
	}

	path := filepath.Join(outDir, fmt.Sprintf("slide-%03d.svg", s.Index))
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return false, fmt.Errorf("could not write %s: %w", path, err)
	}

	return hit, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&outDir, "out", "o", "./slides", "Output directory for the SVG files")
	buildCmd.Flags().StringVar(&cachePath, "cache", "./render-cache.sqlite", "Render cache database, empty to disable")
}
