package foamslides

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/dasdy/foamslides/db"
	"github.com/dasdy/foamslides/present"
	"github.com/dasdy/foamslides/web"
	"github.com/dasdy/foamslides/web/routes"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	port        int
	dev         bool
	storagePath string
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Present the deck in a browser",
	Long: `Serve the slides over HTTP. Open /?follow=1 to have the page follow the
current slide. In dev mode the deck is rebuilt whenever the config or an asset changes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		p, err := newPresentation(ctx, storagePath)
		if err != nil {
			return err
		}
		defer p.Close()

		if dev {
			p.watch(ctx)
		}

		return p.serve(ctx, port, dev)
	},
}

// presentation is a built deck with everything the web interface needs.
type presentation struct {
	nav      *present.Navigator
	slides   *present.SlideSet
	renderer *liveRenderer
	handler  *routes.ServerHandler
	assets   fs.FS

	closers []func()
}

func newPresentation(ctx context.Context, storagePath string) (*presentation, error) {
	slides, cfg, err := buildSlides(ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := newRenderer(cfg.Theme, web.AssetURL)
	if err != nil {
		return nil, err
	}

	nav, err := present.NewNavigator(len(slides))
	if err != nil {
		return nil, err
	}

	p := &presentation{
		nav:      nav,
		slides:   present.NewSlideSet(slides),
		renderer: &liveRenderer{r: renderer},
		assets:   cfg.Assets.FS(),
	}
	p.handler = &routes.ServerHandler{
		Nav:            nav,
		Slides:         p.slides,
		Renderer:       p.renderer,
		RefreshSeconds: 1,
	}

	cache, err := openCache(cachePath)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		p.handler.Cache = cache
		p.closers = append(p.closers, cache.Close)
	}

	if storagePath != "" {
		if err := p.recordVisits(storagePath); err != nil {
			p.Close()

			return nil, err
		}
	}

	return p, nil
}

func (p *presentation) recordVisits(path string) error {
	slog.Info("Recording visits", "path", path)

	storage, err := db.ConnectDB(path)
	if err != nil {
		return fmt.Errorf("could not open %s as sqlite file: %w", path, err)
	}

	tracker, err := db.NewTransitionCounterFromDb(storage)
	if err != nil {
		storage.Close()

		return fmt.Errorf("could not create transition tracker: %w", err)
	}

	p.handler.Storage = storage
	p.handler.Tracker = tracker
	p.closers = append(p.closers, storage.Close)

	present.RecordVisits(p.nav, storage, tracker, p.slides)

	return nil
}

func (p *presentation) Close() {
	for _, c := range p.closers {
		c()
	}
}

func (p *presentation) serve(ctx context.Context, port int, dev bool) error {
	return web.StartServer(ctx, port, web.BuildServer(p.handler, p.assets, dev))
}

// rebuild builds the deck again and swaps it in. A failing build keeps the
// previous deck.
func (p *presentation) rebuild(ctx context.Context) {
	slides, cfg, err := buildSlides(ctx)
	if err != nil {
		slog.Error("Rebuild failed, keeping the previous deck", "error", err)

		return
	}

	renderer, err := newRenderer(cfg.Theme, web.AssetURL)
	if err != nil {
		slog.Error("Rebuild failed, keeping the previous deck", "error", err)

		return
	}

	p.renderer.set(renderer)
	p.slides.Set(slides)

	if err := p.nav.SetTotal(len(slides)); err != nil {
		slog.Error("Could not resize navigator", "error", err)
	}

	slog.Info("Deck rebuilt", "slides", len(slides))
}

func (p *presentation) watch(ctx context.Context) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("Config changed", "path", e.Name, "op", e.Op.String())
		p.rebuild(ctx)
	})
	viper.WatchConfig()

	if err := watchAssets(ctx, filepath.Join(assetsDir, "images"), func() { p.rebuild(ctx) }); err != nil {
		slog.Warn("Not watching assets", "error", err)
	}
}

// watchAssets calls onChange whenever a file in dir is written, created,
// removed or renamed, until ctx is done.
func watchAssets(ctx context.Context, dir string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()

		return fmt.Errorf("could not watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-watcher.Events:
				if !ok {
					return
				}

				if e.Has(fsnotify.Write) || e.Has(fsnotify.Create) || e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename) {
					slog.Info("Asset changed", "path", e.Name, "op", e.Op.String())
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				slog.Error("Asset watcher error", "error", err)
			}
		}
	}()

	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().IntVarP(&port, "port", "p", 9000, "Port on which server should be watching")
	showCmd.Flags().BoolVar(&dev, "dev", false, "Enable developer mode")
	showCmd.Flags().StringVar(&cachePath, "cache", "./render-cache.sqlite", "Render cache database, empty to disable")
	showCmd.Flags().StringVarP(&storagePath, "storage", "s", "", "Record visits into this sqlite file")
}
