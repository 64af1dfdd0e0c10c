package foamslides

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dasdy/foamslides/assets"
	"github.com/dasdy/foamslides/config"
	"github.com/dasdy/foamslides/db"
	"github.com/dasdy/foamslides/deck"
	"github.com/dasdy/foamslides/model"
	"github.com/dasdy/foamslides/render"
	"github.com/dasdy/foamslides/render/highlight"
	"github.com/dasdy/foamslides/scene"
	"github.com/spf13/viper"
)

func loadDeckConfig() (deck.Config, error) {
	theme, err := config.LoadTheme(viper.GetViper())
	if err != nil {
		return deck.Config{}, err
	}

	res, err := assets.Dir(assetsDir)
	if err != nil {
		return deck.Config{}, err
	}

	return deck.Config{Theme: theme, Assets: res, Stepwise: stepwise}, nil
}

func buildSlides(ctx context.Context) ([]scene.Slide, deck.Config, error) {
	cfg, err := loadDeckConfig()
	if err != nil {
		return nil, deck.Config{}, err
	}

	slides, err := deck.Build(ctx, cfg)
	if err != nil {
		return nil, deck.Config{}, fmt.Errorf("could not build deck: %w", err)
	}

	slog.Info("Deck built", "slides", len(slides))

	return slides, cfg, nil
}

func newRenderer(theme model.Theme, assetURL func(string) string) (*render.Renderer, error) {
	h, err := highlight.New()
	if err != nil {
		return nil, err
	}

	r, err := render.New(theme, h)
	if err != nil {
		return nil, err
	}

	r.AssetURL = assetURL

	return r, nil
}

// openCache opens the render cache, or returns nil when path is empty.
func openCache(path string) (*db.SQLiteStorage, error) {
	if path == "" {
		return nil, nil
	}

	storage, err := db.ConnectDB(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", path, err)
	}

	return storage, nil
}

// liveRenderer lets a rebuilt deck swap the renderer under running handlers.
type liveRenderer struct {
	stateLock sync.RWMutex
	r         *render.Renderer
}

func (l *liveRenderer) set(r *render.Renderer) {
	l.stateLock.Lock()
	defer l.stateLock.Unlock()

	l.r = r
}

func (l *liveRenderer) get() *render.Renderer {
	l.stateLock.RLock()
	defer l.stateLock.RUnlock()

	return l.r
}

func (l *liveRenderer) Theme() model.Theme {
	return l.get().Theme()
}

func (l *liveRenderer) RenderSlide(ctx context.Context, s scene.Slide) ([]byte, error) {
	return l.get().RenderSlide(ctx, s)
}
