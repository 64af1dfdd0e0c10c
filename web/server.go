// Package web serves the deck to a browser.
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/foamslides/web/routes"
)

const shutdownTimeout = 5 * time.Second

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// AssetURL is the href images use for an asset path.
func AssetURL(src string) string {
	return "/assets/" + src
}

func BuildServer(handler *routes.ServerHandler, assets fs.FS, dev bool) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /assets/",
		disableCacheInDevMode(dev,
			http.StripPrefix("/assets",
				http.FileServer(http.FS(assets)))))

	mux.Handle("GET /{$}", disableCacheInDevMode(dev, http.HandlerFunc(handler.CurrentHandle)))
	mux.Handle("GET /slide", disableCacheInDevMode(dev, http.HandlerFunc(handler.SlideHandle)))
	mux.Handle("GET /svg", disableCacheInDevMode(dev, http.HandlerFunc(handler.SVGHandle)))
	mux.Handle("GET /stats", http.HandlerFunc(handler.StatsHandle))

	mux.Handle("POST /next", handler.NextHandle())
	mux.Handle("POST /prev", handler.PrevHandle())
	mux.Handle("POST /first", handler.FirstHandle())
	mux.Handle("POST /last", handler.LastHandle())
	mux.Handle("POST /goto", http.HandlerFunc(handler.GotoHandle))

	return mux
}

// StartServer serves h on port until ctx is done.
func StartServer(ctx context.Context, port int, h http.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Could not shut down server", "error", err)
		}
	}()

	slog.Info("Running interface", "port", port)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
