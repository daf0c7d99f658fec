package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/codeword/internal/handlers"
	"github.com/vancomm/codeword/internal/middleware"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	log        *logrus.Logger
	router     *http.ServeMux
	store      handlers.Store
	hideChance float64
	basePath   string
}

func New(log *logrus.Logger, store handlers.Store, hideChance float64, basePath string) *App {
	app := &App{
		log:        log,
		router:     http.NewServeMux(),
		store:      store,
		hideChance: hideChance,
		basePath:   basePath,
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	var h http.Handler = a.router
	if a.basePath != "" {
		h = http.StripPrefix(a.basePath, h)
	}
	return middleware.Wrap(h,
		middleware.Cors(),
		middleware.Logging(a.log),
	)
}

// Serve listens on addr until ctx is cancelled, then shuts the server down.
func (a *App) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
