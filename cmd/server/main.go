package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sleeper-history/internal/config"
	"sleeper-history/internal/constants"
	fxmodules "sleeper-history/internal/fx"
	"sleeper-history/internal/middleware"
	"sleeper-history/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Provide(newRouter, newHTTPServer),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

// newRouter mounts the history procedures behind request ids and CORS.
func newRouter(historyServer *server.HistoryServer, logger zerolog.Logger) http.Handler {
	path, handler := historyServer.Handler()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	mux := http.NewServeMux()
	mux.Handle(path, middleware.RequestID(logger)(c.Handler(handler)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func newHTTPServer(lc fx.Lifecycle, router http.Handler, cfg *config.Config, logger zerolog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: constants.ExternalAPITimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info().
				Str("addr", ln.Addr().String()).
				Str("league_id", cfg.LeagueID).
				Int("start_season", cfg.StartSeason).
				Msg("history server listening")

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("history server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error().Err(err).Msg("graceful shutdown failed")
				return err
			}
			logger.Info().Msg("history server stopped")
			return nil
		},
	})

	return srv
}
