package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobook/internal/pkg/pkglog"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobook/internal/pkg/pkguid"
)

const defaultShutdownTimeout = 10 * time.Second

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func (a *App) initConfig() {
	cfg, err := pkgconfig.NewViper(configPath())
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	pkglog.InitLogging(cfg.GetString("log.level"))

	a.config = cfg
}

func (a *App) initLibraries() {
	uid, err := pkguid.New(a.config.GetString("server.request_id"))
	if err != nil {
		slog.Error("failed to init request id generator", "error", err)
		os.Exit(1)
	}

	a.uid = uid
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uid)

	origins := a.config.GetArray("cors.allowed_origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderCorrelationID},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    int(a.config.GetInt("server.max_header_bytes")),
	}
}

// ShutdownTimeout is how long Stop may wait for in-flight requests.
func (a *App) ShutdownTimeout() time.Duration {
	if d := a.config.GetDuration("server.shutdown_timeout"); d > 0 {
		return d
	}
	return defaultShutdownTimeout
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
