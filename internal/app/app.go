package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gobook/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobook/internal/pkg/pkglog"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobook/internal/pkg/pkguid"
)

type App struct {
	// configuration
	config pkgconfig.Config

	// libraries
	uid pkguid.StringID

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging("info")

	app := &App{}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
