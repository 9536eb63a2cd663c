package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gobook/internal/book"
	"github.com/shandysiswandi/gobook/internal/docs"
)

// initModules registers docs last so it documents every other route.
func (a *App) initModules() {
	if a.config.GetBool("modules.book.enabled") {
		book.New(book.Dependency{Router: a.router})
	}

	if a.config.GetBool("docs.enabled") {
		if err := docs.New(docs.Dependency{Config: a.config, Router: a.router}); err != nil {
			slog.Error("failed to init module docs", "error", err)
			os.Exit(1)
		}
	}
}
