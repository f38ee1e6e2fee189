package targ

import (
	"github.com/datatug/targ/pkg/files"
	"go.uber.org/zap"
)

// SetupApp puts a browser over the archive tree as the application root.
func SetupApp(app App, archiveName string, forest []files.Entry, logger *zap.Logger) *Browser {
	browser := NewBrowser(app, archiveName, forest, WithBrowserLogger(logger))
	app.SetRoot(browser, true)
	app.SetFocus(browser.table)
	return browser
}
