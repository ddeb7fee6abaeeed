package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/eectag/internal/home"
	"github.com/specialistvlad/eectag/internal/tagstore"
)

// App encapsulates one run of the tag writer: its configuration, its own
// logger and the store rooted at the resolved storage directory.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	dirs   home.Dirs
	store  *tagstore.Store
}

// NewApp builds an App. Confirmation output goes to outW and log records to
// logW. dirs is resolved once by the caller and never re-read.
func NewApp(outW, logW io.Writer, config *Config, dirs home.Dirs) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	store, err := tagstore.New(dirs.Storage, config.WriteMode)
	if err != nil {
		return nil, err
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		dirs:   dirs,
		store:  store,
	}, nil
}

// StorageDir returns the directory tags are written to.
func (a *App) StorageDir() string {
	return a.store.Dir()
}
