package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/eectag/internal/ctxlog"
	"github.com/specialistvlad/eectag/internal/tag"
)

// Run builds the record from the configuration, writes it under the tag name
// and prints the absolute path of the written file. It returns that path.
func (a *App) Run(ctx context.Context) (string, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "tag", a.config.TagName, "storage_dir", a.dirs.Storage)

	record := tag.NewRecord(a.config.ConfigFile, a.config.Program, a.config.Args)
	a.logger.Debug("Record built.", "config_file", record.ConfigFile, "program", record.Program, "arg_count", len(record.Args))

	path, err := a.store.Save(ctx, a.config.TagName, record)
	if err != nil {
		return "", fmt.Errorf("failed to save tag %q: %w", a.config.TagName, err)
	}
	a.logger.Info("Tag saved.", "tag", a.config.TagName, "path", path)

	if _, err := fmt.Fprintf(a.outW, "Tag saved to %s\n", path); err != nil {
		return "", fmt.Errorf("failed to report saved tag: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return path, nil
}
