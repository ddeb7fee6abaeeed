package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/eectag/internal/app"
	"github.com/specialistvlad/eectag/internal/cli"
	"github.com/specialistvlad/eectag/internal/home"
)

// main is the entrypoint for the eectag command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:], os.LookupEnv, os.Environ()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternal)
	}
}

// run parses the command line, resolves the storage directory once and
// writes the tag. Every returned error is an *cli.ExitError.
func run(outW, errW io.Writer, args []string, lookup home.LookupFunc, environ []string) error {
	config, shouldExit, err := cli.Parse(args, outW, environ)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	dirs, err := home.Resolve(lookup)
	if err != nil {
		return cli.NewExitError(err)
	}

	tagApp, err := app.NewApp(outW, errW, config, dirs)
	if err != nil {
		return cli.NewExitError(err)
	}

	_, err = tagApp.Run(context.Background())
	return cli.NewExitError(err)
}
