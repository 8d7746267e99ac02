package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/astroget/nasa-explorer/internal/app"
	"github.com/astroget/nasa-explorer/internal/cli"
	"github.com/astroget/nasa-explorer/internal/config"
	"github.com/astroget/nasa-explorer/internal/download"
	"github.com/astroget/nasa-explorer/internal/export"
	"github.com/astroget/nasa-explorer/internal/nasa"
	"github.com/astroget/nasa-explorer/internal/validate"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Input errors come back as *cli.ExitError with exit code 2,
// everything else exits 1.
func run(outW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(inv.LogLevel, inv.LogFormat, os.Stderr)
	logger.Debug().Str("version", version).Msg("starting")

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			return &cli.ExitError{Code: 2, Message: err.Error()}
		}
		return err
	}

	client := nasa.NewClient(cfg.BaseURL(), cfg.APIKey(), cfg.Timeout(), logger)
	defer client.Close()

	downloader := download.NewService(cfg.OutputDir(), cfg.Timeout(), logger)
	explorer := app.New(cfg, client, export.NewExporter(logger), downloader, logger)

	ctx := context.Background()
	var status int
	switch inv.Command {
	case cli.CommandAsteroids:
		status, err = explorer.Asteroids(ctx, inv.Args[0], inv.Args[1])
	case cli.CommandAPOD:
		status, err = explorer.APOD(ctx, inv.Args[0], inv.Args[1])
	case cli.CommandMars:
		status, err = explorer.MarsPhotos(ctx, inv.Args[0], inv.Args[1])
	}

	if err != nil {
		if isInputError(err) {
			return &cli.ExitError{Code: 2, Message: err.Error()}
		}
		var statusErr *nasa.StatusError
		if errors.As(err, &statusErr) {
			logger.Error().Int("status", statusErr.Code).Msg("upstream request failed")
		}
		return err
	}

	logger.Info().Int("status", status).Msg("done")
	return nil
}

// isInputError reports whether err was caused by user input rejected before
// any network call.
func isInputError(err error) bool {
	return errors.Is(err, validate.ErrInvalidDate) ||
		errors.Is(err, validate.ErrDateOrder) ||
		errors.Is(err, validate.ErrFutureDate) ||
		errors.Is(err, validate.ErrInvalidFileName)
}

// newLogger creates the application logger. The console format writes
// human-readable lines, json writes one event per line.
func newLogger(levelStr, formatStr string, outW io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}

	w := outW
	if formatStr == "console" {
		w = zerolog.ConsoleWriter{Out: outW}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
