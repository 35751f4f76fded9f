package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/ndsweep/ndsweep-server/internal/app"
	"github.com/ndsweep/ndsweep-server/internal/config"
	"github.com/ndsweep/ndsweep-server/migrations"
)

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	if err := app.New(logger, migrations.FS).Start(ctx); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
