package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"highway-booking/cmd/bootstrap"
	"highway-booking/cmd/bootstrap/components"
	"highway-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

const seedTimeout = 30 * time.Second

// seed replaces the whole catalog (and every booking) with the sample experiences.
func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		components.PersistenceModule,
		fx.Provide(commands.NewCatalogCommands),
		fx.Invoke(run),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	// start so the pool's stop hook is registered as running, then close it
	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	if err := app.Stop(context.Background()); err != nil {
		slog.Warn("failed to close resources", "error", err)
	}
}

func run(cmds commands.CatalogCommands, logger *slog.Logger) error {
	exps, err := buildCatalog(sampleCatalog)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	ids, err := cmds.ReplaceCatalog(ctx, exps)
	if err != nil {
		return err
	}
	logger.Info("seeded experiences", "count", len(ids))
	return nil
}
