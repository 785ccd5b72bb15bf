package db

import (
	"context"
	"log/slog"

	"library-backend/internal/pkg/config"
	"library-backend/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies every pending file under cfg.Dir using the atlas binary.
func Migrate(ctx context.Context, dbCfg config.DBConfig, cfg config.MigrationConfig, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.AtlasPath)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: cfg.Dir,
	})
	if err != nil {
		return errs.Wrapf(err, "failed to apply migrations from %s", cfg.Dir)
	}

	for _, f := range res.Applied {
		logger.Info("migration applied", "file", f.Name)
	}
	logger.Info("database is up to date",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))
	return nil
}
