//go:build unit

package db_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"library-backend/internal/infra/db"
	"library-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	t.Run("missing atlas binary is reported with context", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Migration.AtlasPath = filepath.Join(t.TempDir(), "atlas")

		err := db.Migrate(context.Background(), cfg.DB, cfg.Migration, slog.Default())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize atlas client")
	})
}
