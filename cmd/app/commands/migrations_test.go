package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pointward/gateway/internal/testutil"
)

func TestRunMigrations(t *testing.T) {
	logger := testutil.DiscardLogger()

	t.Run("invalid-driver", func(t *testing.T) {
		err := RunMigrations(logger, "invalid", "postgres://localhost")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported database driver")
	})

	t.Run("invalid-connection-string", func(t *testing.T) {
		err := RunMigrations(logger, "postgres", "invalid-connection-string")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})
}
