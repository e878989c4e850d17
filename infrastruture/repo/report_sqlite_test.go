package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteReportRepo(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenSQLiteReportRepo(filepath.Join(t.TempDir(), "reports", "cleaner.db"))
	require.NoError(t, err)
	defer repo.Close()

	timestamp := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)

	t.Run("save assigns sequential ids", func(t *testing.T) {
		first := &domain.Report{Timestamp: timestamp, Commands: 2, Result: 7, Duration: 0.004}
		second := &domain.Report{Timestamp: timestamp, Commands: 4, Result: 20, Duration: 0.5}

		id1, err := repo.Save(ctx, first)
		require.NoError(t, err)
		id2, err := repo.Save(ctx, second)
		require.NoError(t, err)

		assert.Equal(t, id1, first.ID)
		assert.Equal(t, id1+1, id2)
	})

	t.Run("round trip", func(t *testing.T) {
		report := &domain.Report{Timestamp: timestamp, Commands: 1, Result: 5, Duration: 0.1}
		id, err := repo.Save(ctx, report)
		require.NoError(t, err)

		got, err := repo.ByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID)
		assert.True(t, timestamp.Equal(got.Timestamp))
		assert.Equal(t, 1, got.Commands)
		assert.Equal(t, 5, got.Result)
		assert.Equal(t, 0.1, got.Duration)
	})

	t.Run("missing report", func(t *testing.T) {
		got, err := repo.ByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
