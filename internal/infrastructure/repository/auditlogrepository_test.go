package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
	vo "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance/valueobjects"
)

func TestAuditLogRepository_Append(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAuditLogRepository(database)
	ctx := context.Background()

	t.Run("append assigns an id", func(t *testing.T) {
		entry, err := maintenance.NewAuditEntry(1, "admin", vo.ActionAssigned, "assigned to Wang Gong", nil)
		require.NoError(t, err)

		err = repo.Append(ctx, entry)
		assert.NoError(t, err)
		assert.NotZero(t, entry.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		entry, err := maintenance.NewAuditEntry(2, "Wang Gong", vo.ActionCompleted,
			"replaced the valve", []string{"img/result.jpg"})
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, entry))

		entries, err := repo.ListByTicketID(ctx, 2)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entry.ID(), entries[0].ID())
		assert.Equal(t, "Wang Gong", entries[0].Operator())
		assert.Equal(t, vo.ActionCompleted, entries[0].Action())
		assert.Equal(t, "replaced the valve", entries[0].Description())
		assert.Equal(t, []string{"img/result.jpg"}, entries[0].Images())
	})
}

func TestAuditLogRepository_ListByTicketID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAuditLogRepository(database)
	ctx := context.Background()

	t.Run("entries come back in append order", func(t *testing.T) {
		actions := []vo.Action{vo.ActionAssigned, vo.ActionStarted, vo.ActionCompleted, vo.ActionClosed}
		for _, a := range actions {
			entry, err := maintenance.NewAuditEntry(7, "admin", a, a.String(), nil)
			require.NoError(t, err)
			require.NoError(t, repo.Append(ctx, entry))
		}

		entries, err := repo.ListByTicketID(ctx, 7)
		require.NoError(t, err)
		require.Len(t, entries, 4)
		for i, a := range actions {
			assert.Equal(t, a, entries[i].Action())
		}
		assert.NoError(t, vo.ValidateTrail([]vo.Action{
			entries[0].Action(), entries[1].Action(), entries[2].Action(), entries[3].Action(),
		}))
	})

	t.Run("entries are scoped to their ticket", func(t *testing.T) {
		entry, err := maintenance.NewAuditEntry(8, "admin", vo.ActionClosed, "withdrawn by reporter", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, entry))

		entries, err := repo.ListByTicketID(ctx, 8)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, uint(8), entries[0].TicketID())
	})

	t.Run("ticket with no history yields an empty slice", func(t *testing.T) {
		entries, err := repo.ListByTicketID(ctx, 99999)
		assert.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
