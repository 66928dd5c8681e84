package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuffylu-cyber/property-management-system/internal/domain/property"
	apperrors "github.com/nuffylu-cyber/property-management-system/internal/shared/errors"
)

func TestPropertyRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPropertyRepository(database)
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		p, err := property.NewProperty(3, "3", "1202")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, p))
		assert.NotZero(t, p.ID())

		found, err := repo.GetByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, uint(3), found.CommunityID())
		assert.Equal(t, "3", found.Building())
		assert.Equal(t, "1202", found.RoomNumber())
	})

	t.Run("unknown property", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.Nil(t, found)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("list by community ordered by building then room", func(t *testing.T) {
		units := []struct{ building, room string }{
			{"5", "0301"},
			{"3", "0104"},
			{"3", "0102"},
		}
		for _, u := range units {
			p, err := property.NewProperty(7, u.building, u.room)
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, p))
		}

		properties, err := repo.ListByCommunity(ctx, 7)
		require.NoError(t, err)
		require.Len(t, properties, 3)
		assert.Equal(t, "0102", properties[0].RoomNumber())
		assert.Equal(t, "0104", properties[1].RoomNumber())
		assert.Equal(t, "0301", properties[2].RoomNumber())
	})
}

func TestCommunityRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCommunityRepository(database)
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		c, err := property.NewCommunity("Riverside Garden", "12 Jiangbin Road")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, c))
		assert.NotZero(t, c.ID())

		found, err := repo.GetByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, "Riverside Garden", found.Name())
		assert.Equal(t, "12 Jiangbin Road", found.Address())
	})

	t.Run("list is sorted by name", func(t *testing.T) {
		for _, name := range []string{"Willow Court", "Amber Heights"} {
			c, err := property.NewCommunity(name, "somewhere")
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, c))
		}

		communities, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(communities), 3)
		assert.Equal(t, "Amber Heights", communities[0].Name())
	})
}
