package repository

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/shared/db"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

func TestTicketRepository(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewTicketRepository(gormDB, 2, logger.NewNopLogger())
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty store counts zero", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("create batch across several inserts", func(t *testing.T) {
		tickets := []*ticket.Ticket{
			newTicket(t, "3", base.Add(2*time.Hour), 30),
			newTicket(t, "1", base, 10),
			newTicket(t, "2", base.Add(time.Hour), 24),
		}
		require.NoError(t, repo.CreateBatch(ctx, tickets))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("list all returns stored derived values ordered by requested", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)

		assert.Equal(t, "1", all[0].TicketID())
		assert.InDelta(t, 10.0, all[0].DurationHours(), 1e-9)
		assert.True(t, all[0].SLAMet())

		assert.Equal(t, "2", all[1].TicketID())
		assert.True(t, all[1].SLAMet())

		assert.Equal(t, "3", all[2].TicketID())
		assert.False(t, all[2].SLAMet())
		assert.Equal(t, "subject 3", *all[2].Subject())
		assert.Nil(t, all[2].Assignee())
		assert.True(t, base.Add(2*time.Hour).Equal(all[2].Requested()))
	})

	t.Run("duplicate ticket id is rejected", func(t *testing.T) {
		err := repo.CreateBatch(ctx, []*ticket.Ticket{newTicket(t, "1", base, 1)})
		assert.Error(t, err)
	})

	t.Run("delete all empties the store", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll(ctx))
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestTicketRepository_TransactionRollback(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewTicketRepository(gormDB, 1, logger.NewNopLogger())
	tm := db.NewTransactionManager(gormDB)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	boom := stderrors.New("abort")
	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.CreateBatch(txCtx, []*ticket.Ticket{newTicket(t, "1", base, 1), newTicket(t, "2", base, 2)}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportMarkerRepository(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewImportMarkerRepository(gormDB)
	ctx := context.Background()

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	first, err := ticket.NewImportMarker("a.csv", "hash-a", 2)
	require.NoError(t, err)
	first.ImportedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, first))

	second, err := ticket.NewImportMarker("b.csv", "hash-b", 5)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))

	latest, err = repo.GetLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "b.csv", latest.Source)
	assert.Equal(t, 5, latest.RowCount)
	assert.True(t, latest.Matches("hash-b"))
}
