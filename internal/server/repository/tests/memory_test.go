package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/errors"
)

func TestMemoryRecords_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRecords(2)

	first, second, third := sampleRecord(), sampleRecord(), sampleRecord()
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	got, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, third.ID, got[0].ID)
	require.Equal(t, second.ID, got[1].ID)

	_, err = repo.Get(ctx, uuid.MustParse(first.ID))
	require.ErrorIs(t, err, serr.ErrRecordNotFound)

	rec, err := repo.Get(ctx, uuid.MustParse(second.ID))
	require.NoError(t, err)
	require.Equal(t, second, rec)

	require.NoError(t, repo.Delete(ctx, uuid.MustParse(second.ID)))
	require.ErrorIs(t, repo.Delete(ctx, uuid.MustParse(second.ID)), serr.ErrRecordNotFound)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.List(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, repo.Ping(ctx))
}
