package seeders

import (
	"context"
	"errors"
	"os"
	"testing"

	"kartvizit.link/configs"
	"kartvizit.link/models"
	"kartvizit.link/pkg/storage"
	"kartvizit.link/repositories"
	"kartvizit.link/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedService(t *testing.T, dir string, repo repositories.ICardRepository) services.ICardService {
	t.Helper()
	store, err := storage.New(dir)
	require.NoError(t, err)
	svc, err := services.NewCardServiceFromConfig(&configs.AppConfig{
		QRMode:          configs.QRModeInline,
		QRRecoveryLevel: "medium",
		QRModuleSize:    4,
		PublicBaseURL:   "http://localhost:3000",
	}, repo, store)
	require.NoError(t, err)
	return svc
}

func TestSeedDemoCard_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryCardRepository()
	svc := newSeedService(t, t.TempDir(), repo)

	require.NoError(t, SeedDemoCard(ctx, repo, svc))
	require.NoError(t, SeedDemoCard(ctx, repo, svc))

	count, err := repo.CountCards(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

type rejectingRepo struct {
	*repositories.MemoryCardRepository
}

func (rejectingRepo) CreateCardWithLink(context.Context, *models.Card, *models.Link) error {
	return errors.New("tx aborted")
}

func TestSeedDemoCard_FailedSaveLeavesNoFiles(t *testing.T) {
	dir := t.TempDir()
	repo := rejectingRepo{repositories.NewMemoryCardRepository()}
	svc := newSeedService(t, dir, repo)

	assert.ErrorIs(t, SeedDemoCard(context.Background(), repo, svc), services.ErrCardCreationFailed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
