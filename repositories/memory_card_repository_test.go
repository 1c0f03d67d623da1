package repositories

import (
	"context"
	"testing"
	"time"

	"kartvizit.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCard(first string) *models.Card {
	return &models.Card{
		IsEnabled: true,
		Detail:    models.CardDetail{FirstName: first, VCardFile: first + "-1.vcf"},
	}
}

func TestMemoryCardRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCardRepository()

	card := newCard("ayse")
	require.NoError(t, repo.CreateCardWithLink(ctx, card, &models.Link{Key: "abcdefghjkmn"}))
	assert.NotZero(t, card.ID)
	assert.NotZero(t, card.LinkID)
	assert.Equal(t, card.ID, card.Detail.CardID)

	found, err := repo.FindCardByKey(ctx, "abcdefghjkmn")
	require.NoError(t, err)
	assert.Equal(t, "ayse", found.Detail.FirstName)
	assert.Equal(t, "abcdefghjkmn", found.Link.Key)

	// Dönen kopya üzerinde yapılan değişiklik kaydı etkilemez
	found.Detail.FirstName = "changed"
	again, err := repo.FindCardByKey(ctx, "abcdefghjkmn")
	require.NoError(t, err)
	assert.Equal(t, "ayse", again.Detail.FirstName)

	_, err = repo.FindCardByKey(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCardRepository_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCardRepository()

	require.NoError(t, repo.CreateCardWithLink(ctx, newCard("a"), &models.Link{Key: "samekey00001"}))
	err := repo.CreateCardWithLink(ctx, newCard("b"), &models.Link{Key: "samekey00001"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	count, err := repo.CountCards(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryCardRepository_DeleteKeepsKeyReserved(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCardRepository()

	card := newCard("ayse")
	require.NoError(t, repo.CreateCardWithLink(ctx, card, &models.Link{Key: "deletedkey01"}))
	require.NoError(t, repo.DeleteCard(ctx, card))

	_, err := repo.FindCardByKey(ctx, "deletedkey01")
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := repo.KeyExists(ctx, "deletedkey01")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, repo.DeleteCard(ctx, card), ErrNotFound)
}

func TestMemoryCardRepository_FindCardsCreatedBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCardRepository()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, key := range []string{"key000000001", "key000000002", "key000000003"} {
		at := base.Add(time.Duration(i) * time.Hour)
		repo.now = func() time.Time { return at }
		require.NoError(t, repo.CreateCardWithLink(ctx, newCard(key), &models.Link{Key: key}))
	}

	cards, err := repo.FindCardsCreatedBefore(ctx, base.Add(90*time.Minute), 0)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "key000000001", cards[0].Link.Key)
	assert.Equal(t, "key000000002", cards[1].Link.Key)

	cards, err = repo.FindCardsCreatedBefore(ctx, base.Add(24*time.Hour), 1)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "key000000001", cards[0].Link.Key)
}
