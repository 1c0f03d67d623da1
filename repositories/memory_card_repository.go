// repositories/memory_card_repository.go
package repositories

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"kartvizit.link/models"

	"gorm.io/gorm"
)

// MemoryCardRepository veritabanı kapalıyken (DB_ENABLED=false) ve testlerde
// kullanılan, süreç belleğinde tutulan ICardRepository uygulamasıdır.
type MemoryCardRepository struct {
	mu      sync.RWMutex
	nextID  uint
	cards   map[string]models.Card // link key -> card
	usedKey map[string]struct{}    // silinenler dahil tüm anahtarlar
	now     func() time.Time
}

// NewMemoryCardRepository boş bir bellek içi repository döndürür.
func NewMemoryCardRepository() *MemoryCardRepository {
	return &MemoryCardRepository{
		cards:   make(map[string]models.Card),
		usedKey: make(map[string]struct{}),
		now:     time.Now,
	}
}

func (r *MemoryCardRepository) id() uint {
	r.nextID++
	return r.nextID
}

// CreateCardWithLink kartı ve linkini atomik olarak kaydeder.
func (r *MemoryCardRepository) CreateCardWithLink(_ context.Context, card *models.Card, link *models.Link) error {
	if card == nil || link == nil || link.Key == "" {
		return errors.New("oluşturulacak kartvizit veya link geçerli değil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.usedKey[link.Key]; taken {
		return gorm.ErrDuplicatedKey
	}

	now := r.now()
	link.ID, link.CreatedAt, link.UpdatedAt = r.id(), now, now
	card.ID, card.CreatedAt, card.UpdatedAt = r.id(), now, now
	card.LinkID = link.ID
	card.Detail.ID, card.Detail.CreatedAt, card.Detail.UpdatedAt = r.id(), now, now
	card.Detail.CardID = card.ID
	card.Link = *link

	r.usedKey[link.Key] = struct{}{}
	r.cards[link.Key] = *card
	return nil
}

// FindCardByKey anahtara ait kartın bir kopyasını döndürür.
func (r *MemoryCardRepository) FindCardByKey(_ context.Context, key string) (*models.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &card, nil
}

// KeyExists silinmiş kartların anahtarlarını da dolu sayar.
func (r *MemoryCardRepository) KeyExists(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.usedKey[key]
	return ok, nil
}

// DeleteCard kartı bellekten kaldırır; anahtar tekrar kullanılmaz.
func (r *MemoryCardRepository) DeleteCard(_ context.Context, card *models.Card) error {
	if card == nil || card.Link.Key == "" {
		return errors.New("silinecek kartvizit geçerli değil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.cards[card.Link.Key]
	if !ok || stored.ID != card.ID {
		return ErrNotFound
	}
	delete(r.cards, card.Link.Key)
	return nil
}

// FindCardsCreatedBefore verilen zamandan önce oluşturulan kartları eskiden yeniye döndürür.
func (r *MemoryCardRepository) FindCardsCreatedBefore(_ context.Context, before time.Time, limit int) ([]models.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]models.Card, 0)
	for _, card := range r.cards {
		if card.CreatedAt.Before(before) {
			cards = append(cards, card)
		}
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].ID < cards[j].ID
		}
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	return cards, nil
}

// CountCards kayıtlı kart sayısını döndürür.
func (r *MemoryCardRepository) CountCards(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.cards)), nil
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*MemoryCardRepository)(nil)
