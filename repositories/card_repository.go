// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"
	"time"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kartvizit kalıcılık işlemleri için arayüz.
type ICardRepository interface {
	// CreateCardWithLink link, card ve detail kayıtlarını tek bir işlemde oluşturur.
	CreateCardWithLink(ctx context.Context, card *models.Card, link *models.Link) error
	FindCardByKey(ctx context.Context, key string) (*models.Card, error)
	KeyExists(ctx context.Context, key string) (bool, error)
	// DeleteCard kartı, detayını ve linkini birlikte siler.
	DeleteCard(ctx context.Context, card *models.Card) error
	FindCardsCreatedBefore(ctx context.Context, before time.Time, limit int) ([]models.Card, error)
	CountCards(ctx context.Context) (int64, error)
}

// CardRepository ICardRepository arayüzünü gorm ile uygular.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository(db *gorm.DB) ICardRepository {
	return &CardRepository{db: db}
}

// CreateCardWithLink önce linki, sonra kartı (detail cascade ile) oluşturur.
func (r *CardRepository) CreateCardWithLink(ctx context.Context, card *models.Card, link *models.Link) error {
	if card == nil || link == nil {
		return errors.New("oluşturulacak kartvizit veya link nil olamaz")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewLinkRepository(tx).Create(ctx, link); err != nil {
			configslog.Log.Error("Link oluşturulamadı", zap.String("key", link.Key), zap.Error(err))
			return err
		}
		card.LinkID = link.ID
		if err := tx.Create(card).Error; err != nil {
			configslog.Log.Error("Kartvizit oluşturulamadı", zap.Uint("link_id", link.ID), zap.Error(err))
			return err
		}
		card.Link = *link
		return nil
	})
}

// FindCardByKey link anahtarı ile kartviziti (Detail ve Link ile) bulur.
func (r *CardRepository) FindCardByKey(ctx context.Context, key string) (*models.Card, error) {
	link, err := NewLinkRepository(r.db).FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	var card models.Card
	err = r.db.WithContext(ctx).Preload("Detail").Where("link_id = ?", link.ID).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Tutarsız veri: Link var ama kartvizit yok", zap.Uint("link_id", link.ID))
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindCardByKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	card.Link = *link
	return &card, nil
}

// KeyExists link anahtarının kullanımda olup olmadığını kontrol eder.
func (r *CardRepository) KeyExists(ctx context.Context, key string) (bool, error) {
	return NewLinkRepository(r.db).KeyExists(ctx, key)
}

// DeleteCard kartvizit, detay ve link kayıtlarını tek bir işlemde siler.
func (r *CardRepository) DeleteCard(ctx context.Context, card *models.Card) error {
	if card == nil || card.ID == 0 {
		return errors.New("silinecek kartvizit geçerli değil")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", card.ID).Delete(&models.CardDetail{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Card{}, card.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if card.LinkID != 0 {
			if err := NewLinkRepository(tx).Delete(ctx, card.LinkID); err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}
		}
		return nil
	})
}

// FindCardsCreatedBefore saklama süresi dolmuş kartvizitleri eskiden yeniye döndürür.
func (r *CardRepository) FindCardsCreatedBefore(ctx context.Context, before time.Time, limit int) ([]models.Card, error) {
	var cards []models.Card
	query := r.db.WithContext(ctx).
		Preload("Detail").
		Preload("Link").
		Where("created_at < ?", before).
		Order("created_at asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&cards).Error; err != nil {
		configslog.Log.Error("Süresi dolmuş kartvizitler alınamadı", zap.Time("before", before), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

// CountCards toplam kartvizit sayısını döndürür.
func (r *CardRepository) CountCards(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)
