package repositories

import (
	"context"
	"errors"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ILinkRepository link veritabanı işlemleri için arayüz.
type ILinkRepository interface {
	Create(ctx context.Context, link *models.Link) error
	FindByKey(ctx context.Context, key string) (*models.Link, error)
	KeyExists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// LinkRepository ILinkRepository arayüzünü gorm ile uygular.
type LinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository verilen bağlantı (veya transaction) üzerinde çalışan bir repo döndürür.
func NewLinkRepository(db *gorm.DB) ILinkRepository {
	return &LinkRepository{db: db}
}

// Create yeni bir link kaydı oluşturur.
func (r *LinkRepository) Create(ctx context.Context, link *models.Link) error {
	if link == nil || link.Key == "" {
		return errors.New("oluşturulacak link geçerli değil")
	}
	return r.db.WithContext(ctx).Create(link).Error
}

// FindByKey benzersiz anahtar ile link kaydını bulur.
func (r *LinkRepository) FindByKey(ctx context.Context, key string) (*models.Link, error) {
	if key == "" {
		return nil, errors.New("aranacak link key'i boş olamaz")
	}
	var link models.Link
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("LinkRepository.FindByKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &link, nil
}

// KeyExists anahtarın daha önce kullanılıp kullanılmadığını kontrol eder.
// Silinmiş (soft delete) linklerin anahtarları da dolu sayılır.
func (r *LinkRepository) KeyExists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("kontrol edilecek link key'i boş olamaz")
	}
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&models.Link{}).Where("key = ?", key).Count(&count).Error
	if err != nil {
		configslog.Log.Error("LinkRepository.KeyExists: DB error", zap.String("key", key), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// Delete link kaydını siler (soft delete).
func (r *LinkRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("silinecek link ID'si geçersiz")
	}
	result := r.db.WithContext(ctx).Delete(&models.Link{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ ILinkRepository = (*LinkRepository)(nil)
