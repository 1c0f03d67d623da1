// services/card_service.go
package services

import (
	"context"
	"errors"
	"io"
	"time"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/imageproc"
	"kartvizit.link/pkg/qrencoder"
	"kartvizit.link/pkg/storage"
	"kartvizit.link/pkg/vcard"
	"kartvizit.link/repositories"
	"kartvizit.link/utils"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound          CardServiceError = "kartvizit bulunamadı"
	ErrCardFirstNameRequired CardServiceError = "isim alanı zorunludur"
	ErrCardPhotoInvalid      CardServiceError = "fotoğraf işlenemedi, lütfen JPEG veya PNG bir görsel yükleyin"
	ErrCardQRTooLong         CardServiceError = "bilgiler QR koda sığmayacak kadar uzun"
	ErrCardFileWriteFailed   CardServiceError = "kartvizit dosyaları kaydedilemedi"
	ErrCardCreationFailed    CardServiceError = "kartvizit oluşturulamadı"
	ErrCardForbidden         CardServiceError = "bu işlem için yetkiniz yok"
	ErrCardDeletionFailed    CardServiceError = "kartvizit silinemedi"
	ErrCrdLinkCreationFailed CardServiceError = "kartvizit için link oluşturulamadı"
)

const (
	maxKeyAttempts  = 5
	purgeBatchSize  = 100
	photoMediaType  = "JPEG"
	vcardPathSuffix = "/vcard"
)

// CardResult yeni oluşturulan kartvizit ve üretilen çıktılardır.
// ManageToken yalnızca burada açık haliyle bulunur, veritabanında özeti tutulur.
type CardResult struct {
	Card        *models.Card
	LinkKey     string
	ManageToken string
	VCardFile   string
	QRFile      string
	PhotoFile   string
	QRPNG       []byte
	QRPayload   string
}

// ICardService kartvizit işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, detail models.CardDetail, photo io.Reader) (*CardResult, error)
	GetCardByKey(ctx context.Context, key string) (*models.Card, error) // Public erişim
	VCardForCard(card *models.Card) ([]byte, error)
	DeleteCard(ctx context.Context, key, manageToken string) error
	PurgeExpired(ctx context.Context, olderThan time.Duration) (int, error)
}

// CardServiceOptions QR içeriğinin nasıl oluşturulacağını belirler.
type CardServiceOptions struct {
	QRMode        string // configs.QRModeInline veya configs.QRModeLink
	PublicBaseURL string
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo      repositories.ICardRepository
	store     *storage.Store
	processor *imageproc.Processor
	encoder   *qrencoder.Encoder
	opts      CardServiceOptions

	now        func() time.Time
	bcryptCost int
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService(
	repo repositories.ICardRepository,
	store *storage.Store,
	processor *imageproc.Processor,
	encoder *qrencoder.Encoder,
	opts CardServiceOptions,
) ICardService {
	if opts.QRMode == "" {
		opts.QRMode = configs.QRModeInline
	}
	return &CardService{
		repo:       repo,
		store:      store,
		processor:  processor,
		encoder:    encoder,
		opts:       opts,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// NewCardServiceFromConfig uygulama ayarlarına göre görsel işleyici ve QR
// kodlayıcıyı kurarak bir CardService oluşturur.
func NewCardServiceFromConfig(cfg *configs.AppConfig, repo repositories.ICardRepository, store *storage.Store) (ICardService, error) {
	encoder, err := qrencoder.New(cfg.QRRecoveryLevel, cfg.QRModuleSize)
	if err != nil {
		return nil, err
	}
	processor := imageproc.NewProcessor(cfg.PhotoMaxDimension, cfg.PhotoJPEGQuality)
	return NewCardService(repo, store, processor, encoder, CardServiceOptions{
		QRMode:        cfg.QRMode,
		PublicBaseURL: cfg.PublicBaseURL,
	}), nil
}

// --- Yardımcı Metodlar ---

// ValidateCardDetail temel validasyonları yapar.
func ValidateCardDetail(detail models.CardDetail) error {
	if detail.FirstName == "" {
		return ErrCardFirstNameRequired
	}
	return nil
}

// ContactFromDetail kayıtlı detaydan vCard kişisini oluşturur.
func ContactFromDetail(d models.CardDetail) vcard.Contact {
	return vcard.Contact{
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Phone:        d.Phone,
		Email:        d.Email,
		Organization: d.Company,
		Title:        d.Title,
		Address:      d.Address,
		Website:      d.Website,
	}
}

// CardVCardURL link modunda QR kodun taşıdığı adrestir.
func CardVCardURL(baseURL, key string) string {
	return baseURL + "/c/" + key + vcardPathSuffix
}

func (s *CardService) generateLinkKey(ctx context.Context) (string, error) {
	for i := 0; i < maxKeyAttempts; i++ {
		key, err := utils.GenerateSecureRandomString(models.LinkKeyLength)
		if err != nil {
			return "", err
		}
		exists, err := s.repo.KeyExists(ctx, key)
		if err != nil {
			configslog.Log.Error("Link key benzersizlik kontrolü hatası", zap.Error(err))
			return "", err
		}
		if !exists {
			return key, nil
		}
		configslog.Log.Warn("Link key çakışması, yeniden deneniyor...", zap.String("key", key))
	}
	return "", ErrCrdLinkCreationFailed
}

func (s *CardService) qrPayload(contact vcard.Contact, key string) string {
	if s.opts.QRMode == configs.QRModeLink {
		return CardVCardURL(s.opts.PublicBaseURL, key)
	}
	return string(vcard.Encode(contact.WithoutPhoto()))
}

// writeFiles dosyaları sırayla yazar; biri başarısız olursa yazılanlar geri alınır.
func (s *CardService) writeFiles(files map[string][]byte, order []string) error {
	written := make([]string, 0, len(order))
	for _, name := range order {
		if err := s.store.Write(name, files[name]); err != nil {
			if rmErr := s.store.Remove(written...); rmErr != nil {
				err = multierr.Append(err, rmErr)
			}
			return err
		}
		written = append(written, name)
	}
	return nil
}

// --- Servis Metodları ---

// CreateCard formdan gelen bilgilerle vCard, QR kod ve (varsa) fotoğraf
// dosyalarını üretir, ardından link ve kartviziti tek bir işlemde kaydeder.
// Doğrulama hatalarında hiçbir dosya yazılmaz.
func (s *CardService) CreateCard(ctx context.Context, detail models.CardDetail, photo io.Reader) (*CardResult, error) {
	// 1. Girdi Validasyonu
	detail.Trim()
	if err := ValidateCardDetail(detail); err != nil {
		return nil, err
	}
	detail.BaseModel = models.BaseModel{}
	detail.CardID = 0
	// Dosya adları yalnızca bu kartvizit için üretilenlerdir
	detail.PhotoFile, detail.VCardFile, detail.QRFile = "", "", ""

	contact := ContactFromDetail(detail)

	// 2. Fotoğraf (opsiyonel)
	var photoJPEG []byte
	if photo != nil {
		processed, err := s.processor.Process(photo)
		if err != nil {
			configslog.Log.Warn("Fotoğraf işlenemedi", zap.Error(err))
			return nil, ErrCardPhotoInvalid
		}
		photoJPEG = processed
		contact.Photo = &vcard.Photo{Data: photoJPEG, Type: photoMediaType}
	}

	// 3. Link key ve yönetim anahtarı
	linkKey, err := s.generateLinkKey(ctx)
	if err != nil {
		return nil, ErrCrdLinkCreationFailed
	}
	manageToken := uuid.NewString()
	tokenHash, err := bcrypt.GenerateFromPassword([]byte(manageToken), s.bcryptCost)
	if err != nil {
		configslog.Log.Error("Yönetim anahtarı özetlenemedi", zap.Error(err))
		return nil, ErrCardCreationFailed
	}

	// 4. QR kod
	payload := s.qrPayload(contact, linkKey)
	qrPNG, err := s.encoder.PNG(payload)
	if err != nil {
		if errors.Is(err, qrencoder.ErrContentTooLong) {
			return nil, ErrCardQRTooLong
		}
		configslog.Log.Error("QR kod üretilemedi", zap.Error(err))
		return nil, ErrCardCreationFailed
	}

	// 5. Dosyalar
	base := storage.BaseName(detail.FirstName, detail.LastName)
	detail.VCardFile = base + storage.ExtVCard
	detail.QRFile = base + storage.ExtQR
	files := map[string][]byte{
		detail.VCardFile: vcard.Encode(contact),
		detail.QRFile:    qrPNG,
	}
	order := []string{detail.VCardFile, detail.QRFile}
	if photoJPEG != nil {
		detail.PhotoFile = base + storage.ExtPhoto
		files[detail.PhotoFile] = photoJPEG
		order = append([]string{detail.PhotoFile}, order...)
	}
	if err := s.writeFiles(files, order); err != nil {
		configslog.Log.Error("Kartvizit dosyaları yazılamadı", zap.String("base", base), zap.Error(err))
		return nil, ErrCardFileWriteFailed
	}

	// 6. Kayıt
	link := &models.Link{Key: linkKey}
	card := &models.Card{
		IsEnabled:       true,
		ManageTokenHash: string(tokenHash),
		Detail:          detail,
	}
	if err := s.repo.CreateCardWithLink(ctx, card, link); err != nil {
		configslog.Log.Error("Kartvizit kaydedilemedi", zap.String("key", linkKey), zap.Error(err))
		if rmErr := s.store.Remove(detail.Files()...); rmErr != nil {
			configslog.Log.Warn("Yazılan dosyalar geri alınamadı", zap.Error(rmErr))
		}
		return nil, ErrCardCreationFailed
	}

	configslog.SLog.Infof("Kartvizit oluşturuldu: CardID %d, LinkKey: %s, Dosya: %s", card.ID, linkKey, base)
	return &CardResult{
		Card:        card,
		LinkKey:     linkKey,
		ManageToken: manageToken,
		VCardFile:   detail.VCardFile,
		QRFile:      detail.QRFile,
		PhotoFile:   detail.PhotoFile,
		QRPNG:       qrPNG,
		QRPayload:   payload,
	}, nil
}

// GetCardByKey public sayfa için aktif kartviziti getirir.
func (s *CardService) GetCardByKey(ctx context.Context, key string) (*models.Card, error) {
	if len(key) != models.LinkKeyLength || !utils.IsKeyCharset(key) {
		return nil, ErrCardNotFound
	}
	card, err := s.repo.FindCardByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("Kartvizit getirilemedi", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	if !card.IsEnabled {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// VCardForCard kayıtlı bilgilerden fotoğraflı vCard üretir.
// Fotoğraf dosyası artık yoksa vCard fotoğrafsız döner.
func (s *CardService) VCardForCard(card *models.Card) ([]byte, error) {
	if card == nil {
		return nil, ErrCardNotFound
	}
	contact := ContactFromDetail(card.Detail)
	if card.Detail.PhotoFile != "" {
		data, err := s.store.Read(card.Detail.PhotoFile)
		switch {
		case err == nil:
			contact.Photo = &vcard.Photo{Data: data, Type: photoMediaType}
		case errors.Is(err, storage.ErrNotFound):
			configslog.Log.Warn("Kartvizit fotoğrafı bulunamadı", zap.String("file", card.Detail.PhotoFile))
		default:
			return nil, err
		}
	}
	return vcard.Encode(contact), nil
}

// DeleteCard yönetim anahtarı doğruysa kartviziti ve dosyalarını siler.
func (s *CardService) DeleteCard(ctx context.Context, key, manageToken string) error {
	card, err := s.GetCardByKey(ctx, key)
	if err != nil {
		return err
	}
	if manageToken == "" || bcrypt.CompareHashAndPassword([]byte(card.ManageTokenHash), []byte(manageToken)) != nil {
		configslog.Log.Warn("Geçersiz yönetim anahtarı ile silme denemesi", zap.String("key", key))
		return ErrCardForbidden
	}
	return s.deleteCard(ctx, card)
}

func (s *CardService) deleteCard(ctx context.Context, card *models.Card) error {
	if err := s.repo.DeleteCard(ctx, card); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCardNotFound
		}
		configslog.Log.Error("Kartvizit silinemedi", zap.Uint("card_id", card.ID), zap.Error(err))
		return ErrCardDeletionFailed
	}
	if err := s.store.Remove(card.Detail.Files()...); err != nil {
		// Kayıt silindi; kalan dosyalar süpürücü tarafından temizlenir
		configslog.Log.Warn("Kartvizit dosyaları silinemedi", zap.Uint("card_id", card.ID), zap.Error(err))
	}
	configslog.SLog.Infof("Kartvizit silindi: CardID %d, LinkKey: %s", card.ID, card.Link.Key)
	return nil
}

// PurgeExpired saklama süresini aşmış kartvizitleri ve dosyalarını siler,
// silinen kartvizit sayısını döndürür.
func (s *CardService) PurgeExpired(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.now().Add(-olderThan)
	purged := 0
	var errs error
	for {
		if err := ctx.Err(); err != nil {
			return purged, multierr.Append(errs, err)
		}
		cards, err := s.repo.FindCardsCreatedBefore(ctx, cutoff, purgeBatchSize)
		if err != nil {
			return purged, multierr.Append(errs, err)
		}
		failed := 0
		for i := range cards {
			if err := s.deleteCard(ctx, &cards[i]); err != nil && !errors.Is(err, ErrCardNotFound) {
				errs = multierr.Append(errs, err)
				failed++
				continue
			}
			purged++
		}
		// Silinemeyen kayıtlar her turda yeniden gelir; sonsuz döngüye girme
		if len(cards) < purgeBatchSize || failed > 0 {
			break
		}
	}
	if purged > 0 {
		configslog.SLog.Infof("%d süresi dolmuş kartvizit temizlendi (kesim: %s)", purged, cutoff.Format(time.RFC3339))
	}
	return purged, errs
}

// Arayüz uyumluluğu kontrolü
var _ ICardService = (*CardService)(nil)
