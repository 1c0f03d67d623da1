package configs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"kartvizit.link/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// QR kod içerik modları
const (
	QRModeInline = "inline" // vCard metni (fotoğrafsız) doğrudan QR'a gömülür
	QRModeLink   = "link"   // QR, yayınlanan vCard dosyasının adresini taşır
)

// AppConfig uygulamanın çalışma zamanı ayarlarını tutar.
type AppConfig struct {
	Env           string
	Host          string
	Port          string
	Name          string
	PublicBaseURL string

	OutputDir       string
	OutputRetention time.Duration
	MaxUploadBytes  int

	QRMode          string
	QRRecoveryLevel string
	QRModuleSize    int

	PhotoMaxDimension int
	PhotoJPEGQuality  int

	EmailQRSubject string
	CSRFEnabled    bool
	DBEnabled      bool
}

// LoadEnv .env dosyasını (varsa) ortam değişkenlerine yükler.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			configslog.Log.Warn(".env dosyası okunamadı", zap.Error(err))
			return
		}
		configslog.SLog.Debug(".env dosyası bulunamadı, ortam değişkenleri kullanılacak")
	}
}

// LoadAppConfig ortam değişkenlerinden AppConfig oluşturur ve doğrular.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Env:               GetEnv("APP_ENV", "development"),
		Host:              GetEnv("APP_HOST", "0.0.0.0"),
		Port:              GetEnv("APP_PORT", "3000"),
		Name:              GetEnv("APP_NAME", "Kartvizit QR"),
		PublicBaseURL:     strings.TrimRight(GetEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		OutputDir:         GetEnv("OUTPUT_DIR", "static/generated"),
		OutputRetention:   time.Duration(GetEnvInt("OUTPUT_RETENTION_HOURS", 24*30)) * time.Hour,
		MaxUploadBytes:    GetEnvInt("MAX_UPLOAD_MB", 8) * 1024 * 1024,
		QRMode:            strings.ToLower(GetEnv("QR_MODE", QRModeInline)),
		QRRecoveryLevel:   strings.ToLower(GetEnv("QR_RECOVERY_LEVEL", "medium")),
		QRModuleSize:      GetEnvInt("QR_MODULE_SIZE", 10),
		PhotoMaxDimension: GetEnvInt("PHOTO_MAX_DIMENSION", 300),
		PhotoJPEGQuality:  GetEnvInt("PHOTO_JPEG_QUALITY", 80),
		EmailQRSubject:    GetEnv("EMAIL_QR_SUBJECT", "QR koddan gelen bilgi"),
		CSRFEnabled:       GetEnvBool("CSRF_ENABLED", true),
		DBEnabled:         GetEnvBool("DB_ENABLED", true),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ayarların tutarlılığını kontrol eder.
func (c *AppConfig) Validate() error {
	if c.QRMode != QRModeInline && c.QRMode != QRModeLink {
		return fmt.Errorf("geçersiz QR_MODE: %q (inline veya link olmalı)", c.QRMode)
	}
	switch c.QRRecoveryLevel {
	case "low", "medium", "high", "highest":
	default:
		return fmt.Errorf("geçersiz QR_RECOVERY_LEVEL: %q", c.QRRecoveryLevel)
	}
	if c.QRModuleSize <= 0 {
		return errors.New("QR_MODULE_SIZE pozitif olmalı")
	}
	if c.PhotoMaxDimension <= 0 {
		return errors.New("PHOTO_MAX_DIMENSION pozitif olmalı")
	}
	if c.PhotoJPEGQuality < 1 || c.PhotoJPEGQuality > 100 {
		return errors.New("PHOTO_JPEG_QUALITY 1 ile 100 arasında olmalı")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_MB pozitif olmalı")
	}
	if c.OutputDir == "" {
		return errors.New("OUTPUT_DIR boş olamaz")
	}
	if c.QRMode == QRModeLink && c.PublicBaseURL == "" {
		return errors.New("link modunda PUBLIC_BASE_URL zorunludur")
	}
	return nil
}

// Addr sunucunun dinleyeceği adresi döndürür.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// IsProduction üretim ortamında çalışılıp çalışılmadığını bildirir.
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// GetEnv ortam değişkenini okur, boşsa varsayılanı döndürür.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// GetEnvInt tamsayı ortam değişkenini okur.
func GetEnvInt(key string, fallback int) int {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz sayısal ortam değişkeni, varsayılan kullanılıyor",
			zap.String("key", key), zap.String("value", raw), zap.Int("default", fallback))
		return fallback
	}
	return value
}

// GetEnvBool mantıksal ortam değişkenini okur.
func GetEnvBool(key string, fallback bool) bool {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz mantıksal ortam değişkeni, varsayılan kullanılıyor",
			zap.String("key", key), zap.String("value", raw), zap.Bool("default", fallback))
		return fallback
	}
	return value
}
