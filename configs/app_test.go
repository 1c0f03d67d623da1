package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	for _, key := range []string{"QR_MODE", "QR_RECOVERY_LEVEL", "QR_MODULE_SIZE", "PHOTO_MAX_DIMENSION",
		"PHOTO_JPEG_QUALITY", "OUTPUT_DIR", "MAX_UPLOAD_MB", "PUBLIC_BASE_URL", "OUTPUT_RETENTION_HOURS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, QRModeInline, cfg.QRMode)
	assert.Equal(t, "medium", cfg.QRRecoveryLevel)
	assert.Equal(t, 10, cfg.QRModuleSize)
	assert.Equal(t, 300, cfg.PhotoMaxDimension)
	assert.Equal(t, 80, cfg.PhotoJPEGQuality)
	assert.Equal(t, 8*1024*1024, cfg.MaxUploadBytes)
	assert.Equal(t, 30*24*time.Hour, cfg.OutputRetention)
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	t.Setenv("QR_MODE", "LINK")
	t.Setenv("PUBLIC_BASE_URL", "https://kartvizit.example/")
	t.Setenv("QR_MODULE_SIZE", "6")
	t.Setenv("CSRF_ENABLED", "false")
	t.Setenv("APP_PORT", "8080")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, QRModeLink, cfg.QRMode)
	assert.Equal(t, "https://kartvizit.example", cfg.PublicBaseURL)
	assert.Equal(t, 6, cfg.QRModuleSize)
	assert.False(t, cfg.CSRFEnabled)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown qr mode", "QR_MODE", "hologram"},
		{"unknown recovery level", "QR_RECOVERY_LEVEL", "extreme"},
		{"zero module size", "QR_MODULE_SIZE", "0"},
		{"quality out of range", "PHOTO_JPEG_QUALITY", "101"},
		{"negative dimension", "PHOTO_MAX_DIMENSION", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadAppConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvInt_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_NUMBER", "twelve")
	assert.Equal(t, 12, GetEnvInt("SOME_NUMBER", 12))
}
