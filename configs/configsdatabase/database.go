package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"kartvizit.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// InitDB PostgreSQL bağlantısını kurar. Bağlantı kurulamazsa uygulama durur.
func InitDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "kartvizit"),
		getEnv("DB_SSLMODE", "disable"),
		getEnv("DB_TIMEZONE", "Europe/Istanbul"),
	)

	logLevel := logger.Warn
	if getEnv("APP_ENV", "development") != "production" {
		logLevel = logger.Info
	}

	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantı havuzu alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (%s:%s/%s)",
		getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432"), getEnv("DB_NAME", "kartvizit"))
}

// GetDB aktif bağlantıyı döndürür.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("Veritabanı başlatılmadan GetDB çağrıldı")
	}
	return db
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı.")
}
