package database

import (
	"context"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/database/migrations"
	"kartvizit.link/database/seeders"
	"kartvizit.link/pkg/storage"
	"kartvizit.link/repositories"
	"kartvizit.link/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyonları tek bir transaction içinde çalıştırır. Seed adımı
// commit sonrasında çalışır; demo kartvizit kendi transaction'ında kaydedilir
// ve kayıt başarısız olursa yazılan dosyalar silinir.
func Initialize(db *gorm.DB, cfg *configs.AppConfig, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		if !migrateInTransaction(db) {
			return
		}
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(db, cfg); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// migrateInTransaction migrasyonları çalıştırır ve commit eder. Hata olursa
// işlem geri alınır ve false döner.
func migrateInTransaction(db *gorm.DB) bool {
	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return false
	}

	committed := false
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if !committed {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.")
			if rbErr := tx.Rollback().Error; rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
	if err := RunMigrationsInOrder(tx); err != nil {
		configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
		return false
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return false
	}
	committed = true
	configslog.SLog.Info("Migrasyonlar tamamlandı.")
	return true
}

// RunMigrationsInOrder tabloları yabancı anahtar sırasına göre oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> Link migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateLinksTable(db); err != nil {
		configslog.Log.Error("Links tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Link migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Card migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCardsTables(db); err != nil {
		configslog.Log.Error("Cards tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Card migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders demo kartviziti (yoksa) oluşturur.
func CheckAndRunSeeders(db *gorm.DB, cfg *configs.AppConfig) error {
	store, err := storage.New(cfg.OutputDir)
	if err != nil {
		return err
	}
	repo := repositories.NewCardRepository(db)
	svc, err := services.NewCardServiceFromConfig(cfg, repo, store)
	if err != nil {
		return err
	}

	configslog.SLog.Info(" -> Demo kartvizit seeder çalıştırılıyor...")
	if err := seeders.SeedDemoCard(context.Background(), repo, svc); err != nil {
		configslog.Log.Error("Demo kartvizit seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Demo kartvizit seeder tamamlandı.")
	return nil
}
