package migrations

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateLinksTable public link anahtarlarının tablosunu oluşturur.
func MigrateLinksTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating links table...")
	if err := db.AutoMigrate(&models.Link{}); err != nil {
		configslog.Log.Error("Failed to migrate links table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Links table migrated successfully")
	return nil
}
