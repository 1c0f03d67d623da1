package main

import (
	"context"
	"flag"
	"time"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/pkg/storage"
	"kartvizit.link/repositories"
	"kartvizit.link/services"

	"go.uber.org/zap"
)

// sweep saklama süresini aşmış kartvizitleri ve çıktı dizinindeki eski
// dosyaları temizler. Cron ile periyodik çalıştırılmak üzere tasarlanmıştır.
func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.LoadAppConfig()
	if err != nil {
		configslog.Log.Fatal("Uygulama ayarları geçersiz", zap.Error(err))
	}

	olderThan := flag.Duration("older-than", cfg.OutputRetention, "Bu süreden eski kartvizit ve dosyaları sil")
	filesOnly := flag.Bool("files-only", false, "Veritabanına dokunmadan yalnızca çıktı dizinini temizle")
	timeout := flag.Duration("timeout", 5*time.Minute, "Temizlik için azami süre")
	flag.Parse()

	if *olderThan <= 0 {
		configslog.Log.Fatal("older-than pozitif olmalı", zap.Duration("older_than", *olderThan))
	}

	store, err := storage.New(cfg.OutputDir)
	if err != nil {
		configslog.Log.Fatal("Çıktı dizini açılamadı", zap.String("dir", cfg.OutputDir), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if !*filesOnly && cfg.DBEnabled {
		configsdatabase.InitDB()
		defer configsdatabase.CloseDB()

		svc, err := services.NewCardServiceFromConfig(cfg, repositories.NewCardRepository(configsdatabase.GetDB()), store)
		if err != nil {
			configslog.Log.Fatal("Kartvizit servisi oluşturulamadı", zap.Error(err))
		}
		purged, err := svc.PurgeExpired(ctx, *olderThan)
		if err != nil {
			configslog.Log.Error("Kartvizitler temizlenirken hata oluştu", zap.Int("purged", purged), zap.Error(err))
		}
		configslog.SLog.Infof("%d kartvizit silindi.", purged)
	}

	// Kayıtlardan bağımsız kalmış dosyalar (bellek modu, yarım yazımlar) da silinir
	removed, err := store.Sweep(*olderThan, time.Now())
	if err != nil {
		configslog.Log.Error("Çıktı dizini temizlenirken hata oluştu", zap.Int("removed", removed), zap.Error(err))
	}
	configslog.SLog.Infof("%d dosya silindi (%s).", removed, store.Dir())
}
