package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/pkg/qrencoder"
	"kartvizit.link/pkg/storage"
	"kartvizit.link/repositories"
	"kartvizit.link/routes"
	"kartvizit.link/services"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.LoadAppConfig()
	if err != nil {
		configslog.Log.Fatal("Uygulama ayarları geçersiz", zap.Error(err))
	}

	store, err := storage.New(cfg.OutputDir)
	if err != nil {
		configslog.Log.Fatal("Çıktı dizini hazırlanamadı", zap.String("dir", cfg.OutputDir), zap.Error(err))
	}

	var cardRepo repositories.ICardRepository
	if cfg.DBEnabled {
		configsdatabase.InitDB()
		defer configsdatabase.CloseDB()
		cardRepo = repositories.NewCardRepository(configsdatabase.GetDB())
	} else {
		configslog.SLog.Warn("DB_ENABLED=false: kartvizitler yalnızca bellekte tutulacak")
		cardRepo = repositories.NewMemoryCardRepository()
	}

	cardService, err := services.NewCardServiceFromConfig(cfg, cardRepo, store)
	if err != nil {
		configslog.Log.Fatal("Kartvizit servisi oluşturulamadı", zap.Error(err))
	}
	encoder, err := qrencoder.New(cfg.QRRecoveryLevel, cfg.QRModuleSize)
	if err != nil {
		configslog.Log.Fatal("QR kodlayıcı oluşturulamadı", zap.Error(err))
	}

	app := configs.NewFiberApp(cfg)
	routes.SetupRoutes(app, cfg, routes.Services{
		Card:   cardService,
		QRCode: services.NewQRCodeService(encoder, cfg.EmailQRSubject),
		Store:  store,
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("%s %s adresinde başlatılıyor (QR modu: %s, çıktı: %s)", cfg.Name, cfg.Addr(), cfg.QRMode, store.Dir())
	if err := app.Listen(cfg.Addr()); err != nil {
		configslog.Log.Error("Sunucu başlatılamadı", zap.Error(err))
	}
	configslog.SLog.Info("Sunucu durduruldu.")
}
