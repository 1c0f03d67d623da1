package main

import (
	"flag"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/database"

	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (demo kartviziti içerir)")
	flag.Parse()

	cfg, err := configs.LoadAppConfig()
	if err != nil {
		configslog.Log.Fatal("Uygulama ayarları geçersiz", zap.Error(err))
	}

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, cfg, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
