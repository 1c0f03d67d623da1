package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapısal loglama için, SLog formatlı (Infof vb.) loglama için kullanılır.
// InitLogger çağrılana kadar nop logger'dır, testler ek ayar gerektirmez.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger APP_ENV değerine göre zap logger'ını kurar.
func InitLogger() {
	var cfg zap.Config
	if strings.ToLower(os.Getenv("APP_ENV")) == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		// Logger kurulamazsa uygulama çalışmaya devam etmemeli
		panic("zap logger oluşturulamadı: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını yazar.
func SyncLogger() {
	_ = Log.Sync()
}
