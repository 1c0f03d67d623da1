package configs

import (
	"errors"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewFiberApp şablon motoru ve gövde limiti ayarlanmış bir Fiber uygulaması oluşturur.
func NewFiberApp(cfg *AppConfig) *fiber.App {
	engine := views.NewEngine()

	return fiber.New(fiber.Config{
		AppName:      cfg.Name,
		Views:        engine,
		BodyLimit:    cfg.MaxUploadBytes,
		ErrorHandler: errorHandler,
	})
}

// errorHandler yakalanmamış hataları loglar ve düz metin yanıt döner.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Beklenmeyen bir hata oluştu."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code == fiber.StatusRequestEntityTooLarge {
		message = "Yüklenen dosya çok büyük."
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenirken hata", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).SendString(message)
}
