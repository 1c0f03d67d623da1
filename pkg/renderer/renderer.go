package renderer

import (
	"net/http"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Yanıt biçimleri
const (
	FormatHTML = "text/html"
	FormatJSON = "application/json"
	FormatPNG  = "image/png"
)

const (
	MainLayout  = "layouts/main_layout"
	ErrorLayout = "layouts/error_layout"
)

// Render şablonu ortak verilerle (AppName, CsrfToken) birlikte işler.
// status verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["AppName"]; !ok {
		data["AppName"] = c.App().Config().AppName
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals(configs.CSRFContextKey)
	}

	if err := c.Status(code).Render(view, data, layout); err != nil {
		configslog.Log.Error("Şablon işlenemedi", zap.String("view", view), zap.Error(err))
		return err
	}
	return nil
}

// NegotiateResult form gönderimlerinin yanıt biçimini seçer. Accept başlığı
// yoksa veya */* ise PNG döner; tarayıcılar text/html ile sayfa alır.
func NegotiateResult(c *fiber.Ctx) string {
	if c.Get(fiber.HeaderAccept) == "" {
		return FormatPNG
	}
	switch c.Accepts(FormatPNG, FormatJSON, FormatHTML) {
	case FormatJSON:
		return FormatJSON
	case FormatHTML:
		return FormatHTML
	default:
		return FormatPNG
	}
}

// SendPNG görseli indirilebilir ek olarak gönderir.
func SendPNG(c *fiber.Ctx, png []byte, filename string) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, FormatPNG)
	return c.Status(fiber.StatusOK).Send(png)
}

// Error hatayı istemcinin beklediği biçimde döndürür. HTML istemcileri için
// formu yeniden göstermek handler'ın işidir.
func Error(c *fiber.Ctx, format string, status int, message string) error {
	if format == FormatJSON {
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
	return c.Status(status).SendString(message)
}

// NotFound 404 sayfasını (veya JSON hatasını) döndürür.
func NotFound(c *fiber.Ctx, message string) error {
	if c.Accepts(FormatJSON, FormatHTML) == FormatJSON {
		if message == "" {
			message = "Kaynak bulunamadı"
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
	}
	return Render(c, "errors/404", ErrorLayout, fiber.Map{
		"Title":   "Sayfa Bulunamadı",
		"Message": message,
	}, fiber.StatusNotFound)
}

// ServerError 500 sayfasını döndürür.
func ServerError(c *fiber.Ctx, message string) error {
	if c.Accepts(FormatJSON, FormatHTML) == FormatJSON {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
	}
	return Render(c, "errors/500", ErrorLayout, fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	}, fiber.StatusInternalServerError)
}
