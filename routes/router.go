package routes

import (
	"strings"

	"kartvizit.link/configs"
	"kartvizit.link/handlers"
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/pkg/storage"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// Services rotaların ihtiyaç duyduğu servislerdir.
type Services struct {
	Card   services.ICardService
	QRCode services.IQRCodeService
	Store  *storage.Store
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, cfg *configs.AppConfig, svc Services) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	if cfg.CSRFEnabled {
		store := configs.SetupSession(cfg.IsProduction())
		app.Use(configs.SetupCSRF(store, cfg.IsProduction(), skipCSRF))
	}

	homeHandler := handlers.NewHomeHandler()
	app.Get("/", homeHandler.Show)
	app.Get("/health", homeHandler.Health)

	// --- Rota Grupları ---
	registerQRCodeRoutes(app, svc)
	registerPublicLinkRoutes(app, svc)

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// skipCSRF token kontrolünü tarayıcı dışı istemciler için atlar. JSON gövdeler
// çapraz sitede preflight gerektirir. Origin veya Sec-Fetch-Site taşıyan
// istekler tarayıcıdan gelir ve Accept başlığından bağımsız olarak denetlenir.
func skipCSRF(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return true
	}
	if c.Get(fiber.HeaderOrigin) != "" || c.Get("Sec-Fetch-Site") != "" {
		return false
	}
	return renderer.NegotiateResult(c) != renderer.FormatHTML
}

func notFoundHandler(c *fiber.Ctx) error {
	return renderer.NotFound(c, "")
}
