package configs

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CSRFContextKey şablonlara CSRF token'ını taşıyan Locals anahtarıdır.
const CSRFContextKey = "csrf"

// SetupSession bellek içi session store'u oluşturur.
func SetupSession(secure bool) *session.Store {
	return session.New(session.Config{
		Expiration:     2 * time.Hour,
		KeyLookup:      "cookie:kartvizit_session",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}

// SetupCSRF session tabanlı CSRF middleware'ini döndürür.
// Formlar token'ı "_csrf" alanında göndermelidir. skip true dönen istekler
// (HTML beklemeyen API istemcileri) kontrol edilmez.
func SetupCSRF(store *session.Store, secure bool, skip func(c *fiber.Ctx) bool) fiber.Handler {
	return csrf.New(csrf.Config{
		Next:           skip,
		KeyLookup:      "form:_csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		Expiration:     time.Hour,
		ContextKey:     CSRFContextKey,
		Session:        store,
		SessionKey:     "fiber.csrf.token",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusForbidden).SendString("Geçersiz veya süresi dolmuş form. Lütfen sayfayı yenileyip tekrar deneyin.")
		},
	})
}
