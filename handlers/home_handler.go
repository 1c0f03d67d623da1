package handlers

import (
	"kartvizit.link/pkg/renderer"

	"github.com/gofiber/fiber/v2"
)

// HomeHandler üç QR üreticisine bağlantı veren ana sayfayı gösterir.
type HomeHandler struct{}

// NewHomeHandler yeni bir HomeHandler örneği oluşturur.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Show ana sayfayı render eder.
func (h *HomeHandler) Show(c *fiber.Ctx) error {
	return renderer.Render(c, "home", renderer.MainLayout, fiber.Map{
		"Title": "Ana Sayfa",
	})
}

// Health basit canlılık kontrolü.
func (h *HomeHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
