package handlers // handlers/qrcode paketi

import (
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
)

const linkTitle = "Link QR Kodu"

// LinkForm link QR formunun alanlarıdır.
type LinkForm struct {
	Link string `form:"link" json:"link"`
	Info string `form:"info" json:"info"`
}

// LinkHandler link QR formunu ve gönderimini yönetir.
type LinkHandler struct {
	service services.IQRCodeService
}

// NewLinkHandler yeni bir LinkHandler örneği oluşturur.
func NewLinkHandler(service services.IQRCodeService) *LinkHandler {
	return &LinkHandler{service: service}
}

// ShowForm boş link formunu gösterir.
func (h *LinkHandler) ShowForm(c *fiber.Ctx) error {
	return renderer.Render(c, kindLink.formView(), renderer.MainLayout, fiber.Map{
		"Title":    linkTitle,
		"FormData": LinkForm{},
	})
}

// Create link ve açıklamadan QR kod üretir.
func (h *LinkHandler) Create(c *fiber.Ctx) error {
	format := renderer.NegotiateResult(c)

	var form LinkForm
	if err := c.BodyParser(&form); err != nil {
		return renderFormError(c, format, kindLink, linkTitle, form, fiber.StatusBadRequest, "Geçersiz form verisi.")
	}

	res, err := h.service.LinkQR(form.Link, form.Info)
	if err != nil {
		return renderFormError(c, format, kindLink, linkTitle, form, errorStatus(err), errorMessage(err))
	}
	return sendQRResult(c, format, kindLink, linkTitle, res)
}
