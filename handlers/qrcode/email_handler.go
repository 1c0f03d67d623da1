package handlers // handlers/qrcode paketi

import (
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
)

const emailTitle = "E-posta QR Kodu"

// EmailForm e-posta QR formunun alanlarıdır.
type EmailForm struct {
	Email string `form:"email" json:"email"`
	Info  string `form:"info" json:"info"`
}

// EmailHandler e-posta (mailto) QR formunu ve gönderimini yönetir.
type EmailHandler struct {
	service services.IQRCodeService
}

// NewEmailHandler yeni bir EmailHandler örneği oluşturur.
func NewEmailHandler(service services.IQRCodeService) *EmailHandler {
	return &EmailHandler{service: service}
}

// ShowForm boş e-posta formunu gösterir.
func (h *EmailHandler) ShowForm(c *fiber.Ctx) error {
	return renderer.Render(c, kindEmail.formView(), renderer.MainLayout, fiber.Map{
		"Title":    emailTitle,
		"FormData": EmailForm{},
	})
}

// Create e-posta adresine mesaj açan QR kod üretir.
func (h *EmailHandler) Create(c *fiber.Ctx) error {
	format := renderer.NegotiateResult(c)

	var form EmailForm
	if err := c.BodyParser(&form); err != nil {
		return renderFormError(c, format, kindEmail, emailTitle, form, fiber.StatusBadRequest, "Geçersiz form verisi.")
	}

	res, err := h.service.EmailQR(form.Email, form.Info)
	if err != nil {
		return renderFormError(c, format, kindEmail, emailTitle, form, errorStatus(err), errorMessage(err))
	}
	return sendQRResult(c, format, kindEmail, emailTitle, res)
}
