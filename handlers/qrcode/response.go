package handlers // handlers/qrcode paketi

import (
	"encoding/base64"
	"errors"
	"html/template"

	"kartvizit.link/pkg/renderer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
)

// qrKind üretilen QR kodun türüdür; indirme adı ve form adresi bundan türetilir.
type qrKind string

const (
	kindVCard qrKind = "vcard"
	kindLink  qrKind = "link"
	kindEmail qrKind = "email"
)

func (k qrKind) downloadName() string { return "qrcode_" + string(k) + ".png" }
func (k qrKind) formURL() string      { return "/qrcode-" + string(k) }
func (k qrKind) formView() string     { return "qrcode/" + string(k) }

func pngDataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// errorStatus servis hatalarını HTTP durum kodlarına eşler.
func errorStatus(err error) int {
	var cardErr services.CardServiceError
	if errors.As(err, &cardErr) {
		switch cardErr {
		case services.ErrCardFirstNameRequired, services.ErrCardPhotoInvalid, services.ErrCardQRTooLong:
			return fiber.StatusBadRequest
		}
		return fiber.StatusInternalServerError
	}
	var qrErr services.QRCodeServiceError
	if errors.As(err, &qrErr) {
		if qrErr == services.ErrQRGenerateFailed {
			return fiber.StatusInternalServerError
		}
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// errorMessage iç hataların ayrıntısını istemciye göstermez.
func errorMessage(err error) string {
	var cardErr services.CardServiceError
	var qrErr services.QRCodeServiceError
	if errors.As(err, &cardErr) || errors.As(err, &qrErr) {
		return err.Error()
	}
	return "Beklenmeyen bir hata oluştu."
}

// renderFormError HTML istemcilerine formu hata mesajıyla tekrar gösterir,
// diğerlerine JSON veya düz metin döner.
func renderFormError(c *fiber.Ctx, format string, kind qrKind, title string, formData any, status int, message string) error {
	if format != renderer.FormatHTML {
		return renderer.Error(c, format, status, message)
	}
	return renderer.Render(c, kind.formView(), renderer.MainLayout, fiber.Map{
		"Title":    title,
		"Error":    message,
		"FormData": formData,
	}, status)
}

// sendQRResult dosyaya yazılmayan (link ve e-posta) QR kodlarının yanıtıdır.
func sendQRResult(c *fiber.Ctx, format string, kind qrKind, title string, res *services.QRCodeResult) error {
	switch format {
	case renderer.FormatJSON:
		return c.JSON(fiber.Map{
			"payload": res.Payload,
			"image":   pngDataURI(res.PNG),
		})
	case renderer.FormatHTML:
		return renderer.Render(c, "qrcode/result", renderer.MainLayout, fiber.Map{
			"Title":        title,
			"ImageURL":     template.URL(pngDataURI(res.PNG)),
			"Payload":      res.Payload,
			"DownloadName": kind.downloadName(),
			"BackURL":      kind.formURL(),
		})
	default:
		return renderer.SendPNG(c, res.PNG, kind.downloadName())
	}
}
