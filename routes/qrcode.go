package routes

import (
	qrcodeHandlers "kartvizit.link/handlers/qrcode"

	"github.com/gofiber/fiber/v2"
)

// registerQRCodeRoutes üç QR üreticisinin form ve gönderim rotalarını tanımlar.
func registerQRCodeRoutes(app *fiber.App, svc Services) {
	vcardHandler := qrcodeHandlers.NewVCardHandler(svc.Card)
	app.Get("/qrcode-vcard", vcardHandler.ShowForm)
	app.Post("/qrcode-vcard", vcardHandler.Create)

	linkHandler := qrcodeHandlers.NewLinkHandler(svc.QRCode)
	app.Get("/qrcode-link", linkHandler.ShowForm)
	app.Post("/qrcode-link", linkHandler.Create)

	emailHandler := qrcodeHandlers.NewEmailHandler(svc.QRCode)
	app.Get("/qrcode-email", emailHandler.ShowForm)
	app.Post("/qrcode-email", emailHandler.Create)
}
