package routes

import (
	linkHandlers "kartvizit.link/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerPublicLinkRoutes kartvizit sayfalarını ve üretilen dosyaların indirme rotalarını tanımlar.
func registerPublicLinkRoutes(app *fiber.App, svc Services) {
	cardHandler := linkHandlers.NewCardLinkHandler(svc.Card)
	cardGroup := app.Group("/c")
	cardGroup.Get("/:key", cardHandler.HandleCard)
	cardGroup.Get("/:key/vcard", cardHandler.HandleVCard)
	cardGroup.Post("/:key/delete", cardHandler.HandleDelete)

	downloadHandler := linkHandlers.NewDownloadHandler(svc.Store)
	app.Get("/downloads/:name", downloadHandler.HandleDownload)
}
