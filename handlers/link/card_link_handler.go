package handlers // handlers/link paketi

import (
	"errors"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/pkg/storage"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const vcardContentType = "text/vcard; charset=utf-8"

// CardLinkHandler public kartvizit linklerini (/c/:key) yönetir.
type CardLinkHandler struct {
	cardService services.ICardService
}

// NewCardLinkHandler yeni bir CardLinkHandler örneği oluşturur.
func NewCardLinkHandler(cardService services.ICardService) *CardLinkHandler {
	return &CardLinkHandler{cardService: cardService}
}

// loadCard :key parametresindeki kartviziti getirir. Hata durumunda yanıt
// zaten yazılmıştır ve ikinci dönüş değeri hatayı taşır.
func (h *CardLinkHandler) loadCard(c *fiber.Ctx) (*cardView, error) {
	key := c.Params("key")
	card, err := h.cardService.GetCardByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return nil, renderer.NotFound(c, "Kartvizit bulunamadı.")
		}
		configslog.Log.Error("CardLink: GetCardByKey error", zap.String("key", key), zap.Error(err))
		return nil, renderer.ServerError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}
	return &cardView{key: key, card: card}, nil
}

// HandleCard kartvizitin public sayfasını gösterir.
func (h *CardLinkHandler) HandleCard(c *fiber.Ctx) error {
	view, err := h.loadCard(c)
	if view == nil {
		return err
	}
	if c.Accepts(renderer.FormatHTML, renderer.FormatJSON) == renderer.FormatJSON {
		return c.JSON(view.card.Detail)
	}
	return renderer.Render(c, "public/card_view", renderer.MainLayout, view.data(""))
}

// HandleVCard kayıtlı bilgilerden vCard dosyasını (fotoğrafıyla) indirir.
// Link modundaki QR kodlar bu adresi taşır.
func (h *CardLinkHandler) HandleVCard(c *fiber.Ctx) error {
	view, err := h.loadCard(c)
	if view == nil {
		return err
	}
	data, err := h.cardService.VCardForCard(view.card)
	if err != nil {
		configslog.Log.Error("CardLink: VCardForCard error", zap.String("key", view.key), zap.Error(err))
		return renderer.ServerError(c, "Kartvizit dosyası oluşturulamadı.")
	}

	name := view.card.Detail.VCardFile
	if !storage.ValidName(name) {
		name = "contact" + storage.ExtVCard
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, vcardContentType)
	return c.Send(data)
}

// HandleDelete yönetim anahtarı ile kartviziti ve dosyalarını siler.
func (h *CardLinkHandler) HandleDelete(c *fiber.Ctx) error {
	view, err := h.loadCard(c)
	if view == nil {
		return err
	}
	wantsJSON := c.Accepts(renderer.FormatHTML, renderer.FormatJSON) == renderer.FormatJSON

	err = h.cardService.DeleteCard(c.UserContext(), view.key, c.FormValue("token"))
	if err != nil {
		status := fiber.StatusInternalServerError
		message := "Kartvizit silinemedi."
		switch {
		case errors.Is(err, services.ErrCardForbidden):
			status, message = fiber.StatusForbidden, "Yönetim anahtarı hatalı."
		case errors.Is(err, services.ErrCardNotFound):
			return renderer.NotFound(c, "Kartvizit bulunamadı.")
		}
		if wantsJSON {
			return c.Status(status).JSON(fiber.Map{"error": message})
		}
		return renderer.Render(c, "public/card_view", renderer.MainLayout, view.data(message), status)
	}

	if wantsJSON {
		return c.JSON(fiber.Map{"deleted": true})
	}
	return renderer.Render(c, "public/card_deleted", renderer.MainLayout, fiber.Map{
		"Title": "Kartvizit Silindi",
	})
}

// cardView public kartvizit sayfasının şablon verisidir.
type cardView struct {
	key  string
	card *models.Card
}

func (v *cardView) data(errMsg string) fiber.Map {
	return fiber.Map{
		"Title":  v.card.Detail.FullName(),
		"Key":    v.key,
		"Detail": v.card.Detail,
		"Error":  errMsg,
	}
}
