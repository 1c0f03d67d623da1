package handlers // handlers/qrcode paketi

import (
	"io"
	"mime/multipart"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const vcardTitle = "Kartvizit QR Kodu"

// VCardHandler kartvizit (vCard) QR formunu ve gönderimini yönetir.
type VCardHandler struct {
	service services.ICardService
}

// NewVCardHandler yeni bir VCardHandler örneği oluşturur.
func NewVCardHandler(service services.ICardService) *VCardHandler {
	return &VCardHandler{service: service}
}

// ShowForm boş kartvizit formunu gösterir.
func (h *VCardHandler) ShowForm(c *fiber.Ctx) error {
	return renderer.Render(c, kindVCard.formView(), renderer.MainLayout, fiber.Map{
		"Title":    vcardTitle,
		"FormData": models.CardDetail{},
	})
}

// cardForm kartvizit formunun kabul ettiği alanlardır. JSON gövdeleri de
// aynı alan adlarıyla okunur; üretilen dosya adları istemciden alınmaz.
type cardForm struct {
	Name     string `form:"name" json:"name"`
	LastName string `form:"lastname" json:"lastname"`
	Title    string `form:"title" json:"title"`
	Company  string `form:"company" json:"company"`
	Phone    string `form:"phone" json:"phone"`
	Email    string `form:"email" json:"email"`
	Website  string `form:"website" json:"website"`
	Address  string `form:"address" json:"address"`
}

func (f cardForm) detail() models.CardDetail {
	return models.CardDetail{
		FirstName: f.Name,
		LastName:  f.LastName,
		Title:     f.Title,
		Company:   f.Company,
		Phone:     f.Phone,
		Email:     f.Email,
		Website:   f.Website,
		Address:   f.Address,
	}
}

// openPhoto yüklenen fotoğrafı açar. Dosya seçilmemişse nil döner.
func openPhoto(c *fiber.Ctx) (multipart.File, error) {
	fh, err := c.FormFile("photo")
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, nil
	}
	return fh.Open()
}

// Create formdan kartvizit, vCard dosyası ve QR kod üretir.
func (h *VCardHandler) Create(c *fiber.Ctx) error {
	format := renderer.NegotiateResult(c)

	var form cardForm
	if err := c.BodyParser(&form); err != nil {
		configslog.Log.Warn("Kartvizit formu ayrıştırılamadı", zap.Error(err))
		return renderFormError(c, format, kindVCard, vcardTitle, form.detail(), fiber.StatusBadRequest, "Geçersiz form verisi.")
	}
	detail := form.detail()

	photoFile, err := openPhoto(c)
	if err != nil {
		configslog.Log.Warn("Yüklenen fotoğraf açılamadı", zap.Error(err))
		return renderFormError(c, format, kindVCard, vcardTitle, detail, fiber.StatusBadRequest, services.ErrCardPhotoInvalid.Error())
	}
	var photo io.Reader
	if photoFile != nil {
		defer photoFile.Close()
		photo = photoFile
	}

	result, err := h.service.CreateCard(c.UserContext(), detail, photo)
	if err != nil {
		return renderFormError(c, format, kindVCard, vcardTitle, detail, errorStatus(err), errorMessage(err))
	}

	switch format {
	case renderer.FormatJSON:
		doc := fiber.Map{
			"key":          result.LinkKey,
			"manage_token": result.ManageToken,
			"card_url":     c.BaseURL() + "/c/" + result.LinkKey,
			"vcard_url":    c.BaseURL() + "/downloads/" + result.VCardFile,
			"qr_url":       c.BaseURL() + "/downloads/" + result.QRFile,
			"qr_payload":   result.QRPayload,
		}
		if result.PhotoFile != "" {
			doc["photo_url"] = c.BaseURL() + "/downloads/" + result.PhotoFile
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	case renderer.FormatHTML:
		return renderer.Render(c, "qrcode/vcard_result", renderer.MainLayout, fiber.Map{
			"Title":  "Kartvizit Oluşturuldu",
			"Result": result,
		})
	default:
		return renderer.SendPNG(c, result.QRPNG, kindVCard.downloadName())
	}
}
