package handlers // handlers/link paketi

import (
	"errors"
	"path/filepath"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var downloadContentTypes = map[string]string{
	storage.ExtVCard: vcardContentType,
	storage.ExtQR:    "image/png",
	storage.ExtPhoto: "image/jpeg",
}

// DownloadHandler çıktı dizinindeki üretilmiş dosyaları sunar (/downloads/:name).
type DownloadHandler struct {
	store *storage.Store
}

// NewDownloadHandler yeni bir DownloadHandler örneği oluşturur.
func NewDownloadHandler(store *storage.Store) *DownloadHandler {
	return &DownloadHandler{store: store}
}

// HandleDownload dosyayı döndürür. vCard dosyaları her zaman ek olarak,
// görseller ise yalnızca ?download=1 ile ek olarak gönderilir.
func (h *DownloadHandler) HandleDownload(c *fiber.Ctx) error {
	name := c.Params("name")
	if !storage.ValidName(name) {
		return renderer.NotFound(c, "Dosya bulunamadı.")
	}

	data, err := h.store.Read(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return renderer.NotFound(c, "Dosya bulunamadı.")
		}
		configslog.Log.Error("Dosya okunamadı", zap.String("name", name), zap.Error(err))
		return renderer.ServerError(c, "Dosya okunamadı.")
	}

	ext := filepath.Ext(name)
	if ext == storage.ExtVCard || c.QueryBool("download") {
		c.Attachment(name)
	}
	// Attachment uzantıdan tür atar; kendi türümüzle ezilir
	c.Set(fiber.HeaderContentType, downloadContentTypes[ext])
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}
