package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed home.html layouts/*.html qrcode/*.html public/*.html errors/*.html
var files embed.FS

// NewEngine gömülü şablonlardan html motorunu oluşturur.
// Şablon adları dosya yolunun uzantısız halidir (örn. "qrcode/vcard").
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
