package renderer

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiateResult(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(NegotiateResult(c))
	})

	tests := map[string]string{
		"":                                 FormatPNG,
		"*/*":                              FormatPNG,
		"image/png":                        FormatPNG,
		"application/json":                 FormatJSON,
		"text/html":                        FormatHTML,
		"application/json, text/plain, */*": FormatJSON,
		"text/html,application/xhtml+xml,*/*;q=0.8": FormatHTML,
	}
	for accept, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if accept != "" {
			req.Header.Set(fiber.HeaderAccept, accept)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, want, string(body), "Accept: %q", accept)
	}
}

func TestErrorAndSendPNG(t *testing.T) {
	app := fiber.New()
	app.Get("/json", func(c *fiber.Ctx) error { return Error(c, FormatJSON, fiber.StatusBadRequest, "eksik alan") })
	app.Get("/text", func(c *fiber.Ctx) error { return Error(c, FormatPNG, fiber.StatusBadRequest, "eksik alan") })
	app.Get("/png", func(c *fiber.Ctx) error { return SendPNG(c, []byte{0x89, 'P', 'N', 'G'}, "qrcode_link.png") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/json", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"eksik alan"}`, string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/text", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "eksik alan", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/png", nil))
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="qrcode_link.png"`, resp.Header.Get(fiber.HeaderContentDisposition))
}
