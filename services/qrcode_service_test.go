package services

import (
	"strings"
	"testing"

	"kartvizit.link/pkg/qrencoder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQRCodeService(t *testing.T, subject string) IQRCodeService {
	t.Helper()
	enc, err := qrencoder.New("medium", 4)
	require.NoError(t, err)
	return NewQRCodeService(enc, subject)
}

func TestLinkPayload(t *testing.T) {
	assert.Equal(t, "https://example.com", LinkPayload("https://example.com", ""))
	assert.Equal(t, "Menü: https://example.com/menu", LinkPayload("https://example.com/menu", "Menü"))
}

func TestMailtoPayload(t *testing.T) {
	tests := []struct {
		name, addr, subject, body, want string
	}{
		{"no body", "ali@example.com", "Konu", "", "mailto:ali@example.com"},
		{"spaces as %20", "ali@example.com", "QR koddan gelen bilgi", "Merhaba dünya",
			"mailto:ali@example.com?subject=QR%20koddan%20gelen%20bilgi&body=Merhaba%20d%C3%BCnya"},
		{"reserved characters", "ali@example.com", "a&b", "x=1?y+z",
			"mailto:ali@example.com?subject=a%26b&body=x%3D1%3Fy%2Bz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MailtoPayload(tt.addr, tt.subject, tt.body))
		})
	}
}

func TestLinkQR(t *testing.T) {
	svc := newQRCodeService(t, "")

	res, err := svc.LinkQR("  https://example.com  ", " Web ")
	require.NoError(t, err)
	assert.Equal(t, "Web: https://example.com", res.Payload)
	assert.NotEmpty(t, res.PNG)

	_, err = svc.LinkQR("   ", "info")
	assert.ErrorIs(t, err, ErrQRLinkRequired)

	_, err = svc.LinkQR(strings.Repeat("https://example.com/", 300), "")
	assert.ErrorIs(t, err, ErrQRContentTooLong)
}

func TestEmailQR(t *testing.T) {
	svc := newQRCodeService(t, "")

	res, err := svc.EmailQR("Ali Veli <ali@example.com>", "Toplantı")
	require.NoError(t, err)
	assert.Equal(t, "mailto:ali@example.com?subject=QR%20koddan%20gelen%20bilgi&body=Toplant%C4%B1", res.Payload)
	assert.NotEmpty(t, res.PNG)

	res, err = svc.EmailQR("ali@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "mailto:ali@example.com", res.Payload)

	_, err = svc.EmailQR("", "x")
	assert.ErrorIs(t, err, ErrQREmailRequired)

	for _, bad := range []string{"not-an-email", "ali@", "@example.com", "ali?cc=x@example.com", "ali#x@example.com", "ali%41@example.com"} {
		_, err = svc.EmailQR(bad, "")
		assert.ErrorIs(t, err, ErrQREmailInvalid, bad)
	}
}

func TestEmailQR_CustomSubject(t *testing.T) {
	svc := newQRCodeService(t, "İletişim")

	res, err := svc.EmailQR("ali@example.com", "Selam")
	require.NoError(t, err)
	assert.Equal(t, "mailto:ali@example.com?subject=%C4%B0leti%C5%9Fim&body=Selam", res.Payload)
}
