package qrencoder

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := map[string]qrcode.RecoveryLevel{
		"low":     qrcode.Low,
		"Medium":  qrcode.Medium,
		"":        qrcode.Medium,
		"high":    qrcode.High,
		"HIGHEST": qrcode.Highest,
	}
	for in, want := range tests {
		got, err := ParseRecoveryLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRecoveryLevel("ultra")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestPNG_ModuleSize(t *testing.T) {
	enc, err := New("medium", 10)
	require.NoError(t, err)

	out, err := enc.PNG("https://example.com")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	assert.Equal(t, w, h)
	// Sürüm 2 sembol (25 modül) + 2*4 sessiz bölge = 33 modül
	assert.Equal(t, 0, w%10)
	assert.GreaterOrEqual(t, w, 21*10)
}

func TestPNG_LargerPayloadGrowsImage(t *testing.T) {
	enc, err := New("medium", 4)
	require.NoError(t, err)

	small, err := enc.PNG("hi")
	require.NoError(t, err)
	large, err := enc.PNG(strings.Repeat("BEGIN:VCARD ", 40))
	require.NoError(t, err)

	smallImg, err := png.Decode(bytes.NewReader(small))
	require.NoError(t, err)
	largeImg, err := png.Decode(bytes.NewReader(large))
	require.NoError(t, err)
	assert.Greater(t, largeImg.Bounds().Dx(), smallImg.Bounds().Dx())
}

func TestPNG_Errors(t *testing.T) {
	enc, err := New("highest", 2)
	require.NoError(t, err)

	_, err = enc.PNG("")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = enc.PNG(strings.Repeat("x", 4000))
	assert.ErrorIs(t, err, ErrContentTooLong)
}
