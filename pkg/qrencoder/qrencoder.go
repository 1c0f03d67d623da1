package qrencoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultModuleSize her QR modülünün piksel genişliğidir.
const DefaultModuleSize = 10

var (
	ErrEmptyContent   = errors.New("QR içeriği boş olamaz")
	ErrContentTooLong = errors.New("içerik QR koda sığmayacak kadar uzun")
	ErrInvalidLevel   = errors.New("geçersiz hata düzeltme seviyesi")
)

// Encoder sabit hata düzeltme seviyesi ve modül boyutuyla PNG üretir.
type Encoder struct {
	level      qrcode.RecoveryLevel
	moduleSize int
}

// ParseRecoveryLevel "low", "medium", "high" veya "highest" değerini çözer.
func ParseRecoveryLevel(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return qrcode.Low, nil
	case "", "medium", "m":
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	}
	return qrcode.Medium, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// New verilen seviye ve modül boyutu için bir Encoder oluşturur.
func New(level string, moduleSize int) (*Encoder, error) {
	lvl, err := ParseRecoveryLevel(level)
	if err != nil {
		return nil, err
	}
	if moduleSize <= 0 {
		moduleSize = DefaultModuleSize
	}
	return &Encoder{level: lvl, moduleSize: moduleSize}, nil
}

// PNG içeriği QR koda çevirir. Görsel boyutu içeriğe göre değişir,
// her modül moduleSize piksel olup 4 modüllük sessiz bölge eklenir.
func (e *Encoder) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	q, err := qrcode.New(content, e.level)
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return nil, ErrContentTooLong
		}
		return nil, fmt.Errorf("QR kod oluşturulamadı: %w", err)
	}
	// Negatif boyut, go-qrcode'da modül başına piksel anlamına gelir
	png, err := q.PNG(-e.moduleSize)
	if err != nil {
		return nil, fmt.Errorf("QR kod PNG'ye dönüştürülemedi: %w", err)
	}
	return png, nil
}
