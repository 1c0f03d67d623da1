package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// Varsayılan fotoğraf ayarları
const (
	DefaultMaxDimension = 300
	DefaultQuality      = 80
)

// ErrUnsupportedImage yüklenen dosya çözülebilir bir görsel değilse döner.
var ErrUnsupportedImage = errors.New("desteklenmeyen veya bozuk görsel")

// Processor kartvizit fotoğrafını küçültüp JPEG olarak yeniden kodlar.
type Processor struct {
	MaxDimension int
	Quality      int
}

// NewProcessor sıfır veya negatif değerler için varsayılanları kullanır.
func NewProcessor(maxDimension, quality int) *Processor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Processor{MaxDimension: maxDimension, Quality: quality}
}

// Process görseli çözer (EXIF yönü uygulanır), MaxDimension kutusuna sığdırır
// ve JPEG baytlarını döndürür. Küçük görseller büyütülmez.
func (p *Processor) Process(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, ErrUnsupportedImage
	}

	// Fit en-boy oranını korur ve kutudan küçük görselleri olduğu gibi bırakır
	resized := imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(p.Quality)); err != nil {
		return nil, fmt.Errorf("jpeg kodlanamadı: %w", err)
	}
	return buf.Bytes(), nil
}
