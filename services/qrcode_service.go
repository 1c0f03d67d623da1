// services/qrcode_service.go
package services

import (
	"errors"
	"net/mail"
	"net/url"
	"strings"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/pkg/qrencoder"

	"go.uber.org/zap"
)

// QRCodeServiceError link ve e-posta QR kodlarına ait servis hataları
type QRCodeServiceError string

func (e QRCodeServiceError) Error() string { return string(e) }

const (
	ErrQRLinkRequired   QRCodeServiceError = "link alanı zorunludur"
	ErrQREmailRequired  QRCodeServiceError = "e-posta alanı zorunludur"
	ErrQREmailInvalid   QRCodeServiceError = "geçerli bir e-posta adresi girin"
	ErrQRContentTooLong QRCodeServiceError = "içerik QR koda sığmayacak kadar uzun"
	ErrQRGenerateFailed QRCodeServiceError = "QR kod oluşturulamadı"
)

// DefaultEmailQRSubject e-posta QR kodunda kullanılan varsayılan konudur.
const DefaultEmailQRSubject = "QR koddan gelen bilgi"

// QRCodeResult üretilen QR kodun içeriği ve PNG görselidir. Dosyaya yazılmaz.
type QRCodeResult struct {
	Payload string
	PNG     []byte
}

// IQRCodeService link ve e-posta QR kodları için arayüz.
type IQRCodeService interface {
	LinkQR(link, info string) (*QRCodeResult, error)
	EmailQR(email, info string) (*QRCodeResult, error)
}

// QRCodeService IQRCodeService arayüzünü uygular.
type QRCodeService struct {
	encoder      *qrencoder.Encoder
	emailSubject string
}

// NewQRCodeService yeni bir QRCodeService örneği oluşturur.
func NewQRCodeService(encoder *qrencoder.Encoder, emailSubject string) IQRCodeService {
	if strings.TrimSpace(emailSubject) == "" {
		emailSubject = DefaultEmailQRSubject
	}
	return &QRCodeService{encoder: encoder, emailSubject: emailSubject}
}

// LinkPayload bilgi varsa "bilgi: link", yoksa yalnızca linki döndürür.
func LinkPayload(link, info string) string {
	if info == "" {
		return link
	}
	return info + ": " + link
}

// mailtoReserved mailto: URI'sinde özel anlamı olan karakterlerdir; adreste bulunamazlar.
const mailtoReserved = "?&#%"

// mailtoEscape boşlukları "+" yerine "%20" olarak kodlar; bazı posta
// istemcileri "+" işaretini olduğu gibi gösterir.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MailtoPayload mailto: adresi üretir. Gövde boşsa konu da eklenmez.
func MailtoPayload(address, subject, body string) string {
	if body == "" {
		return "mailto:" + address
	}
	return "mailto:" + address + "?subject=" + mailtoEscape(subject) + "&body=" + mailtoEscape(body)
}

func (s *QRCodeService) encode(payload string) (*QRCodeResult, error) {
	png, err := s.encoder.PNG(payload)
	if err != nil {
		if errors.Is(err, qrencoder.ErrContentTooLong) {
			return nil, ErrQRContentTooLong
		}
		configslog.Log.Error("QR kod üretilemedi", zap.Error(err))
		return nil, ErrQRGenerateFailed
	}
	return &QRCodeResult{Payload: payload, PNG: png}, nil
}

// LinkQR link (ve opsiyonel açıklama) için QR kod üretir.
func (s *QRCodeService) LinkQR(link, info string) (*QRCodeResult, error) {
	link = strings.TrimSpace(link)
	info = strings.TrimSpace(info)
	if link == "" {
		return nil, ErrQRLinkRequired
	}
	return s.encode(LinkPayload(link, info))
}

// EmailQR e-posta adresine mesaj açan bir mailto: QR kodu üretir.
func (s *QRCodeService) EmailQR(email, info string) (*QRCodeResult, error) {
	email = strings.TrimSpace(email)
	info = strings.TrimSpace(info)
	if email == "" {
		return nil, ErrQREmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || strings.ContainsAny(addr.Address, mailtoReserved) {
		return nil, ErrQREmailInvalid
	}
	return s.encode(MailtoPayload(addr.Address, s.emailSubject, info))
}

// Arayüz uyumluluğu kontrolü
var _ IQRCodeService = (*QRCodeService)(nil)
