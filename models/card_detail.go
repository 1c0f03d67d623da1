package models

import "strings"

// CardDetail kartvizitin kişi bilgilerini ve üretilen dosyaların adlarını içerir.
// Form alanı adları ilk sürümdeki formla uyumludur (name, lastname, company ...).
type CardDetail struct {
	BaseModel
	CardID uint `gorm:"uniqueIndex;not null" json:"-"` // cards.id FK

	// Kişisel Bilgiler
	FirstName string `gorm:"type:varchar(100);not null" form:"name" json:"first_name"`
	LastName  string `gorm:"type:varchar(100)" form:"lastname" json:"last_name,omitempty"`
	Title     string `gorm:"type:varchar(100)" form:"title" json:"title,omitempty"`
	Company   string `gorm:"type:varchar(150)" form:"company" json:"company,omitempty"`

	// İletişim Bilgileri
	Phone   string `gorm:"type:varchar(30)" form:"phone" json:"phone,omitempty"`
	Email   string `gorm:"type:varchar(100)" form:"email" json:"email,omitempty"`
	Website string `gorm:"type:varchar(255)" form:"website" json:"website,omitempty"`
	Address string `gorm:"type:text" form:"address" json:"address,omitempty"`

	// Üretilen dosyalar (çıktı dizinine göre)
	PhotoFile string `gorm:"type:varchar(100)" form:"-" json:"photo_file,omitempty"`
	VCardFile string `gorm:"type:varchar(100)" form:"-" json:"vcard_file"`
	QRFile    string `gorm:"type:varchar(100)" form:"-" json:"qr_file"`
}

// FullName ad ve soyadı birleştirir.
func (d CardDetail) FullName() string {
	return strings.Join(strings.Fields(d.FirstName+" "+d.LastName), " ")
}

// Files kartvizit için üretilen tüm dosya adlarını döndürür.
func (d CardDetail) Files() []string {
	files := make([]string, 0, 3)
	for _, name := range []string{d.VCardFile, d.QRFile, d.PhotoFile} {
		if name != "" {
			files = append(files, name)
		}
	}
	return files
}

// Trim tüm metin alanlarının baş ve sonundaki boşlukları temizler.
func (d *CardDetail) Trim() {
	for _, field := range []*string{
		&d.FirstName, &d.LastName, &d.Title, &d.Company,
		&d.Phone, &d.Email, &d.Website, &d.Address,
	} {
		*field = strings.TrimSpace(*field)
	}
}
