package models

// Card kartvizit QR kodunun ana kaydıdır.
type Card struct {
	BaseModel
	LinkID          uint   `gorm:"uniqueIndex;not null" json:"-"`
	IsEnabled       bool   `gorm:"default:true;index" json:"is_enabled"` // Public sayfa aktif mi?
	ManageTokenHash string `gorm:"type:varchar(100);not null" json:"-"`  // Silme anahtarının bcrypt özeti

	// GORM İlişkileri
	Link   Link       `gorm:"foreignKey:LinkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"link"`
	Detail CardDetail `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"detail"`
}
