package models

// LinkKeyLength public link anahtarının uzunluğudur.
const LinkKeyLength = 12

// Link benzersiz bir 'Key'i kartvizitin public sayfasına bağlar (/c/:key).
type Link struct {
	BaseModel
	Key string `gorm:"type:varchar(12);uniqueIndex;not null" json:"key"`
}
