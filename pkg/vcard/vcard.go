// Package vcard tek bir kişi için vCard 3.0 (RFC 2426) kaydı üretir.
package vcard

import (
	"bytes"
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// maxLineOctets satır katlama sınırıdır (CRLF hariç, RFC 2426 2.6).
const maxLineOctets = 75

const crlf = "\r\n"

// Photo PHOTO alanına gömülen satır içi görseldir.
type Photo struct {
	Data []byte
	Type string // JPEG, PNG vb.
}

// Contact kartvizitin üretildiği düz kişi kaydıdır.
type Contact struct {
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	Organization string
	Title        string
	Address      string
	Website      string
	Photo        *Photo
}

// FullName ad ve soyadı tek boşlukla birleştirir.
func (c Contact) FullName() string {
	return strings.Join(strings.Fields(c.FirstName+" "+c.LastName), " ")
}

// WithoutPhoto fotoğrafsız bir kopya döndürür. QR içeriği bu kopyadan üretilir,
// satır içi fotoğraf QR kapasitesine sığmaz.
func (c Contact) WithoutPhoto() Contact {
	c.Photo = nil
	return c
}

// Encode c'yi vCard 3.0 kaydına çevirir. İsteğe bağlı alanlar yalnızca
// doluysa ve sabit bir sırayla yazılır.
func Encode(c Contact) []byte {
	var buf bytes.Buffer

	writeLine(&buf, "BEGIN:VCARD")
	writeLine(&buf, "VERSION:3.0")
	writeLine(&buf, "N:"+EscapeText(c.LastName)+";"+EscapeText(c.FirstName)+";;;")
	writeLine(&buf, "FN:"+EscapeText(c.FullName()))

	if c.Phone != "" {
		writeLine(&buf, "TEL;TYPE=CELL:"+EscapeText(c.Phone))
	}
	if c.Email != "" {
		writeLine(&buf, "EMAIL;TYPE=INTERNET:"+EscapeText(c.Email))
	}
	if c.Organization != "" {
		writeLine(&buf, "ORG:"+EscapeText(c.Organization))
	}
	if c.Title != "" {
		writeLine(&buf, "TITLE:"+EscapeText(c.Title))
	}
	if c.Address != "" {
		// Serbest metin adres, yapısal ADR'nin sokak bileşenine yazılır.
		writeLine(&buf, "ADR;TYPE=WORK:;;"+EscapeText(c.Address)+";;;;")
	}
	if c.Website != "" {
		writeLine(&buf, "URL:"+stripNewlines(c.Website))
	}
	if c.Photo != nil && len(c.Photo.Data) > 0 {
		photoType := strings.ToUpper(c.Photo.Type)
		if photoType == "" {
			photoType = "JPEG"
		}
		writeLine(&buf, "PHOTO;ENCODING=b;TYPE="+photoType+":"+base64.StdEncoding.EncodeToString(c.Photo.Data))
	}

	writeLine(&buf, "END:VCARD")
	return buf.Bytes()
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// EscapeText TEXT değerindeki ayraç karakterlerini kaçışlar; kullanıcı girdisi
// kaydın yapısını bozamaz.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

func stripNewlines(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

// writeLine satırı yazar; 75 octet'i aşan satırları UTF-8 dizisini bölmeden katlar.
func writeLine(buf *bytes.Buffer, line string) {
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		buf.WriteString(line[:cut])
		buf.WriteString(crlf + " ")
		line = line[cut:]
		// devam satırındaki boşluk da 75 octet'e dahildir
		limit = maxLineOctets - 1
	}
	buf.WriteString(line)
	buf.WriteString(crlf)
}

// Unfold katlanmış satırları birleştirip kaydı satırlara ayırır.
func Unfold(record []byte) []string {
	text := strings.ReplaceAll(string(record), crlf+" ", "")
	text = strings.TrimRight(text, crlf)
	if text == "" {
		return nil
	}
	return strings.Split(text, crlf)
}
