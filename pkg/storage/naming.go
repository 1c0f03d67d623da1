package storage

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	fallbackSlug = "contact"
	maxSlugLen   = 48
)

// NFD ile ayrışmayan harfler
var letterFolds = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"đ", "d", "Đ", "d",
	"ø", "o", "Ø", "o",
	"ł", "l", "Ł", "l",
	"ß", "ss", "æ", "ae", "Æ", "ae",
)

// newSuffix testlerde sabitlenebilsin diye değişkendir.
var newSuffix = func() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Slugify adı küçük harfli ASCII bir dosya adı parçasına çevirir.
// Aksanlar kaldırılır, diğer karakterler tireye dönüşür.
func Slugify(s string) string {
	s = letterFolds.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
		if b.Len() >= maxSlugLen {
			break
		}
	}
	return strings.Trim(b.String(), "-")
}

// BaseName kişinin adından, aynı ad için bile çakışmayan bir dosya kökü üretir.
// Örn. "Ayşe Yılmaz" -> "ayse-yilmaz-3f9c2a1b".
func BaseName(firstName, lastName string) string {
	slug := Slugify(firstName + " " + lastName)
	if slug == "" {
		slug = fallbackSlug
	}
	return slug + "-" + newSuffix()
}
