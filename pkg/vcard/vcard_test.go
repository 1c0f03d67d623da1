package vcard

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		name := line
		if i := strings.IndexAny(line, ":;"); i >= 0 {
			name = line[:i]
		}
		out = append(out, name)
	}
	return out
}

func TestEncode_OnlyNonEmptyFields(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    []string
	}{
		{
			name:    "first name only",
			contact: Contact{FirstName: "Ayşe"},
			want:    []string{"BEGIN", "VERSION", "N", "FN", "END"},
		},
		{
			name: "all fields",
			contact: Contact{
				FirstName: "Ayşe", LastName: "Yılmaz", Phone: "+90 555 000 00 00",
				Email: "ayse@example.com", Organization: "Örnek A.Ş.", Title: "Mühendis",
				Address: "Kadıköy, İstanbul", Website: "https://example.com",
				Photo: &Photo{Data: []byte{0xff, 0xd8, 0xff}, Type: "jpeg"},
			},
			want: []string{"BEGIN", "VERSION", "N", "FN", "TEL", "EMAIL", "ORG", "TITLE", "ADR", "URL", "PHOTO", "END"},
		},
		{
			name:    "phone and website",
			contact: Contact{FirstName: "Minh", Phone: "0901234567", Website: "https://minh.vn"},
			want:    []string{"BEGIN", "VERSION", "N", "FN", "TEL", "URL", "END"},
		},
		{
			name:    "empty photo data is skipped",
			contact: Contact{FirstName: "Minh", Photo: &Photo{Type: "JPEG"}},
			want:    []string{"BEGIN", "VERSION", "N", "FN", "END"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Unfold(Encode(tt.contact))
			assert.Equal(t, tt.want, tags(lines))
		})
	}
}

func TestEncode_Values(t *testing.T) {
	record := Encode(Contact{
		FirstName:    "Ayşe",
		LastName:     "Yılmaz",
		Phone:        "+90 555",
		Email:        "ayse@example.com",
		Organization: "Örnek A.Ş.",
		Address:      "Moda Cd. 1",
		Website:      "https://example.com",
	})
	lines := Unfold(record)

	assert.Contains(t, lines, "N:Yılmaz;Ayşe;;;")
	assert.Contains(t, lines, "FN:Ayşe Yılmaz")
	assert.Contains(t, lines, "TEL;TYPE=CELL:+90 555")
	assert.Contains(t, lines, "EMAIL;TYPE=INTERNET:ayse@example.com")
	assert.Contains(t, lines, "ORG:Örnek A.Ş.")
	assert.Contains(t, lines, "ADR;TYPE=WORK:;;Moda Cd. 1;;;;")
	assert.Contains(t, lines, "URL:https://example.com")
	assert.True(t, strings.HasSuffix(string(record), "END:VCARD\r\n"))
}

func TestEncode_EscapesDelimiters(t *testing.T) {
	lines := Unfold(Encode(Contact{
		FirstName:    "Jean;Luc",
		LastName:     `Back\slash`,
		Organization: "Acme, Inc.",
		Address:      "Line 1\nLine 2",
		Website:      "https://example.com/a\r\nb",
	}))

	assert.Contains(t, lines, `N:Back\\slash;Jean\;Luc;;;`)
	assert.Contains(t, lines, `ORG:Acme\, Inc.`)
	assert.Contains(t, lines, `ADR;TYPE=WORK:;;Line 1\nLine 2;;;;`)
	assert.Contains(t, lines, "URL:https://example.com/ab")
	// Kullanıcı girdisi yeni bir satır (ve dolayısıyla yeni bir alan) açamaz.
	assert.Equal(t, []string{"BEGIN", "VERSION", "N", "FN", "ORG", "ADR", "URL", "END"}, tags(lines))
}

func TestEncode_PhotoRoundTrip(t *testing.T) {
	data := make([]byte, 600)
	for i := range data {
		data[i] = byte(i)
	}
	withPhoto := Contact{FirstName: "Ayşe", Photo: &Photo{Data: data, Type: "jpeg"}}

	var photoLine string
	for _, line := range Unfold(Encode(withPhoto)) {
		if strings.HasPrefix(line, "PHOTO;") {
			photoLine = line
		}
	}
	require.NotEmpty(t, photoLine)
	require.True(t, strings.HasPrefix(photoLine, "PHOTO;ENCODING=b;TYPE=JPEG:"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(photoLine, "PHOTO;ENCODING=b;TYPE=JPEG:"))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	assert.NotContains(t, string(Encode(withPhoto.WithoutPhoto())), "PHOTO")
	assert.NotNil(t, withPhoto.Photo, "WithoutPhoto must not mutate the original")
}

func TestEncode_FoldsLongLines(t *testing.T) {
	record := Encode(Contact{
		FirstName:    "Ngọc",
		Organization: strings.Repeat("Công ty Trách nhiệm Hữu hạn Đầu tư ", 6),
	})

	for _, raw := range strings.Split(strings.TrimSuffix(string(record), "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(raw), 75, "line %q exceeds 75 octets", raw)
		assert.True(t, utf8ValidPrefix(raw), "line %q starts inside a UTF-8 sequence", raw)
	}

	lines := Unfold(record)
	assert.Contains(t, lines, "ORG:"+strings.Repeat("Công ty Trách nhiệm Hữu hạn Đầu tư ", 6))
}

func utf8ValidPrefix(line string) bool {
	line = strings.TrimPrefix(line, " ")
	return line == "" || line[0] < 0x80 || line[0] >= 0xC0
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ayşe Yılmaz", Contact{FirstName: " Ayşe ", LastName: "Yılmaz"}.FullName())
	assert.Equal(t, "Ayşe", Contact{FirstName: "Ayşe"}.FullName())
}
