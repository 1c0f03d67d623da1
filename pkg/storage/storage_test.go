package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ayşe Yılmaz", "ayse-yilmaz"},
		{"İSMAİL Çağlar", "ismail-caglar"},
		{"Nguyễn Văn Đức", "nguyen-van-duc"},
		{"  ../../etc/passwd  ", "etc-passwd"},
		{"José   María!!", "jose-maria"},
		{"李小龙", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	slug := Slugify("abcdefghij abcdefghij abcdefghij abcdefghij abcdefghij abcdefghij")
	assert.LessOrEqual(t, len(slug), maxSlugLen)
	assert.NotContains(t, slug[len(slug)-1:], "-")
}

func TestBaseName(t *testing.T) {
	name := BaseName("Ayşe", "Yılmaz")
	assert.Regexp(t, `^ayse-yilmaz-[0-9a-f]{8}$`, name)
	assert.True(t, ValidName(name+ExtVCard))

	assert.Regexp(t, `^contact-[0-9a-f]{8}$`, BaseName("李", ""))
}

func TestBaseName_SameContactNeverCollides(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		name := BaseName("Ayşe", "Yılmaz")
		_, dup := seen[name]
		require.False(t, dup, "duplicate base name %s", name)
		seen[name] = struct{}{}
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"ayse-yilmaz-1a2b3c4d.vcf", "contact-00000000.png", "x.jpg"}
	invalid := []string{"../secret.vcf", "a/b.vcf", "Ayse.vcf", "ayse.exe", "ayse--x.vcf", ".tmp-123", "", "ayse.vcf/"}
	for _, n := range valid {
		assert.True(t, ValidName(n), n)
	}
	for _, n := range invalid {
		assert.False(t, ValidName(n), n)
	}
}

func TestStore_WriteReadRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write("ayse-1.vcf", []byte("BEGIN:VCARD")))
	assert.True(t, store.Exists("ayse-1.vcf"))

	data, err := store.Read("ayse-1.vcf")
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCARD", string(data))

	// Aynı ad tekrar yazılırsa içerik tamamen değişir
	require.NoError(t, store.Write("ayse-1.vcf", []byte("v2")))
	data, err = store.Read("ayse-1.vcf")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	require.NoError(t, store.Remove("ayse-1.vcf", "missing-1.png", ""))
	assert.False(t, store.Exists("ayse-1.vcf"))

	_, err = store.Read("ayse-1.vcf")
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no temp files may be left behind")
}

func TestStore_RejectsInvalidNames(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, store.Write("../escape.vcf", []byte("x")), ErrInvalidName)
	_, err = store.Read("../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.ErrorIs(t, store.Remove("ok-1.vcf", "../x.vcf"), ErrInvalidName)
}

func TestStore_Sweep(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	now := time.Now()
	old := now.Add(-48 * time.Hour)

	require.NoError(t, store.Write("old-1.vcf", []byte("old")))
	require.NoError(t, store.Write("old-1.png", []byte("old")))
	require.NoError(t, store.Write("fresh-1.vcf", []byte("fresh")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("keep"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tmp-999"), []byte("partial"), 0o644))

	for _, name := range []string{"old-1.vcf", "old-1.png", "README.txt", ".tmp-999"} {
		require.NoError(t, os.Chtimes(filepath.Join(dir, name), old, old))
	}

	removed, err := store.Sweep(24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	assert.False(t, store.Exists("old-1.vcf"))
	assert.False(t, store.Exists("old-1.png"))
	assert.True(t, store.Exists("fresh-1.vcf"))
	_, err = os.Stat(filepath.Join(dir, "README.txt"))
	assert.NoError(t, err, "foreign files are never swept")
}
