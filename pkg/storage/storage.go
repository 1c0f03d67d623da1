package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// Üretilen dosya uzantıları
const (
	ExtVCard = ".vcf"
	ExtQR    = ".png"
	ExtPhoto = ".jpg"
)

var (
	ErrInvalidName = errors.New("geçersiz dosya adı")
	ErrNotFound    = errors.New("dosya bulunamadı")
)

var validName = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*\.(vcf|png|jpg)$`)

// ValidName yalnızca bu paketin ürettiği biçimdeki adları kabul eder.
// Dizin ayırıcı veya ".." içeren adlar hiçbir zaman geçerli değildir.
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// Store üretilen kartvizit dosyalarının yazıldığı paylaşılan dizindir.
type Store struct {
	dir string
}

// New dizini (yoksa) oluşturur.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("çıktı dizini boş olamaz")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("çıktı dizini oluşturulamadı: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir dizin yolunu döndürür.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}

// Write dosyayı geçici bir dosyaya yazıp yeniden adlandırır; okuyucular
// hiçbir zaman yarım yazılmış bir dosya görmez.
func (s *Store) Write(name string, data []byte) (err error) {
	target, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("geçici dosya oluşturulamadı: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("dosya yazılamadı: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("dosya kapatılamadı: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("dosya izinleri ayarlanamadı: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("dosya taşınamadı: %w", err)
	}
	return nil
}

// Read dosya içeriğini döndürür.
func (s *Store) Read(name string) ([]byte, error) {
	target, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Exists dosyanın var olup olmadığını bildirir.
func (s *Store) Exists(name string) bool {
	target, err := s.path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(target)
	return err == nil
}

// Remove verilen dosyaları siler. Boş adlar ve zaten olmayan dosyalar atlanır,
// diğer hatalar birleştirilerek döndürülür.
func (s *Store) Remove(names ...string) error {
	var errs error
	for _, name := range names {
		if name == "" {
			continue
		}
		target, err := s.path(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Sweep değiştirilme zamanı now-olderThan'dan eski üretilmiş dosyaları siler
// ve silinen dosya sayısını döndürür. Yarım kalmış geçici dosyalar da temizlenir.
func (s *Store) Sweep(olderThan time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("çıktı dizini okunamadı: %w", err)
	}

	cutoff := now.Add(-olderThan)
	removed := 0
	var errs error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !ValidName(name) && !strings.HasPrefix(name, ".tmp-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = multierr.Append(errs, err)
			continue
		}
		removed++
	}
	return removed, errs
}
