package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const keyAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateSecureRandomString kriptografik olarak güvenli, karışması zor
// karakterlerden (0/O, 1/l/I) arındırılmış rastgele bir anahtar üretir.
func GenerateSecureRandomString(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("anahtar uzunluğu pozitif olmalı")
	}
	limit := big.NewInt(int64(len(keyAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = keyAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// IsKeyCharset anahtarın yalnızca üretim alfabesindeki karakterlerden oluştuğunu kontrol eder.
func IsKeyCharset(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !strings.ContainsRune(keyAlphabet, r) {
			return false
		}
	}
	return true
}
