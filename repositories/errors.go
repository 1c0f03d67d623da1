package repositories

import "errors"

// ErrNotFound kayıt bulunamadığında tüm repository'ler tarafından döndürülür.
var ErrNotFound = errors.New("kayıt bulunamadı")
