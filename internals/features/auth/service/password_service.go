package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword: bcrypt dengan cost default
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash: nil kalau cocok
func CheckPasswordHash(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// compareWithDummy dipakai saat email tidak ditemukan supaya waktu respon
// tetap sama dengan kasus password salah.
func compareWithDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = HashPassword("courtbeat-timing-dummy")
	})
	_ = CheckPasswordHash(dummyHash, password)
}
