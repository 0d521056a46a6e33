package helper

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	AccessCodeLength  = 8
	accessCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrAccessCodeExhausted = errors.New("could not generate a unique access code")

// GenerateAccessCode: 8 karakter A-Z0-9 dari crypto/rand.
func GenerateAccessCode() (string, error) {
	max := big.NewInt(int64(len(accessCodeCharset)))
	buf := make([]byte, AccessCodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = accessCodeCharset[n.Int64()]
	}
	return string(buf), nil
}

// EnsureUniqueAccessCode generate ulang sampai kode belum dipakai (maks attempts kali).
func EnsureUniqueAccessCode(
	ctx context.Context,
	gen func() (string, error),
	exists func(ctx context.Context, code string) (bool, error),
	attempts int,
) (string, error) {
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		code, err := gen()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrAccessCodeExhausted
}
