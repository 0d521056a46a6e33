package helper

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename hapus karakter selain huruf, angka, titik, dash, underscore.
func SanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filepath.Base(filename), "_")
}

// UniqueUploadName: <unix-ms>-<random><ext>
func UniqueUploadName(originalFilename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(SanitizeFilename(originalFilename)))
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Int63n(1e9), ext)
}

// SaveUpload stream src ke dir dengan nama unik, return path tujuan.
func SaveUpload(src io.Reader, originalFilename, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	dst := filepath.Join(dir, UniqueUploadName(originalFilename, now))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("gagal membuat file tujuan: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("gagal menyalin file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return dst, nil
}
