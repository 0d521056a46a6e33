package helper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	ThumbnailWidth   = 640
	ThumbnailHeight  = 360
	thumbnailQuality = 82
)

// SaveThumbnail decode gambar (orientasi EXIF diikuti), crop-fill 16:9, simpan sebagai JPEG.
func SaveThumbnail(src io.Reader, dstPath string) error {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("gagal decode gambar: %w", err)
	}

	thumb := imaging.Fill(img, ThumbnailWidth, ThumbnailHeight, imaging.Center, imaging.Lanczos)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("gagal membuat folder thumbnail: %w", err)
	}
	if err := imaging.Save(thumb, dstPath, imaging.JPEGQuality(thumbnailQuality)); err != nil {
		return fmt.Errorf("gagal simpan thumbnail: %w", err)
	}
	return nil
}
