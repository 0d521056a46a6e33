package dto

import "io"

// Upload: file video dari multipart, di-stream ke disk oleh service
type Upload struct {
	FileName string
	Size     int64
	Body     io.Reader
}
