package processor

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Handle: hasil task yang bisa ditunggu atau di-poll. Selesai tepat sekali.
type Handle struct {
	VideoID uuid.UUID

	once sync.Once
	done chan struct{}
	res  Result
}

func newHandle(id uuid.UUID) *Handle {
	return &Handle{VideoID: id, done: make(chan struct{})}
}

func (h *Handle) finish(r Result) {
	h.once.Do(func() {
		h.res = r
		close(h.done)
	})
}

func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blok sampai task selesai atau ctx habis.
func (h *Handle) Wait(ctx context.Context) (Result, error) {
	select {
	case <-h.done:
		return h.res, nil
	case <-ctx.Done():
		return Result{VideoID: h.VideoID}, ctx.Err()
	}
}

// Poll: ok=false kalau task belum selesai
func (h *Handle) Poll() (Result, bool) {
	select {
	case <-h.done:
		return h.res, true
	default:
		return Result{}, false
	}
}
