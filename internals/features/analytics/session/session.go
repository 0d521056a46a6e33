// Package session menentukan session_id untuk event analytics.
package session

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Provider mengembalikan session id untuk event baru milik club.
type Provider interface {
	SessionID(ctx context.Context, clubID uuid.UUID) (string, error)
}

const (
	suffixLen = 9
	base36    = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewID: session_<unix millis>_<9 char base36>
func NewID(now time.Time) string {
	buf := make([]byte, suffixLen)
	max := big.NewInt(int64(len(base36)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand tidak pernah gagal di platform yang didukung
			panic(err)
		}
		buf[i] = base36[n.Int64()]
	}
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), buf)
}

// PerCallProvider: id baru di setiap panggilan (default)
type PerCallProvider struct {
	Now func() time.Time
}

func NewPerCallProvider() *PerCallProvider {
	return &PerCallProvider{Now: time.Now}
}

func (p *PerCallProvider) SessionID(context.Context, uuid.UUID) (string, error) {
	return NewID(p.Now()), nil
}
