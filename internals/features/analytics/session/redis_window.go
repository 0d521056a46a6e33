package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "courtbeat:session:"

// windowStore: subset *redis.Client yang dipakai
type windowStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisWindowProvider memakai satu session id per club selama window masih
// hidup. Setiap event memperpanjang TTL.
type RedisWindowProvider struct {
	rdb    windowStore
	window time.Duration

	Now func() time.Time
}

func NewRedisWindowProvider(rdb windowStore, window time.Duration) *RedisWindowProvider {
	if window <= 0 {
		window = 30 * time.Minute
	}
	return &RedisWindowProvider{rdb: rdb, window: window, Now: time.Now}
}

// maxWindowAttempts: SETNX/GET diulang kalau key expired di antaranya
const maxWindowAttempts = 3

var errWindowRace = errors.New("session window: key terus berubah, coba lagi")

func (p *RedisWindowProvider) SessionID(ctx context.Context, clubID uuid.UUID) (string, error) {
	key := keyPrefix + clubID.String()
	candidate := NewID(p.Now())

	for i := 0; i < maxWindowAttempts; i++ {
		created, err := p.rdb.SetNX(ctx, key, candidate, p.window).Result()
		if err != nil {
			return "", err
		}
		if created {
			return candidate, nil
		}

		existing, err := p.rdb.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			// key expired di antara SETNX dan GET, request lain bisa saja sudah mengisi
			continue
		}
		if err != nil {
			return "", err
		}
		if err := p.rdb.Expire(ctx, key, p.window).Err(); err != nil {
			return "", err
		}
		return existing, nil
	}
	return "", errWindowRace
}
