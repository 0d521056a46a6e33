// Package publisher meneruskan event analytics yang sudah tersimpan ke stream eksternal.
package publisher

import (
	"context"

	model "courtbeat_backend/internals/features/analytics/model"
)

// Publisher dipanggil di jalur request: Publish tidak boleh menunggu broker.
type Publisher interface {
	Publish(ctx context.Context, ev model.AnalyticsEventModel) error
	Close() error
}

// NoopPublisher dipakai kalau KAFKA_BROKERS kosong
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, model.AnalyticsEventModel) error { return nil }
func (NoopPublisher) Close() error                                             { return nil }
