// Package scheduler menjalankan job periodik untuk video.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"courtbeat_backend/internals/features/videos/processor"
)

const runTimeout = 2 * time.Minute

type StaleStore interface {
	MarkStaleFailed(ctx context.Context, olderThan time.Time, message string) (int64, error)
}

// StaleReaper menandai video yang tertinggal unprocessed (proses mati
// sebelum upload ke host selesai) supaya admin tahu harus upload ulang.
type StaleReaper struct {
	store      StaleStore
	staleAfter time.Duration
	log        *logrus.Logger

	Now func() time.Time
}

func NewStaleReaper(store StaleStore, staleAfter time.Duration, log *logrus.Logger) *StaleReaper {
	if staleAfter <= 0 {
		staleAfter = 2 * time.Hour
	}
	return &StaleReaper{store: store, staleAfter: staleAfter, log: log, Now: time.Now}
}

func (r *StaleReaper) RunOnce(ctx context.Context) (int64, error) {
	threshold := r.Now().Add(-r.staleAfter)
	n, err := r.store.MarkStaleFailed(ctx, threshold, processor.MsgInterrupted)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.log.WithField("count", n).WithField("threshold", threshold.Format(time.RFC3339)).
			Warn("[VIDEO-REAPER] video stale ditandai gagal")
	}
	return n, nil
}

// Start pasang reaper di cron dan langsung jalan. Caller wajib Stop() saat shutdown.
func Start(r *StaleReaper, spec string, log *logrus.Logger) (*cron.Cron, error) {
	cl := cron.PrintfLogger(log)
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := r.RunOnce(ctx); err != nil {
			log.WithError(err).Error("[VIDEO-REAPER] run gagal")
		}
	})
	if err != nil {
		return nil, err
	}

	log.WithField("schedule", spec).WithField("stale_after", r.staleAfter.String()).Info("[VIDEO-REAPER] started")
	c.Start()
	return c, nil
}
