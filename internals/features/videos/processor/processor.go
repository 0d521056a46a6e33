// Package processor menjalankan upload video ke host secara async dengan
// jumlah upload paralel yang dibatasi. Setiap Submit mengembalikan Handle
// yang bisa ditunggu (Wait) atau dicek (Poll) oleh caller.
package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"courtbeat_backend/internals/features/videos/videohost"
	"courtbeat_backend/internals/observability"
)

const (
	storeTimeout = 10 * time.Second

	MsgInterrupted = "processing interrupted; please re-upload"
	MsgStoreFailed = "failed to save processing result; please re-upload"
)

var ErrShuttingDown = errors.New("video processor is shutting down")

// Store: tempat hasil proses ditulis (diimplementasi repository video)
type Store interface {
	MarkProcessed(ctx context.Context, videoID uuid.UUID, assetID string, playbackID *string, duration *int) error
	MarkFailed(ctx context.Context, videoID uuid.UUID, message string) error
}

type Task struct {
	VideoID  uuid.UUID
	FilePath string
}

type Result struct {
	VideoID uuid.UUID
	Asset   *videohost.Asset
	Err     error
}

type Processor struct {
	host  videohost.Client
	store Store
	log   *logrus.Logger
	sem   *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func New(host videohost.Client, store Store, maxInflight int, log *logrus.Logger) *Processor {
	if maxInflight < 1 {
		maxInflight = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		host:   host,
		store:  store,
		log:    log,
		sem:    semaphore.NewWeighted(int64(maxInflight)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Submit tidak pernah blocking; antrian ditahan oleh semaphore di goroutine task.
func (p *Processor) Submit(t Task) *Handle {
	h := newHandle(t.VideoID)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.markFailed(t.VideoID, MsgInterrupted)
		h.finish(Result{VideoID: t.VideoID, Err: ErrShuttingDown})
		return h
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go p.run(t, h)
	return h
}

func (p *Processor) run(t Task, h *Handle) {
	defer p.wg.Done()
	res := Result{VideoID: t.VideoID}
	defer func() { h.finish(res) }()

	entry := p.log.WithField("video_id", t.VideoID)

	if err := p.sem.Acquire(p.ctx, 1); err != nil {
		res.Err = err
		p.markFailed(t.VideoID, MsgInterrupted)
		p.removeFile(t.FilePath)
		return
	}
	defer p.sem.Release(1)

	observability.VideoInflightInc()
	defer observability.VideoInflightDec()

	entry.Info("🎬 upload video ke host dimulai")
	asset, err := p.host.CreateAsset(p.ctx, t.FilePath)
	p.removeFile(t.FilePath)

	if err != nil {
		res.Err = err
		observability.VideoProcessed(err)
		entry.WithError(err).Warn("❌ upload video gagal")
		p.markFailed(t.VideoID, err.Error())
		return
	}

	res.Asset = asset
	var playbackID *string
	if pb := asset.FirstPlaybackID(); pb != "" {
		playbackID = &pb
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := p.store.MarkProcessed(ctx, t.VideoID, asset.ID, playbackID, asset.RoundedDuration()); err != nil {
		res.Err = err
		observability.VideoProcessed(err)
		entry.WithError(err).WithField("asset_id", asset.ID).Error("❌ gagal simpan hasil proses video")
		p.discardAsset(t.VideoID, asset.ID)
		return
	}

	observability.VideoProcessed(nil)
	entry.WithField("asset_id", asset.ID).Info("✅ video siap diputar")
}

func (p *Processor) markFailed(id uuid.UUID, msg string) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := p.store.MarkFailed(ctx, id, msg); err != nil {
		p.log.WithError(err).WithField("video_id", id).Error("gagal simpan error proses video")
	}
}

// discardAsset: hasil tidak tersimpan, asset di host dihapus supaya tidak yatim.
// Kalau hapus gagal, asset id dicatat di processing_error untuk dibersihkan manual.
func (p *Processor) discardAsset(videoID uuid.UUID, assetID string) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	msg := MsgStoreFailed
	if err := p.host.DeleteAsset(ctx, assetID); err != nil {
		p.log.WithError(err).WithField("video_id", videoID).WithField("asset_id", assetID).
			Error("gagal hapus asset yatim di host")
		msg = fmt.Sprintf("%s (orphaned asset %s)", MsgStoreFailed, assetID)
	}
	p.markFailed(videoID, msg)
}

func (p *Processor) removeFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		p.log.WithError(err).WithField("path", path).Warn("gagal hapus file upload")
	}
}

// Shutdown menolak task baru lalu menunggu task yang berjalan. Kalau ctx
// habis duluan, upload yang masih jalan dibatalkan.
func (p *Processor) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}
