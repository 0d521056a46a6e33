package videohost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"courtbeat_backend/internals/observability"
)

const (
	defaultPollTimeout  = 10 * time.Minute
	defaultPollInterval = 2 * time.Second
	maxPollInterval     = 30 * time.Second
)

type MuxConfig struct {
	TokenID     string
	TokenSecret string
	RatePerSec  float64
	PollTimeout time.Duration
	// PollInterval: interval awal backoff saat polling upload/asset
	PollInterval time.Duration
	// HTTPClient: hanya untuk PUT file ke signed URL
	HTTPClient *http.Client
}

// MuxClient: direct upload → PUT file → poll upload → poll asset.
// API Mux lewat mux-go, PUT file ke signed URL lewat net/http (stream dari disk).
type MuxClient struct {
	cfg     MuxConfig
	api     muxAPI
	http    *http.Client
	limiter *rate.Limiter
}

func NewMuxClient(cfg MuxConfig) *MuxClient {
	return newMuxClient(cfg, newSDKAPI(cfg.TokenID, cfg.TokenSecret))
}

func newMuxClient(cfg MuxConfig, api muxAPI) *MuxClient {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = defaultPollTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 5
	}
	hc := cfg.HTTPClient
	if hc == nil {
		// tanpa timeout global: PUT file besar bisa lama, batasnya dari ctx
		hc = &http.Client{}
	}
	return &MuxClient{
		cfg:     cfg,
		api:     api,
		http:    hc,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
	}
}

func (m *MuxClient) Configured() bool {
	return m.cfg.TokenID != "" && m.cfg.TokenSecret != ""
}

func (m *MuxClient) CreateAsset(ctx context.Context, filePath string) (*Asset, error) {
	if !m.Configured() {
		return nil, ErrNotConfigured
	}

	var up *muxUpload
	err := m.call(ctx, "create_upload", func() (err error) {
		up, err = m.api.CreateUpload(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("mux create upload: %w", err)
	}
	if up.URL == "" || up.ID == "" {
		return nil, errors.New("mux: upload response tanpa url/id")
	}

	if err := m.putFile(ctx, up.URL, filePath); err != nil {
		return nil, err
	}

	pollCtx, cancel := context.WithTimeout(ctx, m.cfg.PollTimeout)
	defer cancel()

	assetID, err := m.waitForAssetID(pollCtx, up.ID)
	if err != nil {
		return nil, err
	}
	return m.waitForAsset(pollCtx, assetID)
}

// DeleteAsset: no-op kalau kredensial tidak diset
func (m *MuxClient) DeleteAsset(ctx context.Context, assetID string) error {
	if !m.Configured() {
		return nil
	}
	return m.call(ctx, "delete_asset", func() error {
		return m.api.DeleteAsset(ctx, assetID)
	})
}

// call: rate limit + metric untuk tiap request ke API Mux
func (m *MuxClient) call(ctx context.Context, op string, fn func() error) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}
	err := fn()
	observability.VideoHostRequest(op, err)
	return err
}

// putFile stream file ke signed URL (tanpa basic auth)
func (m *MuxClient) putFile(ctx context.Context, url, filePath string) (err error) {
	defer func() { observability.VideoHostRequest("put_file", err) }()

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("mux: buka file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("mux: stat file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, f)
	if err != nil {
		return err
	}
	req.ContentLength = st.Size()
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("mux: upload file: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mux: upload file status %d", resp.StatusCode)
	}
	return nil
}

func (m *MuxClient) newPollBackoff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = m.cfg.PollInterval
	b.MaxInterval = maxPollInterval
	if b.MaxInterval < b.InitialInterval {
		b.MaxInterval = b.InitialInterval
	}
	b.MaxElapsedTime = m.cfg.PollTimeout
	return backoff.WithContext(b, ctx)
}

func (m *MuxClient) waitForAssetID(ctx context.Context, uploadID string) (string, error) {
	var assetID string
	op := func() error {
		var up *muxUpload
		err := m.call(ctx, "get_upload", func() (err error) {
			up, err = m.api.GetUpload(ctx, uploadID)
			return err
		})
		if err != nil {
			return err
		}
		switch up.Status {
		case "errored", "cancelled", "timed_out":
			msg := up.Status
			if up.ErrMessage != "" {
				msg = up.ErrMessage
			}
			return backoff.Permanent(fmt.Errorf("mux upload %s: %s", uploadID, msg))
		}
		if up.AssetID == "" {
			return errPending
		}
		assetID = up.AssetID
		return nil
	}
	if err := backoff.Retry(op, m.newPollBackoff(ctx)); err != nil {
		return "", pollErr("upload", err)
	}
	return assetID, nil
}

func (m *MuxClient) waitForAsset(ctx context.Context, assetID string) (*Asset, error) {
	var asset *Asset
	op := func() error {
		var a *muxAsset
		err := m.call(ctx, "get_asset", func() (err error) {
			a, err = m.api.GetAsset(ctx, assetID)
			return err
		})
		if err != nil {
			return err
		}
		switch a.Status {
		case "ready":
			asset = &Asset{ID: a.ID, Status: a.Status, Duration: a.Duration, PlaybackIDs: a.PlaybackIDs}
			if asset.ID == "" {
				asset.ID = assetID
			}
			return nil
		case "errored":
			msg := "asset errored"
			if len(a.ErrMessages) > 0 {
				msg = strings.Join(a.ErrMessages, "; ")
			}
			return backoff.Permanent(fmt.Errorf("mux asset %s: %s", assetID, msg))
		default:
			return errPending
		}
	}
	if err := backoff.Retry(op, m.newPollBackoff(ctx)); err != nil {
		return nil, pollErr("asset", err)
	}
	return asset, nil
}

var errPending = errors.New("mux: masih diproses")

func pollErr(what string, err error) error {
	if errors.Is(err, errPending) {
		return fmt.Errorf("mux: %s not ready before poll timeout", what)
	}
	return err
}
