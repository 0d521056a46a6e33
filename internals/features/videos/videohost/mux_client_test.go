package videohost

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMuxAPI: API Mux di memori, upload dan asset siap setelah poll kedua
type fakeMuxAPI struct {
	putURL      string
	assetStatus string
	uploadPolls atomic.Int32
	assetPolls  atomic.Int32
	createErr   error

	mu      sync.Mutex
	deleted []string
}

func (f *fakeMuxAPI) CreateUpload(context.Context) (*muxUpload, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &muxUpload{ID: "up1", URL: f.putURL, Status: "waiting"}, nil
}

func (f *fakeMuxAPI) GetUpload(_ context.Context, id string) (*muxUpload, error) {
	if f.uploadPolls.Add(1) < 2 {
		return &muxUpload{ID: id, Status: "waiting"}, nil
	}
	return &muxUpload{ID: id, Status: "asset_created", AssetID: "as1"}, nil
}

func (f *fakeMuxAPI) GetAsset(_ context.Context, id string) (*muxAsset, error) {
	if f.assetPolls.Add(1) < 2 {
		return &muxAsset{ID: id, Status: "preparing"}, nil
	}
	if f.assetStatus == "errored" {
		return &muxAsset{ID: id, Status: "errored", ErrMessages: []string{"bad codec"}}, nil
	}
	return &muxAsset{ID: id, Status: "ready", Duration: 12.6, PlaybackIDs: []string{"pb1"}}, nil
}

func (f *fakeMuxAPI) DeleteAsset(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

type putTarget struct {
	srv   *httptest.Server
	bytes atomic.Int64
	ctype atomic.Value
}

func newPutTarget(t *testing.T, status int) *putTarget {
	t.Helper()
	p := &putTarget{}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		n, _ := io.Copy(io.Discard, r.Body)
		p.bytes.Store(n)
		p.ctype.Store(r.Header.Get("Content-Type"))
		w.WriteHeader(status)
	}))
	t.Cleanup(p.srv.Close)
	return p
}

func newTestClient(api muxAPI) *MuxClient {
	return newMuxClient(MuxConfig{
		TokenID:      "id",
		TokenSecret:  "secret",
		RatePerSec:   1000,
		PollTimeout:  5 * time.Second,
		PollInterval: time.Millisecond,
	}, api)
}

func writeTempVideo(t *testing.T, size int) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(p, make([]byte, size), 0o644))
	return p
}

func TestCreateAssetHappyPath(t *testing.T) {
	target := newPutTarget(t, http.StatusOK)
	api := &fakeMuxAPI{putURL: target.srv.URL + "/signed", assetStatus: "ready"}

	asset, err := newTestClient(api).CreateAsset(context.Background(), writeTempVideo(t, 4096))
	require.NoError(t, err)
	assert.Equal(t, "as1", asset.ID)
	assert.Equal(t, "pb1", asset.FirstPlaybackID())
	require.NotNil(t, asset.RoundedDuration())
	assert.Equal(t, 13, *asset.RoundedDuration())
	assert.Equal(t, int64(4096), target.bytes.Load())
	assert.Equal(t, "application/octet-stream", target.ctype.Load())
	assert.GreaterOrEqual(t, api.uploadPolls.Load(), int32(2))
	assert.GreaterOrEqual(t, api.assetPolls.Load(), int32(2))
}

func TestCreateAssetErroredAsset(t *testing.T) {
	target := newPutTarget(t, http.StatusOK)
	api := &fakeMuxAPI{putURL: target.srv.URL, assetStatus: "errored"}

	_, err := newTestClient(api).CreateAsset(context.Background(), writeTempVideo(t, 16))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad codec")
}

func TestCreateAssetUploadRejected(t *testing.T) {
	target := newPutTarget(t, http.StatusForbidden)
	api := &fakeMuxAPI{putURL: target.srv.URL}

	_, err := newTestClient(api).CreateAsset(context.Background(), writeTempVideo(t, 16))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Zero(t, api.uploadPolls.Load())
}

func TestCreateAssetCreateUploadFails(t *testing.T) {
	api := &fakeMuxAPI{createErr: errors.New("401 unauthorized")}

	_, err := newTestClient(api).CreateAsset(context.Background(), writeTempVideo(t, 16))
	assert.ErrorContains(t, err, "401 unauthorized")
}

func TestCreateAssetMissingFile(t *testing.T) {
	target := newPutTarget(t, http.StatusOK)
	api := &fakeMuxAPI{putURL: target.srv.URL}

	_, err := newTestClient(api).CreateAsset(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
}

func TestDeleteAsset(t *testing.T) {
	api := &fakeMuxAPI{}

	require.NoError(t, newTestClient(api).DeleteAsset(context.Background(), "as1"))
	assert.Equal(t, []string{"as1"}, api.deleted)
}

func TestUnconfiguredClient(t *testing.T) {
	api := &fakeMuxAPI{}
	c := newMuxClient(MuxConfig{}, api)
	assert.False(t, c.Configured())

	_, err := c.CreateAsset(context.Background(), "whatever.mp4")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.EqualError(t, err, "video host not configured")

	assert.NoError(t, c.DeleteAsset(context.Background(), "as1"))
	assert.Empty(t, api.deleted)
}

func TestRoundedDuration(t *testing.T) {
	assert.Nil(t, (&Asset{}).RoundedDuration())
	assert.Equal(t, 12, *(&Asset{Duration: 12.4}).RoundedDuration())
	assert.Equal(t, "", (*Asset)(nil).FirstPlaybackID())
}
