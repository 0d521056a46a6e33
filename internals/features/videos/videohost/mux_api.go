package videohost

import (
	"context"

	muxgo "github.com/muxinc/mux-go/v5"
)

// muxUpload / muxAsset: potongan response SDK yang dipakai client
type muxUpload struct {
	ID         string
	URL        string
	Status     string
	AssetID    string
	ErrMessage string
}

type muxAsset struct {
	ID          string
	Status      string
	Duration    float64
	PlaybackIDs []string
	ErrMessages []string
}

// muxAPI: empat endpoint Mux Video yang dipakai MuxClient
type muxAPI interface {
	CreateUpload(ctx context.Context) (*muxUpload, error)
	GetUpload(ctx context.Context, uploadID string) (*muxUpload, error)
	GetAsset(ctx context.Context, assetID string) (*muxAsset, error)
	DeleteAsset(ctx context.Context, assetID string) error
}

type sdkAPI struct {
	client *muxgo.APIClient
}

func newSDKAPI(tokenID, tokenSecret string) *sdkAPI {
	return &sdkAPI{
		client: muxgo.NewAPIClient(muxgo.NewConfiguration(
			muxgo.WithBasicAuth(tokenID, tokenSecret),
		)),
	}
}

func (a *sdkAPI) CreateUpload(ctx context.Context) (*muxUpload, error) {
	res, err := a.client.DirectUploadsApi.CreateDirectUpload(muxgo.CreateUploadRequest{
		CorsOrigin: "*",
		NewAssetSettings: muxgo.CreateAssetRequest{
			PlaybackPolicy: []muxgo.PlaybackPolicy{muxgo.PUBLIC},
			Mp4Support:     "standard",
		},
	}, muxgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return fromSDKUpload(res.Data), nil
}

func (a *sdkAPI) GetUpload(ctx context.Context, uploadID string) (*muxUpload, error) {
	res, err := a.client.DirectUploadsApi.GetDirectUpload(uploadID, muxgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return fromSDKUpload(res.Data), nil
}

func (a *sdkAPI) GetAsset(ctx context.Context, assetID string) (*muxAsset, error) {
	res, err := a.client.AssetsApi.GetAsset(assetID, muxgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	out := &muxAsset{
		ID:          res.Data.Id,
		Status:      res.Data.Status,
		Duration:    res.Data.Duration,
		ErrMessages: res.Data.Errors.Messages,
	}
	for _, p := range res.Data.PlaybackIds {
		out.PlaybackIDs = append(out.PlaybackIDs, p.Id)
	}
	return out, nil
}

func (a *sdkAPI) DeleteAsset(ctx context.Context, assetID string) error {
	return a.client.AssetsApi.DeleteAsset(assetID, muxgo.WithContext(ctx))
}

func fromSDKUpload(u muxgo.Upload) *muxUpload {
	return &muxUpload{
		ID:         u.Id,
		URL:        u.Url,
		Status:     u.Status,
		AssetID:    u.AssetId,
		ErrMessage: u.Error.Message,
	}
}
