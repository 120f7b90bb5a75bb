package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/client/validation"
)

type AssetService interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[models.Asset], error)
	Get(ctx context.Context, id int64) (*models.Asset, error)
	Create(ctx context.Context, in models.AssetInput) (*models.Asset, error)
	Update(ctx context.Context, id int64, in models.AssetInput) (*models.Asset, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, fileName string, r io.Reader) (*models.ImportResult, error)
	Export(ctx context.Context, params models.ListParams) (*api.File, error)
}

type assetService struct {
	client *api.Client
	now    func() time.Time
}

func NewAssetService(client *api.Client) AssetService {
	return &assetService{client: client, now: time.Now}
}

func (s *assetService) List(ctx context.Context, params models.ListParams) (*models.Page[models.Asset], error) {
	var out models.Page[models.Asset]
	if err := s.client.GetJSON(ctx, "assets", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetService) Get(ctx context.Context, id int64) (*models.Asset, error) {
	var out models.Asset
	if err := s.client.GetJSON(ctx, itemPath("assets", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetService) Create(ctx context.Context, in models.AssetInput) (*models.Asset, error) {
	if err := validation.Asset(in); err != nil {
		return nil, err
	}
	var out models.Asset
	if err := s.client.PostJSON(ctx, "assets", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetService) Update(ctx context.Context, id int64, in models.AssetInput) (*models.Asset, error) {
	if err := validation.Asset(in); err != nil {
		return nil, err
	}
	var out models.Asset
	if err := s.client.PutJSON(ctx, itemPath("assets", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, itemPath("assets", id), nil)
}

// Import uploads a spreadsheet of assets as the multipart field "file".
func (s *assetService) Import(ctx context.Context, fileName string, r io.Reader) (*models.ImportResult, error) {
	var out models.ImportResult
	err := s.client.Upload(ctx, "assets/import", &api.Multipart{
		Files: []api.FilePart{{Field: "file", FileName: fileName, Content: r}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetService) Export(ctx context.Context, params models.ListParams) (*api.File, error) {
	q := params.Values()
	q.Del("page")
	q.Del("per_page")
	return s.client.Download(ctx, "assets/export", q, exportName("tai_san", s.now()))
}

func exportName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, now.Format(time.DateOnly))
}
