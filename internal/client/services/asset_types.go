package services

import (
	"context"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/client/validation"
)

type AssetTypeService interface {
	List(ctx context.Context) (*models.Page[models.AssetType], error)
	Get(ctx context.Context, id int64) (*models.AssetType, error)
	Create(ctx context.Context, in models.AssetTypeInput) (*models.AssetType, error)
	Update(ctx context.Context, id int64, in models.AssetTypeInput) (*models.AssetType, error)
	Delete(ctx context.Context, id int64) error
}

type assetTypeService struct {
	client *api.Client
}

func NewAssetTypeService(client *api.Client) AssetTypeService {
	return &assetTypeService{client: client}
}

func (s *assetTypeService) List(ctx context.Context) (*models.Page[models.AssetType], error) {
	var out models.Page[models.AssetType]
	if err := s.client.GetJSON(ctx, "asset-types", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetTypeService) Get(ctx context.Context, id int64) (*models.AssetType, error) {
	var out models.AssetType
	if err := s.client.GetJSON(ctx, itemPath("asset-types", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetTypeService) Create(ctx context.Context, in models.AssetTypeInput) (*models.AssetType, error) {
	if err := validation.AssetType(in); err != nil {
		return nil, err
	}
	var out models.AssetType
	if err := s.client.PostJSON(ctx, "asset-types", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetTypeService) Update(ctx context.Context, id int64, in models.AssetTypeInput) (*models.AssetType, error) {
	if err := validation.AssetType(in); err != nil {
		return nil, err
	}
	var out models.AssetType
	if err := s.client.PutJSON(ctx, itemPath("asset-types", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *assetTypeService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, itemPath("asset-types", id), nil)
}
