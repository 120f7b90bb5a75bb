package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/client/validation"
)

type TransferService interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[models.Transfer], error)
	Get(ctx context.Context, id int64) (*models.Transfer, error)
	Create(ctx context.Context, in models.TransferInput) (*models.Transfer, error)
	// Confirm answers a transfer by its emailed confirmation token.
	Confirm(ctx context.Context, token string, body map[string]any) (*models.Transfer, error)
	Cancel(ctx context.Context, id int64) error
}

type transferService struct {
	client *api.Client
}

func NewTransferService(client *api.Client) TransferService {
	return &transferService{client: client}
}

func (s *transferService) List(ctx context.Context, params models.ListParams) (*models.Page[models.Transfer], error) {
	var out models.Page[models.Transfer]
	if err := s.client.GetJSON(ctx, "transfers", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *transferService) Get(ctx context.Context, id int64) (*models.Transfer, error) {
	var out models.Transfer
	if err := s.client.GetJSON(ctx, itemPath("transfers", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *transferService) Create(ctx context.Context, in models.TransferInput) (*models.Transfer, error) {
	if err := validation.Transfer(in); err != nil {
		return nil, err
	}
	var out models.Transfer
	if err := s.client.PostJSON(ctx, "transfers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *transferService) Confirm(ctx context.Context, token string, body map[string]any) (*models.Transfer, error) {
	if body == nil {
		body = map[string]any{}
	}
	var out models.Transfer
	if err := s.client.PostJSON(ctx, "transfers/confirm/"+url.PathEscape(token), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *transferService) Cancel(ctx context.Context, id int64) error {
	return s.client.PostJSON(ctx, itemPath("transfers", id)+"/cancel", nil, nil)
}
