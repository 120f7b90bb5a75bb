package services

import (
	"context"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/client/validation"
)

// UserService manages console accounts. Create and Update validate locally
// and send nothing when validation fails.
type UserService interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[models.User], error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, in models.UserInput) (*models.User, error)
	Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	client *api.Client
}

func NewUserService(client *api.Client) UserService {
	return &userService{client: client}
}

func (s *userService) List(ctx context.Context, params models.ListParams) (*models.Page[models.User], error) {
	var out models.Page[models.User]
	if err := s.client.GetJSON(ctx, "users", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	if err := s.client.GetJSON(ctx, itemPath("users", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	if err := validation.User(in, true); err != nil {
		return nil, err
	}
	var out models.User
	if err := s.client.PostJSON(ctx, "users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) Update(ctx context.Context, id int64, in models.UserInput) (*models.User, error) {
	if err := validation.User(in, false); err != nil {
		return nil, err
	}
	var out models.User
	if err := s.client.PutJSON(ctx, itemPath("users", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, itemPath("users", id), nil)
}
