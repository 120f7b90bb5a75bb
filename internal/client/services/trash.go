package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
)

// TrashService browses and empties the soft-delete area.
type TrashService interface {
	List(ctx context.Context, module string) (*models.Trash, error)
	Restore(ctx context.Context, kind string, id int64) error
	PermanentDelete(ctx context.Context, kind string, id int64) error
}

type trashService struct {
	client *api.Client
}

// NewTrashService talks to the trash endpoints, which live outside the
// versioned prefix.
func NewTrashService(client *api.Client) TrashService {
	return &trashService{client: client.Unversioned()}
}

var (
	// ErrTrashModule is returned for a list filter the backend does not know.
	ErrTrashModule = fmt.Errorf("trash module must be one of %s, %s, %s, %s, %s",
		models.TrashAll, models.TrashAssets, models.TrashAssetTypes, models.TrashUsers, models.TrashMaintenance)
	// ErrTrashKind is returned for a record kind restore or delete cannot act on.
	ErrTrashKind = fmt.Errorf("trash record kind must be one of %s, %s, %s, %s",
		models.TrashKindAsset, models.TrashKindAssetType, models.TrashKindUser, models.TrashKindMaintenance)
)

func checkModule(module string) error {
	switch module {
	case models.TrashAll, models.TrashAssets, models.TrashAssetTypes, models.TrashUsers, models.TrashMaintenance:
		return nil
	}
	return ErrTrashModule
}

func checkKind(kind string) error {
	switch kind {
	case models.TrashKindAsset, models.TrashKindAssetType, models.TrashKindUser, models.TrashKindMaintenance:
		return nil
	}
	return ErrTrashKind
}

func (s *trashService) List(ctx context.Context, module string) (*models.Trash, error) {
	if module == "" {
		module = models.TrashAll
	}
	if err := checkModule(module); err != nil {
		return nil, err
	}
	var out models.Trash
	if err := s.client.GetJSON(ctx, "trash", url.Values{"module": {module}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *trashService) Restore(ctx context.Context, kind string, id int64) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return s.client.PostJSON(ctx, "trash/restore", models.TrashAction{Module: kind, ID: id}, nil)
}

func (s *trashService) PermanentDelete(ctx context.Context, kind string, id int64) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return s.client.PostJSON(ctx, "trash/permanent-delete", models.TrashAction{Module: kind, ID: id}, nil)
}
