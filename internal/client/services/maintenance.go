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

type MaintenanceService interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[models.MaintenanceRecord], error)
	Get(ctx context.Context, id int64) (*models.MaintenanceRecord, error)
	Create(ctx context.Context, in models.MaintenanceInput) (*models.MaintenanceRecord, error)
	Update(ctx context.Context, id int64, in models.MaintenanceInput) (*models.MaintenanceRecord, error)
	Delete(ctx context.Context, id int64) error
	Upload(ctx context.Context, id int64, fileType, fileName string, r io.Reader) error
	Export(ctx context.Context, params models.ListParams) (*api.File, error)
}

type maintenanceService struct {
	client *api.Client
	now    func() time.Time
}

func NewMaintenanceService(client *api.Client) MaintenanceService {
	return &maintenanceService{client: client, now: time.Now}
}

func (s *maintenanceService) List(ctx context.Context, params models.ListParams) (*models.Page[models.MaintenanceRecord], error) {
	var out models.Page[models.MaintenanceRecord]
	if err := s.client.GetJSON(ctx, "maintenance", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *maintenanceService) Get(ctx context.Context, id int64) (*models.MaintenanceRecord, error) {
	var out models.MaintenanceRecord
	if err := s.client.GetJSON(ctx, itemPath("maintenance", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *maintenanceService) Create(ctx context.Context, in models.MaintenanceInput) (*models.MaintenanceRecord, error) {
	if err := validation.Maintenance(in); err != nil {
		return nil, err
	}
	var out models.MaintenanceRecord
	if err := s.client.PostJSON(ctx, "maintenance", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *maintenanceService) Update(ctx context.Context, id int64, in models.MaintenanceInput) (*models.MaintenanceRecord, error) {
	if err := validation.Maintenance(in); err != nil {
		return nil, err
	}
	var out models.MaintenanceRecord
	if err := s.client.PutJSON(ctx, itemPath("maintenance", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *maintenanceService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, itemPath("maintenance", id), nil)
}

// ErrAttachmentType is returned for an unknown attachment kind.
var ErrAttachmentType = fmt.Errorf("attachment type must be one of %s, %s, %s, %s",
	models.AttachmentInvoice, models.AttachmentAcceptance, models.AttachmentBefore, models.AttachmentAfter)

// Upload attaches a file to a maintenance record. The backend expects the
// kind in "file_type" and the file under a field of the same name.
func (s *maintenanceService) Upload(ctx context.Context, id int64, fileType, fileName string, r io.Reader) error {
	switch fileType {
	case models.AttachmentInvoice, models.AttachmentAcceptance, models.AttachmentBefore, models.AttachmentAfter:
	default:
		return ErrAttachmentType
	}

	return s.client.Upload(ctx, itemPath("maintenance", id)+"/upload", &api.Multipart{
		Fields: map[string]string{"file_type": fileType},
		Files:  []api.FilePart{{Field: fileType, FileName: fileName, Content: r}},
	}, nil)
}

func (s *maintenanceService) Export(ctx context.Context, params models.ListParams) (*api.File, error) {
	q := params.Values()
	q.Del("page")
	q.Del("per_page")
	q.Del("search")
	q.Del("type")
	return s.client.Download(ctx, "maintenance/export", q, exportName("bao_tri", s.now()))
}
