package services

import (
	"context"

	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Stats are the dashboard counters.
type Stats struct {
	Assets      int
	Users       int
	Maintenance int
	Transfers   int
}

// DashboardService loads the dashboard counters.
type DashboardService interface {
	Stats(ctx context.Context) Stats
}

type dashboardService struct {
	assets      AssetService
	users       UserService
	maintenance MaintenanceService
	transfers   TransferService
	logger      logging.Logger
}

func NewDashboardService(assets AssetService, users UserService, maintenance MaintenanceService, transfers TransferService, logger logging.Logger) DashboardService {
	return &dashboardService{assets: assets, users: users, maintenance: maintenance, transfers: transfers, logger: logger}
}

// Stats fetches all four counters concurrently. A source that fails
// counts as zero.
func (d *dashboardService) Stats(ctx context.Context) Stats {
	var st Stats
	g, ctx := errgroup.WithContext(ctx)

	count := func(name string, dst *int, fetch func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fetch(ctx)
			if err != nil {
				d.logger.Warn(ctx, "dashboard counter unavailable", "source", name, "error", err)
				return nil
			}
			*dst = n
			return nil
		})
	}

	count("assets", &st.Assets, func(ctx context.Context) (int, error) {
		p, err := d.assets.List(ctx, models.ListParams{})
		return total(p, err)
	})
	count("users", &st.Users, func(ctx context.Context) (int, error) {
		p, err := d.users.List(ctx, models.ListParams{})
		return total(p, err)
	})
	count("maintenance", &st.Maintenance, func(ctx context.Context) (int, error) {
		p, err := d.maintenance.List(ctx, models.ListParams{})
		return total(p, err)
	})
	count("transfers", &st.Transfers, func(ctx context.Context) (int, error) {
		p, err := d.transfers.List(ctx, models.ListParams{})
		return total(p, err)
	})

	_ = g.Wait()
	return st
}

func total[T any](p *models.Page[T], err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return p.Total(), nil
}
