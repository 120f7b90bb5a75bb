package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestDashboard_Stats(t *testing.T) {
	b := newFakeBackend()
	b.Get("/v1/assets", reply(http.StatusOK, map[string]any{"items": []any{}, "pagination": map[string]int{"total": 120}}))
	b.Get("/v1/users", reply(http.StatusOK, []map[string]any{{"id": 1}, {"id": 2}}))
	b.Get("/v1/maintenance", reply(http.StatusInternalServerError, map[string]string{"message": "boom"}))
	b.Get("/v1/transfers", reply(http.StatusOK, map[string]any{"data": []map[string]any{{"id": 1}}, "total": 7}))
	client := b.start(t, staticToken("tok"))

	d := NewDashboardService(
		NewAssetService(client),
		NewUserService(client),
		NewMaintenanceService(client),
		NewTransferService(client),
		logging.Discard(),
	)

	got := d.Stats(context.Background())
	assert.Equal(t, Stats{Assets: 120, Users: 2, Maintenance: 0, Transfers: 7}, got)
	assert.Len(t, b.Calls(), 4)
}
