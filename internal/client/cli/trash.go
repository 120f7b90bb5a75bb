package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/assetkeeper/internal/client/guard"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
)

func (a *App) drawTrash(ctx context.Context) error {
	trash, err := a.trash.List(ctx, models.TrashAll)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(trash.Assets)+len(trash.AssetTypes)+len(trash.Users)+len(trash.Maintenance))
	for _, it := range trash.Assets {
		rows = append(rows, []string{models.TrashKindAsset, fmt.Sprint(it.ID), it.Name, str(it.DeletedAt)})
	}
	for _, it := range trash.AssetTypes {
		rows = append(rows, []string{models.TrashKindAssetType, fmt.Sprint(it.ID), it.Name, str(it.DeletedAt)})
	}
	for _, it := range trash.Users {
		rows = append(rows, []string{models.TrashKindUser, fmt.Sprint(it.ID), it.Username, ""})
	}
	for _, it := range trash.Maintenance {
		name := it.AssetName
		if it.Description != "" {
			name += ": " + it.Description
		}
		rows = append(rows, []string{models.TrashKindMaintenance, fmt.Sprint(it.ID), name, ""})
	}
	if len(rows) == 0 {
		printlnFn("Trash is empty.")
		return nil
	}
	printTable([]string{"MODULE", "ID", "NAME", "DELETED"}, rows)
	return nil
}

// trashModule maps what the operator typed to the record kind the
// restore and purge endpoints accept.
func trashModule(s string) string {
	switch strings.ToLower(s) {
	case "asset", "assets":
		return models.TrashKindAsset
	case "asset_type", "asset_types", "asset-type", "asset-types":
		return models.TrashKindAssetType
	case "user", "users":
		return models.TrashKindUser
	case "maintenance", "maintenances":
		return models.TrashKindMaintenance
	}
	return s
}

// Restore brings a soft-deleted record back.
func (a *App) Restore(ctx context.Context, module, rawID string) error {
	if a.view.View != guard.ViewTrash {
		return a.notHere("restore")
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	module = trashModule(module)

	if err := a.trash.Restore(ctx, module, id); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	printlnFn(fmt.Sprintf("Restored %s #%d.", module, id))
	return a.drawTrash(ctx)
}

// Purge deletes a soft-deleted record for good after confirmation.
func (a *App) Purge(ctx context.Context, module, rawID string) error {
	if a.view.View != guard.ViewTrash {
		return a.notHere("purge")
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	module = trashModule(module)

	ok, err := a.confirm(fmt.Sprintf("Permanently delete %s #%d? This cannot be undone.", module, id))
	if err != nil || !ok {
		return err
	}
	if err := a.trash.PermanentDelete(ctx, module, id); err != nil {
		return fmt.Errorf("permanent delete failed: %w", err)
	}
	printlnFn(fmt.Sprintf("Permanently deleted %s #%d.", module, id))
	return a.drawTrash(ctx)
}
