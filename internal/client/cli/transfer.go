package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/assetkeeper/internal/client/guard"
)

// Confirm accepts a transfer by its confirmation token.
func (a *App) Confirm(ctx context.Context, token string) error {
	if a.view.View != guard.ViewTransfer {
		return a.notHere("confirm")
	}
	tr, err := a.transfers.Confirm(ctx, token, nil)
	if err != nil {
		return fmt.Errorf("confirm failed: %w", err)
	}
	printlnFn(fmt.Sprintf("Transfer #%d is now %s.", tr.ID, tr.Status))
	return nil
}

// Cancel withdraws a pending transfer.
func (a *App) Cancel(ctx context.Context, rawID string) error {
	if a.view.View != guard.ViewTransfer {
		return a.notHere("cancel")
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := a.transfers.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel failed: %w", err)
	}
	printlnFn(fmt.Sprintf("Transfer #%d cancelled.", id))
	return nil
}
