package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/assetkeeper/internal/client/guard"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
)

// List refreshes the current list view, merging key=value filters into
// the view's parameters. "list reset" clears them.
func (a *App) List(ctx context.Context, args []string) error {
	for _, arg := range args {
		if arg == "reset" {
			a.params = models.ListParams{}
			continue
		}
		if err := applyParam(&a.params, arg); err != nil {
			return err
		}
	}
	return a.fetchList(ctx)
}

func applyParam(p *models.ListParams, arg string) error {
	k, v, ok := strings.Cut(arg, "=")
	if !ok {
		p.Search = arg
		return nil
	}

	atoi := func() (int64, error) {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%s: %q is not a number", k, v)
		}
		return n, nil
	}

	switch k {
	case "page", "per_page", "asset_type_id", "asset_id":
		n, err := atoi()
		if err != nil {
			return err
		}
		switch k {
		case "page":
			p.Page = int(n)
		case "per_page":
			p.PerPage = int(n)
		case "asset_type_id":
			p.AssetTypeID = n
		case "asset_id":
			p.AssetID = n
		}
	case "search", "q":
		p.Search = v
	case "status":
		p.Status = v
	case "type":
		p.Type = v
	case "vendor":
		p.Vendor = v
	case "date_from", "from":
		p.DateFrom = v
	case "date_to", "to":
		p.DateTo = v
	default:
		return fmt.Errorf("unknown filter %q", k)
	}
	return nil
}

func (a *App) fetchList(ctx context.Context) error {
	switch a.view.View {
	case guard.ViewAssets:
		page, err := a.assets.List(ctx, a.params)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, it := range page.Items {
			rows = append(rows, []string{
				fmt.Sprint(it.ID), it.Name, it.DeviceCode, it.AssetTypeName, money(it.Price), fmt.Sprint(it.Quantity), it.Status, it.UserText,
			})
		}
		printTable([]string{"ID", "NAME", "CODE", "TYPE", "PRICE", "QTY", "STATUS", "HOLDER"}, rows)
		printlnFn(pageFooter(page.Pagination, len(page.Items)))

	case guard.ViewAssetTypes:
		page, err := a.assetTypes.List(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, it := range page.Items {
			rows = append(rows, []string{fmt.Sprint(it.ID), it.Name, it.Description})
		}
		printTable([]string{"ID", "NAME", "DESCRIPTION"}, rows)
		printlnFn(pageFooter(page.Pagination, len(page.Items)))

	case guard.ViewUsers:
		page, err := a.users.List(ctx, a.params)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, it := range page.Items {
			active := "no"
			if it.IsActive {
				active = "yes"
			}
			rows = append(rows, []string{fmt.Sprint(it.ID), it.Username, it.Email, fmt.Sprint(it.RoleID), active})
		}
		printTable([]string{"ID", "USERNAME", "EMAIL", "ROLE", "ACTIVE"}, rows)
		printlnFn(pageFooter(page.Pagination, len(page.Items)))

	case guard.ViewMaintenance:
		page, err := a.maintenance.List(ctx, a.params)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, it := range page.Items {
			rows = append(rows, []string{
				fmt.Sprint(it.ID), it.AssetName, it.Type, it.Status, it.Vendor, str(it.MaintenanceDate), money(it.Cost),
			})
		}
		printTable([]string{"ID", "ASSET", "TYPE", "STATUS", "VENDOR", "DATE", "COST"}, rows)
		printlnFn(pageFooter(page.Pagination, len(page.Items)))

	case guard.ViewTransfer:
		page, err := a.transfers.List(ctx, a.params)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, it := range page.Items {
			rows = append(rows, []string{
				fmt.Sprint(it.ID), it.TransferCode, it.AssetName, fmt.Sprint(it.ToUserID), it.Status, str(it.CreatedAt),
			})
		}
		printTable([]string{"ID", "CODE", "ASSET", "TO USER", "STATUS", "CREATED"}, rows)
		printlnFn(pageFooter(page.Pagination, len(page.Items)))

	case guard.ViewTrash:
		return a.drawTrash(ctx)

	default:
		return a.notHere("list")
	}
	return nil
}

func (a *App) notHere(cmd string) error {
	return fmt.Errorf("'%s' is not available on %s", cmd, a.view.Path)
}
