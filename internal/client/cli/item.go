package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/assetkeeper/internal/client/guard"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/common"
)

// Show prints one record of the current list view.
func (a *App) Show(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	switch a.view.View {
	case guard.ViewAssets:
		it, err := a.assets.Get(ctx, id)
		if err != nil {
			return err
		}
		printFields([][2]string{
			{"ID", fmt.Sprint(it.ID)},
			{"Name", it.Name},
			{"Code", it.DeviceCode},
			{"Type", it.AssetTypeName},
			{"Price", money(it.Price)},
			{"Quantity", fmt.Sprint(it.Quantity)},
			{"Status", it.Status},
			{"Purchased", str(it.PurchaseDate)},
			{"Holder", it.UserText},
			{"Notes", it.Notes},
		})
	case guard.ViewAssetTypes:
		it, err := a.assetTypes.Get(ctx, id)
		if err != nil {
			return err
		}
		printFields([][2]string{{"ID", fmt.Sprint(it.ID)}, {"Name", it.Name}, {"Description", it.Description}})
	case guard.ViewUsers:
		it, err := a.users.Get(ctx, id)
		if err != nil {
			return err
		}
		quota := ""
		if it.AssetQuota != nil {
			quota = strconv.Itoa(*it.AssetQuota)
		}
		printFields([][2]string{
			{"ID", fmt.Sprint(it.ID)},
			{"Username", it.Username},
			{"Email", it.Email},
			{"Role", fmt.Sprint(it.RoleID)},
			{"Active", strconv.FormatBool(it.IsActive)},
			{"Asset quota", quota},
			{"Created", str(it.CreatedAt)},
		})
	case guard.ViewMaintenance:
		it, err := a.maintenance.Get(ctx, id)
		if err != nil {
			return err
		}
		printFields([][2]string{
			{"ID", fmt.Sprint(it.ID)},
			{"Asset", fmt.Sprintf("%s (#%d)", it.AssetName, it.AssetID)},
			{"Type", it.Type},
			{"Status", it.Status},
			{"Description", it.Description},
			{"Vendor", it.Vendor},
			{"Date", str(it.MaintenanceDate)},
			{"Completed", str(it.CompletedDate)},
			{"Estimated cost", money(it.EstimatedCost)},
			{"Cost", money(it.Cost)},
			{"Invoice", str(it.InvoiceFile)},
			{"Acceptance", str(it.AcceptanceFile)},
		})
	case guard.ViewTransfer:
		it, err := a.transfers.Get(ctx, id)
		if err != nil {
			return err
		}
		from := ""
		if it.FromUserID != nil {
			from = fmt.Sprint(*it.FromUserID)
		}
		printFields([][2]string{
			{"ID", fmt.Sprint(it.ID)},
			{"Code", it.TransferCode},
			{"Asset", fmt.Sprintf("%s (#%d)", it.AssetName, it.AssetID)},
			{"From user", from},
			{"To user", fmt.Sprint(it.ToUserID)},
			{"Status", it.Status},
			{"Notes", it.Notes},
			{"Created", str(it.CreatedAt)},
		})
	default:
		return a.notHere("show")
	}
	return nil
}

// Add runs the create form of the current view.
func (a *App) Add(ctx context.Context) error {
	switch a.view.View {
	case guard.ViewAssets:
		return a.Open(ctx, "/assets/add")
	case guard.ViewAssetTypes:
		return a.assetTypeForm(ctx, 0)
	case guard.ViewUsers:
		return a.userForm(ctx, 0)
	case guard.ViewMaintenance:
		return a.maintenanceForm(ctx, 0)
	case guard.ViewTransfer:
		return a.transferForm(ctx)
	}
	return a.notHere("add")
}

// Edit runs the update form of the current view for one record.
func (a *App) Edit(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	switch a.view.View {
	case guard.ViewAssets:
		return a.Open(ctx, fmt.Sprintf("/assets/edit/%d", id))
	case guard.ViewAssetTypes:
		return a.assetTypeForm(ctx, id)
	case guard.ViewUsers:
		return a.userForm(ctx, id)
	case guard.ViewMaintenance:
		return a.maintenanceForm(ctx, id)
	}
	return a.notHere("edit")
}

// Delete soft-deletes a record after confirmation.
func (a *App) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	var del func(context.Context, int64) error
	switch a.view.View {
	case guard.ViewAssets:
		del = a.assets.Delete
	case guard.ViewAssetTypes:
		del = a.assetTypes.Delete
	case guard.ViewUsers:
		del = a.users.Delete
	case guard.ViewMaintenance:
		del = a.maintenance.Delete
	default:
		return a.notHere("delete")
	}

	ok, err := a.confirm(fmt.Sprintf("Delete #%d from %s?", id, strings.ToLower(a.view.Title)))
	if err != nil || !ok {
		return err
	}
	if err := del(ctx, id); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Deleted #%d.", id))
	return nil
}

func (a *App) confirm(question string) (bool, error) {
	answer, err := getSimpleText(a.reader, question+" (y/N)", a.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	printlnFn("Cancelled.")
	return false, nil
}

func (a *App) assetForm(ctx context.Context, id int64) error {
	var cur models.Asset
	if id != 0 {
		got, err := a.assets.Get(ctx, id)
		if err != nil {
			return err
		}
		cur = *got
	}

	var in models.AssetInput
	var err error
	if in.Name, err = a.ask("Name", cur.Name); err != nil {
		return err
	}
	if in.AssetTypeID, err = a.askInt64("Asset type id", cur.AssetTypeID); err != nil {
		return err
	}
	var price *float64
	if id != 0 {
		price = &cur.Price
	}
	if in.Price, err = a.askFloat("Price", price); err != nil {
		return err
	}
	q := ""
	if cur.Quantity > 0 {
		q = strconv.Itoa(cur.Quantity)
	}
	if v, err := a.ask("Quantity", q); err != nil {
		return err
	} else if v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("quantity: %q is not a number", v)
		}
		in.Quantity = &n
	}
	if in.Status, err = a.ask("Status", cur.Status); err != nil {
		return err
	}
	if in.PurchaseDate, err = a.ask("Purchase date (YYYY-MM-DD)", str(cur.PurchaseDate)); err != nil {
		return err
	}
	if in.DeviceCode, err = a.ask("Device code", cur.DeviceCode); err != nil {
		return err
	}
	if in.Notes, err = a.ask("Notes", cur.Notes); err != nil {
		return err
	}

	if id == 0 {
		created, err := a.assets.Create(ctx, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Asset #%d created.", created.ID))
	} else {
		if _, err := a.assets.Update(ctx, id, in); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Asset #%d updated.", id))
	}
	return a.Open(ctx, "/assets")
}

func (a *App) assetTypeForm(ctx context.Context, id int64) error {
	var cur models.AssetType
	if id != 0 {
		got, err := a.assetTypes.Get(ctx, id)
		if err != nil {
			return err
		}
		cur = *got
	}

	var in models.AssetTypeInput
	var err error
	if in.Name, err = a.ask("Name", cur.Name); err != nil {
		return err
	}
	if in.Description, err = a.ask("Description", cur.Description); err != nil {
		return err
	}

	if id == 0 {
		created, err := a.assetTypes.Create(ctx, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Asset type #%d created.", created.ID))
		return nil
	}
	if _, err := a.assetTypes.Update(ctx, id, in); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Asset type #%d updated.", id))
	return nil
}

func (a *App) userForm(ctx context.Context, id int64) error {
	var cur models.User
	if id != 0 {
		got, err := a.users.Get(ctx, id)
		if err != nil {
			return err
		}
		cur = *got
	}

	var in models.UserInput
	var err error
	if in.Username, err = a.ask("Username", cur.Username); err != nil {
		return err
	}
	if in.Email, err = a.ask("Email", cur.Email); err != nil {
		return err
	}
	if in.RoleID, err = a.askInt64("Role id", cur.RoleID); err != nil {
		return err
	}

	label := "New password"
	if id != 0 {
		printlnFn("Leave the password empty to keep it.")
	} else {
		label = "Password"
	}
	printlnFn(label)
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	in.Password = string(pw)
	common.WipeByteArray(pw)

	if id == 0 {
		created, err := a.users.Create(ctx, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("User #%d created.", created.ID))
		return nil
	}
	if _, err := a.users.Update(ctx, id, in); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("User #%d updated.", id))
	return nil
}

func (a *App) maintenanceForm(ctx context.Context, id int64) error {
	var cur models.MaintenanceRecord
	if id != 0 {
		got, err := a.maintenance.Get(ctx, id)
		if err != nil {
			return err
		}
		cur = *got
	}

	var in models.MaintenanceInput
	var err error
	if in.AssetID, err = a.askInt64("Asset id", cur.AssetID); err != nil {
		return err
	}
	if in.Type, err = a.ask("Type (preventive, corrective, emergency)", cur.Type); err != nil {
		return err
	}
	if in.RequestDate, err = a.ask("Request date (YYYY-MM-DD)", ""); err != nil {
		return err
	}
	if in.MaintenanceReason, err = a.ask("Reason", ""); err != nil {
		return err
	}
	if in.Description, err = a.ask("Description", cur.Description); err != nil {
		return err
	}
	if in.Vendor, err = a.ask("Vendor", cur.Vendor); err != nil {
		return err
	}
	var est *float64
	if id != 0 {
		est = &cur.EstimatedCost
	}
	if in.EstimatedCost, err = a.askFloat("Estimated cost", est); err != nil {
		return err
	}

	if id == 0 {
		created, err := a.maintenance.Create(ctx, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Maintenance record #%d created.", created.ID))
		return nil
	}
	if _, err := a.maintenance.Update(ctx, id, in); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Maintenance record #%d updated.", id))
	return nil
}

func (a *App) transferForm(ctx context.Context) error {
	var in models.TransferInput
	var err error
	if in.AssetID, err = a.askInt64("Asset id", 0); err != nil {
		return err
	}
	if in.ToUserID, err = a.askInt64("Receiving user id", 0); err != nil {
		return err
	}
	if in.Notes, err = a.ask("Notes", ""); err != nil {
		return err
	}

	created, err := a.transfers.Create(ctx, in)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Transfer #%d requested (%s).", created.ID, created.Status))
	return nil
}
