package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/dmitrijs2005/assetkeeper/internal/client/guard"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/filex"
)

// Export downloads the spreadsheet for the current list filters and saves
// it into the download directory.
func (a *App) Export(ctx context.Context) error {
	var (
		f   *api.File
		err error
	)
	switch a.view.View {
	case guard.ViewAssets:
		f, err = a.assets.Export(ctx, a.params)
	case guard.ViewMaintenance:
		f, err = a.maintenance.Export(ctx, a.params)
	default:
		return a.notHere("export")
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	dir, err := filex.EnsureDir(a.config.DownloadDir)
	if err != nil {
		return err
	}
	path, err := filex.SaveFile(dir, f.Name, f.Data)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Exported %d bytes to %s", len(f.Data), path))
	return nil
}

// Import uploads an asset spreadsheet.
func (a *App) Import(ctx context.Context, file string) error {
	if a.view.View != guard.ViewAssets {
		return a.notHere("import")
	}

	fh, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fh.Close()

	res, err := a.assets.Import(ctx, filepath.Base(file), fh)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	msg := res.Message
	if msg == "" {
		msg = fmt.Sprintf("Imported %d assets.", res.Imported)
	}
	printlnFn(msg)
	for _, e := range res.Errors {
		printlnFn("  -", e)
	}
	return a.fetchList(ctx)
}

var attachmentKinds = map[string]string{
	"invoice":                   models.AttachmentInvoice,
	"acceptance":                models.AttachmentAcceptance,
	"before":                    models.AttachmentBefore,
	"after":                     models.AttachmentAfter,
	models.AttachmentInvoice:    models.AttachmentInvoice,
	models.AttachmentAcceptance: models.AttachmentAcceptance,
	models.AttachmentBefore:     models.AttachmentBefore,
	models.AttachmentAfter:      models.AttachmentAfter,
}

// Upload attaches a file to a maintenance record.
func (a *App) Upload(ctx context.Context, rawID, kind, file string) error {
	if a.view.View != guard.ViewMaintenance {
		return a.notHere("upload")
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	fileType, ok := attachmentKinds[kind]
	if !ok {
		return fmt.Errorf("unknown attachment type %q", kind)
	}

	fh, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fh.Close()

	if err := a.maintenance.Upload(ctx, id, fileType, filepath.Base(file), fh); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	printlnFn(fmt.Sprintf("Uploaded %s to maintenance #%d.", filepath.Base(file), id))
	return nil
}
