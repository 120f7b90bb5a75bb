package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/assetkeeper/internal/client/guard"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
)

// Render resolves the current path against the session. It runs before
// every prompt.
func (a *App) Render(ctx context.Context) {
	d := a.guard.Resolve(a.account.Current(), a.path)
	if d.Redirected && a.view.View != "" && a.view.View != guard.ViewLogin {
		a.logger.Debug(ctx, "redirected to login", "from", a.path)
		printlnFn("Your session has ended. Please log in.")
	}
	a.view = d
	a.path = d.Path
}

// Open navigates to path and draws the resulting view.
func (a *App) Open(ctx context.Context, path string) error {
	a.path = path
	a.params = models.ListParams{}
	a.Render(ctx)
	return a.draw(ctx)
}

func (a *App) draw(ctx context.Context) error {
	printlnFn(fmt.Sprintf("== %s ==", a.view.Title))

	switch a.view.View {
	case guard.ViewLogin:
		printlnFn("Type 'login' to sign in.")
		return nil
	case guard.ViewDashboard:
		return a.drawDashboard(ctx)
	case guard.ViewAssetAdd:
		return a.assetForm(ctx, 0)
	case guard.ViewAssetEdit:
		id, err := parseID(a.view.Params["id"])
		if err != nil {
			return err
		}
		return a.assetForm(ctx, id)
	case guard.ViewInventoryDocs:
		return a.drawInventoryDocs()
	case guard.ViewNotFound:
		printlnFn("Page not found:", a.view.Path)
		return nil
	}
	return a.fetchList(ctx)
}

func (a *App) drawDashboard(ctx context.Context) error {
	st := a.dashboard.Stats(ctx)
	printTable([]string{"Assets", "Users", "Maintenance", "Transfers"}, [][]string{{
		fmt.Sprint(st.Assets), fmt.Sprint(st.Users), fmt.Sprint(st.Maintenance), fmt.Sprint(st.Transfers),
	}})
	return nil
}

func (a *App) drawInventoryDocs() error {
	printlnFn("Inventory documents are prepared from the asset list:")
	printlnFn("  open /assets, narrow it with 'list status=... asset_type_id=...', then 'export'.")
	printlnFn("Exports are saved under", a.config.DownloadDir)
	return nil
}

func printTable(header []string, rows [][]string) {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
	printlnFn(strings.TrimRight(b.String(), "\n"))
}

func printFields(fields [][2]string) {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 1, ' ', 0)
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%s\n", f[0], f[1])
	}
	_ = tw.Flush()
	printlnFn(strings.TrimRight(b.String(), "\n"))
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func money(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

func pageFooter(p models.Pagination, n int) string {
	if p.Pages > 1 {
		return fmt.Sprintf("Page %d/%d, %d total", p.Page, p.Pages, p.Total)
	}
	total := p.Total
	if total < n {
		total = n
	}
	return fmt.Sprintf("%d total", total)
}
