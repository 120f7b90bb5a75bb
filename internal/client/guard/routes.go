// Package guard maps console paths to views and gates private views behind
// an authenticated session.
package guard

// View names a screen of the console.
type View string

const (
	ViewLogin         View = "login"
	ViewDashboard     View = "dashboard"
	ViewAssets        View = "assets"
	ViewAssetAdd      View = "asset-add"
	ViewAssetEdit     View = "asset-edit"
	ViewAssetTypes    View = "asset-types"
	ViewUsers         View = "users"
	ViewMaintenance   View = "maintenance"
	ViewTransfer      View = "transfer"
	ViewTrash         View = "trash"
	ViewInventoryDocs View = "inventory-docs"
	ViewNotFound      View = "not-found"
)

// LoginPath is the only public route and the target of every redirect.
const LoginPath = "/login"

// Route binds a chi path pattern to a view.
type Route struct {
	Pattern string
	View    View
	Private bool
	Title   string
}

// Routes is the console's route tree.
var Routes = []Route{
	{Pattern: LoginPath, View: ViewLogin, Title: "Login"},
	{Pattern: "/", View: ViewDashboard, Private: true, Title: "Dashboard"},
	{Pattern: "/assets", View: ViewAssets, Private: true, Title: "Assets"},
	{Pattern: "/assets/add", View: ViewAssetAdd, Private: true, Title: "Add asset"},
	{Pattern: "/assets/edit/{id}", View: ViewAssetEdit, Private: true, Title: "Edit asset"},
	{Pattern: "/asset-types", View: ViewAssetTypes, Private: true, Title: "Asset types"},
	{Pattern: "/users", View: ViewUsers, Private: true, Title: "Users"},
	{Pattern: "/maintenance", View: ViewMaintenance, Private: true, Title: "Maintenance"},
	{Pattern: "/transfer", View: ViewTransfer, Private: true, Title: "Transfers"},
	{Pattern: "/trash", View: ViewTrash, Private: true, Title: "Trash"},
	{Pattern: "/inventory/docs", View: ViewInventoryDocs, Private: true, Title: "Inventory documents"},
}
