package models

// Trash list filters, the module parameter of GET trash.
const (
	TrashAll         = "all"
	TrashAssets      = "assets"
	TrashAssetTypes  = "asset_type"
	TrashUsers       = "users"
	TrashMaintenance = "maintenance"
)

// Record kinds named by restore and permanent-delete.
const (
	TrashKindAsset       = "asset"
	TrashKindAssetType   = "asset_type"
	TrashKindUser        = "user"
	TrashKindMaintenance = "maintenance"
)

// Trash is the soft-deleted content grouped per module.
type Trash struct {
	Assets      []Asset             `json:"assets"`
	AssetTypes  []AssetType         `json:"asset_types"`
	Users       []User              `json:"users"`
	Maintenance []MaintenanceRecord `json:"maintenance"`
}

// TrashAction identifies one soft-deleted record. Module is a TrashKind.
type TrashAction struct {
	Module string `json:"module"`
	ID     int64  `json:"id"`
}
