package models

// MaintenanceRecord is a row of the maintenance resource.
type MaintenanceRecord struct {
	ID              int64   `json:"id"`
	AssetID         int64   `json:"asset_id"`
	AssetName       string  `json:"asset_name,omitempty"`
	AssetCode       string  `json:"asset_code,omitempty"`
	Type            string  `json:"type,omitempty"`
	Status          string  `json:"status,omitempty"`
	Description     string  `json:"description,omitempty"`
	Vendor          string  `json:"vendor,omitempty"`
	MaintenanceDate *string `json:"maintenance_date,omitempty"`
	CompletedDate   *string `json:"completed_date,omitempty"`
	EstimatedCost   float64 `json:"estimated_cost"`
	Cost            float64 `json:"cost"`
	InvoiceFile     *string `json:"invoice_file,omitempty"`
	AcceptanceFile  *string `json:"acceptance_file,omitempty"`
}

// MaintenanceInput is the create/update body of the maintenance resource.
type MaintenanceInput struct {
	AssetID           int64    `json:"asset_id"`
	Type              string   `json:"type,omitempty"`
	Status            string   `json:"status,omitempty"`
	Description       string   `json:"description,omitempty"`
	MaintenanceReason string   `json:"maintenance_reason,omitempty"`
	RequestDate       string   `json:"request_date,omitempty"`
	Vendor            string   `json:"vendor,omitempty"`
	MaintenanceDate   string   `json:"maintenance_date,omitempty"`
	EstimatedCost     *float64 `json:"estimated_cost,omitempty"`
	Cost              *float64 `json:"cost,omitempty"`
}

// Maintenance attachment kinds accepted by the upload endpoint.
const (
	AttachmentInvoice    = "invoice_file"
	AttachmentAcceptance = "acceptance_file"
	AttachmentBefore     = "before_image"
	AttachmentAfter      = "after_image"
)
