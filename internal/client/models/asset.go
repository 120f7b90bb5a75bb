package models

// Asset is a row of the assets resource.
type Asset struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	DeviceCode    string  `json:"device_code,omitempty"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Status        string  `json:"status,omitempty"`
	PurchaseDate  *string `json:"purchase_date,omitempty"`
	AssetTypeID   int64   `json:"asset_type_id"`
	AssetTypeName string  `json:"asset_type_name,omitempty"`
	UserID        *int64  `json:"user_id,omitempty"`
	UserText      string  `json:"user_text,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	DeletedAt     *string `json:"deleted_at,omitempty"`
}

// AssetInput is the create/update body of the assets resource.
type AssetInput struct {
	Name         string   `json:"name"`
	AssetTypeID  int64    `json:"asset_type_id"`
	Price        *float64 `json:"price,omitempty"`
	Quantity     *int     `json:"quantity,omitempty"`
	Status       string   `json:"status,omitempty"`
	PurchaseDate string   `json:"purchase_date,omitempty"`
	DeviceCode   string   `json:"device_code,omitempty"`
	UserID       *int64   `json:"user_id,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// AssetType is a row of the asset-types resource.
type AssetType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	DeletedAt   *string `json:"deleted_at,omitempty"`
}

// AssetTypeInput is the create/update body of the asset-types resource.
type AssetTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ImportResult is the asset import summary.
type ImportResult struct {
	Message  string   `json:"message,omitempty"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}
