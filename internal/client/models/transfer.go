package models

// Transfer statuses.
const (
	TransferPending   = "pending"
	TransferConfirmed = "confirmed"
	TransferRejected  = "rejected"
	TransferCancelled = "cancelled"
)

// Transfer is a row of the transfers resource.
type Transfer struct {
	ID           int64   `json:"id"`
	TransferCode string  `json:"transfer_code,omitempty"`
	AssetID      int64   `json:"asset_id"`
	AssetName    string  `json:"asset_name,omitempty"`
	FromUserID   *int64  `json:"from_user_id,omitempty"`
	ToUserID     int64   `json:"to_user_id"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
	CreatedAt    *string `json:"created_at,omitempty"`
}

// TransferInput is the create body of the transfers resource.
type TransferInput struct {
	AssetID  int64  `json:"asset_id"`
	ToUserID int64  `json:"to_user_id"`
	Notes    string `json:"notes,omitempty"`
}
