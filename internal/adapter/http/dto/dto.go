package dto

// CreateInspectionRequest is the request body for registering an
// inspection report.
type CreateInspectionRequest struct {
	VehicleNumber string `json:"vehicle_number" binding:"required,min=3,max=20,vehicle_number"`
	PDFHash       string `json:"pdf_hash" binding:"required,min=10,max=128,content_hash"`
	InspectorName string `json:"inspector_name" binding:"required,min=1,max=100"`
	OverallRating string `json:"overall_rating,omitempty" binding:"max=20"`
}

// InspectionResponse is the API representation of an inspection.
type InspectionResponse struct {
	ID            string  `json:"id"`
	VehicleNumber string  `json:"vehicle_number"`
	PDFHash       string  `json:"pdf_hash"`
	InspectorName string  `json:"inspector_name"`
	OverallRating string  `json:"overall_rating,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	MintedAt      *string `json:"minted_at,omitempty"`
}

// InspectionListResponse is a page of inspections.
type InspectionListResponse struct {
	Items    []InspectionResponse `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// MintRecordResponse is the API representation of a mint outcome.
type MintRecordResponse struct {
	InspectionID string `json:"inspection_id"`
	TxID         string `json:"tx_id"`
	AssetID      string `json:"asset_id"`
	PolicyID     string `json:"policy_id"`
	AssetName    string `json:"asset_name"`
	Attempts     int    `json:"attempts"`
	CreatedAt    string `json:"created_at"`
}

// TxMetadataResponse is one on-chain metadata label of a transaction.
type TxMetadataResponse struct {
	Label string `json:"label"`
	JSON  any    `json:"json_metadata"`
}

// AssetResponse is the indexer's view of a minted asset.
type AssetResponse struct {
	AssetID           string `json:"asset_id"`
	PolicyID          string `json:"policy_id"`
	AssetName         string `json:"asset_name"`
	Quantity          string `json:"quantity"`
	InitialMintTxHash string `json:"initial_mint_tx_hash"`
}
