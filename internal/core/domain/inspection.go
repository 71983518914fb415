package domain

import (
	"time"

	"github.com/google/uuid"
)

// InspectionStatus represents the lifecycle state of an inspection report.
type InspectionStatus string

const (
	InspectionStatusDraft    InspectionStatus = "DRAFT"
	InspectionStatusApproved InspectionStatus = "APPROVED"
	InspectionStatusMinted   InspectionStatus = "MINTED"
	InspectionStatusArchived InspectionStatus = "ARCHIVED"
)

// Inspection is a vehicle inspection report eligible for on-chain minting.
type Inspection struct {
	ID            uuid.UUID        `json:"id"`
	VehicleNumber string           `json:"vehicle_number"`
	PDFHash       string           `json:"pdf_hash"`
	InspectorName string           `json:"inspector_name"`
	OverallRating string           `json:"overall_rating,omitempty"`
	Status        InspectionStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	MintedAt      *time.Time       `json:"minted_at,omitempty"`
}

// Mintable reports whether the inspection may be minted.
func (i *Inspection) Mintable() bool {
	return i.Status == InspectionStatusApproved
}

// MintRecord persists the outcome of a successful mint. The orchestrator
// itself persists nothing; this record is written by the inspection service
// once a mint completes.
type MintRecord struct {
	ID           uuid.UUID `json:"id"`
	InspectionID uuid.UUID `json:"inspection_id"`
	TxID         string    `json:"tx_id"`
	AssetID      string    `json:"asset_id"`
	PolicyID     string    `json:"policy_id"`
	AssetName    string    `json:"asset_name"`
	Attempts     int       `json:"attempts"`
	CreatedAt    time.Time `json:"created_at"`
}

// TxMetadataEntry is one label of on-chain transaction metadata, as read
// back from the indexer.
type TxMetadataEntry struct {
	Label string `json:"label"`
	JSON  []byte `json:"json_metadata"`
}

// AssetInfo is the indexer's view of a minted asset.
type AssetInfo struct {
	AssetID           string `json:"asset"`
	PolicyID          string `json:"policy_id"`
	AssetName         string `json:"asset_name"`
	Quantity          string `json:"quantity"`
	InitialMintTxHash string `json:"initial_mint_tx_hash"`
}
