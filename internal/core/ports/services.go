package ports

import (
	"context"
	"time"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// MintService is the minting orchestrator: given inspection metadata it
// derives the policy, selects spendable value, builds, signs and submits a
// mint transaction, retrying internally. Synchronous from the caller's
// point of view; callers only ever observe a final success or a fatal
// error.
type MintService interface {
	Mint(ctx context.Context, req domain.MintRequest) (*domain.MintResult, error)
}

// ChainReadService exposes indexer read paths for minted assets.
type ChainReadService interface {
	GetTransactionMetadata(ctx context.Context, txID string) ([]domain.TxMetadataEntry, error)
	GetAsset(ctx context.Context, assetID string) (*domain.AssetInfo, error)
}

// InspectionService defines the inspection lifecycle, including triggering
// the mint for an approved inspection and persisting its outcome.
type InspectionService interface {
	Create(ctx context.Context, req CreateInspectionRequest) (*domain.Inspection, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	List(ctx context.Context, params InspectionListParams) ([]domain.Inspection, int64, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	MintInspection(ctx context.Context, id uuid.UUID) (*domain.MintRecord, error)
}

// CreateInspectionRequest holds validated input for creating an inspection.
type CreateInspectionRequest struct {
	VehicleNumber string
	PDFHash       string
	InspectorName string
	OverallRating string
}

// InspectionListParams holds filter + pagination for listing inspections.
type InspectionListParams struct {
	Status   *domain.InspectionStatus
	Page     int
	PageSize int
}

// TokenService handles JWT token operations for the dashboard surface.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}
