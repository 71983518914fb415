package ports

import (
	"context"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/google/uuid"
)

// InspectionRepository defines persistence operations for inspections.
type InspectionRepository interface {
	Create(ctx context.Context, inspection *domain.Inspection) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	GetByVehicleNumber(ctx context.Context, vehicleNumber string) (*domain.Inspection, error)
	List(ctx context.Context, params InspectionListParams) ([]domain.Inspection, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InspectionStatus) error
}

// MintRecordRepository defines persistence for mint outcomes.
type MintRecordRepository interface {
	Create(ctx context.Context, record *domain.MintRecord) error
	GetByInspectionID(ctx context.Context, inspectionID uuid.UUID) (*domain.MintRecord, error)
	GetByAssetID(ctx context.Context, assetID string) (*domain.MintRecord, error)
}
