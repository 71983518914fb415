package service

import (
	"context"
	"fmt"
	"time"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"
	"github.com/CAR-dano/cardano-backend-sub000/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InspectionServiceImpl implements ports.InspectionService. Minting an
// inspection delegates the on-chain work to the mint orchestrator and
// persists the outcome as a mint record; the orchestrator itself persists
// nothing.
type InspectionServiceImpl struct {
	inspRepo ports.InspectionRepository
	mintRepo ports.MintRecordRepository
	mintSvc  ports.MintService
	log      zerolog.Logger
}

// NewInspectionService creates a new InspectionServiceImpl.
func NewInspectionService(
	inspRepo ports.InspectionRepository,
	mintRepo ports.MintRecordRepository,
	mintSvc ports.MintService,
	log zerolog.Logger,
) *InspectionServiceImpl {
	return &InspectionServiceImpl{
		inspRepo: inspRepo,
		mintRepo: mintRepo,
		mintSvc:  mintSvc,
		log:      log,
	}
}

// Create registers a new inspection report in DRAFT state.
func (s *InspectionServiceImpl) Create(ctx context.Context, req ports.CreateInspectionRequest) (*domain.Inspection, error) {
	if req.VehicleNumber == "" || req.PDFHash == "" {
		return nil, apperror.Validation("vehicle_number and pdf_hash are required")
	}

	existing, err := s.inspRepo.GetByVehicleNumber(ctx, req.VehicleNumber)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check vehicle: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateVehicle(req.VehicleNumber)
	}

	now := time.Now().UTC()
	inspection := &domain.Inspection{
		ID:            uuid.New(),
		VehicleNumber: req.VehicleNumber,
		PDFHash:       req.PDFHash,
		InspectorName: req.InspectorName,
		OverallRating: req.OverallRating,
		Status:        domain.InspectionStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.inspRepo.Create(ctx, inspection); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create inspection: %w", err))
	}

	s.log.Info().
		Str("inspection_id", inspection.ID.String()).
		Str("vehicle_number", inspection.VehicleNumber).
		Msg("inspection created")

	return inspection, nil
}

// Get fetches one inspection by ID.
func (s *InspectionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	inspection, err := s.inspRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get inspection: %w", err))
	}
	if inspection == nil {
		return nil, apperror.ErrNotFound("inspection")
	}
	return inspection, nil
}

// List returns a page of inspections plus the total count.
func (s *InspectionServiceImpl) List(ctx context.Context, params ports.InspectionListParams) ([]domain.Inspection, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	inspections, total, err := s.inspRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list inspections: %w", err))
	}
	return inspections, total, nil
}

// Approve transitions a draft inspection to APPROVED.
func (s *InspectionServiceImpl) Approve(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	inspection, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inspection.Status != domain.InspectionStatusDraft {
		return nil, apperror.Validation("only draft inspections can be approved")
	}
	if err := s.inspRepo.UpdateStatus(ctx, id, domain.InspectionStatusApproved); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("approve inspection: %w", err))
	}
	inspection.Status = domain.InspectionStatusApproved
	return inspection, nil
}

// MintInspection mints an approved inspection on-chain and records the
// outcome.
func (s *InspectionServiceImpl) MintInspection(ctx context.Context, id uuid.UUID) (*domain.MintRecord, error) {
	inspection, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inspection.Mintable() {
		return nil, apperror.ErrNotMintable()
	}

	existing, err := s.mintRepo.GetByInspectionID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check mint record: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyMinted()
	}

	result, err := s.mintSvc.Mint(ctx, domain.MintRequest{
		VehicleNumber: inspection.VehicleNumber,
		PDFHash:       inspection.PDFHash,
		DisplayName:   "Inspection " + inspection.VehicleNumber,
		Extra: map[string]string{
			"inspector": inspection.InspectorName,
			"rating":    inspection.OverallRating,
		},
	})
	if err != nil {
		return nil, err
	}

	record := &domain.MintRecord{
		ID:           uuid.New(),
		InspectionID: inspection.ID,
		TxID:         result.TxID,
		AssetID:      result.AssetID,
		PolicyID:     result.PolicyID,
		AssetName:    result.AssetName,
		Attempts:     result.Attempts,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.mintRepo.Create(ctx, record); err != nil {
		// The asset is on-chain; losing the record is recoverable from the
		// indexer, but the caller must know.
		return nil, apperror.ErrDatabaseError(fmt.Errorf("persist mint record for tx %s: %w", result.TxID, err))
	}
	if err := s.inspRepo.UpdateStatus(ctx, id, domain.InspectionStatusMinted); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("mark inspection minted: %w", err))
	}

	s.log.Info().
		Str("inspection_id", id.String()).
		Str("tx_id", result.TxID).
		Str("asset_id", result.AssetID).
		Msg("inspection minted")

	return record, nil
}
