package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MintRecordRepo implements ports.MintRecordRepository.
type MintRecordRepo struct {
	pool Pool
}

// NewMintRecordRepo creates a new MintRecordRepo.
func NewMintRecordRepo(pool Pool) *MintRecordRepo {
	return &MintRecordRepo{pool: pool}
}

const mintRecordColumns = `id, inspection_id, tx_id, asset_id, policy_id, asset_name, attempts, created_at`

// Create inserts a mint record.
func (r *MintRecordRepo) Create(ctx context.Context, m *domain.MintRecord) error {
	query := `INSERT INTO mint_records (id, inspection_id, tx_id, asset_id, policy_id, asset_name, attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.InspectionID, m.TxID, m.AssetID,
		m.PolicyID, m.AssetName, m.Attempts, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mint record: %w", err)
	}
	return nil
}

// GetByInspectionID fetches the mint record for an inspection.
func (r *MintRecordRepo) GetByInspectionID(ctx context.Context, inspectionID uuid.UUID) (*domain.MintRecord, error) {
	query := `SELECT ` + mintRecordColumns + ` FROM mint_records WHERE inspection_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, inspectionID), "get mint record by inspection")
}

// GetByAssetID fetches the mint record for an on-chain asset.
func (r *MintRecordRepo) GetByAssetID(ctx context.Context, assetID string) (*domain.MintRecord, error) {
	query := `SELECT ` + mintRecordColumns + ` FROM mint_records WHERE asset_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, assetID), "get mint record by asset")
}

func (r *MintRecordRepo) scanOne(row pgx.Row, op string) (*domain.MintRecord, error) {
	m := &domain.MintRecord{}
	err := row.Scan(
		&m.ID, &m.InspectionID, &m.TxID, &m.AssetID,
		&m.PolicyID, &m.AssetName, &m.Attempts, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}
