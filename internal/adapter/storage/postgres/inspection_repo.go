package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InspectionRepo implements ports.InspectionRepository.
type InspectionRepo struct {
	pool Pool
}

// NewInspectionRepo creates a new InspectionRepo.
func NewInspectionRepo(pool Pool) *InspectionRepo {
	return &InspectionRepo{pool: pool}
}

const inspectionColumns = `id, vehicle_number, pdf_hash, inspector_name, overall_rating, status, created_at, updated_at, minted_at`

// Create inserts a new inspection.
func (r *InspectionRepo) Create(ctx context.Context, i *domain.Inspection) error {
	query := `INSERT INTO inspections (id, vehicle_number, pdf_hash, inspector_name, overall_rating, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		i.ID, i.VehicleNumber, i.PDFHash, i.InspectorName,
		i.OverallRating, i.Status, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inspection: %w", err)
	}
	return nil
}

// GetByID fetches an inspection by its UUID.
func (r *InspectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get inspection by id")
}

// GetByVehicleNumber fetches an inspection by vehicle number.
func (r *InspectionRepo) GetByVehicleNumber(ctx context.Context, vehicleNumber string) (*domain.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections WHERE vehicle_number = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, vehicleNumber), "get inspection by vehicle")
}

// List returns a page of inspections plus the total count.
func (r *InspectionRepo) List(ctx context.Context, params ports.InspectionListParams) ([]domain.Inspection, int64, error) {
	where := ""
	args := []any{}
	if params.Status != nil {
		where = ` WHERE status = $1`
		args = append(args, *params.Status)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM inspections` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inspections: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	query := fmt.Sprintf(
		`SELECT %s FROM inspections%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		inspectionColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inspections: %w", err)
	}
	defer rows.Close()

	var inspections []domain.Inspection
	for rows.Next() {
		var i domain.Inspection
		if err := rows.Scan(
			&i.ID, &i.VehicleNumber, &i.PDFHash, &i.InspectorName,
			&i.OverallRating, &i.Status, &i.CreatedAt, &i.UpdatedAt, &i.MintedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan inspection: %w", err)
		}
		inspections = append(inspections, i)
	}
	return inspections, total, rows.Err()
}

// UpdateStatus transitions an inspection's status, stamping minted_at when
// the new status is MINTED.
func (r *InspectionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InspectionStatus) error {
	query := `UPDATE inspections SET status = $1, updated_at = $2, minted_at = CASE WHEN $1 = 'MINTED' THEN $2 ELSE minted_at END WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update inspection status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inspection %s not found", id)
	}
	return nil
}

func (r *InspectionRepo) scanOne(row pgx.Row, op string) (*domain.Inspection, error) {
	i := &domain.Inspection{}
	err := row.Scan(
		&i.ID, &i.VehicleNumber, &i.PDFHash, &i.InspectorName,
		&i.OverallRating, &i.Status, &i.CreatedAt, &i.UpdatedAt, &i.MintedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return i, nil
}
