package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const amenityColumns = `id, name, description, category, capacity, operating_hours,
		auto_approval, requires_approval, max_visitors, advance_booking_hours,
		active, created_at, updated_at`

type AmenityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAmenityRepo(db *dbpg.DB) *AmenityRepository {
	return &AmenityRepository{db: db, strategy: defaultStrategy()}
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	hours, rules, err := encodeAmenity(a)
	if err != nil {
		return err
	}

	query := `INSERT INTO amenities (` + amenityColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.ExecWithRetry(ctx, r.strategy, query,
		a.ID, a.Name, a.Description, a.Category, a.Capacity, hours,
		rules, a.RequiresApproval, a.Requirements.MaxVisitors, a.Requirements.AdvanceBookingHours,
		a.Active, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return mapAmenityWriteErr(err)
	}

	return nil
}

func (r *AmenityRepository) Update(ctx context.Context, a *domain.Amenity) error {
	hours, rules, err := encodeAmenity(a)
	if err != nil {
		return err
	}

	query := `UPDATE amenities
			  SET name = $2, description = $3, category = $4, capacity = $5,
			      operating_hours = $6, auto_approval = $7, requires_approval = $8,
			      max_visitors = $9, advance_booking_hours = $10, active = $11, updated_at = $12
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		a.ID, a.Name, a.Description, a.Category, a.Capacity,
		hours, rules, a.RequiresApproval,
		a.Requirements.MaxVisitors, a.Requirements.AdvanceBookingHours, a.Active, a.UpdatedAt,
	)
	if err != nil {
		return mapAmenityWriteErr(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrAmenityNotFound
	}

	return nil
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	query := `SELECT ` + amenityColumns + ` FROM amenities WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get amenity: %w", err)
	}

	a, err := scanAmenity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAmenityNotFound
		}
		return nil, fmt.Errorf("scan amenity: %w", err)
	}

	return a, nil
}

func (r *AmenityRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Amenity, error) {
	query := `SELECT ` + amenityColumns + `
			  FROM amenities
			  WHERE active OR NOT $1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	defer rows.Close()

	var res []*domain.Amenity
	for rows.Next() {
		a, err := scanAmenity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan amenity: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

// encodeAmenity returns the JSONB columns. rules stays a nil interface when
// the amenity has no auto-approval block so the column is written as NULL.
func encodeAmenity(a *domain.Amenity) (hours []byte, rules any, err error) {
	hours, err = encodeOperatingHours(a.Hours)
	if err != nil {
		return nil, nil, fmt.Errorf("encode operating hours: %w", err)
	}
	if a.AutoApproval != nil {
		raw, err := json.Marshal(a.AutoApproval)
		if err != nil {
			return nil, nil, fmt.Errorf("encode auto approval: %w", err)
		}
		rules = raw
	}
	return hours, rules, nil
}

func mapAmenityWriteErr(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return domain.ErrAmenityNameTaken
	}
	return fmt.Errorf("write amenity: %w", err)
}

func scanAmenity(row rowScanner) (*domain.Amenity, error) {
	var (
		a        domain.Amenity
		hours    []byte
		rules    []byte
		approval sql.NullBool
	)
	err := row.Scan(
		&a.ID, &a.Name, &a.Description, &a.Category, &a.Capacity, &hours,
		&rules, &approval, &a.Requirements.MaxVisitors, &a.Requirements.AdvanceBookingHours,
		&a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Hours = decodeOperatingHours(hours)
	if len(rules) > 0 {
		var ar domain.AutoApprovalRules
		// битые правила считаем отсутствующими: бронь уйдет на ручное одобрение
		if json.Unmarshal(rules, &ar) == nil {
			a.AutoApproval = &ar
		}
	}
	if approval.Valid {
		v := approval.Bool
		a.RequiresApproval = &v
	}

	return &a, nil
}
