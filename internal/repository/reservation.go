package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `r.id, r.user_id, r.amenity_id, a.name, r.start_time, r.end_time,
		r.status, r.status_reason, r.special_requests, r.created_at, r.updated_at`

const reservationFrom = ` FROM reservations r JOIN amenities a ON a.id = r.amenity_id `

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{db: db, strategy: defaultStrategy()}
}

// Create inserts an active reservation. Writers for one amenity are
// serialized on the amenity row; the exclusion constraint on the table
// rejects whatever slips past the in-transaction overlap check.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockAmenity(ctx, tx, res.AmenityID, &res.AmenityName); err != nil {
		return err
	}
	if err = checkOverlap(ctx, tx, res.AmenityID, res.ID, res.StartTime, res.EndTime); err != nil {
		return err
	}

	requests, err := encodeRequests(res.SpecialRequests)
	if err != nil {
		return err
	}

	query := `INSERT INTO reservations (id, user_id, amenity_id, start_time, end_time,
			      status, status_reason, special_requests, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(ctx, query,
		res.ID, res.UserID, res.AmenityID, res.StartTime, res.EndTime,
		res.Status, res.StatusReason, requests, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return mapReservationWriteErr("insert reservation", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationFrom + `WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// ListActiveByAmenity returns active reservations that overlap [from, to),
// oldest start first.
func (r *ReservationRepository) ListActiveByAmenity(ctx context.Context, amenityID string, from, to time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationFrom + `
			  WHERE r.amenity_id = $1
			    AND r.status = ANY($2)
			    AND r.start_time < $4
			    AND r.end_time > $3
			  ORDER BY r.start_time, r.created_at, r.id`

	return r.list(ctx, "list reservations by amenity", query,
		amenityID, pq.Array(domain.ActiveStatuses), from, to,
	)
}

func (r *ReservationRepository) ListActiveByUserAndAmenity(ctx context.Context, userID, amenityID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationFrom + `
			  WHERE r.user_id = $1
			    AND r.amenity_id = $2
			    AND r.status = ANY($3)
			  ORDER BY r.start_time`

	return r.list(ctx, "list reservations by user and amenity", query,
		userID, amenityID, pq.Array(domain.ActiveStatuses),
	)
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationFrom + `
			  WHERE r.user_id = $1
			  ORDER BY r.start_time DESC`

	return r.list(ctx, "list reservations by user", query, userID)
}

// ListOverduePending returns pending reservations whose start is before the cutoff.
func (r *ReservationRepository) ListOverduePending(ctx context.Context, before time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationFrom + `
			  WHERE r.status = $1 AND r.start_time < $2
			  ORDER BY r.start_time`

	return r.list(ctx, "list overdue reservations", query, domain.StatusPending, before)
}

// UpdateStatus writes res.Status only if the stored status still equals
// expected. A lost race surfaces as domain.ErrStatusChanged.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *domain.Reservation, expected domain.ReservationStatus) error {
	query := `UPDATE reservations
			  SET status = $3, status_reason = $4, updated_at = $5
			  WHERE id = $1 AND status = $2`
	result, err := r.db.Master.ExecContext(ctx, query,
		res.ID, expected, res.Status, res.StatusReason, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	return r.checkSwapped(ctx, r.db.Master, result, res.ID)
}

// Reschedule moves an active reservation to res.StartTime/res.EndTime and
// writes its new status, guarded the same way as UpdateStatus.
func (r *ReservationRepository) Reschedule(ctx context.Context, res *domain.Reservation, expected domain.ReservationStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockAmenity(ctx, tx, res.AmenityID, &res.AmenityName); err != nil {
		return err
	}
	if err = checkOverlap(ctx, tx, res.AmenityID, res.ID, res.StartTime, res.EndTime); err != nil {
		return err
	}

	query := `UPDATE reservations
			  SET start_time = $3, end_time = $4, status = $5, status_reason = $6, updated_at = $7
			  WHERE id = $1 AND status = $2`
	result, err := tx.ExecContext(ctx, query,
		res.ID, expected, res.StartTime, res.EndTime, res.Status, res.StatusReason, res.UpdatedAt,
	)
	if err != nil {
		return mapReservationWriteErr("reschedule reservation", err)
	}
	if err = r.checkSwapped(ctx, tx, result, res.ID); err != nil {
		return err
	}

	return tx.Commit()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// checkSwapped turns a zero-row compare-and-set into the reason it missed.
func (r *ReservationRepository) checkSwapped(ctx context.Context, q queryRower, result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	var status string
	err = q.QueryRowContext(ctx, `SELECT status FROM reservations WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrReservationNotFound
	}
	if err != nil {
		return fmt.Errorf("check reservation status: %w", err)
	}
	return domain.ErrStatusChanged
}

func (r *ReservationRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func lockAmenity(ctx context.Context, tx *sql.Tx, amenityID string, name *string) error {
	err := tx.QueryRowContext(ctx,
		`SELECT name FROM amenities WHERE id = $1 FOR UPDATE`, amenityID,
	).Scan(name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrAmenityNotFound
	}
	if err != nil {
		return fmt.Errorf("lock amenity: %w", err)
	}
	return nil
}

func checkOverlap(ctx context.Context, tx *sql.Tx, amenityID, selfID string, start, end time.Time) error {
	var exists bool
	query := `SELECT EXISTS (
			      SELECT 1 FROM reservations
			      WHERE amenity_id = $1
			        AND id <> $2
			        AND status = ANY($3)
			        AND start_time < $5
			        AND end_time > $4)`
	if err := tx.QueryRowContext(ctx, query,
		amenityID, selfID, pq.Array(domain.ActiveStatuses), start, end,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if exists {
		return domain.ErrTimeConflict
	}
	return nil
}

func encodeRequests(sr *domain.SpecialRequests) (any, error) {
	if sr == nil {
		return nil, nil
	}
	raw, err := json.Marshal(sr)
	if err != nil {
		return nil, fmt.Errorf("encode special requests: %w", err)
	}
	return raw, nil
}

func mapReservationWriteErr(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == codeExclusionViolation {
		return domain.ErrTimeConflict
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res      domain.Reservation
		requests []byte
	)
	err := row.Scan(
		&res.ID, &res.UserID, &res.AmenityID, &res.AmenityName, &res.StartTime, &res.EndTime,
		&res.Status, &res.StatusReason, &requests, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(requests) > 0 {
		var sr domain.SpecialRequests
		if json.Unmarshal(requests, &sr) == nil {
			res.SpecialRequests = &sr
		}
	}

	return &res, nil
}
