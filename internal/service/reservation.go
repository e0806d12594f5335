package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/AmenityBooker/internal/clock"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/scheduling"
	"github.com/stpnv0/AmenityBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	DefaultMaxDuration = 8 * time.Hour

	conflictAfterTheFact = "conflict detected after the fact"
)

// Policy holds the booking settings shared by the reservation services.
type Policy struct {
	Location    *time.Location
	MaxDuration time.Duration
}

func (p Policy) withDefaults() Policy {
	if p.Location == nil {
		p.Location = time.UTC
	}
	if p.MaxDuration <= 0 {
		p.MaxDuration = DefaultMaxDuration
	}
	return p
}

type ReservationService struct {
	reservations ports.ReservationRepo
	amenities    ports.AmenityCatalog
	users        ports.UserRepo
	notifier     ports.ReservationNotifier
	weekend      *WeekendRule
	clock        clock.Clock
	policy       Policy
	logger       logger.Logger
}

func NewReservationService(
	reservations ports.ReservationRepo,
	amenities ports.AmenityCatalog,
	users ports.UserRepo,
	notifier ports.ReservationNotifier,
	clk clock.Clock,
	policy Policy,
	logger logger.Logger,
) *ReservationService {
	policy = policy.withDefaults()
	return &ReservationService{
		reservations: reservations,
		amenities:    amenities,
		users:        users,
		notifier:     notifier,
		weekend:      NewWeekendRule(reservations, policy.Location, logger),
		clock:        clk,
		policy:       policy,
		logger:       logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	now := s.clock.Now()
	if err := s.validateWindow(input.StartTime, input.EndTime, now); err != nil {
		return nil, err
	}

	amenity, err := s.amenities.GetByID(ctx, input.AmenityID)
	if err != nil {
		return nil, fmt.Errorf("get amenity: %w", err)
	}
	if !amenity.Active {
		return nil, domain.ErrAmenityInactive
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = s.checkOperatingHours(amenity, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	if err = checkVisitors(amenity, input.SpecialRequests); err != nil {
		return nil, err
	}
	if err = s.weekend.Check(ctx, input.UserID, amenity, input.StartTime, ""); err != nil {
		return nil, err
	}
	if err = s.ensureFree(ctx, amenity.ID, "", input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	decision := scheduling.Decide(amenity, scheduling.Candidate{
		Start: input.StartTime,
		End:   input.EndTime,
		Now:   now,
	})

	res := &domain.Reservation{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		AmenityID:       amenity.ID,
		AmenityName:     amenity.Name,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Status:          decision.Status,
		StatusReason:    decision.Reason,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.reservations.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	if err = s.verifyNoOverlap(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("amenity_id", res.AmenityID),
		logger.String("user_id", res.UserID),
		logger.String("status", string(res.Status)),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), user, res)

	return res, nil
}

// SetStatus applies an approve or deny decision, or a cancellation, on behalf of actor.
func (s *ReservationService) SetStatus(
	ctx context.Context,
	id string,
	status domain.ReservationStatus,
	actor domain.Actor,
	reason string,
) (*domain.Reservation, error) {
	return s.transition(ctx, id, status, actor, reason)
}

func (s *ReservationService) Cancel(ctx context.Context, id string, actor domain.Actor) (*domain.Reservation, error) {
	reason := "cancelled by user"
	if actor.IsAdmin() {
		reason = "cancelled by administrator"
	}
	return s.transition(ctx, id, domain.StatusCancelled, actor, reason)
}

func (s *ReservationService) transition(
	ctx context.Context,
	id string,
	to domain.ReservationStatus,
	actor domain.Actor,
	reason string,
) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	from := res.Status
	if err = res.Transition(to, actor, reason, s.clock.Now()); err != nil {
		return nil, err
	}
	if err = s.reservations.UpdateStatus(ctx, res, from); err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", res.ID),
		logger.String("from", string(from)),
		logger.String("to", string(res.Status)),
		logger.String("actor_id", actor.ID),
		logger.String("actor_role", string(actor.Role)),
	)

	s.notifyStatusChanged(ctx, res)

	return res, nil
}

// Reschedule moves an active reservation to a new window. The new window goes
// through the same checks as a fresh booking and the status is decided again.
func (s *ReservationService) Reschedule(ctx context.Context, input domain.RescheduleInput) (*domain.Reservation, error) {
	now := s.clock.Now()
	if err := s.validateWindow(input.StartTime, input.EndTime, now); err != nil {
		return nil, err
	}

	res, err := s.reservations.GetByID(ctx, input.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !res.Status.Active() {
		return nil, domain.ErrReservationFinalized
	}
	if !input.Actor.IsAdmin() && input.Actor.ID != res.UserID {
		return nil, domain.ErrNotOwner
	}

	amenity, err := s.amenities.GetByID(ctx, res.AmenityID)
	if err != nil {
		return nil, fmt.Errorf("get amenity: %w", err)
	}
	if !amenity.Active {
		return nil, domain.ErrAmenityInactive
	}

	if err = s.checkOperatingHours(amenity, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	if err = s.weekend.Check(ctx, res.UserID, amenity, input.StartTime, res.ID); err != nil {
		return nil, err
	}
	if err = s.ensureFree(ctx, amenity.ID, res.ID, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	from := res.Status
	decision := scheduling.Decide(amenity, scheduling.Candidate{
		Start: input.StartTime,
		End:   input.EndTime,
		Now:   now,
	})
	res.StartTime = input.StartTime
	res.EndTime = input.EndTime
	res.Status = decision.Status
	res.StatusReason = decision.Reason
	res.UpdatedAt = now

	if err = s.reservations.Reschedule(ctx, res, from); err != nil {
		return nil, fmt.Errorf("reschedule reservation: %w", err)
	}

	s.logger.Info("reservation rescheduled",
		logger.String("reservation_id", res.ID),
		logger.String("start", res.StartTime.Format(time.RFC3339)),
		logger.String("end", res.EndTime.Format(time.RFC3339)),
		logger.String("status", string(res.Status)),
	)

	if from != res.Status {
		s.notifyStatusChanged(ctx, res)
	}

	return res, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}

// PreviewClosure lists the active reservations a closure of [start, end) would cancel.
func (s *ReservationService) PreviewClosure(ctx context.Context, amenityID string, start, end time.Time) ([]*domain.Reservation, error) {
	if !start.Before(end) {
		return nil, domain.ErrInvalidTimeRange
	}

	if _, err := s.amenities.GetByID(ctx, amenityID); err != nil {
		return nil, fmt.Errorf("get amenity: %w", err)
	}

	candidates, err := s.reservations.ListActiveByAmenity(ctx, amenityID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	affected := make([]*domain.Reservation, 0, len(candidates))
	for _, r := range candidates {
		if r.Status.Active() && r.Overlaps(start, end) {
			affected = append(affected, r)
		}
	}
	return affected, nil
}

// CloseWindow cancels every active reservation overlapping [start, end).
// Reservations that changed concurrently or already elapsed are skipped.
func (s *ReservationService) CloseWindow(
	ctx context.Context,
	amenityID string,
	start, end time.Time,
	actor domain.Actor,
	reason string,
) ([]*domain.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	if reason == "" {
		reason = "amenity closed"
	}

	affected, err := s.PreviewClosure(ctx, amenityID, start, end)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	cancelled := make([]*domain.Reservation, 0, len(affected))
	for _, res := range affected {
		from := res.Status
		if err = res.Transition(domain.StatusCancelled, actor, reason, now); err != nil {
			s.logger.Warn("closure skipped reservation",
				logger.String("reservation_id", res.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if err = s.reservations.UpdateStatus(ctx, res, from); err != nil {
			s.logger.Warn("closure skipped reservation",
				logger.String("reservation_id", res.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		cancelled = append(cancelled, res)
		s.notifyStatusChanged(ctx, res)
	}

	s.logger.Info("amenity window closed",
		logger.String("amenity_id", amenityID),
		logger.Int("cancelled", len(cancelled)),
		logger.Int("affected", len(affected)),
	)

	return cancelled, nil
}

func (s *ReservationService) validateWindow(start, end, now time.Time) error {
	if !start.Before(end) {
		return domain.ErrInvalidTimeRange
	}
	if end.Sub(start) > s.policy.MaxDuration {
		return fmt.Errorf("%w: at most %s", domain.ErrDurationTooLong, s.policy.MaxDuration)
	}
	if start.Before(now) {
		return domain.ErrStartInPast
	}
	return nil
}

// checkOperatingHours requires the whole window to sit inside one operating day.
func (s *ReservationService) checkOperatingHours(a *domain.Amenity, start, end time.Time) error {
	hours, problems := a.Hours.Effective()
	for _, p := range problems {
		s.logger.Warn("amenity operating hours malformed, using safe default",
			logger.String("amenity_id", a.ID),
			logger.String("problem", p),
		)
	}

	local := start.In(s.policy.Location)
	if !hours.OpenOn(local.Weekday()) {
		return fmt.Errorf("%w: %s is closed on %s", domain.ErrAmenityClosed, a.Name, local.Weekday())
	}

	open, closing := hours.Open.On(local), hours.Close.On(local)
	if start.Before(open) || end.After(closing) {
		return fmt.Errorf("%w: %s is open %s-%s", domain.ErrOutsideOperatingHours, a.Name, hours.Open, hours.Close)
	}
	return nil
}

func checkVisitors(a *domain.Amenity, req *domain.SpecialRequests) error {
	if req == nil {
		return nil
	}
	if req.VisitorCount < 0 {
		return fmt.Errorf("%w: visitor count cannot be negative", domain.ErrValidation)
	}
	if limit := a.Requirements.MaxVisitors; limit > 0 && req.VisitorCount > limit {
		return fmt.Errorf("%w: at most %d visitors", domain.ErrTooManyVisitors, limit)
	}
	return nil
}

func (s *ReservationService) ensureFree(ctx context.Context, amenityID, selfID string, start, end time.Time) error {
	existing, err := s.reservations.ListActiveByAmenity(ctx, amenityID, start, end)
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}
	for _, r := range existing {
		if r.ID != selfID && r.Status.Active() && r.Overlaps(start, end) {
			return domain.ErrTimeConflict
		}
	}
	return nil
}

// verifyNoOverlap re-reads the window after the write. When a concurrent
// writer got there first, the newer reservation is cancelled by the system.
func (s *ReservationService) verifyNoOverlap(ctx context.Context, res *domain.Reservation) error {
	existing, err := s.reservations.ListActiveByAmenity(ctx, res.AmenityID, res.StartTime, res.EndTime)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "post-write overlap check failed",
			logger.String("reservation_id", res.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	for _, other := range existing {
		if other.ID == res.ID || !other.Status.Active() || !other.Overlaps(res.StartTime, res.EndTime) {
			continue
		}
		if !wonRace(other, res) {
			continue
		}

		from := res.Status
		if err = res.Transition(domain.StatusCancelled, domain.SystemActor, conflictAfterTheFact, s.clock.Now()); err == nil {
			err = s.reservations.UpdateStatus(ctx, res, from)
		}
		if err != nil && !errors.Is(err, domain.ErrStatusChanged) {
			s.logger.Error("failed to compensate conflicting reservation",
				logger.String("reservation_id", res.ID),
				logger.String("error", err.Error()),
			)
			// бронь осталась активной, конфликтом это не считаем
			return fmt.Errorf("cancel conflicting reservation %s: %w", res.ID, err)
		}

		s.logger.Warn("reservation lost a concurrent write",
			logger.String("reservation_id", res.ID),
			logger.String("winner_id", other.ID),
		)
		return fmt.Errorf("%w: %s", domain.ErrTimeConflict, conflictAfterTheFact)
	}

	return nil
}

// wonRace orders concurrent writers by creation time, then id.
func wonRace(a, b *domain.Reservation) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

func (s *ReservationService) notifyStatusChanged(ctx context.Context, res *domain.Reservation) {
	user, err := s.users.GetByID(ctx, res.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", res.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	snapshot := *res
	go s.notifier.NotifyReservationStatusChanged(context.WithoutCancel(ctx), user, &snapshot)
}
