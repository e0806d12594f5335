package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const DefaultCleanupAfter = 24 * time.Hour

// ExpirySweeper denies pending reservations nobody reviewed before they started.
type ExpirySweeper struct {
	reservations ports.ReservationRepo
	users        ports.UserRepo
	notifier     ports.ReservationNotifier
	cleanupAfter time.Duration
	loc          *time.Location
	logger       logger.Logger
}

func NewExpirySweeper(
	reservations ports.ReservationRepo,
	users ports.UserRepo,
	notifier ports.ReservationNotifier,
	cleanupAfter time.Duration,
	loc *time.Location,
	logger logger.Logger,
) *ExpirySweeper {
	if cleanupAfter <= 0 {
		cleanupAfter = DefaultCleanupAfter
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ExpirySweeper{
		reservations: reservations,
		users:        users,
		notifier:     notifier,
		cleanupAfter: cleanupAfter,
		loc:          loc,
		logger:       logger,
	}
}

// SweepExpired denies every pending reservation that started before now and
// returns how many it transitioned.
func (s *ExpirySweeper) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return s.sweep(ctx, now, now)
}

// CleanupStale is SweepExpired limited to reservations overdue by more than
// the cleanup threshold. It catches up after a period without a sweeper.
func (s *ExpirySweeper) CleanupStale(ctx context.Context, now time.Time) (int, error) {
	return s.sweep(ctx, now.Add(-s.cleanupAfter), now)
}

func (s *ExpirySweeper) sweep(ctx context.Context, cutoff, now time.Time) (int, error) {
	overdue, err := s.reservations.ListOverduePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list overdue reservations: %w", err)
	}

	denied := 0
	for _, res := range overdue {
		ok, err := s.deny(ctx, res, now)
		if err != nil {
			s.logger.Error("failed to deny overdue reservation",
				logger.String("reservation_id", res.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if ok {
			denied++
		}
	}

	if denied > 0 {
		s.logger.Info("overdue reservations denied",
			logger.Int("count", denied),
			logger.Int("found", len(overdue)),
		)
	}

	return denied, nil
}

// deny reports false without error when someone else moved the reservation
// out of pending first.
func (s *ExpirySweeper) deny(ctx context.Context, res *domain.Reservation, now time.Time) (bool, error) {
	if res.Status != domain.StatusPending || !res.StartTime.Before(now) {
		return false, nil
	}

	reason := fmt.Sprintf("not reviewed before its start at %s; overdue by %s",
		res.StartTime.In(s.loc).Format("2006-01-02 15:04 MST"),
		now.Sub(res.StartTime).Truncate(time.Minute),
	)
	if err := res.Transition(domain.StatusDenied, domain.SystemActor, reason, now); err != nil {
		return false, err
	}

	err := s.reservations.UpdateStatus(ctx, res, domain.StatusPending)
	if errors.Is(err, domain.ErrStatusChanged) {
		s.logger.Debug("overdue reservation already handled",
			logger.String("reservation_id", res.ID),
		)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update reservation status: %w", err)
	}

	s.logger.Info("overdue reservation denied",
		logger.String("reservation_id", res.ID),
		logger.String("user_id", res.UserID),
		logger.String("amenity_id", res.AmenityID),
		logger.String("reason", reason),
	)

	user, err := s.users.GetByID(ctx, res.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", res.UserID),
			logger.String("error", err.Error()),
		)
		return true, nil
	}
	go s.notifier.NotifyReservationStatusChanged(context.WithoutCancel(ctx), user, res)

	return true, nil
}
