package domain

import (
	"fmt"
	"strings"
	"time"
)

// Transition moves the reservation to status to on behalf of actor.
// Allowed moves:
//
//	pending          -> approved   admin
//	pending          -> denied     admin (reason required) or system
//	pending|approved -> cancelled  owner, admin or system, until the reservation has elapsed
//
// The receiver is left untouched when an error is returned.
func (r *Reservation) Transition(to ReservationStatus, actor Actor, reason string, now time.Time) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if !r.Status.Active() {
		return fmt.Errorf("%w: reservation is %s", ErrReservationFinalized, r.Status)
	}

	reason = strings.TrimSpace(reason)

	switch to {
	case StatusApproved:
		if !actor.IsAdmin() {
			return ErrAdminOnly
		}
		if r.Status != StatusPending {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
		}

	case StatusDenied:
		if !actor.IsAdmin() && !actor.IsSystem() {
			return ErrAdminOnly
		}
		if r.Status != StatusPending {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
		}
		if reason == "" {
			return ErrDenialReasonRequired
		}

	case StatusCancelled:
		if !actor.IsAdmin() && !actor.IsSystem() && actor.ID != r.UserID {
			return ErrNotOwner
		}
		if !now.Before(r.EndTime) {
			return ErrCannotCancelPast
		}

	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}

	r.Status = to
	r.StatusReason = reason
	r.UpdatedAt = now
	return nil
}
