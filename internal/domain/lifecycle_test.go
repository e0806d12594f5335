package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	owner   = Actor{ID: "u1", Role: RoleUser}
	other   = Actor{ID: "u2", Role: RoleUser}
	admin   = Actor{ID: "a1", Role: RoleAdmin}
)

func newReservation(status ReservationStatus) *Reservation {
	return &Reservation{
		ID:        "r1",
		UserID:    "u1",
		StartTime: testNow.Add(2 * time.Hour),
		EndTime:   testNow.Add(3 * time.Hour),
		Status:    status,
	}
}

func TestTransition_AdminApprovesPending(t *testing.T) {
	r := newReservation(StatusPending)

	require.NoError(t, r.Transition(StatusApproved, admin, "", testNow))
	assert.Equal(t, StatusApproved, r.Status)
	assert.Equal(t, testNow, r.UpdatedAt)
}

func TestTransition_UserCannotApprove(t *testing.T) {
	r := newReservation(StatusPending)

	err := r.Transition(StatusApproved, owner, "", testNow)
	assert.ErrorIs(t, err, ErrAdminOnly)
	assert.Equal(t, StatusPending, r.Status)
}

func TestTransition_DenyRequiresReason(t *testing.T) {
	r := newReservation(StatusPending)

	err := r.Transition(StatusDenied, admin, "   ", testNow)
	assert.ErrorIs(t, err, ErrDenialReasonRequired)

	require.NoError(t, r.Transition(StatusDenied, admin, "pool maintenance", testNow))
	assert.Equal(t, StatusDenied, r.Status)
	assert.Equal(t, "pool maintenance", r.StatusReason)
}

func TestTransition_SystemDeniesPending(t *testing.T) {
	r := newReservation(StatusPending)

	require.NoError(t, r.Transition(StatusDenied, SystemActor, "expired", testNow))
	assert.Equal(t, StatusDenied, r.Status)
}

func TestTransition_DenyApprovedIsInvalid(t *testing.T) {
	r := newReservation(StatusApproved)

	err := r.Transition(StatusDenied, SystemActor, "expired", testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusApproved, r.Status)
}

func TestTransition_OwnerCancels(t *testing.T) {
	for _, status := range []ReservationStatus{StatusPending, StatusApproved} {
		r := newReservation(status)
		require.NoError(t, r.Transition(StatusCancelled, owner, "", testNow))
		assert.Equal(t, StatusCancelled, r.Status)
	}
}

func TestTransition_OtherUserCannotCancel(t *testing.T) {
	r := newReservation(StatusApproved)

	err := r.Transition(StatusCancelled, other, "", testNow)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestTransition_AdminCancelsAnyReservation(t *testing.T) {
	r := newReservation(StatusApproved)

	require.NoError(t, r.Transition(StatusCancelled, admin, "", testNow))
}

func TestTransition_CannotCancelElapsed(t *testing.T) {
	r := newReservation(StatusApproved)

	err := r.Transition(StatusCancelled, owner, "", r.EndTime)
	assert.ErrorIs(t, err, ErrCannotCancelPast)
}

func TestTransition_CancelInProgress(t *testing.T) {
	tests := []struct {
		name    string
		at      func(r *Reservation) time.Time
		wantErr error
	}{
		{"at start", func(r *Reservation) time.Time { return r.StartTime }, nil},
		{"midway", func(r *Reservation) time.Time { return r.StartTime.Add(30 * time.Minute) }, nil},
		{"last instant", func(r *Reservation) time.Time { return r.EndTime.Add(-time.Nanosecond) }, nil},
		{"at end", func(r *Reservation) time.Time { return r.EndTime }, ErrCannotCancelPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReservation(StatusApproved)

			err := r.Transition(StatusCancelled, owner, "", tt.at(r))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StatusApproved, r.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusCancelled, r.Status)
		})
	}
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, status := range []ReservationStatus{StatusDenied, StatusCancelled} {
		for _, to := range []ReservationStatus{StatusPending, StatusApproved, StatusDenied, StatusCancelled} {
			r := newReservation(status)
			err := r.Transition(to, admin, "reason", testNow)
			assert.ErrorIs(t, err, ErrReservationFinalized, "%s -> %s", status, to)
			assert.Equal(t, status, r.Status)
		}
	}
}

func TestTransition_BackToPendingIsInvalid(t *testing.T) {
	r := newReservation(StatusApproved)

	err := r.Transition(StatusPending, admin, "", testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_UnknownStatus(t *testing.T) {
	r := newReservation(StatusPending)

	err := r.Transition("expired", admin, "", testNow)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
