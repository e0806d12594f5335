package service

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stpnv0/AmenityBooker/internal/clock"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// Monday, 2 March 2026.
var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 3, day, hour, minute, 0, 0, time.UTC)
}

var (
	alice = &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}
	bob   = &domain.User{ID: "u2", Username: "bob", Role: domain.RoleUser}

	aliceActor = domain.Actor{ID: "u1", Role: domain.RoleUser}
	bobActor   = domain.Actor{ID: "u2", Role: domain.RoleUser}
	adminActor = domain.Actor{ID: "admin", Role: domain.RoleAdmin}
)

func boolPtr(b bool) *bool { return &b }

func jacuzzi() *domain.Amenity {
	return &domain.Amenity{
		ID:           "jacuzzi",
		Name:         "Jacuzzi",
		Category:     domain.CategoryHotTub,
		Capacity:     6,
		Hours:        domain.OperatingHours{Days: domain.AllWeekdays(), Open: 7 * 60, Close: 21 * 60},
		AutoApproval: &domain.AutoApprovalRules{MaxDurationMinutes: 60, MaxBookingsPerDay: 1},
		Requirements: domain.SpecialRequirements{MaxVisitors: 4},
		Active:       true,
	}
}

func communityLounge() *domain.Amenity {
	return &domain.Amenity{
		ID:           "lounge",
		Name:         "Community Lounge",
		Category:     domain.CategoryLounge,
		Capacity:     40,
		Hours:        domain.OperatingHours{Days: domain.AllWeekdays(), Open: 8 * 60, Close: 23 * 60},
		AutoApproval: &domain.AutoApprovalRules{MaxDurationMinutes: 240},
		Active:       true,
	}
}

func weekdayDeck() *domain.Amenity {
	return &domain.Amenity{
		ID:       "deck",
		Name:     "Sun Deck",
		Category: domain.CategoryDeck,
		Hours: domain.OperatingHours{
			Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
			Open: 8 * 60, Close: 20 * 60,
		},
		RequiresApproval: boolPtr(false),
		Active:           true,
	}
}

func closedColdTub() *domain.Amenity {
	return &domain.Amenity{
		ID:       "cold",
		Name:     "Cold Tub",
		Category: domain.CategoryColdTub,
		Hours:    domain.OperatingHours{Days: domain.AllWeekdays(), Open: 7 * 60, Close: 21 * 60},
		Active:   false,
	}
}

type reservationEnv struct {
	svc      *ReservationService
	repo     *memReservations
	catalog  *memCatalog
	notifier *recordingNotifier
}

func newReservationEnv(t *testing.T) *reservationEnv {
	t.Helper()
	return newReservationEnvIn(t, time.UTC)
}

func newReservationEnvIn(t *testing.T, loc *time.Location) *reservationEnv {
	t.Helper()
	env := &reservationEnv{
		repo:     newMemReservations(),
		catalog:  newMemCatalog(jacuzzi(), communityLounge(), weekdayDeck(), closedColdTub()),
		notifier: &recordingNotifier{},
	}
	env.svc = NewReservationService(
		env.repo,
		env.catalog,
		newMemUsers(alice, bob),
		env.notifier,
		clock.NewFixed(testNow),
		Policy{Location: loc, MaxDuration: 8 * time.Hour},
		newTestLogger(t),
	)
	return env
}

func (e *reservationEnv) book(userID, amenityID string, start, end time.Time) (*domain.Reservation, error) {
	return e.svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    userID,
		AmenityID: amenityID,
		StartTime: start,
		EndTime:   end,
	})
}

func (e *reservationEnv) seed(id, userID, amenityID string, start, end time.Time, status domain.ReservationStatus) {
	e.repo.put(&domain.Reservation{
		ID:        id,
		UserID:    userID,
		AmenityID: amenityID,
		StartTime: start,
		EndTime:   end,
		Status:    status,
		CreatedAt: testNow.Add(-time.Hour),
		UpdatedAt: testNow.Add(-time.Hour),
	})
}

func TestReservationService_Create_JacuzziWithinRulesIsApproved(t *testing.T) {
	env := newReservationEnv(t)

	res, err := env.book("u1", "jacuzzi", testNow.Add(3*time.Hour), testNow.Add(4*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, res.Status)
	assert.Equal(t, "Jacuzzi", res.AmenityName)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, testNow, res.CreatedAt)

	stored := env.repo.get(res.ID)
	require.NotNil(t, stored)
	assert.Equal(t, domain.StatusApproved, stored.Status)

	assert.Eventually(t, func() bool { return env.notifier.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestReservationService_Create_JacuzziOverDurationIsPending(t *testing.T) {
	env := newReservationEnv(t)

	res, err := env.book("u1", "jacuzzi", at(2, 15, 0), at(2, 16, 30))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Contains(t, res.StatusReason, "60 minute")
}

func TestReservationService_Create_LoungeWeekendScenario(t *testing.T) {
	env := newReservationEnv(t)

	friday, err := env.book("u1", "lounge", at(6, 18, 0), at(6, 20, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, friday.Status)

	_, err = env.book("u1", "lounge", at(7, 10, 0), at(7, 12, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConsecutiveWeekend)
	assert.Contains(t, err.Error(), "Friday")
	assert.Contains(t, err.Error(), "2026-03-06")

	nextSaturday, err := env.book("u1", "lounge", at(14, 10, 0), at(14, 12, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, nextSaturday.Status)

	_, err = env.book("u1", "lounge", at(10, 10, 0), at(10, 12, 0))
	require.NoError(t, err, "weekdays are never restricted")

	_, err = env.book("u2", "lounge", at(7, 10, 0), at(7, 12, 0))
	require.NoError(t, err, "the rule is per user")
}

func TestReservationService_Create_WeekendRuleFailsOpen(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("fri", "u1", "lounge", at(6, 18, 0), at(6, 20, 0), domain.StatusPending)
	env.repo.userListErr = errors.New("connection reset")

	res, err := env.book("u1", "lounge", at(7, 10, 0), at(7, 12, 0))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, res.Status)
}

func TestReservationService_Create_RejectsOverlap(t *testing.T) {
	env := newReservationEnv(t)

	_, err := env.book("u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0))
	require.NoError(t, err)

	_, err = env.book("u2", "jacuzzi", at(3, 13, 30), at(3, 14, 30))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeConflict)

	_, err = env.book("u2", "jacuzzi", at(3, 14, 0), at(3, 15, 0))
	require.NoError(t, err, "back-to-back reservations do not conflict")

	_, err = env.book("u2", "jacuzzi", at(3, 12, 0), at(3, 13, 0))
	require.NoError(t, err)

	active, err := env.repo.ListActiveByAmenity(context.Background(), "jacuzzi", at(3, 0, 0), at(4, 0, 0))
	require.NoError(t, err)
	require.Len(t, active, 3)
	for i, a := range active {
		for _, b := range active[i+1:] {
			assert.False(t, domain.Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime),
				"%s overlaps %s", a.ID, b.ID)
		}
	}
}

func TestReservationService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		amenityID string
		start     time.Time
		end       time.Time
		requests  *domain.SpecialRequests
		wantErr   error
	}{
		{"end before start", "u1", "jacuzzi", at(3, 14, 0), at(3, 13, 0), nil, domain.ErrInvalidTimeRange},
		{"empty window", "u1", "jacuzzi", at(3, 14, 0), at(3, 14, 0), nil, domain.ErrInvalidTimeRange},
		{"longer than eight hours", "u1", "lounge", at(3, 8, 0), at(3, 16, 30), nil, domain.ErrDurationTooLong},
		{"start in the past", "u1", "jacuzzi", at(2, 8, 0), at(2, 9, 0), nil, domain.ErrStartInPast},
		{"before opening", "u1", "jacuzzi", at(3, 6, 30), at(3, 7, 30), nil, domain.ErrOutsideOperatingHours},
		{"past closing", "u1", "jacuzzi", at(3, 20, 30), at(3, 21, 30), nil, domain.ErrOutsideOperatingHours},
		{"closed weekday", "u1", "deck", at(7, 10, 0), at(7, 11, 0), nil, domain.ErrAmenityClosed},
		{"too many visitors", "u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0), &domain.SpecialRequests{VisitorCount: 5}, domain.ErrTooManyVisitors},
		{"inactive amenity", "u1", "cold", at(3, 13, 0), at(3, 14, 0), nil, domain.ErrAmenityInactive},
		{"unknown amenity", "u1", "sauna", at(3, 13, 0), at(3, 14, 0), nil, domain.ErrAmenityNotFound},
		{"unknown user", "u9", "jacuzzi", at(3, 13, 0), at(3, 14, 0), nil, domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newReservationEnv(t)

			_, err := env.svc.Create(context.Background(), domain.CreateReservationInput{
				UserID:          tt.userID,
				AmenityID:       tt.amenityID,
				StartTime:       tt.start,
				EndTime:         tt.end,
				SpecialRequests: tt.requests,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, env.notifier.count())
		})
	}
}

func TestReservationService_Create_AcceptsVisitorsWithinLimit(t *testing.T) {
	env := newReservationEnv(t)

	res, err := env.svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:          "u1",
		AmenityID:       "jacuzzi",
		StartTime:       at(3, 13, 0),
		EndTime:         at(3, 14, 0),
		SpecialRequests: &domain.SpecialRequests{VisitorCount: 4, GrillUsage: true, Notes: "birthday"},
	})

	require.NoError(t, err)
	require.NotNil(t, res.SpecialRequests)
	assert.Equal(t, 4, res.SpecialRequests.VisitorCount)
}

func TestReservationService_Create_CompensatesLostRace(t *testing.T) {
	env := newReservationEnv(t)
	env.repo.strict = false
	env.repo.onCreate = func(m *memReservations, r *domain.Reservation) {
		m.put(&domain.Reservation{
			ID:        "rival",
			UserID:    "u2",
			AmenityID: r.AmenityID,
			StartTime: r.StartTime.Add(30 * time.Minute),
			EndTime:   r.EndTime.Add(30 * time.Minute),
			Status:    domain.StatusApproved,
			CreatedAt: r.CreatedAt.Add(-time.Millisecond),
		})
	}

	_, err := env.book("u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeConflict)

	mine, err := env.repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, domain.StatusCancelled, mine[0].Status)
	assert.Equal(t, "conflict detected after the fact", mine[0].StatusReason)

	assert.Equal(t, domain.StatusApproved, env.repo.get("rival").Status)
}

func TestReservationService_Create_CompensationFailureIsNotAConflict(t *testing.T) {
	env := newReservationEnv(t)
	env.repo.strict = false
	env.repo.onCreate = func(m *memReservations, r *domain.Reservation) {
		m.put(&domain.Reservation{
			ID:        "rival",
			UserID:    "u2",
			AmenityID: r.AmenityID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Status:    domain.StatusApproved,
			CreatedAt: r.CreatedAt.Add(-time.Millisecond),
		})
		m.updateErr[r.ID] = errors.New("connection reset")
	}

	_, err := env.book("u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0))

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTimeConflict)
	assert.ErrorContains(t, err, "connection reset")
}

func TestReservationService_Create_KeepsReservationWhenRivalIsNewer(t *testing.T) {
	env := newReservationEnv(t)
	env.repo.strict = false
	env.repo.onCreate = func(m *memReservations, r *domain.Reservation) {
		m.put(&domain.Reservation{
			ID:        "rival",
			UserID:    "u2",
			AmenityID: r.AmenityID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Status:    domain.StatusPending,
			CreatedAt: r.CreatedAt.Add(time.Millisecond),
		})
	}

	res, err := env.book("u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, env.repo.get(res.ID).Status)
}

func TestReservationService_SetStatus_AdminApproves(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "lounge", at(6, 18, 0), at(6, 20, 0), domain.StatusPending)

	res, err := env.svc.SetStatus(context.Background(), "r1", domain.StatusApproved, adminActor, "")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, res.Status)
	assert.Equal(t, domain.StatusApproved, env.repo.get("r1").Status)
	assert.Eventually(t, func() bool {
		statuses := env.notifier.statuses()
		return len(statuses) == 1 && statuses[0] == domain.StatusApproved
	}, time.Second, 10*time.Millisecond)
}

func TestReservationService_SetStatus_UserCannotApprove(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "lounge", at(6, 18, 0), at(6, 20, 0), domain.StatusPending)

	_, err := env.svc.SetStatus(context.Background(), "r1", domain.StatusApproved, aliceActor, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminOnly)
	assert.Equal(t, domain.StatusPending, env.repo.get("r1").Status)
}

func TestReservationService_SetStatus_DenyRequiresReason(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "lounge", at(6, 18, 0), at(6, 20, 0), domain.StatusPending)

	_, err := env.svc.SetStatus(context.Background(), "r1", domain.StatusDenied, adminActor, "  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDenialReasonRequired)

	res, err := env.svc.SetStatus(context.Background(), "r1", domain.StatusDenied, adminActor, "private event")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDenied, res.Status)
	assert.Equal(t, "private event", env.repo.get("r1").StatusReason)
}

func TestReservationService_SetStatus_FinalizedReservation(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "lounge", at(6, 18, 0), at(6, 20, 0), domain.StatusDenied)

	_, err := env.svc.SetStatus(context.Background(), "r1", domain.StatusApproved, adminActor, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationFinalized)
}

func TestReservationService_SetStatus_NotFound(t *testing.T) {
	env := newReservationEnv(t)

	_, err := env.svc.SetStatus(context.Background(), "missing", domain.StatusApproved, adminActor, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_SetStatus_LostRace(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewReservationService(repo, newMemCatalog(), newMemUsers(alice), &recordingNotifier{},
		clock.NewFixed(testNow), Policy{}, newTestLogger(t))

	pending := &domain.Reservation{
		ID: "r1", UserID: "u1", AmenityID: "lounge",
		StartTime: at(6, 18, 0), EndTime: at(6, 20, 0), Status: domain.StatusPending,
	}
	repo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, mock.Anything, domain.StatusPending).Return(domain.ErrStatusChanged)

	_, err := svc.SetStatus(context.Background(), "r1", domain.StatusApproved, adminActor, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStatusChanged)
}

func TestReservationService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		actor   domain.Actor
		wantErr error
	}{
		{"owner", at(3, 13, 0), at(3, 14, 0), aliceActor, nil},
		{"admin", at(3, 13, 0), at(3, 14, 0), adminActor, nil},
		{"another user", at(3, 13, 0), at(3, 14, 0), bobActor, domain.ErrNotOwner},
		{"in progress", at(2, 9, 30), at(2, 10, 30), aliceActor, nil},
		{"already elapsed", at(2, 8, 0), at(2, 9, 0), aliceActor, domain.ErrCannotCancelPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newReservationEnv(t)
			env.seed("r1", "u1", "jacuzzi", tt.start, tt.end, domain.StatusApproved)

			res, err := env.svc.Cancel(context.Background(), "r1", tt.actor)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domain.StatusApproved, env.repo.get("r1").Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, res.Status)
			assert.Equal(t, domain.StatusCancelled, env.repo.get("r1").Status)
		})
	}
}

func TestReservationService_Cancel_FreesTheSlot(t *testing.T) {
	env := newReservationEnv(t)

	first, err := env.book("u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0))
	require.NoError(t, err)

	_, err = env.svc.Cancel(context.Background(), first.ID, aliceActor)
	require.NoError(t, err)

	_, err = env.book("u2", "jacuzzi", at(3, 13, 0), at(3, 14, 0))
	require.NoError(t, err)
}

func TestReservationService_Reschedule_MovesAndRedecides(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "jacuzzi", at(3, 13, 0), at(3, 14, 30), domain.StatusPending)

	res, err := env.svc.Reschedule(context.Background(), domain.RescheduleInput{
		ReservationID: "r1",
		Actor:         aliceActor,
		StartTime:     at(3, 15, 0),
		EndTime:       at(3, 16, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, res.Status)

	stored := env.repo.get("r1")
	assert.Equal(t, at(3, 15, 0), stored.StartTime)
	assert.Equal(t, at(3, 16, 0), stored.EndTime)
	assert.Equal(t, domain.StatusApproved, stored.Status)
}

func TestReservationService_Reschedule_OverlapsOwnOldWindow(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0), domain.StatusApproved)

	_, err := env.svc.Reschedule(context.Background(), domain.RescheduleInput{
		ReservationID: "r1",
		Actor:         aliceActor,
		StartTime:     at(3, 13, 30),
		EndTime:       at(3, 14, 30),
	})

	require.NoError(t, err)
}

func TestReservationService_Reschedule_Conflict(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0), domain.StatusApproved)
	env.seed("r2", "u2", "jacuzzi", at(3, 15, 0), at(3, 16, 0), domain.StatusApproved)

	_, err := env.svc.Reschedule(context.Background(), domain.RescheduleInput{
		ReservationID: "r1",
		Actor:         aliceActor,
		StartTime:     at(3, 15, 30),
		EndTime:       at(3, 16, 30),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeConflict)
	assert.Equal(t, at(3, 13, 0), env.repo.get("r1").StartTime)
}

func TestReservationService_Reschedule_LoungeIgnoresEditedReservation(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "lounge", at(6, 18, 0), at(6, 20, 0), domain.StatusPending)

	res, err := env.svc.Reschedule(context.Background(), domain.RescheduleInput{
		ReservationID: "r1",
		Actor:         aliceActor,
		StartTime:     at(7, 18, 0),
		EndTime:       at(7, 20, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, res.Status)
}

func TestReservationService_Reschedule_NotOwner(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "jacuzzi", at(3, 13, 0), at(3, 14, 0), domain.StatusApproved)

	_, err := env.svc.Reschedule(context.Background(), domain.RescheduleInput{
		ReservationID: "r1",
		Actor:         bobActor,
		StartTime:     at(3, 15, 0),
		EndTime:       at(3, 16, 0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestReservationService_CloseWindow(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("morning", "u1", "jacuzzi", at(3, 9, 0), at(3, 10, 0), domain.StatusApproved)
	env.seed("noon", "u2", "jacuzzi", at(3, 13, 30), at(3, 14, 30), domain.StatusPending)
	env.seed("evening", "u1", "jacuzzi", at(3, 18, 0), at(3, 19, 0), domain.StatusApproved)
	env.seed("old", "u2", "jacuzzi", at(3, 11, 0), at(3, 12, 0), domain.StatusCancelled)

	preview, err := env.svc.PreviewClosure(context.Background(), "jacuzzi", at(3, 8, 0), at(3, 14, 0))
	require.NoError(t, err)
	require.Len(t, preview, 2)
	assert.Equal(t, "morning", preview[0].ID)
	assert.Equal(t, "noon", preview[1].ID)

	_, err = env.svc.CloseWindow(context.Background(), "jacuzzi", at(3, 8, 0), at(3, 14, 0), aliceActor, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminOnly)

	cancelled, err := env.svc.CloseWindow(context.Background(), "jacuzzi", at(3, 8, 0), at(3, 14, 0), adminActor, "maintenance")
	require.NoError(t, err)
	assert.Len(t, cancelled, 2)

	assert.Equal(t, domain.StatusCancelled, env.repo.get("morning").Status)
	assert.Equal(t, "maintenance", env.repo.get("noon").StatusReason)
	assert.Equal(t, domain.StatusApproved, env.repo.get("evening").Status)
}

func TestReservationService_PreviewClosure_InvalidRange(t *testing.T) {
	env := newReservationEnv(t)

	_, err := env.svc.PreviewClosure(context.Background(), "jacuzzi", at(3, 14, 0), at(3, 8, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestReservationService_ListByUser(t *testing.T) {
	env := newReservationEnv(t)
	env.seed("r1", "u1", "jacuzzi", at(3, 9, 0), at(3, 10, 0), domain.StatusApproved)
	env.seed("r2", "u2", "jacuzzi", at(3, 11, 0), at(3, 12, 0), domain.StatusApproved)
	env.seed("r3", "u1", "lounge", at(4, 11, 0), at(4, 12, 0), domain.StatusDenied)

	list, err := env.svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestReservationService_Create_OperatingHoursOnClockChangeDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := func(month time.Month, day, hour, minute int) time.Time {
		return time.Date(2026, month, day, hour, minute, 0, 0, ny)
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"spring forward opening hour", local(3, 8, 7, 0), local(3, 8, 8, 0), nil},
		{"spring forward closing hour", local(3, 8, 20, 0), local(3, 8, 21, 0), nil},
		{"spring forward past closing", local(3, 8, 20, 30), local(3, 8, 21, 30), domain.ErrOutsideOperatingHours},
		{"fall back opening hour", local(11, 1, 7, 0), local(11, 1, 8, 0), nil},
		{"fall back closing hour", local(11, 1, 20, 0), local(11, 1, 21, 0), nil},
		{"fall back before opening", local(11, 1, 6, 0), local(11, 1, 7, 0), domain.ErrOutsideOperatingHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newReservationEnvIn(t, ny)

			_, err := env.book("u1", "jacuzzi", tt.start, tt.end)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
