package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/handler/dto"
	"github.com/stpnv0/AmenityBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type AmenitySvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.AmenityInput) (*domain.Amenity, error)
	Update(ctx context.Context, actor domain.Actor, id string, input domain.AmenityInput) (*domain.Amenity, error)
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Amenity, error)
}

type AvailabilitySvc interface {
	ComputeAvailableSlots(ctx context.Context, amenityID string, date time.Time, durationMinutes int) (*domain.Availability, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	SetStatus(ctx context.Context, id string, status domain.ReservationStatus, actor domain.Actor, reason string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string, actor domain.Actor) (*domain.Reservation, error)
	Reschedule(ctx context.Context, input domain.RescheduleInput) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	PreviewClosure(ctx context.Context, amenityID string, start, end time.Time) ([]*domain.Reservation, error)
	CloseWindow(ctx context.Context, amenityID string, start, end time.Time, actor domain.Actor, reason string) ([]*domain.Reservation, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	amenityService      AmenitySvc
	availabilityService AvailabilitySvc
	reservationService  ReservationSvc
	userService         UserSvc
}

func NewHandler(
	amenityService AmenitySvc,
	availabilityService AvailabilitySvc,
	reservationService ReservationSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		amenityService:      amenityService,
		availabilityService: availabilityService,
		reservationService:  reservationService,
		userService:         userService,
	}
}

var errNoActor = errors.New("missing " + middleware.UserIDHeader + " header")

// actor writes 401 and reports false when the request carries no identity.
func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.Set("error", errNoActor.Error())
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: errNoActor.Error()})
		return domain.Actor{}, false
	}
	return actor, true
}

func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func parseRange(c *ginext.Context, startRaw, endRaw string) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrAmenityNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTimeConflict),
		errors.Is(err, domain.ErrStatusChanged),
		errors.Is(err, domain.ErrReservationFinalized),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrCannotCancelPast),
		errors.Is(err, domain.ErrAmenityNameTaken),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAdminOnly),
		errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrDurationTooLong),
		errors.Is(err, domain.ErrStartInPast),
		errors.Is(err, domain.ErrAmenityClosed),
		errors.Is(err, domain.ErrOutsideOperatingHours),
		errors.Is(err, domain.ErrTooManyVisitors),
		errors.Is(err, domain.ErrConsecutiveWeekend),
		errors.Is(err, domain.ErrDenialReasonRequired),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrAmenityInactive):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
