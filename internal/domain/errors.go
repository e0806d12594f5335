package domain

import "errors"

var (
	ErrAmenityNotFound     = errors.New("amenity not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrTimeConflict         = errors.New("time slot overlaps an existing reservation")
	ErrStatusChanged        = errors.New("reservation status was changed concurrently")
	ErrReservationFinalized = errors.New("reservation is already finalized")
	ErrInvalidTransition    = errors.New("status transition is not allowed")
	ErrCannotCancelPast     = errors.New("cannot cancel a reservation that has already elapsed")
	ErrAmenityNameTaken     = errors.New("amenity name is already taken")
	ErrUsernameTaken        = errors.New("username is already taken")
)

var (
	ErrAdminOnly = errors.New("only an administrator can perform this action")
	ErrNotOwner  = errors.New("reservation belongs to another user")
)

var (
	ErrValidation            = errors.New("validation error")
	ErrInvalidTimeRange      = errors.New("end time must be after start time")
	ErrDurationTooLong       = errors.New("reservation exceeds the maximum duration")
	ErrStartInPast           = errors.New("cannot book a time in the past")
	ErrAmenityClosed         = errors.New("amenity is closed on the requested day")
	ErrOutsideOperatingHours = errors.New("reservation is outside operating hours")
	ErrTooManyVisitors       = errors.New("visitor count exceeds the amenity limit")
	ErrConsecutiveWeekend    = errors.New("consecutive weekend reservations are not allowed")
	ErrDenialReasonRequired  = errors.New("a denial reason is required")
	ErrInvalidStatus         = errors.New("invalid reservation status")
	ErrAmenityInactive       = errors.New("amenity is not active")
)
