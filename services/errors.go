package services

import "errors"

// Sentinel errors returned by the stores and booking logic. Controllers map
// these onto HTTP statuses with errors.Is.
var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrWorkerNotFound      = errors.New("worker not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room not available")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation already cancelled")
	ErrInvalidDateFormat   = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange    = errors.New("check-out date must be after check-in date")
)
