package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrProfileNotFound = errors.New("user profile not found")
)

var (
	ErrAlreadyBooked  = errors.New("user already has a booking for this session")
	ErrNotBooked      = errors.New("user has no booking for this session")
	ErrActionInFlight = errors.New("a booking action for this session and user is already in flight")
)

var (
	ErrValidation = errors.New("validation error")
)
