package service

import "errors"

// Sentinel errors raised by the service layer. Handlers translate them to
// HTTP statuses: ErrNotFound → 404, ErrInvalidCredentials → 401, the rest
// → 400.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email is already taken")
	ErrAlreadyParticipating = errors.New("user already participates in session")
	ErrNotParticipating     = errors.New("user does not participate in session")
)
