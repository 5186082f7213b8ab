package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// ErrInvalidRoleMapping indicates a programming or integrity error: the
	// declared role of a candidate account does not match the populated
	// profile variant.
	ErrInvalidRoleMapping = errors.New("account role does not match its profile")

	ErrTokenCreationFailed     = errors.New("session token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("session token is expired or invalid")

	ErrValidationInvalidGradeValue = errors.New("grade value must be between 1 and 10")
	ErrValidationInvalidWeekday    = errors.New("weekday must be between 1 and 7")
	ErrValidationNoStudent         = errors.New("no student was given")
	ErrValidationNoSession         = errors.New("no class session was given")
)
