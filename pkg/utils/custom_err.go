package utils

import "errors"

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrBusinessNotFound   = errors.New("business not found")
	ErrForbiddenScan      = errors.New("unauthorized scan attempt")
	ErrValidationFailed   = errors.New("missing or malformed identifying fields")
	ErrInvalidRewardType  = errors.New("unknown reward type")
	ErrScanFailed         = errors.New("scan failed")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)
