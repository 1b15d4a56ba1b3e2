package service

import "errors"

// Sentinel errors returned by the reward services. Controllers map these to
// HTTP responses; everything else is treated as an internal failure.
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrItemUnavailable    = errors.New("item is not available")
	ErrInsufficientHearts = errors.New("not enough hearts")
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInvalidPrice       = errors.New("price must be a positive number")
)
