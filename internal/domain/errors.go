package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
