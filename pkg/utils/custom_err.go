package utils

import "errors"

var (
	ErrValidation          = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrContactNotFound     = errors.New("contact not found")
	ErrSessionNotFound     = errors.New("upload session not found")
	ErrObjectNotFound      = errors.New("file not found")
	ErrEmailAlreadyExists  = errors.New("contact with this email already exists")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrEmailDeliveryFailed = errors.New("failed to send email")
	ErrDatabaseError       = errors.New("database error")
)
