package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionMissing = errors.New("no session for principal")
)

// Chat errors
var (
	ErrChatBusy            = errors.New("chat request already in flight")
	ErrConversationUnknown = errors.New("conversation not found")
)

// Form errors (event registration window)
var (
	ErrWindowStartPast = errors.New("registration start must not be in the past")
	ErrWindowEndPast   = errors.New("registration end must not be in the past")
	ErrWindowInverted  = errors.New("registration start must be before registration end")
	ErrEventDatePast   = errors.New("event date must be in the future")
)
