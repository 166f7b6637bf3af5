package service

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidUsername     = errors.New("invalid username")
	ErrMissingPassword     = errors.New("password is required")
	ErrPasswordTooLong     = errors.New("password is longer than 72 bytes")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrSelectionNotOffered = errors.New("selection not offered by course")
	ErrInvalidPlayer       = errors.New("invalid player")
	ErrInvalidSort         = errors.New("invalid sort")
)
