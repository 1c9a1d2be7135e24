package service

import "errors"

// Sentinel errors returned by services. Handlers map these onto HTTP status
// codes; everything else surfaces as a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("you do not have permission to modify this recipe")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
