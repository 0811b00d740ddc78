package utils

import "errors"

var (
	ErrUnauthenticated        = errors.New("not authenticated")
	ErrNotFoundOrUnauthorized = errors.New("record not found or not owned by caller")
	ErrRemoteService          = errors.New("remote service error")
	ErrValidation             = errors.New("validation error")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrResetTokenInvalid      = errors.New("reset token invalid or expired")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
)
