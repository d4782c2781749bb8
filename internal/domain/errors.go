package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrFetchFailed        = errors.New("history fetch failed")
	ErrSaveFailed         = errors.New("record save failed")
	ErrPartialSave        = errors.New("answers could not be replaced after delete")
)
