package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the catalog core. Handlers distinguish them with
// errors.Is; the core never retries on any of them.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrDuplicateRating  = errors.New("recipe already rated by this user")
	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrStorage          = errors.New("storage failure")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// storageError tags a collaborator failure so callers can tell it apart
// from domain rejections.
func storageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}
