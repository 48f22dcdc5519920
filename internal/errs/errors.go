// Package errs contains the sentinel errors shared by the repository and service layers.
// Handlers map them to HTTP responses with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

// Base conditions.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness constraint would be violated.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvariantViolation indicates stored state contradicts a lifecycle rule,
	// e.g. confirming a token twice or enabling an enabled account.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidCredentials indicates an unknown email or a wrong password at login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled indicates a login attempt on an account that was never confirmed.
	ErrAccountDisabled = errors.New("account disabled")

	// ErrInvalidInput indicates a request value that cannot be interpreted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoChanges indicates an update request that would not change anything.
	ErrNoChanges = errors.New("no fields were changed")

	// ErrConflict indicates the entity is still referenced and cannot be removed.
	ErrConflict = errors.New("conflict")

	// ErrDispatchFailed indicates the confirmation mail could not be handed to the queue.
	ErrDispatchFailed = errors.New("notification dispatch failed")
)

// Entity specific conditions, each wrapping one of the base conditions.
var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrTokenNotFound       = fmt.Errorf("token %w", ErrNotFound)
	ErrCategoryNotFound    = fmt.Errorf("category %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	ErrEmailTaken     = fmt.Errorf("email %w", ErrAlreadyExists)
	ErrCategoryExists = fmt.Errorf("category %w", ErrAlreadyExists)

	ErrCategoryInUse = fmt.Errorf("category is referenced by transactions: %w", ErrConflict)

	ErrTokenAlreadyConfirmed = fmt.Errorf("token already confirmed: %w", ErrInvariantViolation)
	ErrUserAlreadyEnabled    = fmt.Errorf("user already enabled: %w", ErrInvariantViolation)
)
