package onboarding

import "errors"

// Service errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
	ErrWrongStage     = errors.New("operation not allowed at current onboarding stage")
	ErrNoDocuments    = errors.New("at least one document is required")
	ErrStorageFailure = errors.New("failed to store attachment")
)
