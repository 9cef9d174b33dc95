package repositories

import (
	"context"
	"errors"

	"onboard/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines the interface for onboarding record access.
// Mutations are single-row updates keyed by user_id; an update that
// matches no row reports ErrUserNotFound, never silent success.
type UserRepository interface {
	// Create inserts a new record. A duplicate user_id is ErrUserExists.
	Create(ctx context.Context, user *models.User) error

	// GetByUserID retrieves a record by its caller-supplied identifier.
	GetByUserID(ctx context.Context, userID string) (*models.User, error)

	// UpdateAtStage applies a partial update to one record, guarded on
	// the record still being at the given status code. ErrUserNotFound
	// means no row matched: the record is absent or already past the
	// stage.
	UpdateAtStage(ctx context.Context, userID string, statusCode int, updates map[string]interface{}) error

	// List retrieves all records.
	List(ctx context.Context) ([]*models.User, error)
}
