package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sidapp/mongo-user-service/internal/domain/entity"
)

// Port-level sentinels. The application layer maps these to typed failures;
// concrete stores must return them instead of driver-specific errors.
var (
	// ErrNotFound means no record matched the given id.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail means a write collided with the unique email index.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidID means the supplied id is not a valid store identifier.
	ErrInvalidID = errors.New("invalid user id")
)

// UserRepository is the storage port for User records. It is the only
// abstraction through which the service layer reaches the document store.
//
// Save inserts when u.ID is empty, assigning a store-generated id and the
// audit timestamps, and otherwise replaces the record with that id wholesale.
// Either way it returns the persisted representation.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
	Delete(ctx context.Context, u *entity.User) error
	DeleteByID(ctx context.Context, id string) error

	// Derived lookups used by the list filters.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByRole(ctx context.Context, role string) ([]entity.User, error)
	FindByStatus(ctx context.Context, status string) ([]entity.User, error)
	SearchByName(ctx context.Context, namePart string) ([]entity.User, error)
	FindCreatedAfter(ctx context.Context, t time.Time) ([]entity.User, error)
	FindByEmailDomain(ctx context.Context, domain string) ([]entity.User, error)
}
