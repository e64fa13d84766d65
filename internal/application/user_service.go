package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sidapp/mongo-user-service/internal/domain/entity"
	repo "github.com/sidapp/mongo-user-service/internal/domain/repository"
)

// Service orchestrates user CRUD against the storage port. It enforces the
// business invariants that are not pure field validation: existence checks
// before update/delete, store-assigned identity on create, and the email
// uniqueness failure surfaced by the store's unique index.
//
// The service holds no mutable state and is safe for concurrent use.
type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
	Audit  *AuditPublisher
}

func NewService(r repo.UserRepository, logger *logrus.Logger, audit *AuditPublisher) *Service {
	return &Service{Repo: r, Logger: logger, Audit: audit}
}

// FindAll returns every stored user. Order is store-defined.
func (s *Service) FindAll(ctx context.Context) ([]entity.User, error) {
	s.Logger.Info("retrieving all users")
	return s.Repo.FindAll(ctx)
}

// FindByID returns the matching user or a NotFoundError.
func (s *Service) FindByID(ctx context.Context, id string) (*entity.User, error) {
	s.Logger.WithField("id", id).Info("searching user by id")
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupErr(err, id)
	}
	return u, nil
}

// Create persists a new user. Any client-supplied id is discarded so the
// store assigns identity; a blank status defaults to ACTIVE.
func (s *Service) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	u.ID = ""
	if strings.TrimSpace(u.Status) == "" {
		u.Status = entity.DefaultStatus
	}
	s.Logger.WithFields(logrus.Fields{"email": u.Email, "role": u.Role}).Info("saving new user")

	created, err := s.Repo.Save(ctx, u)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, &ConflictError{Email: u.Email}
		}
		return nil, err
	}
	s.Audit.Record(ctx, AuditUserCreated, created)
	return created, nil
}

// Update resolves the existing record and replaces every mutable field with
// the candidate's value, empty or not. ID and CreatedAt are never touched.
func (s *Service) Update(ctx context.Context, id string, candidate *entity.User) (*entity.User, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("id", id).Info("updating user with new values")

	existing.Name = candidate.Name
	existing.Email = candidate.Email
	existing.Phone = candidate.Phone
	existing.Role = candidate.Role
	existing.Status = candidate.Status
	existing.Address = candidate.Address

	updated, err := s.Repo.Save(ctx, existing)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, &ConflictError{Email: candidate.Email}
		}
		return nil, s.mapLookupErr(err, id)
	}
	s.Audit.Record(ctx, AuditUserUpdated, updated)
	return updated, nil
}

// Delete resolves the existing record and removes it from the store.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"id": id, "email": existing.Email}).Info("deleting user")

	if err := s.Repo.Delete(ctx, existing); err != nil {
		return s.mapLookupErr(err, id)
	}
	s.Audit.Record(ctx, AuditUserDeleted, existing)
	return nil
}

// Derived lookups backing the list filters.

// FindByEmail returns at most one user, as a list, for the email filter.
func (s *Service) FindByEmail(ctx context.Context, email string) ([]entity.User, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return []entity.User{}, nil
		}
		return nil, err
	}
	return []entity.User{*u}, nil
}

func (s *Service) FindByRole(ctx context.Context, role string) ([]entity.User, error) {
	return s.Repo.FindByRole(ctx, role)
}

func (s *Service) FindByStatus(ctx context.Context, status string) ([]entity.User, error) {
	return s.Repo.FindByStatus(ctx, status)
}

func (s *Service) SearchByName(ctx context.Context, namePart string) ([]entity.User, error) {
	return s.Repo.SearchByName(ctx, namePart)
}

func (s *Service) FindByEmailDomain(ctx context.Context, domain string) ([]entity.User, error) {
	return s.Repo.FindByEmailDomain(ctx, domain)
}

func (s *Service) FindCreatedAfter(ctx context.Context, t time.Time) ([]entity.User, error) {
	return s.Repo.FindCreatedAfter(ctx, t)
}

func (s *Service) mapLookupErr(err error, id string) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		s.Logger.WithField("id", id).Error("user not found")
		return &NotFoundError{ID: id}
	case errors.Is(err, repo.ErrInvalidID):
		return &InvalidArgumentError{Msg: "Invalid user id: " + id}
	default:
		return err
	}
}
