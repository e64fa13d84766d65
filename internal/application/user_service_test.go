package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sidapp/mongo-user-service/internal/domain/entity"
	"github.com/sidapp/mongo-user-service/internal/domain/repository"
)

// mockRepository implements repository.UserRepository in memory for testing.
// It mimics the store contract: ObjectId hex ids, timestamps assigned on
// save, and a unique email constraint.
type mockRepository struct {
	users   map[string]*entity.User
	saveErr error
	findErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[string]*entity.User)}
}

func (m *mockRepository) FindAll(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockRepository) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	for id, other := range m.users {
		if other.Email == u.Email && id != u.ID {
			return nil, repository.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	cp := *u
	m.users[u.ID] = &cp
	return u, nil
}

func (m *mockRepository) Delete(_ context.Context, u *entity.User) error {
	return m.DeleteByID(context.Background(), u.ID)
}

func (m *mockRepository) DeleteByID(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *mockRepository) FindByRole(_ context.Context, role string) ([]entity.User, error) {
	return m.filter(func(u *entity.User) bool { return u.Role == role }), nil
}

func (m *mockRepository) FindByStatus(_ context.Context, status string) ([]entity.User, error) {
	return m.filter(func(u *entity.User) bool { return u.Status == status }), nil
}

func (m *mockRepository) SearchByName(_ context.Context, _ string) ([]entity.User, error) {
	return nil, nil
}

func (m *mockRepository) FindCreatedAfter(_ context.Context, t time.Time) ([]entity.User, error) {
	return m.filter(func(u *entity.User) bool { return u.CreatedAt.After(t) }), nil
}

func (m *mockRepository) FindByEmailDomain(_ context.Context, _ string) ([]entity.User, error) {
	return nil, nil
}

func (m *mockRepository) filter(keep func(*entity.User) bool) []entity.User {
	out := make([]entity.User, 0)
	for _, u := range m.users {
		if keep(u) {
			out = append(out, *u)
		}
	}
	return out
}

var _ repository.UserRepository = (*mockRepository)(nil)

func newTestService(repo repository.UserRepository) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(repo, logger, nil)
}

func candidate() *entity.User {
	return &entity.User{
		Name:  "John Doe",
		Email: "john@example.com",
		Role:  "USER",
	}
}

func TestCreate_AssignsStoreIdentity(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	u := candidate()
	u.ID = "client-supplied-id"

	created, err := svc.Create(context.Background(), u)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "client-supplied-id", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
}

func TestCreate_DefaultsStatusActive(t *testing.T) {
	svc := newTestService(newMockRepository())

	created, err := svc.Create(context.Background(), candidate())
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", created.Status)
}

func TestCreate_KeepsExplicitStatus(t *testing.T) {
	svc := newTestService(newMockRepository())

	u := candidate()
	u.Status = "SUSPENDED"
	created, err := svc.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "SUSPENDED", created.Status)
}

func TestCreate_DuplicateEmailConflicts(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), candidate())
	require.NoError(t, err)

	second := candidate()
	second.Name = "Another John"
	_, err = svc.Create(context.Background(), second)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "john@example.com", conflict.Email)

	// still exactly one record with that email
	all, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestFindByID_NotFound(t *testing.T) {
	svc := newTestService(newMockRepository())

	missing := primitive.NewObjectID().Hex()
	_, err := svc.FindByID(context.Background(), missing)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, missing, nf.ID)
	assert.Contains(t, err.Error(), missing)
}

func TestFindByID_InvalidID(t *testing.T) {
	svc := newTestService(newMockRepository())

	_, err := svc.FindByID(context.Background(), "not-a-hex-id")

	var inv *InvalidArgumentError
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, err.Error(), "not-a-hex-id")
}

func TestFindByID_Idempotent(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), candidate())
	require.NoError(t, err)

	first, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdate_ReplacesMutableFieldsWholesale(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	u := candidate()
	u.Phone = "+1 (555) 010-0001"
	u.Address = "1 Main St"
	created, err := svc.Create(context.Background(), u)
	require.NoError(t, err)
	createdAt := created.CreatedAt

	replacement := &entity.User{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Role:  "ADMIN",
		// Phone, Status and Address left empty on purpose
	}
	updated, err := svc.Update(context.Background(), created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, "ADMIN", updated.Role)
	assert.Empty(t, updated.Phone)
	assert.Empty(t, updated.Status)
	assert.Empty(t, updated.Address)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(createdAt))
}

func TestUpdate_NotFoundLeavesStorageUntouched(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), candidate())

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Empty(t, repo.users)
}

func TestUpdate_DuplicateEmailConflicts(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), candidate())
	require.NoError(t, err)

	other := candidate()
	other.Email = "jane@example.com"
	created, err := svc.Create(context.Background(), other)
	require.NoError(t, err)

	clash := candidate() // john@example.com again
	_, err = svc.Update(context.Background(), created.ID, clash)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestDelete_RemovesRecord(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), candidate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.FindByID(context.Background(), created.ID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDelete_NotFound(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestCreate_RoundTrip(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	u := candidate()
	u.Phone = "+1 (555) 010-0001"
	u.Address = "1 Main St"
	created, err := svc.Create(context.Background(), u)
	require.NoError(t, err)

	got, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
	assert.Equal(t, "+1 (555) 010-0001", got.Phone)
	assert.Equal(t, "USER", got.Role)
	assert.Equal(t, "ACTIVE", got.Status)
	assert.Equal(t, "1 Main St", got.Address)
}
