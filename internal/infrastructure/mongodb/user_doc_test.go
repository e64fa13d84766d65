package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sidapp/mongo-user-service/internal/domain/entity"
)

// The document shape is the only place the entity meets BSON, so the
// conversion pair has to round-trip every field and translate the id
// between ObjectId and its hex encoding.
func TestUserDocConversion(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	u := &entity.User{
		ID:        oid.Hex(),
		Name:      "John Doe",
		Email:     "john@example.com",
		Phone:     "+1 (555) 010-0001",
		Role:      "USER",
		Status:    "ACTIVE",
		Address:   "1 Main St",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}

	doc := docFromEntity(oid, u)
	assert.Equal(t, oid, doc.ID)
	assert.Equal(t, u.Email, doc.Email)
	assert.Equal(t, u.CreatedAt, doc.CreatedAt)

	back := doc.toEntity()
	require.NotNil(t, back)
	assert.Equal(t, u, back)
}
