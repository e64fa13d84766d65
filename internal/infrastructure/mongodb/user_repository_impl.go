package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sidapp/mongo-user-service/internal/domain/entity"
	"github.com/sidapp/mongo-user-service/internal/domain/repository"
)

// userDoc is the BSON shape of a user record. The _id is a native ObjectId;
// the entity carries its hex encoding.
type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Role      string             `bson:"role"`
	Status    string             `bson:"status,omitempty"`
	Address   string             `bson:"address,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Role:      d.Role,
		Status:    d.Status,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func docFromEntity(oid primitive.ObjectID, u *entity.User) *userDoc {
	return &userDoc{
		ID:        oid,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database, collection string) *UserRepository {
	return &UserRepository{coll: db.Collection(collection)}
}

// EnsureIndexes creates the unique email index the uniqueness invariant
// relies on. Concurrent creates with the same email race at the index, not
// in application code.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	now := time.Now().UTC()
	if u.ID == "" {
		oid := primitive.NewObjectID()
		u.CreatedAt = now
		u.UpdatedAt = now
		if _, err := r.coll.InsertOne(ctx, docFromEntity(oid, u)); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, repository.ErrDuplicateEmail
			}
			return nil, err
		}
		u.ID = oid.Hex()
		return u, nil
	}

	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	u.UpdatedAt = now
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, docFromEntity(oid, u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, u *entity.User) error {
	return r.DeleteByID(ctx, u.ID)
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrInvalidID
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) FindByRole(ctx context.Context, role string) ([]entity.User, error) {
	return r.findMany(ctx, bson.M{"role": role})
}

func (r *UserRepository) FindByStatus(ctx context.Context, status string) ([]entity.User, error) {
	return r.findMany(ctx, bson.M{"status": status})
}

func (r *UserRepository) SearchByName(ctx context.Context, namePart string) ([]entity.User, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(namePart), Options: "i"}
	return r.findMany(ctx, bson.M{"name": re})
}

func (r *UserRepository) FindCreatedAfter(ctx context.Context, t time.Time) ([]entity.User, error) {
	return r.findMany(ctx, bson.M{"created_at": bson.M{"$gt": t}})
}

func (r *UserRepository) FindByEmailDomain(ctx context.Context, domain string) ([]entity.User, error) {
	re := primitive.Regex{Pattern: "@" + regexp.QuoteMeta(domain) + "$", Options: "i"}
	return r.findMany(ctx, bson.M{"email": re})
}

func (r *UserRepository) findMany(ctx context.Context, filter bson.M) ([]entity.User, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	users := make([]entity.User, 0)
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, *doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
