package repository

import (
	"context"
	"errors"
	"fmt"

	"movies-api/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const UsersCollection = "users"

type mongoUserDoc struct {
	ID          bson.ObjectID `bson:"_id"`
	domain.User `bson:",inline"`
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{
		coll: db.Collection(UsersCollection),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	oid, err := bson.ObjectIDFromHex(user.ID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", user.ID, err)
	}

	if _, err := r.coll.InsertOne(ctx, mongoUserDoc{ID: oid, User: *user}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *mongoUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return emailExists(ctx, r, email)
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc mongoUserDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user := doc.User
	user.ID = doc.ID.Hex()
	return &user, nil
}
