package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Email           string             `bson:"email"`
	Name            string             `bson:"name"`
	Image           string             `bson:"image,omitempty"`
	HashedPassword  string             `bson:"hashed_password,omitempty"`
	FavoriteIDs     []string           `bson:"favorite_ids"`
	EmailVerifiedAt int64              `bson:"email_verified_at,omitempty"`
	CreatedAt       int64              `bson:"created_at"`
	UpdatedAt       int64              `bson:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Email:           user.Email,
		Name:            user.Name,
		Image:           user.Image,
		HashedPassword:  user.HashedPassword,
		FavoriteIDs:     user.FavoriteIDs,
		EmailVerifiedAt: user.EmailVerifiedAt.Unix(),
		CreatedAt:       user.CreatedAt.Unix(),
		UpdatedAt:       user.UpdatedAt.Unix(),
	}
	if doc.FavoriteIDs == nil {
		doc.FavoriteIDs = []string{}
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	return r.FindByEmail(ctx, user.Email)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// AddFavorite appends movieID to the user's favorite list and returns the
// updated record. $push keeps duplicates; a repeated add stores a repeated
// entry.
func (r *UserRepository) AddFavorite(ctx context.Context, email, movieID string) (*domain.User, error) {
	return r.updateFavorites(ctx, email, bson.M{
		"$push": bson.M{"favorite_ids": movieID},
		"$set":  bson.M{"updated_at": time.Now().UTC().Unix()},
	})
}

// RemoveFavorite removes every occurrence of movieID ($pull matches all)
// and returns the updated record.
func (r *UserRepository) RemoveFavorite(ctx context.Context, email, movieID string) (*domain.User, error) {
	return r.updateFavorites(ctx, email, bson.M{
		"$pull": bson.M{"favorite_ids": movieID},
		"$set":  bson.M{"updated_at": time.Now().UTC().Unix()},
	})
}

func (r *UserRepository) updateFavorites(ctx context.Context, email string, update bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mu mongoUser
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update favorites: %w", err)
	}
	return mu.toDomain(), nil
}

// EnsureIndexes creates the unique email index backing the registration
// conflict check.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:              mu.ID.Hex(),
		Email:           mu.Email,
		Name:            mu.Name,
		Image:           mu.Image,
		HashedPassword:  mu.HashedPassword,
		FavoriteIDs:     mu.FavoriteIDs,
		EmailVerifiedAt: unixToTime(mu.EmailVerifiedAt),
		CreatedAt:       unixToTime(mu.CreatedAt),
		UpdatedAt:       unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
