package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"holokit/internal/models"
)

// CreateUser inserts a new user and returns its document ID.
func (s *Store) CreateUser(ctx context.Context, user *models.User) (string, error) {
	result, err := s.users().InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// UserByEmail looks up a user by email address.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

// UserByUsername looks up a user by username.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"username": username})
}

// UserByID looks up a user by its hex document ID.
func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	return s.findUser(ctx, bson.M{"_id": oid})
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// SetPremium marks a user as premium until the given expiry.
func (s *Store) SetPremium(ctx context.Context, id string, since, expires time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	result, err := s.users().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"is_premium":      true,
			"premium_since":   since,
			"premium_expires": expires,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update premium status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearPremium revokes a user's premium flag, keeping the historical dates.
func (s *Store) ClearPremium(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	_, err = s.users().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"is_premium": false},
	})
	if err != nil {
		return fmt.Errorf("failed to clear premium status: %w", err)
	}
	return nil
}

// SweepExpiredPremium revokes premium from every user whose subscription has
// lapsed. Returns how many users were downgraded.
func (s *Store) SweepExpiredPremium(ctx context.Context) (int64, error) {
	result, err := s.users().UpdateMany(ctx,
		bson.M{
			"is_premium":      true,
			"premium_expires": bson.M{"$lt": time.Now().UTC()},
		},
		bson.M{"$set": bson.M{"is_premium": false}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired premium: %w", err)
	}
	return result.ModifiedCount, nil
}
