package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"holokit/internal/models"
)

// CreateRequest inserts a content request and returns it with its ID set.
func (s *Store) CreateRequest(ctx context.Context, req *models.ContentRequest) (*models.ContentRequest, error) {
	result, err := s.requests().InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to insert content request: %w", err)
	}
	req.ID = result.InsertedID.(primitive.ObjectID)
	return req, nil
}

// RequestByID fetches a single content request.
func (s *Store) RequestByID(ctx context.Context, id string) (*models.ContentRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid request ID: %w", err)
	}

	var req models.ContentRequest
	err = s.requests().FindOne(ctx, bson.M{"_id": oid}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find content request: %w", err)
	}
	return &req, nil
}

// RequestByIDForCompany fetches a request only if it belongs to the company.
func (s *Store) RequestByIDForCompany(ctx context.Context, id, companyID string) (*models.ContentRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid request ID: %w", err)
	}

	var req models.ContentRequest
	err = s.requests().FindOne(ctx, bson.M{"_id": oid, "company_id": companyID}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find content request: %w", err)
	}
	return &req, nil
}

// RequestsByCompany lists every request a company has created.
func (s *Store) RequestsByCompany(ctx context.Context, companyID string) ([]models.ContentRequest, error) {
	return s.findRequests(ctx, bson.M{"company_id": companyID})
}

// OpenRequests lists all requests creators may still apply to.
func (s *Store) OpenRequests(ctx context.Context) ([]models.ContentRequest, error) {
	return s.findRequests(ctx, bson.M{"status": models.RequestStatusOpen})
}

func (s *Store) findRequests(ctx context.Context, filter bson.M) ([]models.ContentRequest, error) {
	cursor, err := s.requests().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list content requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.ContentRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode content requests: %w", err)
	}
	return requests, nil
}

// DeleteRequest removes a company's request and all applications to it.
func (s *Store) DeleteRequest(ctx context.Context, id, companyID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid request ID: %w", err)
	}

	result, err := s.requests().DeleteOne(ctx, bson.M{"_id": oid, "company_id": companyID})
	if err != nil {
		return fmt.Errorf("failed to delete content request: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	if _, err := s.applications().DeleteMany(ctx, bson.M{"request_id": id}); err != nil {
		return fmt.Errorf("failed to delete applications for request: %w", err)
	}
	return nil
}

// CreateApplication inserts a creator application and returns it with its ID.
func (s *Store) CreateApplication(ctx context.Context, app *models.CreatorApplication) (*models.CreatorApplication, error) {
	result, err := s.applications().InsertOne(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("failed to insert application: %w", err)
	}
	app.ID = result.InsertedID.(primitive.ObjectID)
	return app, nil
}

// ApplicationByID fetches a single application.
func (s *Store) ApplicationByID(ctx context.Context, id string) (*models.CreatorApplication, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid application ID: %w", err)
	}

	var app models.CreatorApplication
	err = s.applications().FindOne(ctx, bson.M{"_id": oid}).Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// HasApplied reports whether the creator already applied to the request.
func (s *Store) HasApplied(ctx context.Context, requestID, creatorID string) (bool, error) {
	count, err := s.applications().CountDocuments(ctx, bson.M{
		"request_id": requestID,
		"creator_id": creatorID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return count > 0, nil
}

// ApplicationsByRequest lists all applications to a request.
func (s *Store) ApplicationsByRequest(ctx context.Context, requestID string) ([]models.CreatorApplication, error) {
	return s.findApplications(ctx, bson.M{"request_id": requestID})
}

// ApplicationsByCreator lists all applications a creator has submitted.
func (s *Store) ApplicationsByCreator(ctx context.Context, creatorID string) ([]models.CreatorApplication, error) {
	return s.findApplications(ctx, bson.M{"creator_id": creatorID})
}

func (s *Store) findApplications(ctx context.Context, filter bson.M) ([]models.CreatorApplication, error) {
	cursor, err := s.applications().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer cursor.Close(ctx)

	apps := []models.CreatorApplication{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode applications: %w", err)
	}
	return apps, nil
}
