package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Content request lifecycle states.
const (
	RequestStatusOpen      = "open"
	RequestStatusClosed    = "closed"
	RequestStatusCompleted = "completed"
)

// Creator application states.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ContentRequest is a brief posted by a company for creators to apply to.
type ContentRequest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID       string             `bson:"company_id" json:"company_id"`
	CompanyUsername string             `bson:"company_username" json:"company_username"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Budget          string             `bson:"budget,omitempty" json:"budget,omitempty"`
	Requirements    string             `bson:"requirements" json:"requirements"`
	Deadline        string             `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// CreatorApplication links a creator to a content request, carrying the
// analyzed profile snapshot taken at application time.
type CreatorApplication struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID       string             `bson:"request_id" json:"request_id"`
	CreatorID       string             `bson:"creator_id" json:"creator_id"`
	CreatorUsername string             `bson:"creator_username" json:"creator_username"`
	IsPremium       bool               `bson:"is_premium" json:"is_premium"`
	ProfileURL      string             `bson:"profile_url" json:"profile_url"`
	ProfileData     *AnalysisResult    `bson:"profile_data,omitempty" json:"profile_data,omitempty"`
	Status          string             `bson:"status" json:"status"`
	AppliedAt       time.Time          `bson:"applied_at" json:"applied_at"`
}
