package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserType distinguishes the two account roles.
type UserType string

const (
	UserTypeCreator UserType = "creator"
	UserTypeCompany UserType = "company"
)

// User is the account document stored in the users collection.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Username       string             `bson:"username" json:"username"`
	FullName       string             `bson:"full_name" json:"full_name"`
	UserType       UserType           `bson:"user_type" json:"user_type"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	IsPremium      bool               `bson:"is_premium" json:"is_premium"`
	PremiumSince   *time.Time         `bson:"premium_since,omitempty" json:"premium_since,omitempty"`
	PremiumExpires *time.Time         `bson:"premium_expires,omitempty" json:"premium_expires,omitempty"`
}

// Token is the authentication response returned by signup and login.
type Token struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	UserType    UserType `json:"user_type"`
	Username    string   `json:"username"`
}
