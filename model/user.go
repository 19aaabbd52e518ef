package model

import "time"

type User struct {
	UserID     string    `bson:"user_id" json:"user_id"`                                    // Unique ID number
	Username   string    `bson:"username" json:"username" validate:"required,min=3,max=30"` // Unique, case-sensitive
	FirstName  string    `bson:"first_name" json:"first_name"`
	LastName   string    `bson:"last_name" json:"last_name"`
	Email      string    `bson:"email_address" json:"email_address" validate:"omitempty,email"`
	APIKey     string    `bson:"api_key" json:"api_key"` // 32 uppercase hex chars, issued once at registration
	DateJoined time.Time `bson:"date_joined" json:"date_joined"`
}
