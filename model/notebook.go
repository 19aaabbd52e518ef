package model

import "time"

type Notebook struct {
	NotebookID string    `bson:"notebook_id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name" validate:"required,max=255"` // Unique per user
	CreatedOn  time.Time `bson:"created_on" json:"created_on"`
}
