package model

import "time"

type Note struct {
	NoteID      string    `bson:"note_id" json:"id"`
	NotebookID  string    `bson:"notebook_id" json:"notebook_id"`
	Key         string    `bson:"key" json:"key" validate:"required,max=255"` // Unique per notebook
	Value       string    `bson:"value" json:"value"`
	CreatedOn   time.Time `bson:"created_on" json:"created_on"`
	LastUpdated time.Time `bson:"last_updated" json:"last_updated"` // Refreshed on every mutation
}
