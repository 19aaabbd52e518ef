package dto

import "cloudcache/model"

// Field orders below are fixed; changing them changes the wire contract.

// NoteDocument returns the ordered representation of a note.
func NoteDocument(note *model.Note) Document {
	return Document{
		{Key: "key", Value: note.Key},
		{Key: "value", Value: note.Value},
		{Key: "id", Value: note.NoteID},
		{Key: "notebook_id", Value: note.NotebookID},
		{Key: "created_on", Value: FormatTime(note.CreatedOn)},
		{Key: "last_updated", Value: FormatTime(note.LastUpdated)},
	}
}

// NotebookDocument returns the ordered representation of a notebook with its
// notes embedded in creation order.
func NotebookDocument(notebook *model.Notebook, notes []*model.Note) Document {
	children := make([]Document, 0, len(notes))
	for _, note := range notes {
		children = append(children, NoteDocument(note))
	}
	return Document{
		{Key: "name", Value: notebook.Name},
		{Key: "id", Value: notebook.NotebookID},
		{Key: "user_id", Value: notebook.UserID},
		{Key: "created_on", Value: FormatTime(notebook.CreatedOn)},
		{Key: "notes", Value: children},
	}
}

// UserDocument returns the ordered representation of a user with notebooks
// (each carrying its notes) embedded in creation order.
func UserDocument(user *model.User, notebooks []Document) Document {
	if notebooks == nil {
		notebooks = []Document{}
	}
	return Document{
		{Key: "username", Value: user.Username},
		{Key: "id", Value: user.UserID},
		{Key: "first_name", Value: user.FirstName},
		{Key: "last_name", Value: user.LastName},
		{Key: "email_address", Value: user.Email},
		{Key: "api_key", Value: user.APIKey},
		{Key: "date_joined", Value: FormatTime(user.DateJoined)},
		{Key: "notebooks", Value: notebooks},
	}
}

// TokenDocument returns the ordered representation of an access token.
func TokenDocument(token *model.UserAccessToken) Document {
	return Document{
		{Key: "id", Value: token.TokenID},
		{Key: "user_id", Value: token.UserID},
		{Key: "access_token", Value: token.AccessToken},
		{Key: "expires_on", Value: FormatTime(token.ExpiresOn)},
	}
}
