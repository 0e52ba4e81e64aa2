package collaborator

import "errors"

// Collaborator domain errors
var (
	ErrCollaboratorNotFound = errors.New("collaborator not found")
	ErrEmailExists          = errors.New("email already registered")
)
