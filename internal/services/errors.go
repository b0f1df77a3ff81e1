package services

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. The message strings
// are the API's visible error bodies.
var (
	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrMissingCredentials  = errors.New("username or password missing")
	ErrCredentialsTooShort = errors.New("username or password too short")
	ErrMissingTitleOrURL   = errors.New("title or url missing")
	ErrNotOwner            = errors.New("not allowed to delete someone elses blog")
)
