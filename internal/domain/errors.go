package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the referenced
// record does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails validation
// (e.g. missing auth ID, auth ID too long, missing place identifier).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when a request lacks a usable bearer credential.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
