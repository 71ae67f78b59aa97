// Package repository implements the data-access layer over the IMDb-style
// MySQL schema (basics, ratings, crew, principals, names, users). Sentinel
// errors defined here let handlers map failure scenarios onto HTTP statuses
// without inspecting driver errors themselves.
package repository

import "errors"

// ErrNotFound is returned when a primary entity (title or person) does not
// exist. Handlers translate it into an HTTP 404 response. Absence of
// dependent rows (rating, crew, cast) is not a not-found condition; those
// degrade to null or empty fields instead.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned by user creation when the email is already
// registered. Handlers translate it into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
