// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow the shell layer to distinguish
// between different failure scenarios and print the right message without
// inspecting error strings.
package repository

import "errors"

// ErrDuplicateUser is returned when a registration collides with an
// existing username. The original row is left untouched.
var ErrDuplicateUser = errors.New("username already exists")

// ErrInvalidCredentials is returned when a login or password reset does not
// match an existing user exactly. It deliberately carries no detail about
// which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrTripNotFound is returned when a trip does not exist OR exists but
// belongs to another user. The two cases are deliberately conflated so a
// caller cannot probe for trip IDs owned by someone else.
var ErrTripNotFound = errors.New("trip not found")
