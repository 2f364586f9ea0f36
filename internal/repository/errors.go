// Package repository defines error types that are reused across the
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors.
package repository

import "errors"

// ErrEmailExists is returned when a sign-up collides with an already
// registered email. Handlers translate this into the duplicate-user
// response.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a lookup matches no row, e.g. signing in
// with an unknown email or fetching history for a user who never added
// a color.
var ErrNotFound = errors.New("not found")
