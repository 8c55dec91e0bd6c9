// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, client address extraction, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// StaffCtxKey is the key used to store the authenticated staff identifier
// in the context. Used together with GetStaffFromContext for type-safe
// retrieval on admin routes.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.StaffCtxKey, "reception-desk")
var StaffCtxKey = contextKey("staff")

// GetStaffFromContext retrieves the authenticated staff identifier from the
// context.
//
// Returns the identifier and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetStaffFromContext(ctx context.Context) (string, bool) {
	staff, ok := ctx.Value(StaffCtxKey).(string)
	return staff, ok
}
