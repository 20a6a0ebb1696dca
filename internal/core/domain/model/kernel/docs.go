// Package kernel provides the shared primitives of the order domain.
//
// The package includes:
//   - ID: a positive store-assigned identifier for orders, users and products
//   - UUID: a value object for event identities, backed by github.com/google/uuid
//
// Both are immutable values that validate themselves, so aggregates can check
// them during construction with a single Validate call.
package kernel
