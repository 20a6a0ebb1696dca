// Package services provides domain services of the order lifecycle that do not
// belong to a single aggregate method.
//
// The package includes:
//   - OwnershipGuard: hides orders from users who do not own them
package services
