// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding owner, product snapshot, quantity,
//     delivery, status and creation time
//   - Status: the five lifecycle states and their transition guards
//   - Delivery, ProductSnapshot: value objects validated on construction
//   - RefundWindow: policy hook consulted when a refund is requested
//   - Event: domain events recorded on every change, stored through the outbox
//
// Key business rules:
//   - New orders start in PaymentPending
//   - Product name and price are copied once at creation
//   - Delivery can change only in PaymentPending or PaymentComplete
//   - Administrators may set any status unless the order is in the refund track
//   - Refunds go PaymentPending/PaymentComplete -> RefundRequested -> RefundComplete
//   - A rejected transition leaves the order unchanged
package order
