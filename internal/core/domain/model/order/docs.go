// Package order provides domain entities and business logic for order
// management in the food delivery system. It implements the Order aggregate
// root with lifecycle management, monetary invariants, and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, totals, and lifecycle
//   - Item: An order line holding a product snapshot (unit price, quantity)
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a valid consumer and restaurant and carry at least one item
//   - total always equals subtotal plus delivery tax; subtotal is the sum of item subtotals
//   - Unit prices and the delivery address are snapshots taken at creation time
//   - Order status follows the delivery workflow starting at PENDING;
//     DELIVERED and CANCELED are terminal
//   - Cancellation is an ordinary transition through the same table, so a
//     delivered order can never be canceled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
