// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates.
//
// The package includes:
//   - PricingService: prices order lines against a restaurant's catalog
//   - AccessPolicy: the single role/ownership decision point for every
//     protected operation
//   - DeliveryZoneTable: maps postal-code prefixes to distance zones and
//     computes the resulting delivery tax
//
// Domain services here are pure: they hold no mutable state, perform no
// I/O, and are independently testable without any web framework or
// database.
package services
