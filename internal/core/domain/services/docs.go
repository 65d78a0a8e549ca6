// Package services provides domain services that work across aggregates of the
// order delivery system.
//
// The package includes:
//   - PricingEngine: Turns an order's pricing inputs into a delivery price breakdown
//
// Domain services are stateless and perform no I/O.
package services
