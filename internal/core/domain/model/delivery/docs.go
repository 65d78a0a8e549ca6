// Package delivery provides the Delivery aggregate: the priced shipment created
// for every order, together with its status.
//
// The package includes:
//   - Delivery: The aggregate root linking one order to its price breakdown and status
//   - PriceBreakdown: The persisted result of pricing, never recomputed
//   - Status: An open set of status labels with well-known values
//
// Status is deliberately permissive. Any non-empty label is accepted and there is
// no transition graph; Calculated, Shipped and Delivered are the labels the system
// itself uses.
package delivery
