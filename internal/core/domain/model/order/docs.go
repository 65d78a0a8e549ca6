// Package order provides the Order aggregate of the delivery system.
//
// The package includes:
//   - Order: The aggregate root holding the client, order date, delivery type and
//     the measurements and rates used for pricing
//   - DeliveryType: The standard / urgent value object
//   - PricingInputs: The projection of an order consumed by the pricing engine
//
// Key business rules:
//   - Orders reference a client and carry a calendar date
//   - Distance, weight and both rates are strictly positive
//   - Orders are immutable once created and are never deleted
package order
