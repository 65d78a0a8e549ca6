// Package kernel provides the shared domain primitives of the order delivery system.
//
// The package includes:
//   - UUID: A value object for identifiers with validation and comparison
//   - DomainEvent / BaseEvent: The contract aggregates use to record facts that the
//     unit of work later writes to the outbox
//
// Primitives are immutable and safe for concurrent reads.
package kernel
