// Package kernel provides the shared value objects of the delivery domain.
//
// The package includes:
//   - ID: numeric identifier assigned by storage to orders, statuses, profiles and catalog rows
//   - OrderCode: the twelve-character human-facing order number
//   - UUID: identifier of outbox events
//   - RequiredText/OptionalText: trimming and length checks shared by aggregates and commands
//
// Value objects are immutable and safe for concurrent use. Their zero values are
// invalid wherever that distinction matters, and Validate reports it.
package kernel
