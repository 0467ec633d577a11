// Package order provides the Order aggregate and the lifecycle vocabulary of the
// delivery backend.
//
// The package includes:
//   - Order: the aggregate root holding route, recipient, sender snapshot, assignment and timestamps
//   - Status: the closed set of lifecycle states (Processing, InTransit, Delivered, Cancelled)
//   - StatusDefinition: an admin-configured status row mapped onto exactly one lifecycle state
//   - StatusCatalog: lookup of status rows by id and by lifecycle state
//   - Details and Patch: the writable order fields, complete and partial
//
// Lifecycle graph:
//
//	Processing ──claim──> InTransit ──> Delivered
//	     │
//	     └──cancel──> Cancelled (any cancelled variant)
//
// Staff may move an order to any status; the other edges are enforced by the
// Order methods together with the access policy in the services package.
// Aggregate methods never read the clock: callers pass now explicitly.
package order
