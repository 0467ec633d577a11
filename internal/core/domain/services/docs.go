// Package services holds the domain logic that needs more than one aggregate or
// depends on who is asking.
//
// The package includes:
//   - OrderAccessPolicy: classifies an actor's relationship to an order for reads and updates
//   - OrderLifecycle: applies an update request along the path the policy selected
//
// Both are pure: no I/O, no clock. Callers load the data and pass now.
package services
