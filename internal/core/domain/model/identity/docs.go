// Package identity models who is calling the service.
//
// User and Profile mirror the records owned by the account subsystem; this
// service only reads them (and lets a user rename their own profile). Actor is
// the tagged union the rest of the domain works with: every request resolves to
// exactly one of Client, Courier, Staff or Unprofiled once, at authentication,
// and is then passed explicitly to policies and commands.
package identity
