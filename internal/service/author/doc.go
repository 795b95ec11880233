// Package author implements author registration.
//
// The service layer contains all business logic for creating authors. It
// depends on the Repository, Metrics, and Notifier interfaces defined in this
// package and should never import from api/.
//
// Repository implementations live in repository/postgres/ and
// repository/memory/. Metrics and Notifier adapters live in metrics/ and
// notify/.
package author
