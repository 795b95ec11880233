// Package domain defines the core business types for the author registry.
//
// Types in this package are pure value objects with no behavior beyond
// construction-time validation, no database dependencies, and no HTTP
// concerns. They are the shared language between handlers, services, and
// repositories.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - Validation lives in constructors so downstream code never re-validates
package domain
