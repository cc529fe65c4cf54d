// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. ValidationErrors for record rules or HTTPError for API responses)
// to ensure the client receives meaningful, actionable, and consistent
// error messages.
package errs
