// Package validation contains the logic for validating
// request data.
//
// It provides an ordered rule-set builder for record validators,
// predicate helpers (email syntax through the `validator` library,
// phone pattern, ranges, calendar arithmetic) and the bind-then-validate
// step used by every handler.
package validation
