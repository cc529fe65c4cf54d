// Package handler is the first layer after the router.
//
// It binds requests into records, runs the injected validator
// and writes either the echoed record or lets the global error
// handler report the violations.
package handler
