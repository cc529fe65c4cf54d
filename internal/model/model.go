// Package model holds the request-scoped records decoded from JSON bodies.
//
// Records carry no identity and are never persisted: they are decoded,
// validated, echoed back and discarded.
package model
