// Package service contains the business logic.
//
// It sits behind the handler layer and holds the record validators: the
// field and cross-field rules applied to Employee and Staff payloads.
package service
