// Package sanitizer normalizes visitor input before it is stored.
//
// All functions are idempotent. They never fail; invalid input is returned
// in its closest normalized form and left for the validator to reject.
package sanitizer
