// Package timezone centralizes clock access in the configured restaurant
// timezone. Today's chef special and reservation dates are interpreted in
// this location, not in server-local time.
package timezone
