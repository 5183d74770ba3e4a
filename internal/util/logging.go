// Package util holds the small helpers shared across the timer packages:
// error logging, XDG locations, duration formatting and profile search.
package util

import "log"

// LogError records a non-nil error with the operation that produced it.
// Failures that the user can retry are logged rather than returned.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	log.Printf("%s: %v", context, err)
}
