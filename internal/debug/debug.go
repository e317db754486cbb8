// Package debug provides conditional trace logging for the pipeline.
package debug

import (
	"fmt"
	"log"
	"time"
)

// Output logs a trace line when debugging is enabled.
func Output(enabled bool, format string, args ...interface{}) {
	if enabled {
		log.Printf("[trace] %s", fmt.Sprintf(format, args...))
	}
}

// Timing measures and logs the duration of an operation when debugging
// is enabled. Use as: defer debug.Timing(enabled, "tagging")().
func Timing(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		log.Printf("[trace] %s took %v", operation, time.Since(start))
	}
}
