// Package formatchecker validates the one "format" value this engine
// assigns validation-affecting meaning to: "date-time". All other format
// names are a Non-goal here and are reported to the diagnostic sink by the
// caller instead of being checked.
package formatchecker

import "time"

// IsValidDateTime returns nil if dateTime conforms to RFC 3339 section
// 5.6, the subset of ISO-8601 JSON Schema's "date-time" format names, and
// the parse error otherwise.
func IsValidDateTime(dateTime string) error {
	_, err := time.Parse(time.RFC3339, dateTime)
	return err
}
