// Package validate enforces the per-field output schema. A field that
// fails its pattern is dropped and reported, never rewritten.
package validate

import (
	"regexp"

	"github.com/addr-canon/internal/tagger"
)

// fieldPatterns holds the accept pattern per canonical field. Fields
// without an entry accept any non-empty text.
var fieldPatterns = map[string]*regexp.Regexp{
	tagger.FieldState:    regexp.MustCompile(`^[A-Z]{2}$`),
	tagger.FieldPostcode: regexp.MustCompile(`^\d{5}(?:-\d{4})?$`),
}

// fieldOrder keeps the removed list deterministic.
var fieldOrder = []string{
	tagger.FieldHousenumber,
	tagger.FieldStreet,
	tagger.FieldUnit,
	tagger.FieldCity,
	tagger.FieldState,
	tagger.FieldPostcode,
}

// Apply drops fields that fail their pattern, extending the removed
// list. No field's validity depends on another's presence.
func Apply(fields map[string]string, removed []string) (map[string]string, []string) {
	for _, field := range fieldOrder {
		value, ok := fields[field]
		if !ok {
			continue
		}
		if value == "" {
			delete(fields, field)
			removed = append(removed, field)
			continue
		}
		pattern, ok := fieldPatterns[field]
		if ok && !pattern.MatchString(value) {
			delete(fields, field)
			removed = append(removed, field)
		}
	}
	return fields, removed
}
