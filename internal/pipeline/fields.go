package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/addr-canon/internal/abbrev"
	"github.com/addr-canon/internal/tagger"
)

var (
	leadingDigits = regexp.MustCompile(`^\d+`)
	bareSt        = regexp.MustCompile(`\bSt\b\.?`)
	zeroPlus4     = regexp.MustCompile(`^(\d{5})-0000$`)
)

// finalizeFields runs the per-field processors in place and returns the
// extended removed list.
func (p *Pipeline) finalizeFields(fields map[string]string, removed []string) []string {
	removed = splitHousenumber(fields, removed)

	if v, ok := fields[tagger.FieldStreet]; ok {
		street := p.engine.Expand(v)
		street = bareSt.ReplaceAllString(street, "Street")
		fields[tagger.FieldStreet] = strings.Trim(street, ".")
	}
	if v, ok := fields[tagger.FieldCity]; ok {
		fields[tagger.FieldCity] = p.engine.Expand(abbrev.Title(v, true))
	}
	if v, ok := fields[tagger.FieldState]; ok {
		fields[tagger.FieldState] = abbrev.CanonicalState(v)
	}
	if v, ok := fields[tagger.FieldUnit]; ok {
		fields[tagger.FieldUnit] = strings.Trim(strings.TrimPrefix(v, "Space"), " #.")
	}
	if v, ok := fields[tagger.FieldPostcode]; ok {
		postcode := zeroPlus4.ReplaceAllString(v, "$1")
		fields[tagger.FieldPostcode] = strings.ReplaceAll(postcode, " ", "-")
	}
	return removed
}

// splitHousenumber splits a mixed housenumber at the digit boundary:
// digits stay, a letter remainder becomes the unit. A remainder that is
// not letter-led (123-45) is a ranged number and stays whole. A split
// unit that conflicts with an existing unit voids the unit field.
func splitHousenumber(fields map[string]string, removed []string) []string {
	value, ok := fields[tagger.FieldHousenumber]
	if !ok {
		return removed
	}
	value = strings.TrimSpace(value)
	digits := leadingDigits.FindString(value)
	if digits == "" {
		return removed
	}
	rest := strings.TrimLeft(value[len(digits):], " -,/")
	if rest == "" {
		fields[tagger.FieldHousenumber] = digits
		return removed
	}
	if !unicode.IsLetter(rune(rest[0])) {
		fields[tagger.FieldHousenumber] = value
		return removed
	}

	fields[tagger.FieldHousenumber] = digits
	unit := strings.ToUpper(rest)
	existing, ok := fields[tagger.FieldUnit]
	switch {
	case !ok:
		fields[tagger.FieldUnit] = unit
	case existing != unit:
		delete(fields, tagger.FieldUnit)
		removed = append(removed, tagger.FieldUnit)
	}
	return removed
}
