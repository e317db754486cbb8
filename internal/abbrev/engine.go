// Package abbrev normalizes casing and expands abbreviations in street
// and city values through a fixed, ordered cascade of rewrite passes.
package abbrev

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	mcPattern    = regexp.MustCompile(`\bMc([a-z])`)
	ordPattern   = regexp.MustCompile(`\b\d+[SNRT][tTdDhH]\b`)
	saintPattern = regexp.MustCompile(`\bSt\b\.?\s+([A-Za-z][A-Za-z']*)`)
	usPattern    = regexp.MustCompile(`\bU.[Ss].\B`)
	shortPattern = regexp.MustCompile(`\b(C[rh]|S[rh]|[FR]m|Us)\b\.?`)
	dotPattern   = regexp.MustCompile(`([a-zA-Z]{2,})\.`)
	dirPattern   = regexp.MustCompile(`(?i)\b([NSEW][EW]?)\b\.?`)
	srPattern    = regexp.MustCompile(`\bSR\b\.?`)
)

// pass is one rewrite step. The order of passes is load-bearing: each one
// assumes the text shape its predecessors leave behind.
type pass struct {
	name  string
	apply func(st *passState, value string) string
}

type passState struct {
	// set when the word-expansion pass produced a street-type word, which
	// suppresses the later SR expansion.
	streetType bool
}

// Engine applies the rewrite cascade to one field value at a time. It
// holds no per-call state and is safe for concurrent use.
type Engine struct {
	passes []pass
}

// New builds the engine with its passes in canonical order.
func New() *Engine {
	return &Engine{passes: []pass{
		{"title", func(_ *passState, v string) string { return Title(v, false) }},
		{"mc", func(_ *passState, v string) string { return mcReplace(v) }},
		{"us", func(_ *passState, v string) string { return usReplace(v) }},
		{"ordinal", func(_ *passState, v string) string { return ordReplace(v) }},
		{"saint", func(_ *passState, v string) string { return saintReplace(v) }},
		{"words", expandWords},
		{"directions", func(_ *passState, v string) string { return expandDirections(v) }},
		{"us-fixup", func(_ *passState, v string) string { return usPattern.ReplaceAllString(v, "US") }},
		{"acronyms", func(_ *passState, v string) string { return upperShort(v) }},
		{"periods", func(_ *passState, v string) string { return dotPattern.ReplaceAllString(v, "$1") }},
		{"state-route", expandSR},
		{"trim", func(_ *passState, v string) string { return strings.Trim(v, " .") }},
	}}
}

// Expand runs the full cascade over one value. Unknown tokens pass
// through unchanged; the result is stable under re-application.
func (e *Engine) Expand(value string) string {
	st := &passState{}
	for _, p := range e.passes {
		value = p.apply(st, value)
	}
	return value
}

// Title fixes an ALL-CAPS value. A lone all-caps word is left alone
// unless singleWord is set; city names opt in, street values do not.
func Title(value string, singleWord bool) string {
	if !isUpper(value) {
		return value
	}
	if !singleWord && !strings.Contains(value, " ") {
		return value
	}
	return mcReplace(cases.Title(language.AmericanEnglish).String(value))
}

// isUpper reports whether the value has at least one cased rune and none
// of them lower case.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// mcReplace capitalizes the letter following a Mc surname prefix.
func mcReplace(value string) string {
	return mcPattern.ReplaceAllStringFunc(value, func(m string) string {
		return "Mc" + strings.ToUpper(m[len(m)-1:])
	})
}

// usReplace collapses punctuated U.S. variants.
func usReplace(value string) string {
	value = strings.ReplaceAll(value, "U.S.", "US")
	value = strings.ReplaceAll(value, "U. S.", "US")
	return strings.ReplaceAll(value, "U S ", "US ")
}

// ordReplace lower-cases a miscapitalized ordinal suffix after a number,
// 4Th to 4th.
func ordReplace(value string) string {
	return ordPattern.ReplaceAllStringFunc(value, strings.ToLower)
}

// saintReplace expands St before a capitalized word to Saint, unless the
// word is itself a known abbreviation (E St. Blvd stays a street).
func saintReplace(value string) string {
	return saintPattern.ReplaceAllStringFunc(value, func(m string) string {
		sub := saintPattern.FindStringSubmatch(m)
		word := sub[1]
		first := rune(word[0])
		if !unicode.IsUpper(first) {
			return m
		}
		if _, known := combinedExpand[strings.ToUpper(word)]; known {
			return m
		}
		return "Saint " + word
	})
}

// expandWords rewrites street-type and general-word abbreviations to
// their title-cased full forms, whole words only, case-insensitively.
func expandWords(st *passState, value string) string {
	return abbrPattern.ReplaceAllStringFunc(value, func(m string) string {
		key := strings.ToUpper(strings.TrimSuffix(m, "."))
		full, ok := combinedExpand[key]
		if !ok {
			return m
		}
		if _, street := streetExpand[key]; street {
			st.streetType = true
		}
		return titleWord(full)
	})
}

// expandDirections rewrites directional abbreviations, skipping a
// directional that sits directly before a street-type word: in E Street
// the E is the street name.
func expandDirections(value string) string {
	matches := dirPattern.FindAllStringSubmatchIndex(value, -1)
	if matches == nil {
		return value
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		letters := value[m[2]:m[3]]
		full, ok := directionExpand[strings.ToUpper(letters)]
		if !ok || streetWords[strings.ToUpper(nextWord(value, end))] {
			continue
		}
		b.WriteString(value[last:start])
		b.WriteString(titleWord(full))
		last = end
	}
	b.WriteString(value[last:])
	return b.String()
}

// nextWord returns the letter run following position i, skipping spaces.
func nextWord(s string, i int) string {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	start := i
	for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] >= 'A' && s[i] <= 'Z') {
		i++
	}
	return s[start:i]
}

// upperShort restores short tokens that stay acronym-like after
// expansion (county/state road descriptors and US).
func upperShort(value string) string {
	return shortPattern.ReplaceAllStringFunc(value, func(m string) string {
		return strings.ToUpper(strings.TrimSuffix(m, "."))
	})
}

// expandSR expands a leftover SR to State Route, but not when the value
// already carries a street-type word, expanded or otherwise.
func expandSR(st *passState, value string) string {
	if st.streetType || containsStreetWord(value) {
		return value
	}
	return srPattern.ReplaceAllString(value, "State Route")
}

func containsStreetWord(value string) bool {
	start := -1
	for i := 0; i <= len(value); i++ {
		letter := i < len(value) && (value[i] >= 'a' && value[i] <= 'z' || value[i] >= 'A' && value[i] <= 'Z')
		if letter && start < 0 {
			start = i
		}
		if !letter && start >= 0 {
			if streetWords[strings.ToUpper(value[start:i])] {
				return true
			}
			start = -1
		}
	}
	return false
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
