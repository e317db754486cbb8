package tagger

import (
	"fmt"
	"strings"
)

// Token is one classified token of a cleaned address string.
type Token struct {
	Text  string
	Label Label
}

// Classifier is the external tagger boundary. Implementations classify
// the tokens of a cleaned address string into the internal vocabulary,
// in original order. Parse errors are contract violations (for example
// an input the classifier cannot tokenize), not ambiguity.
type Classifier interface {
	Parse(text string) ([]Token, error)
}

// AmbiguousError is returned by Resolve when the token sequence does not
// collapse to a unique field mapping. It carries the raw ordered token
// sequence so the reconciler can salvage the unambiguous fields.
type AmbiguousError struct {
	Repeated string
	Tokens   []Token
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous tagging: %s appears more than once", e.Repeated)
}

// Tag classifies the text and folds the tokens into canonical fields.
func Tag(c Classifier, text string) (map[string]string, error) {
	tokens, err := c.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("classify %q: %w", text, err)
	}
	return Resolve(tokens)
}

// Resolve merges adjacent tokens that feed the same canonical field and
// builds the field map. A field (or an unmapped label) fed by two
// non-adjacent runs has no unique value; Resolve then fails with
// AmbiguousError instead of guessing.
func Resolve(tokens []Token) (map[string]string, error) {
	type run struct {
		key    string
		field  string
		mapped bool
		value  string
	}
	var runs []run
	for _, tok := range tokens {
		if !tok.Label.Valid() {
			return nil, fmt.Errorf("unrecognized tagger label %v", tok.Label)
		}
		field, mapped := tok.Label.Field()
		key := tok.Label.String()
		if mapped {
			key = field
		}
		text := strings.Trim(tok.Text, " ,;")
		if n := len(runs); n > 0 && runs[n-1].key == key {
			if text != "" {
				if runs[n-1].value != "" {
					runs[n-1].value += " "
				}
				runs[n-1].value += text
			}
			continue
		}
		runs = append(runs, run{key: key, field: field, mapped: mapped, value: text})
	}

	seen := make(map[string]bool, len(runs))
	for _, r := range runs {
		if seen[r.key] {
			return nil, &AmbiguousError{Repeated: r.key, Tokens: tokens}
		}
		seen[r.key] = true
	}

	fields := make(map[string]string)
	for _, r := range runs {
		if !r.mapped || r.value == "" {
			continue
		}
		fields[r.field] = r.value
	}
	return fields, nil
}
