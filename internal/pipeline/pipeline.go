// Package pipeline converts free-form US/Canada address text into
// canonical addr:* fields: cleaning, tagging, reconciliation of
// ambiguous tagger output, abbreviation expansion, per-field
// finalization, and schema validation.
package pipeline

import (
	"errors"
	"strings"

	"github.com/addr-canon/internal/abbrev"
	"github.com/addr-canon/internal/cleaner"
	"github.com/addr-canon/internal/debug"
	"github.com/addr-canon/internal/reconcile"
	"github.com/addr-canon/internal/tagger"
	"github.com/addr-canon/internal/validate"
)

// Pipeline processes address strings with a pluggable classifier. All
// lookup tables are immutable, so one Pipeline may be shared across
// goroutines.
type Pipeline struct {
	classifier tagger.Classifier
	engine     *abbrev.Engine
	debug      bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDebug enables trace logging of intermediate pipeline stages.
func WithDebug(enabled bool) Option {
	return func(p *Pipeline) { p.debug = enabled }
}

// New builds a Pipeline around the given classifier.
func New(c tagger.Classifier, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: c,
		engine:     abbrev.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Address processes one raw address string. It returns the canonical
// field map and the ordered list of removed field keys; the list may
// name a field twice when it is dropped for two distinct reasons.
// Malformed or partial input never fails — only a classifier contract
// violation surfaces as an error.
func (p *Pipeline) Address(raw string) (map[string]string, []string, error) {
	defer debug.Timing(p.debug, "address")()

	text := cleaner.Clean(raw)
	debug.Output(p.debug, "cleaned: %q", text)

	fields, err := tagger.Tag(p.classifier, text)
	removed := []string{}
	if err != nil {
		var ambiguous *tagger.AmbiguousError
		if !errors.As(err, &ambiguous) {
			return nil, nil, err
		}
		debug.Output(p.debug, "ambiguous tagging, reconciling: %v", ambiguous)
		tokens := trimTokens(ambiguous.Tokens)
		merged := reconcile.MergeAdjacent(reconcile.Dedup(tokens))
		fields, removed, err = reconcile.Join(merged)
		if err != nil {
			return nil, nil, err
		}
	}
	debug.Output(p.debug, "tagged fields: %v removed: %v", fields, removed)

	removed = p.finalizeFields(fields, removed)
	fields, removed = validate.Apply(fields, removed)
	debug.Output(p.debug, "final fields: %v removed: %v", fields, removed)
	return fields, removed, nil
}

// trimTokens strips edge punctuation the tagger leaves on raw tokens.
func trimTokens(tokens []tagger.Token) []tagger.Token {
	out := make([]tagger.Token, len(tokens))
	for i, tok := range tokens {
		out[i] = tagger.Token{Text: strings.Trim(tok.Text, " .,#"), Label: tok.Label}
	}
	return out
}
