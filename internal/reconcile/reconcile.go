// Package reconcile salvages canonical fields from a token sequence the
// tagger could not fold into a unique mapping. Any label that occurs more
// than once voids its entire field; there are no partial values.
package reconcile

import (
	"fmt"

	"github.com/addr-canon/internal/tagger"
)

// streetOrder is the fixed priority in which single-occurrence street
// sub-labels are joined, regardless of their position in the input.
var streetOrder = []tagger.Label{
	tagger.StreetNamePreDirectional,
	tagger.StreetNamePreModifier,
	tagger.StreetNamePreType,
	tagger.StreetName,
	tagger.StreetNamePostType,
	tagger.StreetNamePostDirectional,
	tagger.StreetNamePostModifier,
}

var housenumberOrder = []tagger.Label{
	tagger.AddressNumberPrefix,
	tagger.AddressNumber,
	tagger.AddressNumberSuffix,
}

// Labels that pass through one-to-one when unambiguous.
var directFields = []struct {
	label tagger.Label
	field string
}{
	{tagger.OccupancyIdentifier, tagger.FieldUnit},
	{tagger.PlaceName, tagger.FieldCity},
	{tagger.StateName, tagger.FieldState},
	{tagger.ZipCode, tagger.FieldPostcode},
}

// Dedup drops exact duplicate (text, label) pairs, keeping the first
// occurrence and the original order.
func Dedup(tokens []tagger.Token) []tagger.Token {
	seen := make(map[tagger.Token]bool, len(tokens))
	out := make([]tagger.Token, 0, len(tokens))
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// MergeAdjacent collapses consecutive tokens sharing a label into one,
// joining text with a single space. Non-adjacent occurrences of the same
// label stay distinct.
func MergeAdjacent(tokens []tagger.Token) []tagger.Token {
	out := make([]tagger.Token, 0, len(tokens))
	for _, tok := range tokens {
		if n := len(out); n > 0 && out[n-1].Label == tok.Label {
			if tok.Text != "" {
				if out[n-1].Text != "" {
					out[n-1].Text += " "
				}
				out[n-1].Text += tok.Text
			}
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Join filters noise labels, drops every field touched by a repeated
// label, and assembles the rest into canonical fields. The removed list
// gains one entry per repeated label, in first-occurrence order, so a
// composite field can be named more than once.
func Join(tokens []tagger.Token) (map[string]string, []string, error) {
	counts := make(map[tagger.Label]int)
	var order []tagger.Label
	var kept []tagger.Token
	for _, tok := range tokens {
		if !tok.Label.Valid() {
			return nil, nil, fmt.Errorf("unrecognized tagger label %v", tok.Label)
		}
		if tok.Label.Noise() {
			continue
		}
		if counts[tok.Label] == 0 {
			order = append(order, tok.Label)
		}
		counts[tok.Label]++
		kept = append(kept, tok)
	}

	removed := []string{}
	for _, label := range order {
		if counts[label] > 1 {
			field, _ := label.Field()
			removed = append(removed, field)
		}
	}

	single := make(map[tagger.Label]string)
	for _, tok := range kept {
		if counts[tok.Label] == 1 {
			single[tok.Label] = tok.Text
		}
	}

	fields := make(map[string]string)
	if !contains(removed, tagger.FieldStreet) {
		if v := joinLabels(single, streetOrder); v != "" {
			fields[tagger.FieldStreet] = v
		}
	}
	if !contains(removed, tagger.FieldHousenumber) {
		if v := joinLabels(single, housenumberOrder); v != "" {
			fields[tagger.FieldHousenumber] = v
		}
	}
	for _, direct := range directFields {
		if contains(removed, direct.field) {
			continue
		}
		if v, ok := single[direct.label]; ok && v != "" {
			fields[direct.field] = v
		}
	}
	return fields, removed, nil
}

func joinLabels(single map[tagger.Label]string, order []tagger.Label) string {
	joined := ""
	for _, label := range order {
		v, ok := single[label]
		if !ok || v == "" {
			continue
		}
		if joined != "" {
			joined += " "
		}
		joined += v
	}
	return joined
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
