// Package postal adapts libpostal's statistical address parser to the
// internal tagger vocabulary. Building it requires cgo and an installed
// libpostal; the rest of the pipeline only depends on tagger.Classifier.
package postal

import (
	"fmt"

	parser "github.com/openvenues/gopostal/parser"

	"github.com/addr-canon/internal/tagger"
)

// componentLabels maps libpostal component labels onto the internal
// vocabulary. libpostal's schema is flat, so auxiliary components it
// recognizes (building names, neighborhoods, counties) land on the noise
// labels the reconciler discards.
var componentLabels = map[string]tagger.Label{
	"house_number":   tagger.AddressNumber,
	"road":           tagger.StreetName,
	"unit":           tagger.OccupancyIdentifier,
	"level":          tagger.OccupancyIdentifier,
	"staircase":      tagger.OccupancyType,
	"entrance":       tagger.OccupancyType,
	"po_box":         tagger.USPSBoxID,
	"house":          tagger.LandmarkName,
	"suburb":         tagger.LandmarkName,
	"city_district":  tagger.LandmarkName,
	"island":         tagger.LandmarkName,
	"state_district": tagger.LandmarkName,
	"city":           tagger.PlaceName,
	"state":          tagger.StateName,
	"postcode":       tagger.ZipCode,
}

// Classifier classifies address tokens with libpostal.
type Classifier struct{}

// New returns a libpostal-backed classifier.
func New() *Classifier {
	return &Classifier{}
}

// Parse runs libpostal over the cleaned text. A component label outside
// the mapping table is a hard error: silently dropping it would hide a
// vocabulary mismatch from the caller.
func (c *Classifier) Parse(text string) ([]tagger.Token, error) {
	components := parser.ParseAddress(text)
	tokens := make([]tagger.Token, 0, len(components))
	for _, component := range components {
		label, ok := componentLabels[component.Label]
		if !ok {
			return nil, fmt.Errorf("unsupported libpostal component %q for %q", component.Label, component.Value)
		}
		tokens = append(tokens, tagger.Token{Text: component.Value, Label: label})
	}
	return tokens, nil
}
