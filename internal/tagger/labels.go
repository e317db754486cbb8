package tagger

import "fmt"

// Label is one entry in the tagger's internal vocabulary. The set is
// closed: a classifier must only ever emit these values.
type Label int

const (
	AddressNumber Label = iota
	AddressNumberPrefix
	AddressNumberSuffix
	StreetName
	StreetNamePreDirectional
	StreetNamePreModifier
	StreetNamePreType
	StreetNamePostDirectional
	StreetNamePostModifier
	StreetNamePostType
	OccupancyIdentifier
	OccupancyType
	PlaceName
	StateName
	ZipCode
	Recipient
	IntersectionSeparator
	LandmarkName
	USPSBoxGroupID
	USPSBoxGroupType
	USPSBoxID
	USPSBoxType
)

// Canonical field keys produced by the pipeline.
const (
	FieldHousenumber = "addr:housenumber"
	FieldStreet      = "addr:street"
	FieldUnit        = "addr:unit"
	FieldCity        = "addr:city"
	FieldState       = "addr:state"
	FieldPostcode    = "addr:postcode"
)

var labelNames = map[Label]string{
	AddressNumber:             "AddressNumber",
	AddressNumberPrefix:       "AddressNumberPrefix",
	AddressNumberSuffix:       "AddressNumberSuffix",
	StreetName:                "StreetName",
	StreetNamePreDirectional:  "StreetNamePreDirectional",
	StreetNamePreModifier:     "StreetNamePreModifier",
	StreetNamePreType:         "StreetNamePreType",
	StreetNamePostDirectional: "StreetNamePostDirectional",
	StreetNamePostModifier:    "StreetNamePostModifier",
	StreetNamePostType:        "StreetNamePostType",
	OccupancyIdentifier:       "OccupancyIdentifier",
	OccupancyType:             "OccupancyType",
	PlaceName:                 "PlaceName",
	StateName:                 "StateName",
	ZipCode:                   "ZipCode",
	Recipient:                 "Recipient",
	IntersectionSeparator:     "IntersectionSeparator",
	LandmarkName:              "LandmarkName",
	USPSBoxGroupID:            "USPSBoxGroupID",
	USPSBoxGroupType:          "USPSBoxGroupType",
	USPSBoxID:                 "USPSBoxID",
	USPSBoxType:               "USPSBoxType",
}

// fieldMapping maps labels to the canonical field key they contribute to.
// Labels absent from this table are noise: they never reach the output.
var fieldMapping = map[Label]string{
	AddressNumber:             FieldHousenumber,
	AddressNumberPrefix:       FieldHousenumber,
	AddressNumberSuffix:       FieldHousenumber,
	StreetName:                FieldStreet,
	StreetNamePreDirectional:  FieldStreet,
	StreetNamePreModifier:     FieldStreet,
	StreetNamePreType:         FieldStreet,
	StreetNamePostDirectional: FieldStreet,
	StreetNamePostModifier:    FieldStreet,
	StreetNamePostType:        FieldStreet,
	OccupancyIdentifier:       FieldUnit,
	PlaceName:                 FieldCity,
	StateName:                 FieldState,
	ZipCode:                   FieldPostcode,
}

// String returns the label's name in the tagger vocabulary.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// Field returns the canonical field key the label maps to, or false for
// noise labels.
func (l Label) Field() (string, bool) {
	field, ok := fieldMapping[l]
	return field, ok
}

// Noise reports whether the label is discarded outright during
// reconciliation (recipient names, landmarks, PO-box sub-fields,
// occupancy-type qualifiers, intersection separators).
func (l Label) Noise() bool {
	if !l.Valid() {
		return false
	}
	_, mapped := fieldMapping[l]
	return !mapped
}

// Valid reports whether the value is part of the closed vocabulary.
func (l Label) Valid() bool {
	_, ok := labelNames[l]
	return ok
}

// ParseLabel resolves a vocabulary name back to its Label. Unknown names
// are a hard error, never silently dropped.
func ParseLabel(name string) (Label, error) {
	for label, n := range labelNames {
		if n == name {
			return label, nil
		}
	}
	return 0, fmt.Errorf("unrecognized tagger label %q", name)
}
