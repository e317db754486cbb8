package pipeline

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/addr-canon/internal/tagger"
)

// scripted is a deterministic classifier keyed by cleaned input text.
type scripted map[string][]tagger.Token

func (s scripted) Parse(text string) ([]tagger.Token, error) {
	tokens, ok := s[text]
	if !ok {
		return nil, fmt.Errorf("no script for %q", text)
	}
	return tokens, nil
}

func TestAddress(t *testing.T) {
	script := scripted{
		"345 MAPLE RD, COUNTRYSIDE, PA 24680-0198": {
			{Text: "345", Label: tagger.AddressNumber},
			{Text: "MAPLE", Label: tagger.StreetName},
			{Text: "RD,", Label: tagger.StreetNamePostType},
			{Text: "COUNTRYSIDE,", Label: tagger.PlaceName},
			{Text: "PA", Label: tagger.StateName},
			{Text: "24680-0198", Label: tagger.ZipCode},
		},
		"777 Strawberry St": {
			{Text: "777", Label: tagger.AddressNumber},
			{Text: "Strawberry", Label: tagger.StreetName},
			{Text: "St", Label: tagger.StreetNamePostType},
		},
		"222 NW Pineapple Ave Suite A Unit B, Beachville, SC 75309": {
			{Text: "222", Label: tagger.AddressNumber},
			{Text: "NW", Label: tagger.StreetNamePreDirectional},
			{Text: "Pineapple", Label: tagger.StreetName},
			{Text: "Ave", Label: tagger.StreetNamePostType},
			{Text: "Suite", Label: tagger.OccupancyType},
			{Text: "A", Label: tagger.OccupancyIdentifier},
			{Text: "Unit", Label: tagger.OccupancyType},
			{Text: "B,", Label: tagger.OccupancyIdentifier},
			{Text: "Beachville,", Label: tagger.PlaceName},
			{Text: "SC", Label: tagger.StateName},
			{Text: "75309", Label: tagger.ZipCode},
		},
		"158 S. Thomas Court 30008 90210": {
			{Text: "158", Label: tagger.AddressNumber},
			{Text: "S.", Label: tagger.StreetNamePreDirectional},
			{Text: "Thomas", Label: tagger.StreetName},
			{Text: "Court", Label: tagger.StreetNamePostType},
			{Text: "30008", Label: tagger.ZipCode},
			{Text: "90210", Label: tagger.ZipCode},
		},
		"123A Oak Dr": {
			{Text: "123A", Label: tagger.AddressNumber},
			{Text: "Oak", Label: tagger.StreetName},
			{Text: "Dr", Label: tagger.StreetNamePostType},
		},
		"123B Oak Dr Apt C": {
			{Text: "123B", Label: tagger.AddressNumber},
			{Text: "Oak", Label: tagger.StreetName},
			{Text: "Dr", Label: tagger.StreetNamePostType},
			{Text: "Apt", Label: tagger.OccupancyType},
			{Text: "C", Label: tagger.OccupancyIdentifier},
		},
		"123-45 Oak Dr": {
			{Text: "123-45", Label: tagger.AddressNumber},
			{Text: "Oak", Label: tagger.StreetName},
			{Text: "Dr", Label: tagger.StreetNamePostType},
		},
		"400 Elm Ave Space 4": {
			{Text: "400", Label: tagger.AddressNumber},
			{Text: "Elm", Label: tagger.StreetName},
			{Text: "Ave", Label: tagger.StreetNamePostType},
			{Text: "Space 4", Label: tagger.OccupancyIdentifier},
		},
		"N65W25055 Indian Rd": {
			{Text: "N65W25055", Label: tagger.AddressNumber},
			{Text: "Indian", Label: tagger.StreetName},
			{Text: "Rd", Label: tagger.StreetNamePostType},
		},
		"500 Birch Ln Springfield Massachusetts": {
			{Text: "500", Label: tagger.AddressNumber},
			{Text: "Birch", Label: tagger.StreetName},
			{Text: "Ln", Label: tagger.StreetNamePostType},
			{Text: "Springfield", Label: tagger.PlaceName},
			{Text: "Massachusetts", Label: tagger.StateName},
		},
		"Main St Boise and Elm St": {
			{Text: "Main", Label: tagger.StreetName},
			{Text: "St", Label: tagger.StreetNamePostType},
			{Text: "Boise", Label: tagger.PlaceName},
			{Text: "and", Label: tagger.IntersectionSeparator},
			{Text: "Elm", Label: tagger.StreetName},
			{Text: "St", Label: tagger.StreetNamePostType},
		},
	}

	tests := []struct {
		name    string
		raw     string
		fields  map[string]string
		removed []string
	}{
		{
			name: "full uppercase address",
			raw:  "345 MAPLE RD, COUNTRYSIDE, PA 24680-0198",
			fields: map[string]string{
				"addr:housenumber": "345",
				"addr:street":      "Maple Road",
				"addr:city":        "Countryside",
				"addr:state":       "PA",
				"addr:postcode":    "24680-0198",
			},
			removed: []string{},
		},
		{
			name: "street only with trailing period",
			raw:  "777 Strawberry St.",
			fields: map[string]string{
				"addr:housenumber": "777",
				"addr:street":      "Strawberry Street",
			},
			removed: []string{},
		},
		{
			name: "two units void the unit field",
			raw:  "222 NW Pineapple Ave Suite A Unit B, Beachville, SC 75309",
			fields: map[string]string{
				"addr:housenumber": "222",
				"addr:street":      "Northwest Pineapple Avenue",
				"addr:city":        "Beachville",
				"addr:state":       "SC",
				"addr:postcode":    "75309",
			},
			removed: []string{"addr:unit"},
		},
		{
			name: "two postcodes merge then fail validation",
			raw:  "158 S. Thomas Court 30008 90210",
			fields: map[string]string{
				"addr:housenumber": "158",
				"addr:street":      "South Thomas Court",
			},
			removed: []string{"addr:postcode"},
		},
		{
			name: "housenumber letter suffix becomes the unit",
			raw:  "123A Oak Dr",
			fields: map[string]string{
				"addr:housenumber": "123",
				"addr:street":      "Oak Drive",
				"addr:unit":        "A",
			},
			removed: []string{},
		},
		{
			name: "split unit conflicting with tagged unit",
			raw:  "123B Oak Dr Apt C",
			fields: map[string]string{
				"addr:housenumber": "123",
				"addr:street":      "Oak Drive",
			},
			removed: []string{"addr:unit"},
		},
		{
			name: "ranged housenumber stays whole",
			raw:  "123-45 Oak Dr",
			fields: map[string]string{
				"addr:housenumber": "123-45",
				"addr:street":      "Oak Drive",
			},
			removed: []string{},
		},
		{
			name: "space prefix stripped from unit",
			raw:  "400 Elm Ave Space 4",
			fields: map[string]string{
				"addr:housenumber": "400",
				"addr:street":      "Elm Avenue",
				"addr:unit":        "4",
			},
			removed: []string{},
		},
		{
			name: "grid housenumber survives intact",
			raw:  "n65w25055 Indian Rd",
			fields: map[string]string{
				"addr:housenumber": "N65W25055",
				"addr:street":      "Indian Road",
			},
			removed: []string{},
		},
		{
			name: "state name canonicalized to its code",
			raw:  "500 Birch Ln Springfield Massachusetts",
			fields: map[string]string{
				"addr:housenumber": "500",
				"addr:street":      "Birch Lane",
				"addr:city":        "Springfield",
				"addr:state":       "MA",
			},
			removed: []string{},
		},
		{
			name: "intersection keeps only the unambiguous fields",
			raw:  "Main St Boise and Elm St",
			fields: map[string]string{
				"addr:city": "Boise",
			},
			removed: []string{"addr:street"},
		},
	}

	p := New(script)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, removed, err := p.Address(tt.raw)
			if err != nil {
				t.Fatalf("Address failed: %v", err)
			}
			if !reflect.DeepEqual(fields, tt.fields) {
				t.Errorf("fields = %v, want %v", fields, tt.fields)
			}
			if !reflect.DeepEqual(removed, tt.removed) {
				t.Errorf("removed = %v, want %v", removed, tt.removed)
			}
		})
	}
}

func TestAddressClassifierError(t *testing.T) {
	p := New(scripted{})
	if _, _, err := p.Address("anything at all"); err == nil {
		t.Error("classifier failure did not surface")
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(202) 900-9019", "+1 202-900-9019"},
		{"202-900-9019", "+1 202-900-9019"},
		{"202 900 9019", "+1 202-900-9019"},
		{"202.900.9019", "+1 202-900-9019"},
		{"2029009019", "+1 202-900-9019"},
		{"+1 202-900-9019", "+1 202-900-9019"},
		{"1 (202) 900-9019", "+1 202-900-9019"},
	}

	for _, tt := range tests {
		got, err := FormatPhone(tt.in)
		if err != nil {
			t.Errorf("FormatPhone(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPhoneInvalid(t *testing.T) {
	inputs := []string{
		"202-900-901",
		"202-900-90199",
		"+44 20 7946 0958",
		"not a number",
		"",
	}

	for _, in := range inputs {
		_, err := FormatPhone(in)
		var invalid *InvalidPhoneError
		if !errors.As(err, &invalid) {
			t.Errorf("FormatPhone(%q) error = %v, want InvalidPhoneError", in, err)
			continue
		}
		if invalid.Input != in {
			t.Errorf("error input = %q, want %q", invalid.Input, in)
		}
	}
}
