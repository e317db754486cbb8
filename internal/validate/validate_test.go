package validate

import (
	"reflect"
	"testing"

	"github.com/addr-canon/internal/tagger"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		want    map[string]string
		removed []string
	}{
		{
			name: "all valid",
			fields: map[string]string{
				tagger.FieldHousenumber: "123",
				tagger.FieldStreet:      "Main Street",
				tagger.FieldCity:        "Boston",
				tagger.FieldState:       "MA",
				tagger.FieldPostcode:    "02108",
			},
			want: map[string]string{
				tagger.FieldHousenumber: "123",
				tagger.FieldStreet:      "Main Street",
				tagger.FieldCity:        "Boston",
				tagger.FieldState:       "MA",
				tagger.FieldPostcode:    "02108",
			},
			removed: []string{},
		},
		{
			name:    "zip plus four accepted",
			fields:  map[string]string{tagger.FieldPostcode: "24680-0198"},
			want:    map[string]string{tagger.FieldPostcode: "24680-0198"},
			removed: []string{},
		},
		{
			name:    "unrecognized state dropped",
			fields:  map[string]string{tagger.FieldState: "Massachusetts"},
			want:    map[string]string{},
			removed: []string{tagger.FieldState},
		},
		{
			name:    "lowercase state dropped",
			fields:  map[string]string{tagger.FieldState: "ma"},
			want:    map[string]string{},
			removed: []string{tagger.FieldState},
		},
		{
			name:    "short postcode dropped",
			fields:  map[string]string{tagger.FieldPostcode: "0210"},
			want:    map[string]string{},
			removed: []string{tagger.FieldPostcode},
		},
		{
			name:    "postcode with trailing text dropped",
			fields:  map[string]string{tagger.FieldPostcode: "02108 USA"},
			want:    map[string]string{},
			removed: []string{tagger.FieldPostcode},
		},
		{
			name: "empty value dropped even without a pattern",
			fields: map[string]string{
				tagger.FieldStreet: "",
				tagger.FieldCity:   "Boston",
			},
			want:    map[string]string{tagger.FieldCity: "Boston"},
			removed: []string{tagger.FieldStreet},
		},
		{
			name: "removals appended in field order",
			fields: map[string]string{
				tagger.FieldState:    "XYZ",
				tagger.FieldUnit:     "",
				tagger.FieldPostcode: "1",
			},
			want:    map[string]string{},
			removed: []string{tagger.FieldUnit, tagger.FieldState, tagger.FieldPostcode},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, removed := Apply(tt.fields, []string{})
			if !reflect.DeepEqual(fields, tt.want) {
				t.Errorf("fields = %v, want %v", fields, tt.want)
			}
			if !reflect.DeepEqual(removed, tt.removed) {
				t.Errorf("removed = %v, want %v", removed, tt.removed)
			}
		})
	}
}

func TestApplyExtendsRemoved(t *testing.T) {
	fields := map[string]string{tagger.FieldState: "invalid"}
	_, removed := Apply(fields, []string{tagger.FieldHousenumber})
	want := []string{tagger.FieldHousenumber, tagger.FieldState}
	if !reflect.DeepEqual(removed, want) {
		t.Errorf("removed = %v, want %v", removed, want)
	}
}
