package service

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "whitespace only", raw: "  \n ", want: nil},
		{name: "json array", raw: `["Fast payouts", "VIP program"]`, want: []string{"Fast payouts", "VIP program"}},
		{name: "json array with blanks", raw: `["Fast payouts", "", "  "]`, want: []string{"Fast payouts"}},
		{name: "newline delimited", raw: "Fast payouts\nBig selection\n", want: []string{"Fast payouts", "Big selection"}},
		{name: "semicolon delimited", raw: "No live chat; Few payment methods", want: []string{"No live chat", "Few payment methods"}},
		{name: "newline wins over semicolon", raw: "One\nTwo; Three", want: []string{"One", "Two; Three"}},
		{name: "malformed json falls back", raw: `["broken`, want: []string{`["broken`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitList(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}
