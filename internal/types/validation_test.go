package types

import (
	"reflect"
	"testing"
)

func TestFilterIngredients(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"trims and keeps order", []string{"Oats", "  Honey  "}, []string{"Oats", "Honey"}},
		{"drops blanks", []string{"", "  ", "Salt"}, []string{"Salt"}},
		{"all blank yields placeholder", []string{"", "   "}, []string{""}},
		{"nil yields placeholder", nil, []string{""}},
		{"placeholder is idempotent", []string{""}, []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterIngredients(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("FilterIngredients(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
