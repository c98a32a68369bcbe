package planner

import (
	"sort"
	"testing"
)

func TestTagsFromForm(t *testing.T) {
	tests := []struct {
		name string
		form map[string]interface{}
		want []string
	}{
		{"nil form", nil, nil},
		{"empty form defaults to home", map[string]interface{}{}, []string{"home"}},
		{
			"no equipment at home",
			map[string]interface{}{"equipment": "none", "location": "home"},
			[]string{"home", "sin_equipo"},
		},
		{
			"gym suppresses home default",
			map[string]interface{}{"equipment": "gym"},
			[]string{"gimnasio"},
		},
		{
			"plan time becomes slot tag",
			map[string]interface{}{"planTime": "manana"},
			[]string{"home", "manana"},
		},
		{
			"kitchen and accounts",
			map[string]interface{}{"cocina": true, "accounts": "gmail"},
			[]string{"cocina", "email", "home"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TagsFromForm(tc.form)
			sort.Strings(got)
			want := append([]string(nil), tc.want...)
			sort.Strings(want)
			if len(got) != len(want) {
				t.Fatalf("TagsFromForm = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("TagsFromForm = %v, want %v", got, want)
				}
			}
		})
	}
}

func TestTagsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		template []string
		user     []string
		want     bool
	}{
		{"untagged template is universal", nil, []string{"home"}, true},
		{"no user tags accepts everything", []string{"gimnasio"}, nil, true},
		{"shared tag", []string{"home", "cocina"}, []string{"home"}, true},
		{"disjoint", []string{"gimnasio"}, []string{"home", "sin_equipo"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TagsOverlap(tc.template, tc.user); got != tc.want {
				t.Fatalf("TagsOverlap(%v, %v) = %v, want %v", tc.template, tc.user, got, tc.want)
			}
		})
	}
}
