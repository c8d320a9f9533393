package normalize

import "testing"

func TestUppercased(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"EXECUTIVE SUMMARY", true},
		{"PLAN 2024", true},
		{"Executive Summary", false},
		{"2024", false},
		{"", false},
		{"A", true},
	}
	for _, c := range cases {
		if got := Uppercased(c.in); got != c.want {
			t.Errorf("Uppercased(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTitleCased(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Executive Summary", true},
		{"Project Plan 2024", true},
		{"executive summary", false},
		{"EXECUTIVE", false},
		{"Executive summary", false},
		{"", false},
		{"123", false},
	}
	for _, c := range cases {
		if got := TitleCased(c.in); got != c.want {
			t.Errorf("TitleCased(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
