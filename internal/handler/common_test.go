package handler

import "testing"

func TestFirstUnexpectedParam(t *testing.T) {
	cases := []struct {
		name     string
		rawQuery string
		allowed  []string
		wantKey  string
		wantHit  bool
	}{
		{"empty query", "", nil, "", false},
		{"all allowed", "title=heat&page=2", []string{"title", "year", "page"}, "", false},
		{"single offender", "genre=crime", []string{"title"}, "genre", true},
		{"no allowed set", "plot=full", nil, "plot", true},
		{"key without value", "plot", nil, "plot", true},
		// Two offenders: the one that appears first in the query string is
		// named, not the lexicographically smaller one.
		{"query order wins", "z=1&a=2", nil, "z", true},
		{"offender after allowed", "title=heat&zzz=1&aaa=2", []string{"title"}, "zzz", true},
		{"percent-encoded key", "p%6Cot=full", nil, "plot", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, hit := firstUnexpectedParam(tc.rawQuery, tc.allowed...)
			if hit != tc.wantHit || key != tc.wantKey {
				t.Errorf("firstUnexpectedParam(%q) = (%q, %v), want (%q, %v)",
					tc.rawQuery, key, hit, tc.wantKey, tc.wantHit)
			}
		})
	}
}
