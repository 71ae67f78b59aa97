package repository

import (
	"reflect"
	"testing"
)

func TestFilterWhereEmpty(t *testing.T) {
	f := &Filter{}
	cond, args := f.Where()
	if cond != "1=1" {
		t.Fatalf("empty filter condition = %q, want 1=1", cond)
	}
	if len(args) != 0 {
		t.Fatalf("empty filter args = %v, want none", args)
	}
}

func TestFilterWhereOrdering(t *testing.T) {
	f := &Filter{}
	f.And("a = ?", 1)
	f.And("b LIKE ?", "%x%")
	f.And("c = ?", 3)

	cond, args := f.Where()
	if cond != "a = ? AND b LIKE ? AND c = ?" {
		t.Fatalf("condition = %q", cond)
	}
	want := []any{1, "%x%", 3}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
}

func TestTitleFilterBuild(t *testing.T) {
	cases := []struct {
		name     string
		q        TitleFilter
		wantCond string
		wantArgs []any
	}{
		{
			name:     "no filters",
			q:        TitleFilter{Limit: 20},
			wantCond: "1=1",
			wantArgs: nil,
		},
		{
			name:     "title only, lowercased substring",
			q:        TitleFilter{Title: "Shawshank"},
			wantCond: "LOWER(b.primaryTitle) LIKE ?",
			wantArgs: []any{"%shawshank%"},
		},
		{
			name:     "year only",
			q:        TitleFilter{Year: "1994"},
			wantCond: "b.startYear = ?",
			wantArgs: []any{"1994"},
		},
		{
			name:     "title before year",
			q:        TitleFilter{Title: "the", Year: "1994"},
			wantCond: "LOWER(b.primaryTitle) LIKE ? AND b.startYear = ?",
			wantArgs: []any{"%the%", "1994"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cond, args := tc.q.build().Where()
			if cond != tc.wantCond {
				t.Errorf("condition = %q, want %q", cond, tc.wantCond)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("args = %v, want %v", args, tc.wantArgs)
			}
		})
	}
}
