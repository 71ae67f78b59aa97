package repository

import "strings"

// Filter accumulates WHERE predicates as an ordered clause list with a
// parallel argument list. Clause strings contain only `?` placeholders;
// caller input travels exclusively through the argument list, so no user
// value is ever concatenated into SQL text.
type Filter struct {
	clauses []string
	args    []any
}

// And appends one predicate and its bound arguments.
func (f *Filter) And(clause string, args ...any) {
	f.clauses = append(f.clauses, clause)
	f.args = append(f.args, args...)
}

// Where returns the combined condition and its arguments. With no clauses
// it yields the neutral "1=1" so callers can always interpolate it after a
// literal WHERE.
func (f *Filter) Where() (string, []any) {
	if len(f.clauses) == 0 {
		return "1=1", nil
	}
	return strings.Join(f.clauses, " AND "), f.args
}

// TitleFilter carries the resolved inputs of the generic /movies listing:
// optional title substring, optional exact year, and pagination already
// defaulted by the caller. Limit is intentionally uncapped on this listing;
// the strict search endpoint has its own fixed page size.
type TitleFilter struct {
	Title  string
	Year   string
	Limit  int
	Offset int
}

// build converts the optional inputs into predicates. The title match is
// case-insensitive substring, the year an exact equality.
func (q TitleFilter) build() *Filter {
	f := &Filter{}
	if q.Title != "" {
		f.And("LOWER(b.primaryTitle) LIKE ?", "%"+strings.ToLower(q.Title)+"%")
	}
	if q.Year != "" {
		f.And("b.startYear = ?", q.Year)
	}
	return f
}
