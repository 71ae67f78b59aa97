package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/movie-catalog-api/internal/model"
)

// SearchPageSize is the fixed page size of the strict search endpoint. It
// is not caller-configurable.
const SearchPageSize = 100

type TitleRepo struct{ DB *sql.DB }

func NewTitleRepo(db *sql.DB) *TitleRepo { return &TitleRepo{DB: db} }

// List returns title summaries matching the optional filters, left-joined
// against ratings so titles without a rating row carry null rating fields.
func (r *TitleRepo) List(ctx context.Context, q TitleFilter) ([]model.TitleSummary, error) {
	cond, args := q.build().Where()
	query := `SELECT
			b.tconst,
			b.primaryTitle,
			b.startYear,
			b.genres,
			r.averageRating,
			r.numVotes
		FROM basics b
		LEFT JOIN ratings r ON b.tconst = r.tconst
		WHERE ` + cond + `
		LIMIT ? OFFSET ?`
	args = append(args, q.Limit, q.Offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.TitleSummary, 0, q.Limit)
	for rows.Next() {
		var t model.TitleSummary
		var year, votes sql.NullInt64
		var rating sql.NullFloat64
		if err := rows.Scan(&t.Tconst, &t.PrimaryTitle, &year, &t.Genres, &rating, &votes); err != nil {
			return nil, err
		}
		t.StartYear = intPtr(year)
		t.AverageRating = floatPtr(rating)
		t.NumVotes = intPtr(votes)
		out = append(out, t)
	}
	return out, rows.Err()
}

// SearchBasic is the bounded lookup behind the unified /search endpoint:
// a case-insensitive title substring match capped at limit rows.
func (r *TitleRepo) SearchBasic(ctx context.Context, term string, limit int) ([]model.TitleSummary, error) {
	q := TitleFilter{Title: term, Limit: limit}
	return r.List(ctx, q)
}

// GetDetail assembles the denormalized detail record for one title. The
// base+rating row, the crew row and the billing-ordered cast are fetched
// concurrently and joined only after all three lookups complete; the first
// failure cancels the rest. A missing base row yields ErrNotFound, while
// missing crew or cast only degrade to empty fields.
func (r *TitleRepo) GetDetail(ctx context.Context, tconst string) (model.TitleDetail, error) {
	var d model.TitleDetail

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var year, runtime, votes sql.NullInt64
		var rating sql.NullFloat64
		err := r.DB.QueryRowContext(ctx, `SELECT
				b.tconst,
				b.primaryTitle,
				b.originalTitle,
				b.titleType,
				b.startYear,
				b.runtimeMinutes,
				b.genres,
				r.averageRating,
				r.numVotes
			FROM basics b
			LEFT JOIN ratings r ON b.tconst = r.tconst
			WHERE b.tconst = ?`, tconst).
			Scan(&d.Tconst, &d.PrimaryTitle, &d.OriginalTitle, &d.TitleType,
				&year, &runtime, &d.Genres, &rating, &votes)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		d.StartYear = intPtr(year)
		d.RuntimeMinutes = intPtr(runtime)
		d.AverageRating = floatPtr(rating)
		d.NumVotes = intPtr(votes)
		return nil
	})

	g.Go(func() error {
		var directors, writers sql.NullString
		err := r.DB.QueryRowContext(ctx,
			"SELECT directors, writers FROM crew WHERE tconst = ?", tconst).
			Scan(&directors, &writers)
		if errors.Is(err, sql.ErrNoRows) {
			return nil // no crew row -> empty strings
		}
		if err != nil {
			return err
		}
		d.Directors = directors.String
		d.Writers = writers.String
		return nil
	})

	g.Go(func() error {
		cast, err := r.castFor(ctx, tconst)
		if err != nil {
			return err
		}
		d.Cast = cast
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.TitleDetail{}, err
	}
	return d, nil
}

// castFor returns the cast of a title joined to person names, ordered by
// ascending billing position. The slice is never nil so an empty cast
// serializes as [].
func (r *TitleRepo) castFor(ctx context.Context, tconst string) ([]model.CastEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT
			n.nconst,
			n.primaryName,
			p.category,
			p.characters
		FROM principals p
		JOIN names n ON n.nconst = p.nconst
		WHERE p.tconst = ?
		ORDER BY p.ordering ASC`, tconst)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.CastEntry, 0)
	for rows.Next() {
		var e model.CastEntry
		var characters sql.NullString
		if err := rows.Scan(&e.Nconst, &e.PrimaryName, &e.Category, &characters); err != nil {
			return nil, err
		}
		e.Characters = characters.String
		out = append(out, e)
	}
	return out, rows.Err()
}

// Search runs the strict search: a data page of SearchPageSize rows ordered
// by imdbID and a total count over the same predicates, issued concurrently.
// Title is required by the handler; year arrives pre-validated.
func (r *TitleRepo) Search(ctx context.Context, title, year string, page int) ([]model.SearchHit, int64, error) {
	f := &Filter{}
	f.And("LOWER(b.primaryTitle) LIKE ?", "%"+strings.ToLower(title)+"%")
	if year != "" {
		f.And("b.startYear = ?", year)
	}
	cond, args := f.Where()
	offset := (page - 1) * SearchPageSize

	var hits []model.SearchHit
	var total int64

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query := `SELECT
				b.primaryTitle,
				b.startYear,
				b.tconst,
				b.titleType
			FROM basics b
			WHERE ` + cond + `
			ORDER BY b.tconst ASC
			LIMIT ? OFFSET ?`
		dataArgs := append(append([]any{}, args...), SearchPageSize, offset)
		rows, err := r.DB.QueryContext(ctx, query, dataArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()

		hits = make([]model.SearchHit, 0, SearchPageSize)
		for rows.Next() {
			var h model.SearchHit
			var y sql.NullInt64
			if err := rows.Scan(&h.Title, &y, &h.ImdbID, &h.Type); err != nil {
				return err
			}
			h.Year = intPtr(y)
			hits = append(hits, h)
		}
		return rows.Err()
	})

	g.Go(func() error {
		countArgs := append([]any{}, args...)
		return r.DB.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM basics b WHERE "+cond, countArgs...).Scan(&total)
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return hits, total, nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
