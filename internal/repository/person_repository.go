package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/movie-catalog-api/internal/model"
)

type PersonRepo struct{ DB *sql.DB }

func NewPersonRepo(db *sql.DB) *PersonRepo { return &PersonRepo{DB: db} }

// List returns the first `limit` people in storage order. The listing is
// deliberately unfiltered; it exists as a browse helper.
func (r *PersonRepo) List(ctx context.Context, limit int) ([]model.Person, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT
			nconst, primaryName, primaryProfession, knownForTitles
		FROM names
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPersons(rows)
}

// GetByID fetches one person by nconst, including birth and death years.
func (r *PersonRepo) GetByID(ctx context.Context, nconst string) (model.Person, error) {
	var p model.Person
	var birth, death sql.NullInt64
	var profession, known sql.NullString
	err := r.DB.QueryRowContext(ctx, `SELECT
			nconst, primaryName, birthYear, deathYear, primaryProfession, knownForTitles
		FROM names
		WHERE nconst = ?`, nconst).
		Scan(&p.Nconst, &p.PrimaryName, &birth, &death, &profession, &known)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Person{}, ErrNotFound
	}
	if err != nil {
		return model.Person{}, err
	}
	p.BirthYear = intPtr(birth)
	p.DeathYear = intPtr(death)
	p.PrimaryProfession = profession.String
	p.KnownForTitles = known.String
	return p, nil
}

// SearchByName is the bounded person lookup behind the unified /search
// endpoint: case-insensitive name substring match capped at limit rows.
func (r *PersonRepo) SearchByName(ctx context.Context, term string, limit int) ([]model.Person, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT
			nconst, primaryName, primaryProfession, knownForTitles
		FROM names
		WHERE LOWER(primaryName) LIKE ?
		LIMIT ?`, "%"+strings.ToLower(term)+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPersons(rows)
}

func scanPersons(rows *sql.Rows) ([]model.Person, error) {
	out := make([]model.Person, 0)
	for rows.Next() {
		var p model.Person
		var profession, known sql.NullString
		if err := rows.Scan(&p.Nconst, &p.PrimaryName, &profession, &known); err != nil {
			return nil, err
		}
		p.PrimaryProfession = profession.String
		p.KnownForTitles = known.String
		out = append(out, p)
	}
	return out, rows.Err()
}
