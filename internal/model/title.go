package model

// TitleSummary is a row from the `basics` table joined against `ratings`,
// as returned by the generic /movies listing. Nullable columns use pointers
// so that missing ratings serialize as JSON null rather than zero values.
//
// Fields map one-to-one onto columns:
//  Tconst        – basics.tconst (primary key, e.g. "tt0111161")
//  PrimaryTitle  – basics.primaryTitle
//  StartYear     – basics.startYear (nullable)
//  Genres        – basics.genres (comma-joined string)
//  AverageRating – ratings.averageRating (nullable, absent when no rating row)
//  NumVotes      – ratings.numVotes (nullable)
type TitleSummary struct {
	Tconst        string   `json:"tconst"`
	PrimaryTitle  string   `json:"primaryTitle"`
	StartYear     *int     `json:"startYear"`
	Genres        string   `json:"genres"`
	AverageRating *float64 `json:"averageRating"`
	NumVotes      *int     `json:"numVotes"`
}

// CastEntry is one row of the billing-ordered cast list for a title. It is
// the join of `principals` with `names`, ordered by principals.ordering.
type CastEntry struct {
	Nconst      string `json:"nconst"`
	PrimaryName string `json:"primaryName"`
	Category    string `json:"category"`
	Characters  string `json:"characters"`
}

// TitleDetail is the fully assembled movie record: the base row, its
// optional rating, its optional crew row (empty strings when absent) and the
// billing-ordered cast. RuntimeMinutes is carried for the OMDb-style
// projection even though the native detail response does not expose it.
type TitleDetail struct {
	Tconst         string      `json:"tconst"`
	PrimaryTitle   string      `json:"primaryTitle"`
	OriginalTitle  string      `json:"originalTitle"`
	TitleType      string      `json:"titleType"`
	StartYear      *int        `json:"startYear"`
	RuntimeMinutes *int        `json:"-"`
	Genres         string      `json:"genres"`
	AverageRating  *float64    `json:"averageRating"`
	NumVotes       *int        `json:"numVotes"`
	Directors      string      `json:"directors"`
	Writers        string      `json:"writers"`
	Cast           []CastEntry `json:"cast"`
}

// SearchHit is the strict-search row shape: field names follow the external
// contract, not the column names. Year stays numeric here; the shaper owns
// any string coercion.
type SearchHit struct {
	Title  string `json:"Title"`
	Year   *int   `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
}
