package model

// Person mirrors a row of the `names` table. Professions and known-for
// titles are stored denormalized as comma-joined strings, and are returned
// to clients as-is. Birth and death years are nullable.
type Person struct {
	Nconst            string `json:"nconst"`
	PrimaryName       string `json:"primaryName"`
	BirthYear         *int   `json:"birthYear,omitempty"`
	DeathYear         *int   `json:"deathYear,omitempty"`
	PrimaryProfession string `json:"primaryProfession"`
	KnownForTitles    string `json:"knownForTitles"`
}
