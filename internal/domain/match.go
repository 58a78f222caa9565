package domain

// Fixture es un partido tal cual llega de football-data (sólo los campos que usamos).
type Fixture struct {
	UTCDate     string             `json:"utcDate"`
	Status      string             `json:"status"`
	Competition FixtureCompetition `json:"competition"`
	HomeTeam    FixtureTeam        `json:"homeTeam"`
	AwayTeam    FixtureTeam        `json:"awayTeam"`
}

type FixtureCompetition struct {
	Name string `json:"name"`
}

type FixtureTeam struct {
	Name  string `json:"name"`
	Crest string `json:"crest"`
}

// Match es lo que mostramos al usuario.
type Match struct {
	Competition  string
	HomeTeam     string
	AwayTeam     string
	Date         string // ISO-8601 original, sin reformatear
	Status       string
	HomeTeamLogo string
	AwayTeamLogo string
}

func NewMatch(f Fixture) Match {
	return Match{
		Competition:  f.Competition.Name,
		HomeTeam:     f.HomeTeam.Name,
		AwayTeam:     f.AwayTeam.Name,
		Date:         f.UTCDate,
		Status:       f.Status,
		HomeTeamLogo: f.HomeTeam.Crest,
		AwayTeamLogo: f.AwayTeam.Crest,
	}
}
