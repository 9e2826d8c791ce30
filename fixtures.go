package candystore

import "github.com/tipresias/candystore/internal/schedule"

const dateTimeLayout = "2006-01-02 15:04:05"
const dateLayout = "2006-01-02"

// Fixture is one scheduled match, in the shape of fitzRoy's get_fixture
// output with snake_case keys.
type Fixture struct {
	Date       string `json:"date" column:"date"`
	Season     int    `json:"season" column:"season"`
	SeasonGame int    `json:"season_game" column:"season_game"`
	Round      int    `json:"round" column:"round"`
	HomeTeam   string `json:"home_team" column:"home_team"`
	AwayTeam   string `json:"away_team" column:"away_team"`
	Venue      string `json:"venue" column:"venue"`
}

// convertToFixtures adds a per-season running game counter to the base
// schedule. The counter follows insertion order, not date order.
func convertToFixtures(matches []schedule.Match) []Fixture {
	fixtures := make([]Fixture, 0, len(matches))
	seasonGames := make(map[int]int)

	for _, m := range matches {
		fixtures = append(fixtures, Fixture{
			Date:       m.Date.Format(dateTimeLayout),
			Season:     m.Season,
			SeasonGame: seasonGames[m.Season],
			Round:      m.Round,
			HomeTeam:   m.HomeTeam,
			AwayTeam:   m.AwayTeam,
			Venue:      m.Venue,
		})
		seasonGames[m.Season]++
	}
	return fixtures
}
