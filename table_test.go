package candystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabulateFixtures(t *testing.T) {
	fixtures := []Fixture{
		{
			Date:       "1967-03-16 12:37:19",
			Season:     1967,
			SeasonGame: 0,
			Round:      1,
			HomeTeam:   "Melbourne",
			AwayTeam:   "Brisbane Lions",
			Venue:      "Sydney Showground",
		},
	}

	table := Tabulate(fixtures)

	assert.Equal(t,
		[]string{"date", "season", "season_game", "round", "home_team", "away_team", "venue"},
		table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t,
		[]any{"1967-03-16 12:37:19", 1967, 0, 1, "Melbourne", "Brisbane Lions", "Sydney Showground"},
		table.Rows[0])
}

func TestTabulatePlayersColumnCount(t *testing.T) {
	table := Tabulate([]PlayerStats{{}})
	// Match context plus the per-player fields.
	assert.Len(t, table.Columns, 59)
	require.Len(t, table.Rows, 1)
	assert.Len(t, table.Rows[0], len(table.Columns))
}

func TestTabulateEmptySlice(t *testing.T) {
	table := Tabulate([]MatchResult{})
	assert.NotEmpty(t, table.Columns)
	assert.Empty(t, table.Rows)
}
