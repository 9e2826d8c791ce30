package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tipresias/candystore"
)

func testTable() candystore.Table {
	return candystore.Table{
		Columns: []string{"season", "home_team", "home_win_odds"},
		Rows: [][]any{
			{1967, "Melbourne", 2.15},
			{1967, "Fitzroy", 1.69},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "csv", "sqlite"} {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), format)
	}

	_, err := ParseFormat("parquet")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestFormatExt(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.Ext())
	assert.Equal(t, "csv", FormatCSV.Ext())
	assert.Equal(t, "db", FormatSQLite.Ext())
}

func TestJSONWritesSnakeCaseRecords(t *testing.T) {
	fixtures := []candystore.Fixture{
		{
			Date:     "1967-03-16 12:37:19",
			Season:   1967,
			Round:    1,
			HomeTeam: "Melbourne",
			AwayTeam: "Brisbane Lions",
			Venue:    "Sydney Showground",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, fixtures))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Melbourne", decoded[0]["home_team"])
	assert.Equal(t, float64(1967), decoded[0]["season"])
}

func TestCSVWritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, testTable()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "season,home_team,home_win_odds", lines[0])
	assert.Equal(t, "1967,Melbourne,2.15", lines[1])
	assert.Equal(t, "1967,Fitzroy,1.69", lines[2])
}

func TestResultSummary(t *testing.T) {
	r := Result{Dataset: "fixtures", Rows: 270, Path: "fixtures.csv"}
	summary := r.Summary()
	assert.Contains(t, summary, "dataset=fixtures")
	assert.Contains(t, summary, "rows=270")
}
