package candystore

import (
	"strconv"

	"github.com/tipresias/candystore/internal/sampler"
	"github.com/tipresias/candystore/internal/schedule"
)

const (
	// Two standard deviations either side of the mean across all recorded
	// AFL matches.
	minReasonableGoals   = 2
	maxReasonableGoals   = 23
	minReasonableBehinds = 3
	maxReasonableBehinds = 22

	pointsPerGoal = 6
)

// MatchResult is one completed match, in the shape of fitzRoy's
// get_match_results output with snake_case keys.
type MatchResult struct {
	Date        string `json:"date" column:"date"`
	Season      int    `json:"season" column:"season"`
	Round       string `json:"round" column:"round"`
	RoundNumber int    `json:"round_number" column:"round_number"`
	RoundType   string `json:"round_type" column:"round_type"`
	HomeTeam    string `json:"home_team" column:"home_team"`
	HomeGoals   int    `json:"home_goals" column:"home_goals"`
	HomeBehinds int    `json:"home_behinds" column:"home_behinds"`
	HomePoints  int    `json:"home_points" column:"home_points"`
	AwayTeam    string `json:"away_team" column:"away_team"`
	AwayGoals   int    `json:"away_goals" column:"away_goals"`
	AwayBehinds int    `json:"away_behinds" column:"away_behinds"`
	AwayPoints  int    `json:"away_points" column:"away_points"`
	Margin      int    `json:"margin" column:"margin"`
	Venue       string `json:"venue" column:"venue"`
	Game        int    `json:"game" column:"game"`
}

// convertToMatchResults layers sampled scorelines over the base schedule.
// The margin is always home points minus away points, matching the fitzRoy
// convention regardless of which side is favoured.
func convertToMatchResults(smp *sampler.Sampler, matches []schedule.Match) []MatchResult {
	maxRounds := maxRoundBySeason(matches)
	seasonGames := make(map[int]int)

	results := make([]MatchResult, 0, len(matches))
	for _, m := range matches {
		homeGoals := smp.IntBetween(minReasonableGoals, maxReasonableGoals)
		awayGoals := smp.IntBetween(minReasonableGoals, maxReasonableGoals)
		homeBehinds := smp.IntBetween(minReasonableBehinds, maxReasonableBehinds)
		awayBehinds := smp.IntBetween(minReasonableBehinds, maxReasonableBehinds)
		homePoints := homeGoals*pointsPerGoal + homeBehinds
		awayPoints := awayGoals*pointsPerGoal + awayBehinds

		results = append(results, MatchResult{
			Date:        m.Date.Format(dateLayout),
			Season:      m.Season,
			Round:       "R" + strconv.Itoa(m.Round),
			RoundNumber: m.Round,
			RoundType:   roundType(m.Round, maxRounds[m.Season]),
			HomeTeam:    m.HomeTeam,
			HomeGoals:   homeGoals,
			HomeBehinds: homeBehinds,
			HomePoints:  homePoints,
			AwayTeam:    m.AwayTeam,
			AwayGoals:   awayGoals,
			AwayBehinds: awayBehinds,
			AwayPoints:  awayPoints,
			Margin:      homePoints - awayPoints,
			Venue:       m.Venue,
			Game:        seasonGames[m.Season],
		})
		seasonGames[m.Season]++
	}
	return results
}
