package candystore

import (
	"github.com/tipresias/candystore/internal/sampler"
	"github.com/tipresias/candystore/internal/schedule"
)

const (
	// Score and margin ranges are two standard deviations either side of
	// the mean across all recorded AFL matches.
	minReasonableScore  = 23
	maxReasonableScore  = 148
	minReasonableMargin = 0
	maxReasonableMargin = 89

	// Roughly the payout when win odds are even.
	baselineBetPayout = 1.92
	// Hand-wavy multiplier to keep win odds vaguely realistic.
	winOddsMultiplier = 0.8
)

// BettingOdds is one match's betting market, in the shape of fitzRoy's
// get_footywire_betting_odds output with snake_case keys. Scores here are
// sampled independently of the match results dataset; the two are not
// numerically consistent with each other.
type BettingOdds struct {
	Date         string  `json:"date" column:"date"`
	Season       int     `json:"season" column:"season"`
	Round        int     `json:"round" column:"round"`
	HomeTeam     string  `json:"home_team" column:"home_team"`
	AwayTeam     string  `json:"away_team" column:"away_team"`
	HomeScore    int     `json:"home_score" column:"home_score"`
	AwayScore    int     `json:"away_score" column:"away_score"`
	HomeMargin   int     `json:"home_margin" column:"home_margin"`
	AwayMargin   int     `json:"away_margin" column:"away_margin"`
	HomeWinOdds  float64 `json:"home_win_odds" column:"home_win_odds"`
	AwayWinOdds  float64 `json:"away_win_odds" column:"away_win_odds"`
	HomeWinPaid  float64 `json:"home_win_paid" column:"home_win_paid"`
	AwayWinPaid  float64 `json:"away_win_paid" column:"away_win_paid"`
	HomeLineOdds int     `json:"home_line_odds" column:"home_line_odds"`
	AwayLineOdds int     `json:"away_line_odds" column:"away_line_odds"`
	HomeLinePaid float64 `json:"home_line_paid" column:"home_line_paid"`
	AwayLinePaid float64 `json:"away_line_paid" column:"away_line_paid"`
	Venue        string  `json:"venue" column:"venue"`
}

// convertToBettingOdds layers sampled scores and betting markets over the
// base schedule. Settlement is binary: the winning side's win bet pays the
// win odds, its line bet pays the flat baseline, and the losing side's bets
// pay nothing.
func convertToBettingOdds(smp *sampler.Sampler, matches []schedule.Match) []BettingOdds {
	odds := make([]BettingOdds, 0, len(matches))

	for _, m := range matches {
		homeScore := smp.IntBetween(minReasonableScore, maxReasonableScore)
		awayScore := smp.IntBetween(minReasonableScore, maxReasonableScore)
		homeLineOdds := smp.IntBetween(minReasonableMargin, maxReasonableMargin)

		winOddsDiff := sampler.Round2(smp.Float64() * winOddsMultiplier)
		if homeLineOdds <= 0 {
			winOddsDiff = -winOddsDiff
		}
		homeWinOdds := baselineBetPayout + winOddsDiff
		awayWinOdds := baselineBetPayout - winOddsDiff

		homeWon := homeScore > awayScore
		awayWon := awayScore > homeScore

		odds = append(odds, BettingOdds{
			Date:         m.Date.Format(dateTimeLayout),
			Season:       m.Season,
			Round:        m.Round,
			HomeTeam:     m.HomeTeam,
			AwayTeam:     m.AwayTeam,
			HomeScore:    homeScore,
			AwayScore:    awayScore,
			HomeMargin:   homeScore - awayScore,
			AwayMargin:   awayScore - homeScore,
			HomeWinOdds:  homeWinOdds,
			AwayWinOdds:  awayWinOdds,
			HomeWinPaid:  paidIf(homeWon, homeWinOdds),
			AwayWinPaid:  paidIf(awayWon, awayWinOdds),
			HomeLineOdds: homeLineOdds,
			AwayLineOdds: -homeLineOdds,
			HomeLinePaid: paidIf(homeWon, baselineBetPayout),
			AwayLinePaid: paidIf(awayWon, baselineBetPayout),
			Venue:        m.Venue,
		})
	}
	return odds
}

func paidIf(won bool, payout float64) float64 {
	if won {
		return payout
	}
	return 0
}
