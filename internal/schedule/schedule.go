// Package schedule generates the base match calendar that every derived
// dataset is built from: one season per requested year, weekly rounds from
// mid March to the end of September, and randomly paired teams, venues and
// kickoff times within each round.
package schedule

import (
	"time"

	"github.com/tipresias/candystore/internal/sampler"
)

const (
	// FirstSeason is the earliest year with league data.
	FirstSeason = 1897

	weekDays = 7

	// Matches rarely start before midday or after eight in the evening.
	minMatchHour = 12
	maxMatchHour = 20
)

// Match is the atomic unit of the generated schedule. It is created once
// per match and never mutated; the derived views each work from a read-only
// copy of the full slice.
type Match struct {
	Date     time.Time
	Season   int
	Round    int
	HomeTeam string
	AwayTeam string
	Venue    string
}

// Generate produces the full match calendar for the given season years, in
// season order, round order, pairing order. The structure (season and round
// counts) is deterministic; team pairing, venues and kickoff times consume
// randomness from the sampler.
func Generate(smp *sampler.Sampler, seasons []int) []Match {
	var matches []Match
	for _, season := range seasons {
		matches = append(matches, generateSeason(smp, season)...)
	}
	return matches
}

// SeasonStart returns the first round's start date for a season: the
// Wednesday on or after March 15. Rounds typically run Thursday to Sunday
// but can stretch from Wednesday to Tuesday, so Wednesday anchors the week.
func SeasonStart(season int) time.Time {
	nominal := time.Date(season, time.March, 15, 0, 0, 0, 0, time.UTC)
	daysToWednesday := (int(time.Wednesday) - int(nominal.Weekday()) + weekDays) % weekDays
	return nominal.AddDate(0, 0, daysToWednesday)
}

// SeasonEnd returns the nominal end of a season. Real seasons finish
// somewhere between mid September and mid October; September 30 splits the
// difference.
func SeasonEnd(season int) time.Time {
	return time.Date(season, time.September, 30, 0, 0, 0, 0, time.UTC)
}

// RoundCount returns the number of whole weeks between season start and end.
func RoundCount(season int) int {
	return int(SeasonEnd(season).Sub(SeasonStart(season)).Hours()) / 24 / weekDays
}

func generateSeason(smp *sampler.Sampler, season int) []Match {
	start := SeasonStart(season)

	var matches []Match
	for week := 0; week < RoundCount(season); week++ {
		matches = append(matches, generateRound(smp, start, week)...)
	}
	return matches
}

func generateRound(smp *sampler.Sampler, seasonStart time.Time, week int) []Match {
	roundStart := seasonStart.AddDate(0, 0, weekDays*week)
	roundNumber := week + 1

	teams := roundTeams(smp)
	venues := smp.Shuffled(Venues)
	matchCount := len(teams) / 2

	matches := make([]Match, 0, matchCount)
	for i := 0; i < matchCount; i++ {
		date := matchDateTime(smp, roundStart)
		matches = append(matches, Match{
			Date:     date,
			Season:   date.Year(),
			Round:    roundNumber,
			HomeTeam: teams[i*2],
			AwayTeam: teams[i*2+1],
			Venue:    venues[i],
		})
	}
	return matches
}

// roundTeams returns the round's team universe in pairing order: all
// non-Brisbane teams plus exactly one of the two Brisbane franchises,
// randomly permuted. Only one Brisbane team may appear per round.
func roundTeams(smp *sampler.Sampler) []string {
	teams := make([]string, 0, len(NonBrisbaneTeams)+1)
	teams = append(teams, NonBrisbaneTeams...)
	teams = append(teams, smp.Pick(BrisbaneTeams))
	return smp.Shuffled(teams)
}

// matchDateTime picks a random instant within the round's week for the day,
// then a separate random time of day within realistic kickoff hours. Drawing
// the time separately avoids the midnight-heavy start times a single
// timestamp draw over the whole week would produce.
func matchDateTime(smp *sampler.Sampler, roundStart time.Time) time.Time {
	daySeconds := smp.IntBetween(0, weekDays*24*60*60)
	day := roundStart.Add(time.Duration(daySeconds) * time.Second)

	kickoffSeconds := smp.IntBetween(minMatchHour*60*60, maxMatchHour*60*60)
	kickoff := time.Duration(kickoffSeconds) * time.Second

	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Add(kickoff)
}
