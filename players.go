package candystore

import (
	"strconv"

	"github.com/tipresias/candystore/internal/sampler"
	"github.com/tipresias/candystore/internal/schedule"
)

// PlayersPerTeam is the fixed roster size generated for each side of a match.
const PlayersPerTeam = 22

const quarters = 4

// Uses the minimum recorded attendance as the lower bound, because the
// standard deviation was too large to subtract from the mean.
const (
	minReasonableAttendance = 1071
	maxReasonableAttendance = 61120
)

// Per-player, per-match stat ranges since 1965.
const (
	maxReasonableKicks                  = 21
	maxReasonableMarks                  = 10
	maxReasonableHandballs              = 14
	maxReasonablePlayerGoals            = 4
	maxReasonablePlayerBehinds          = 3
	maxReasonableHitOuts                = 12
	maxReasonableTackles                = 6
	maxReasonableRebounds               = 5
	maxReasonableInside50s              = 6
	maxReasonableClearances             = 5
	maxReasonableClangers               = 5
	maxReasonableFreesFor               = 5
	maxReasonableFreesAgainst           = 5
	maxBrownlowVotes                    = 4
	maxReasonableContestedPossessions   = 11
	maxReasonableUncontestedPossessions = 17
	maxReasonableContestedMarks         = 3
	maxReasonableMarksInside50          = 3
	maxReasonableOnePercenters          = 5
	maxReasonableBounces                = 3
	maxReasonableGoalAssists            = 2
	maxReasonableTimeOnGround           = 116
	maxSubstitute                       = 3
	maxJumperNumber                     = 100
	maxGroupID                          = 1000
)

// PlayerStats is one player's stat line for one match, in the shape of
// fitzRoy's get_afltables_stats output with snake_case keys. The match
// context fields repeat on every player row of the same match.
//
// Team quarter scores are each a quarter of an independently sampled
// full-match value, so the quarters of a match need not sum to any
// separately sampled total, and player goal tallies are not reconciled
// against the team quarter tallies.
type PlayerStats struct {
	Season         int    `json:"season" column:"season"`
	Round          string `json:"round" column:"round"`
	Date           string `json:"date" column:"date"`
	LocalStartTime int    `json:"local_start_time" column:"local_start_time"`
	Venue          string `json:"venue" column:"venue"`
	Attendance     int    `json:"attendance" column:"attendance"`
	HomeTeam       string `json:"home_team" column:"home_team"`
	HQ1G           int    `json:"hq1g" column:"hq1g"`
	HQ1B           int    `json:"hq1b" column:"hq1b"`
	HQ2G           int    `json:"hq2g" column:"hq2g"`
	HQ2B           int    `json:"hq2b" column:"hq2b"`
	HQ3G           int    `json:"hq3g" column:"hq3g"`
	HQ3B           int    `json:"hq3b" column:"hq3b"`
	HQ4G           int    `json:"hq4g" column:"hq4g"`
	HQ4B           int    `json:"hq4b" column:"hq4b"`
	HomeScore      int    `json:"home_score" column:"home_score"`
	AwayTeam       string `json:"away_team" column:"away_team"`
	AQ1G           int    `json:"aq1g" column:"aq1g"`
	AQ1B           int    `json:"aq1b" column:"aq1b"`
	AQ2G           int    `json:"aq2g" column:"aq2g"`
	AQ2B           int    `json:"aq2b" column:"aq2b"`
	AQ3G           int    `json:"aq3g" column:"aq3g"`
	AQ3B           int    `json:"aq3b" column:"aq3b"`
	AQ4G           int    `json:"aq4g" column:"aq4g"`
	AQ4B           int    `json:"aq4b" column:"aq4b"`
	AwayScore      int    `json:"away_score" column:"away_score"`
	Umpire1        string `json:"umpire_1" column:"umpire_1"`
	Umpire2        string `json:"umpire_2" column:"umpire_2"`
	Umpire3        string `json:"umpire_3" column:"umpire_3"`
	Umpire4        string `json:"umpire_4" column:"umpire_4"`
	GroupID        int    `json:"group_id" column:"group_id"`

	FirstName              string `json:"first_name" column:"first_name"`
	Surname                string `json:"surname" column:"surname"`
	ID                     int    `json:"id" column:"id"`
	JumperNumber           int    `json:"jumper_no" column:"jumper_no"`
	PlayingFor             string `json:"playing_for" column:"playing_for"`
	Kicks                  int    `json:"kicks" column:"kicks"`
	Marks                  int    `json:"marks" column:"marks"`
	Handballs              int    `json:"handballs" column:"handballs"`
	Goals                  int    `json:"goals" column:"goals"`
	Behinds                int    `json:"behinds" column:"behinds"`
	HitOuts                int    `json:"hit_outs" column:"hit_outs"`
	Tackles                int    `json:"tackles" column:"tackles"`
	Rebounds               int    `json:"rebounds" column:"rebounds"`
	Inside50s              int    `json:"inside_50s" column:"inside_50s"`
	Clearances             int    `json:"clearances" column:"clearances"`
	Clangers               int    `json:"clangers" column:"clangers"`
	FreesFor               int    `json:"frees_for" column:"frees_for"`
	FreesAgainst           int    `json:"frees_against" column:"frees_against"`
	BrownlowVotes          int    `json:"brownlow_votes" column:"brownlow_votes"`
	ContestedPossessions   int    `json:"contested_possessions" column:"contested_possessions"`
	UncontestedPossessions int    `json:"uncontested_possessions" column:"uncontested_possessions"`
	ContestedMarks         int    `json:"contested_marks" column:"contested_marks"`
	MarksInside50          int    `json:"marks_inside_50" column:"marks_inside_50"`
	OnePercenters          int    `json:"one_percenters" column:"one_percenters"`
	Bounces                int    `json:"bounces" column:"bounces"`
	GoalAssists            int    `json:"goal_assists" column:"goal_assists"`
	TimeOnGround           int    `json:"time_on_ground" column:"time_on_ground"`
	Substitute             int    `json:"substitute" column:"substitute"`
}

// teamQuarters holds one side's quarter-by-quarter goals and behinds.
type teamQuarters struct {
	goals   [quarters]int
	behinds [quarters]int
}

// sampleQuarters draws each quarter's value as one quarter of an
// independently sampled full-match value, integer-truncated.
func sampleQuarters(smp *sampler.Sampler) teamQuarters {
	var q teamQuarters
	for i := 0; i < quarters; i++ {
		q.goals[i] = smp.IntBetween(minReasonableGoals, maxReasonableGoals) / quarters
		q.behinds[i] = smp.IntBetween(minReasonableBehinds, maxReasonableBehinds) / quarters
	}
	return q
}

// score aggregates the quarter values into a final score.
func (q teamQuarters) score() int {
	var goals, behinds int
	for i := 0; i < quarters; i++ {
		goals += q.goals[i]
		behinds += q.behinds[i]
	}
	return goals*pointsPerGoal + behinds
}

// convertToPlayers produces the cross join of per-match context with a
// generated 22-player roster per side: one row per player per match.
func convertToPlayers(smp *sampler.Sampler, matches []schedule.Match) []PlayerStats {
	maxRounds := maxRoundBySeason(matches)
	// Labels are drawn in schedule order so a seeded store stays
	// reproducible.
	seasonLabels := make(map[int]map[int]string, len(maxRounds))
	for _, m := range matches {
		if _, ok := seasonLabels[m.Season]; !ok {
			seasonLabels[m.Season] = finalsLabels(smp, maxRounds[m.Season])
		}
	}

	rows := make([]PlayerStats, 0, len(matches)*2*PlayersPerTeam)
	for matchIndex, m := range matches {
		home := sampleQuarters(smp)
		away := sampleQuarters(smp)

		context := PlayerStats{
			Season:         m.Season,
			Round:          playerRoundLabel(seasonLabels[m.Season], m.Round),
			Date:           m.Date.Format(dateLayout),
			LocalStartTime: m.Date.Hour()*100 + m.Date.Minute(),
			Venue:          m.Venue,
			Attendance:     smp.IntBetween(minReasonableAttendance, maxReasonableAttendance),
			HomeTeam:       m.HomeTeam,
			HQ1G:           home.goals[0],
			HQ1B:           home.behinds[0],
			HQ2G:           home.goals[1],
			HQ2B:           home.behinds[1],
			HQ3G:           home.goals[2],
			HQ3B:           home.behinds[2],
			HQ4G:           home.goals[3],
			HQ4B:           home.behinds[3],
			HomeScore:      home.score(),
			AwayTeam:       m.AwayTeam,
			AQ1G:           away.goals[0],
			AQ1B:           away.behinds[0],
			AQ2G:           away.goals[1],
			AQ2B:           away.behinds[1],
			AQ3G:           away.goals[2],
			AQ3B:           away.behinds[2],
			AQ4G:           away.goals[3],
			AQ4B:           away.behinds[3],
			AwayScore:      away.score(),
			Umpire1:        smp.FullName(),
			Umpire2:        smp.FullName(),
			Umpire3:        smp.FullName(),
			Umpire4:        smp.FullName(),
			// Opaque identifier in the upstream data; a random integer
			// fills the column.
			GroupID: smp.IntBetween(0, maxGroupID),
		}

		for side, team := range []string{m.HomeTeam, m.AwayTeam} {
			for slot := 0; slot < PlayersPerTeam; slot++ {
				row := context
				row.FirstName = smp.FirstName()
				row.Surname = smp.LastName()
				row.ID = matchIndex*2*PlayersPerTeam + side*PlayersPerTeam + slot
				row.JumperNumber = smp.IntBetween(0, maxJumperNumber)
				row.PlayingFor = team
				row.Kicks = smp.IntBetween(0, maxReasonableKicks)
				row.Marks = smp.IntBetween(0, maxReasonableMarks)
				row.Handballs = smp.IntBetween(0, maxReasonableHandballs)
				// The sum of player goals is unlikely to equal the sum of
				// team quarter goals; no point complicating the sampling
				// until something needs it.
				row.Goals = smp.IntBetween(0, maxReasonablePlayerGoals)
				row.Behinds = smp.IntBetween(0, maxReasonablePlayerBehinds)
				row.HitOuts = smp.IntBetween(0, maxReasonableHitOuts)
				row.Tackles = smp.IntBetween(0, maxReasonableTackles)
				row.Rebounds = smp.IntBetween(0, maxReasonableRebounds)
				row.Inside50s = smp.IntBetween(0, maxReasonableInside50s)
				row.Clearances = smp.IntBetween(0, maxReasonableClearances)
				row.Clangers = smp.IntBetween(0, maxReasonableClangers)
				row.FreesFor = smp.IntBetween(0, maxReasonableFreesFor)
				row.FreesAgainst = smp.IntBetween(0, maxReasonableFreesAgainst)
				// This does not restrict Brownlow votes to three players
				// per match.
				row.BrownlowVotes = smp.IntBetween(0, maxBrownlowVotes)
				row.ContestedPossessions = smp.IntBetween(0, maxReasonableContestedPossessions)
				row.UncontestedPossessions = smp.IntBetween(0, maxReasonableUncontestedPossessions)
				row.ContestedMarks = smp.IntBetween(0, maxReasonableContestedMarks)
				row.MarksInside50 = smp.IntBetween(0, maxReasonableMarksInside50)
				row.OnePercenters = smp.IntBetween(0, maxReasonableOnePercenters)
				row.Bounces = smp.IntBetween(0, maxReasonableBounces)
				row.GoalAssists = smp.IntBetween(0, maxReasonableGoalAssists)
				row.TimeOnGround = smp.IntBetween(0, maxReasonableTimeOnGround)
				row.Substitute = smp.IntBetween(0, maxSubstitute)
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// playerRoundLabel returns the finals stage label for finals rounds, or the
// round number as a string otherwise.
func playerRoundLabel(labels map[int]string, round int) string {
	if label, ok := labels[round]; ok {
		return label
	}
	return strconv.Itoa(round)
}
