package candystore

import (
	"github.com/tipresias/candystore/internal/sampler"
	"github.com/tipresias/candystore/internal/schedule"
)

// Finals stage labels in playing order: qualifying final, elimination final,
// semi final, preliminary final, grand final.
var finalsRoundLabels = []string{"QF", "EF", "SF", "PF", "GF"}

const (
	roundTypeRegular = "Regular"
	roundTypeFinals  = "Finals"
)

// firstFinalsRound returns the first round number classified as finals for a
// season whose last round is maxRound. Five finals are played across four
// calendar rounds, because the qualifying and elimination finals share the
// first finals week.
func firstFinalsRound(maxRound int) int {
	return maxRound - len(finalsRoundLabels) + 2
}

// roundType classifies a round as regular or finals within its season.
func roundType(round, maxRound int) string {
	if round >= firstFinalsRound(maxRound) && round <= maxRound {
		return roundTypeFinals
	}
	return roundTypeRegular
}

// finalsLabels maps each finals round number to its stage label. The first
// finals round is randomly labelled QF or EF, since both take place in the
// same week; the remaining rounds take one label each.
func finalsLabels(smp *sampler.Sampler, maxRound int) map[int]string {
	labels := make(map[int]string, len(finalsRoundLabels)-1)
	for i, round := 0, firstFinalsRound(maxRound); round <= maxRound; i, round = i+1, round+1 {
		if i == 0 {
			labels[round] = smp.Pick(finalsRoundLabels[:2])
		} else {
			labels[round] = finalsRoundLabels[i+1]
		}
	}
	return labels
}

// maxRoundBySeason returns the highest round number observed per season.
func maxRoundBySeason(matches []schedule.Match) map[int]int {
	maxRounds := make(map[int]int)
	for _, m := range matches {
		if m.Round > maxRounds[m.Season] {
			maxRounds[m.Season] = m.Round
		}
	}
	return maxRounds
}
