// Package progress inspects stored tournament records without
// rebuilding the full engine state. It answers lifecycle questions for
// listings: started, finished, how far along.
package progress

import (
	"fmt"
	"math"

	"github.com/SiRipo92/chess-manager/internal/models"
)

// StatusNotStarted is the listing label for a pending tournament.
const StatusNotStarted = "Non démarré"

// IsStarted reports whether the tournament was launched, judged from
// the stored timestamps and rounds.
func IsStarted(rec models.TournamentRecord) bool {
	return rec.StartedAt != "" || rec.CurrentRoundNumber > 0 || len(rec.Rounds) > 0
}

// IsFinished reports whether the tournament reached its final state:
// a finish timestamp or the stored status. Closed rounds alone are not
// enough, the first place may still be tied awaiting a tiebreak.
func IsFinished(rec models.TournamentRecord) bool {
	return rec.FinishedAt != "" || rec.Status == models.StatusFinished
}

// ProgressPercent returns completion as an integer percentage. With the
// standard 4 scheduled rounds the result snaps to the 0/25/50/75/100
// ladder; finished tournaments always report 100.
func ProgressPercent(rec models.TournamentRecord) int {
	if IsFinished(rec) {
		return 100
	}
	if !IsStarted(rec) {
		return 0
	}

	numberRounds := rec.NumberRounds
	if numberRounds <= 0 {
		numberRounds = 4
	}

	closed := 0
	for _, round := range rec.Rounds {
		if roundClosed(round) {
			closed++
		}
	}

	pct := int(math.Round(float64(closed) / float64(numberRounds) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// StatusLabel renders the listing status: "Terminé", "Non démarré", or
// "En cours {pct}%". A launched tournament with no closed round yet
// still reads "Non démarré".
func StatusLabel(rec models.TournamentRecord) string {
	if IsFinished(rec) {
		return string(models.StatusFinished)
	}
	pct := ProgressPercent(rec)
	if pct <= 0 {
		return StatusNotStarted
	}
	return fmt.Sprintf("%s %d%%", models.StatusInProgress, pct)
}

// roundClosed reports whether a stored round is over: either it carries
// an end timestamp, or every real match in it has a result. Byes count
// as scored by construction.
func roundClosed(round models.RoundRecord) bool {
	if round.EndTime != "" {
		return true
	}
	if len(round.Matches) == 0 {
		return false
	}
	for _, m := range round.Matches {
		if !matchScored(m) {
			return false
		}
	}
	return true
}

func matchScored(m models.MatchRecord) bool {
	if m.Player2 == nil {
		return true
	}
	return m.Result1 != "" || m.Result2 != "" || m.Score1 != 0 || m.Score2 != 0
}
