package scoring

import (
	"fairway/repository"
	"fairway/utils"
)

// Attempt denominators assume a standard 18 hole layout with four par 3
// holes, so a full round offers 14 fairways and 18 greens.
const (
	FairwayAttemptsPerRound = 14
	HolesPerRound           = 18
)

type UserStats struct {
	RoundsPlayed      int
	TournamentWins    int
	AveragePutts      float64
	FairwayPercentage float64
	GreenPercentage   float64
}

// ComputeUserStats aggregates career statistics over all of a player's
// rounds. A player without rounds gets zero percentages, never NaN.
func ComputeUserStats(rounds []*repository.Round, wins int) UserStats {
	stats := UserStats{
		RoundsPlayed:   len(rounds),
		TournamentWins: wins,
	}
	if len(rounds) == 0 {
		return stats
	}
	totalPutts := utils.SumBy(rounds, func(round *repository.Round) int {
		return round.TotalPutts
	})
	fairwaysHit := utils.SumBy(rounds, func(round *repository.Round) int {
		return round.FairwaysHit
	})
	greens := utils.SumBy(rounds, func(round *repository.Round) int {
		return round.GreensInRegulation
	})
	stats.AveragePutts = float64(totalPutts) / float64(len(rounds))
	stats.FairwayPercentage = 100 * float64(fairwaysHit) / float64(len(rounds)*FairwayAttemptsPerRound)
	stats.GreenPercentage = 100 * float64(greens) / float64(len(rounds)*HolesPerRound)
	return stats
}
