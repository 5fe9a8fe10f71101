package scoring

import (
	"fairway/repository"
)

type RoundTotals struct {
	TotalStrokes       int
	TotalPutts         int
	FairwaysHit        int
	GreensInRegulation int
	HolesCompleted     int
}

// ComputeRoundTotals rebuilds the round aggregates from the full set of hole
// scores. It is rerun after every submission, there is no incremental path.
func ComputeRoundTotals(holes []*repository.Hole, scores []*repository.Score) RoundTotals {
	holeById := HoleById(holes)
	totals := RoundTotals{}
	for _, score := range scores {
		hole, ok := holeById[score.HoleId]
		if !ok {
			continue
		}
		totals.TotalStrokes += score.Strokes
		totals.TotalPutts += score.Putts
		totals.HolesCompleted++
		if score.FairwayHit && CountsFairwayAttempt(hole) {
			totals.FairwaysHit++
		}
		if score.GreenInRegulation {
			totals.GreensInRegulation++
		}
	}
	return totals
}

// CountsFairwayAttempt reports whether the hole enters the fairway attempt
// denominator. Par 3 holes have no fairway to hit.
func CountsFairwayAttempt(hole *repository.Hole) bool {
	return hole.Par > 3
}

func HoleById(holes []*repository.Hole) map[int]*repository.Hole {
	holeById := make(map[int]*repository.Hole, len(holes))
	for _, hole := range holes {
		holeById[hole.Id] = hole
	}
	return holeById
}
