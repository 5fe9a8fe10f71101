package scoring

import (
	"fairway/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

// standard 18 hole layout, par 72 with four par 3 and four par 5 holes
var standardPars = []int{4, 5, 3, 4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4}

func makeStandardHoles() []*repository.Hole {
	holes := make([]*repository.Hole, 0, len(standardPars))
	for i, par := range standardPars {
		yardage := 300 + 10*i
		holes = append(holes, &repository.Hole{
			Id:           100 + i + 1,
			CourseId:     1,
			Number:       i + 1,
			Par:          par,
			HandicapRank: i + 1,
			YardageWhite: &yardage,
		})
	}
	return holes
}

func scoreOn(hole *repository.Hole, strokes int, putts int, fairwayHit bool, green bool) *repository.Score {
	return &repository.Score{
		HoleId:            hole.Id,
		Strokes:           strokes,
		Putts:             putts,
		FairwayHit:        fairwayHit,
		GreenInRegulation: green,
	}
}

func TestComputeRoundTotalsSumsAllScoredHoles(t *testing.T) {
	holes := makeStandardHoles()
	scores := []*repository.Score{
		scoreOn(holes[0], 4, 2, true, true),
		scoreOn(holes[1], 6, 2, false, false),
		scoreOn(holes[3], 5, 3, true, false),
	}

	totals := ComputeRoundTotals(holes, scores)

	assert.Equal(t, 15, totals.TotalStrokes)
	assert.Equal(t, 7, totals.TotalPutts)
	assert.Equal(t, 3, totals.HolesCompleted)
	assert.Equal(t, 2, totals.FairwaysHit)
	assert.Equal(t, 1, totals.GreensInRegulation)
}

func TestComputeRoundTotalsWithoutScores(t *testing.T) {
	totals := ComputeRoundTotals(makeStandardHoles(), []*repository.Score{})

	assert.Equal(t, RoundTotals{}, totals)
}

func TestComputeRoundTotalsIgnoresFairwayOnParThree(t *testing.T) {
	holes := makeStandardHoles()
	parThree := holes[2]
	assert.Equal(t, 3, parThree.Par)

	// a fairway flag on a par 3 must not count as an attempt hit
	totals := ComputeRoundTotals(holes, []*repository.Score{
		scoreOn(parThree, 3, 1, true, true),
	})

	assert.Equal(t, 0, totals.FairwaysHit)
	assert.Equal(t, 1, totals.GreensInRegulation)
}

func TestComputeRoundTotalsSkipsUnknownHoles(t *testing.T) {
	holes := makeStandardHoles()
	totals := ComputeRoundTotals(holes, []*repository.Score{
		scoreOn(holes[0], 4, 2, false, false),
		{HoleId: 9999, Strokes: 10, Putts: 5},
	})

	assert.Equal(t, 4, totals.TotalStrokes)
	assert.Equal(t, 1, totals.HolesCompleted)
}
