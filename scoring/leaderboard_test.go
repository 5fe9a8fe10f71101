package scoring

import (
	"fairway/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

// playRound builds a round through the aggregator, spreading diff strokes
// over par one hole at a time starting from hole 1.
func playRound(userId int, number int, holes []*repository.Hole, diff int, holesPlayed int) *repository.Round {
	scores := make([]*repository.Score, 0, holesPlayed)
	remaining := diff
	for i := 0; i < holesPlayed; i++ {
		strokes := holes[i].Par
		if remaining > 0 {
			strokes++
			remaining--
		} else if remaining < 0 {
			strokes--
			remaining++
		}
		scores = append(scores, scoreOn(holes[i], strokes, 2, holes[i].Par > 3, false))
	}
	totals := ComputeRoundTotals(holes, scores)
	return &repository.Round{
		TournamentId:       1,
		UserId:             userId,
		Number:             number,
		TotalStrokes:       totals.TotalStrokes,
		TotalPutts:         totals.TotalPutts,
		FairwaysHit:        totals.FairwaysHit,
		GreensInRegulation: totals.GreensInRegulation,
		HolesCompleted:     totals.HolesCompleted,
		Scores:             scores,
	}
}

func TestAssembleLeaderboardOrdersByTotalStrokes(t *testing.T) {
	holes := makeStandardHoles()
	players := []*repository.User{
		{Id: 1, DisplayName: "Alice"},
		{Id: 2, DisplayName: "Bob"},
		{Id: 3, DisplayName: "Carol"},
	}
	rounds := []*repository.Round{
		playRound(1, 1, holes, -2, 18),
		playRound(2, 1, holes, -4, 18),
	}

	entries := AssembleLeaderboard(players, rounds, holes, repository.ScoringSystemStrokePlay)

	assert.Len(t, entries, 3)
	assert.Equal(t, 2, entries[0].UserId, "Bob has the lowest total and leads")
	assert.Equal(t, 68, entries[0].TotalStrokes)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "-4", entries[0].ToPar)
	assert.Equal(t, 1, entries[1].UserId)
	assert.Equal(t, 70, entries[1].TotalStrokes)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 3, entries[2].UserId, "a player without scores sorts last")
	assert.False(t, entries[2].HasScore)
	assert.Equal(t, 0, entries[2].Rank)
	assert.Nil(t, entries[2].Net)
	assert.Equal(t, "", entries[2].ToPar)
}

func TestAssembleLeaderboardNetRequiresFullRound(t *testing.T) {
	holes := makeStandardHoles()
	players := []*repository.User{
		{Id: 1, DisplayName: "Alice"},
		{Id: 2, DisplayName: "Bob"},
	}
	rounds := []*repository.Round{
		playRound(1, 1, holes, 0, 17),
		playRound(2, 1, holes, 0, 18),
	}

	entries := AssembleLeaderboard(players, rounds, holes, repository.ScoringSystemHandicap)

	byUser := make(map[int]*Entry)
	for _, entry := range entries {
		byUser[entry.UserId] = entry
	}
	assert.Nil(t, byUser[1].Net, "17 completed holes must not produce a net score")
	if assert.NotNil(t, byUser[2].Net) {
		assert.Equal(t, 72-DefaultHandicapAllowance, *byUser[2].Net)
	}
}

func TestAssembleLeaderboardSharedRanks(t *testing.T) {
	holes := makeStandardHoles()
	players := []*repository.User{
		{Id: 1, DisplayName: "Dana"},
		{Id: 2, DisplayName: "Alex"},
		{Id: 3, DisplayName: "Eve"},
	}
	rounds := []*repository.Round{
		playRound(1, 1, holes, -2, 18),
		playRound(2, 1, holes, -2, 18),
		playRound(3, 1, holes, 2, 18),
	}

	entries := AssembleLeaderboard(players, rounds, holes, repository.ScoringSystemStrokePlay)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[1].Rank, "equal totals share the rank")
	assert.Equal(t, 3, entries[2].Rank, "the rank after a tie skips the shared position")
	assert.Equal(t, "Alex", entries[0].DisplayName, "tied players are ordered by name")
	assert.Equal(t, "Dana", entries[1].DisplayName)
}

func TestAssembleLeaderboardSplitsFrontAndBackNine(t *testing.T) {
	holes := makeStandardHoles()
	players := []*repository.User{{Id: 1, DisplayName: "Alice"}}
	rounds := []*repository.Round{playRound(1, 1, holes, 0, 18)}

	entries := AssembleLeaderboard(players, rounds, holes, repository.ScoringSystemStrokePlay)

	assert.Equal(t, 36, entries[0].FrontNine)
	assert.Equal(t, 36, entries[0].BackNine)
	assert.Equal(t, 72, entries[0].TotalStrokes)
	assert.Equal(t, "E", entries[0].ToPar)
}

func TestAssembleLeaderboardStablefordPoints(t *testing.T) {
	holes := makeStandardHoles()
	players := []*repository.User{
		{Id: 1, DisplayName: "Alice"},
		{Id: 2, DisplayName: "Bob"},
	}
	// with one allowance stroke per hole a gross par scores three points
	rounds := []*repository.Round{
		playRound(1, 1, holes, 0, 18),
		playRound(2, 1, holes, 18, 18),
	}

	entries := AssembleLeaderboard(players, rounds, holes, repository.ScoringSystemStableford)

	byUser := make(map[int]*Entry)
	for _, entry := range entries {
		byUser[entry.UserId] = entry
	}
	if assert.NotNil(t, byUser[1].Net) {
		assert.Equal(t, 54, *byUser[1].Net)
	}
	if assert.NotNil(t, byUser[2].Net) {
		assert.Equal(t, 36, *byUser[2].Net, "a gross bogey on every hole is a net par round")
	}
}

func TestAssembleLeaderboardSumsMultipleRounds(t *testing.T) {
	holes := makeStandardHoles()
	players := []*repository.User{{Id: 1, DisplayName: "Alice"}}
	rounds := []*repository.Round{
		playRound(1, 1, holes, 0, 18),
		playRound(1, 2, holes, 4, 18),
	}

	entries := AssembleLeaderboard(players, rounds, holes, repository.ScoringSystemStrokePlay)

	assert.Equal(t, 2, entries[0].RoundsPlayed)
	assert.Equal(t, 148, entries[0].TotalStrokes)
	assert.Equal(t, 36, entries[0].HolesCompleted)
	assert.Equal(t, "+4", entries[0].ToPar)
}

func TestFormatToPar(t *testing.T) {
	assert.Equal(t, "E", FormatToPar(0))
	assert.Equal(t, "+3", FormatToPar(3))
	assert.Equal(t, "-2", FormatToPar(-2))
}
