package service

import (
	"testing"

	"fairway/app_error"
	"fairway/repository"

	"github.com/stretchr/testify/assert"
)

func TestUserStatsWithoutRounds(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	statsService := NewStatsService(db)
	alice := tournament.Players[0]

	stats, err := statsService.GetUserStats(alice.Id)
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.RoundsPlayed)
	assert.Equal(t, 0.0, stats.FairwayPercentage, "a player without rounds gets zero, never NaN")
	assert.Equal(t, 0.0, stats.GreenPercentage)
	assert.Equal(t, 0.0, stats.AveragePutts)
	assert.Equal(t, 0, stats.TournamentWins)

	_, err = statsService.GetUserStats(999999)
	assert.Equal(t, 404, app_error.HTTPStatus(err), "unknown players are reported, not zeroed")
}

func TestUserStatsAggregatesRoundsAndWins(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	statsService := NewStatsService(db)
	alice := tournament.Players[0]

	playFullRound(t, scoreService, tournament, alice, 1, 0)
	db.Model(&repository.Tournament{}).Where("id = ?", tournament.Id).Update("winner_id", alice.Id)

	stats, err := statsService.GetUserStats(alice.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.RoundsPlayed)
	assert.Equal(t, 1, stats.TournamentWins)
	assert.Equal(t, 100.0, stats.FairwayPercentage, "every fairway of the 14 driving holes was hit")
	assert.Equal(t, 18.0, stats.AveragePutts)
}

func TestUserStatsSpanTournaments(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	tournamentService := NewTournamentService(db)
	statsService := NewStatsService(db)
	alice := tournament.Players[0]

	playFullRound(t, scoreService, tournament, alice, 1, 0)

	second, err := tournamentService.SaveTournament(&repository.Tournament{
		Name:          "Fall Classic",
		CourseId:      tournament.CourseId,
		ScoringSystem: repository.ScoringSystemStrokePlay,
		NumRounds:     1,
		MaxPlayers:    4,
	})
	if err != nil {
		t.Fatalf("Error creating tournament: %v", err)
	}
	if _, err := tournamentService.JoinTournament(second.Id, alice.Id); err != nil {
		t.Fatalf("Error joining tournament: %v", err)
	}
	second.Course = tournament.Course
	playFullRound(t, scoreService, tournament, alice, 2, 6)
	playFullRound(t, scoreService, second, alice, 1, 2)

	stats, err := statsService.GetUserStats(alice.Id)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.RoundsPlayed, "rounds from every tournament count")
}
