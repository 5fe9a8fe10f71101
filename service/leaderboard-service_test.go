package service

import (
	"testing"
	"time"

	"fairway/repository"
	"fairway/scoring"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardEndToEnd(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	leaderboardService := NewLeaderboardService(db)
	alice := tournament.Players[0]
	bob := tournament.Players[1]

	// alice plays the par 72 course in 75 strokes, bob never tees off
	playFullRound(t, scoreService, tournament, alice, 1, 3)

	entries, err := leaderboardService.GetLeaderboard(tournament.Id)
	assert.NoError(t, err)
	if !assert.Len(t, entries, 2) {
		return
	}
	assert.Equal(t, alice.Id, entries[0].UserId)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 75, entries[0].TotalStrokes)
	assert.Equal(t, "+3", entries[0].ToPar)
	assert.Equal(t, 39, entries[0].FrontNine, "the three extra strokes all fell on the front nine")
	assert.Equal(t, 36, entries[0].BackNine)
	assert.Equal(t, 18, entries[0].HolesCompleted)
	if assert.NotNil(t, entries[0].Net) {
		assert.Equal(t, 75-scoring.DefaultHandicapAllowance, *entries[0].Net)
	}

	assert.Equal(t, bob.Id, entries[1].UserId, "a player without scores sorts last")
	assert.False(t, entries[1].HasScore)
	assert.Equal(t, 0, entries[1].Rank)
	assert.Nil(t, entries[1].Net)
}

func TestLeaderboardOrdersPlayersByTotal(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	leaderboardService := NewLeaderboardService(db)
	alice := tournament.Players[0]
	bob := tournament.Players[1]

	carol := &repository.User{DisplayName: "carol"}
	if err := db.Create(carol).Error; err != nil {
		t.Fatalf("Error creating user: %v", err)
	}
	entry := &repository.TournamentPlayer{TournamentId: tournament.Id, UserId: carol.Id, Timestamp: time.Now()}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("Error registering player: %v", err)
	}

	playFullRound(t, scoreService, tournament, alice, 1, -2)
	playFullRound(t, scoreService, tournament, bob, 1, -4)

	entries, err := leaderboardService.GetLeaderboard(tournament.Id)
	assert.NoError(t, err)
	if !assert.Len(t, entries, 3) {
		return
	}
	assert.Equal(t, bob.Id, entries[0].UserId, "the lowest total leads")
	assert.Equal(t, 68, entries[0].TotalStrokes)
	assert.Equal(t, "-4", entries[0].ToPar)
	assert.Equal(t, alice.Id, entries[1].UserId)
	assert.Equal(t, 70, entries[1].TotalStrokes)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, carol.Id, entries[2].UserId)
	assert.False(t, entries[2].HasScore)
}

func TestLeaderboardSumsRoundsOfMultiRoundTournament(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	leaderboardService := NewLeaderboardService(db)
	alice := tournament.Players[0]

	playFullRound(t, scoreService, tournament, alice, 1, 0)
	playFullRound(t, scoreService, tournament, alice, 2, 4)

	entries, err := leaderboardService.GetLeaderboard(tournament.Id)
	assert.NoError(t, err)
	assert.Equal(t, 148, entries[0].TotalStrokes, "both rounds count towards the standing")
	assert.Equal(t, 36, entries[0].HolesCompleted)
	assert.Equal(t, 2, entries[0].RoundsPlayed)
	assert.Equal(t, "+4", entries[0].ToPar)
}

func TestLeaderboardUsesTournamentScoringSystem(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	leaderboardService := NewLeaderboardService(db)
	alice := tournament.Players[0]

	db.Model(&repository.Tournament{}).Where("id = ?", tournament.Id).Update("scoring_system", repository.ScoringSystemStableford)
	playFullRound(t, scoreService, tournament, alice, 1, 0)

	entries, err := leaderboardService.GetLeaderboard(tournament.Id)
	assert.NoError(t, err)
	if assert.NotNil(t, entries[0].Net) {
		assert.Equal(t, 54, *entries[0].Net, "a gross par round is worth three stableford points per hole")
	}
}

func TestLeaderboardUnknownTournament(t *testing.T) {
	defer TearDown()
	leaderboardService := NewLeaderboardService(db)

	_, err := leaderboardService.GetLeaderboard(999999)
	assert.Error(t, err, "an unknown tournament is reported, not an empty board")
}
