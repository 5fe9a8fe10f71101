package service

import (
	"testing"

	"fairway/app_error"
	"fairway/repository"
	"fairway/scoring"

	"github.com/stretchr/testify/assert"
)

func submit(t *testing.T, scoreService *ScoreService, tournament *repository.Tournament, user *repository.User, roundNumber int, score *repository.Score) *repository.Round {
	t.Helper()
	round, err := scoreService.SubmitScore(tournament, user, roundNumber, score)
	if err != nil {
		t.Fatalf("Error submitting score: %v", err)
	}
	return round
}

// playFullRound submits all 18 holes through the score service, spreading
// diff strokes over par one hole at a time starting from the first.
func playFullRound(t *testing.T, scoreService *ScoreService, tournament *repository.Tournament, user *repository.User, number int, diff int) *repository.Round {
	t.Helper()
	var round *repository.Round
	remaining := diff
	for _, hole := range tournament.Course.Holes {
		strokes := hole.Par
		if remaining > 0 {
			strokes++
			remaining--
		} else if remaining < 0 {
			strokes--
			remaining++
		}
		round = submit(t, scoreService, tournament, user, number, &repository.Score{
			HoleId:     hole.Id,
			Strokes:    strokes,
			Putts:      1,
			FairwayHit: hole.Par > 3,
		})
	}
	return round
}

func TestSubmitScoreCreatesRoundAndRecomputesTotals(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	alice := tournament.Players[0]
	holes := tournament.Course.Holes

	round := submit(t, scoreService, tournament, alice, 1, &repository.Score{
		HoleId:     holes[0].Id,
		Strokes:    5,
		Putts:      2,
		FairwayHit: true,
	})

	assert.Equal(t, 1, round.Number)
	assert.Equal(t, 5, round.TotalStrokes)
	assert.Equal(t, 2, round.TotalPutts)
	assert.Equal(t, 1, round.FairwaysHit)
	assert.Equal(t, 1, round.HolesCompleted)

	round = submit(t, scoreService, tournament, alice, 1, &repository.Score{
		HoleId:            holes[1].Id,
		Strokes:           6,
		Putts:             3,
		GreenInRegulation: true,
	})

	assert.Equal(t, 11, round.TotalStrokes, "the totals equal the sum of the stored scores")
	assert.Equal(t, 5, round.TotalPutts)
	assert.Equal(t, 1, round.GreensInRegulation)
	assert.Equal(t, 2, round.HolesCompleted)

	var roundCount int64
	db.Model(&repository.Round{}).Where("tournament_id = ? AND user_id = ?", tournament.Id, alice.Id).Count(&roundCount)
	assert.Equal(t, int64(1), roundCount, "both submissions land on the same lazily created round")
}

func TestSubmitScoreEditsHoleInPlace(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	alice := tournament.Players[0]
	hole := tournament.Course.Holes[3]

	submit(t, scoreService, tournament, alice, 1, &repository.Score{
		HoleId:  hole.Id,
		Strokes: 7,
		Putts:   3,
	})
	round := submit(t, scoreService, tournament, alice, 1, &repository.Score{
		HoleId:     hole.Id,
		Strokes:    4,
		Putts:      1,
		FairwayHit: true,
	})

	assert.Equal(t, 4, round.TotalStrokes, "the corrected score replaces the first submission")
	assert.Equal(t, 1, round.HolesCompleted)

	scores := make([]*repository.Score, 0)
	db.Find(&scores, &repository.Score{RoundId: round.Id, HoleId: hole.Id})
	assert.Len(t, scores, 1, "resubmitting a hole must not create a second row")
	assert.Equal(t, 4, scores[0].Strokes, "the last write wins")
	assert.True(t, scores[0].FairwayHit)
}

func TestSubmitScoreForcesFairwayFalseOnParThree(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	alice := tournament.Players[0]
	parThree := tournament.Course.Holes[2]
	assert.Equal(t, 3, parThree.Par)

	round := submit(t, scoreService, tournament, alice, 1, &repository.Score{
		HoleId:            parThree.Id,
		Strokes:           3,
		Putts:             1,
		FairwayHit:        true,
		GreenInRegulation: true,
	})

	assert.Equal(t, 0, round.FairwaysHit, "a par 3 never counts as a fairway attempt")
	assert.Equal(t, 1, round.GreensInRegulation)
	stored := &repository.Score{}
	db.First(stored, &repository.Score{RoundId: round.Id, HoleId: parThree.Id})
	assert.False(t, stored.FairwayHit, "the flag is cleared before the score is stored")
}

func TestSubmitScoreRejectsInvalidInput(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	alice := tournament.Players[0]
	hole := tournament.Course.Holes[0]

	_, err := scoreService.SubmitScore(tournament, alice, 1, &repository.Score{HoleId: hole.Id, Strokes: 0})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "zero strokes are rejected")

	_, err = scoreService.SubmitScore(tournament, alice, 1, &repository.Score{HoleId: hole.Id, Strokes: 4, Putts: 5})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "putts cannot exceed strokes")

	_, err = scoreService.SubmitScore(tournament, alice, 1, &repository.Score{HoleId: hole.Id, Strokes: 4, PowerupUsed: true})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "a used powerup needs notes")

	_, err = scoreService.SubmitScore(tournament, alice, 1, &repository.Score{HoleId: 999999, Strokes: 4})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "the hole must belong to the tournament course")

	_, err = scoreService.SubmitScore(tournament, alice, 3, &repository.Score{HoleId: hole.Id, Strokes: 4})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "the round number is limited by the tournament")

	carol := &repository.User{DisplayName: "carol"}
	db.Create(carol)
	_, err = scoreService.SubmitScore(tournament, carol, 1, &repository.Score{HoleId: hole.Id, Strokes: 4})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "unregistered players cannot score")

	var roundCount int64
	db.Model(&repository.Round{}).Count(&roundCount)
	assert.Equal(t, int64(0), roundCount, "rejected submissions never create a round")
}

func TestSubmitScoreClearsStaleNotes(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	alice := tournament.Players[0]
	hole := tournament.Course.Holes[0]
	notes := "gust of wind carried it"

	round := submit(t, scoreService, tournament, alice, 1, &repository.Score{
		HoleId:       hole.Id,
		Strokes:      4,
		Putts:        2,
		PowerupUsed:  true,
		PowerupNotes: &notes,
	})
	stored := &repository.Score{}
	db.First(stored, &repository.Score{RoundId: round.Id, HoleId: hole.Id})
	if assert.NotNil(t, stored.PowerupNotes) {
		assert.Equal(t, notes, *stored.PowerupNotes)
	}

	// unsetting the powerup on an edit drops the notes with it
	submit(t, scoreService, tournament, alice, 1, &repository.Score{
		HoleId:       hole.Id,
		Strokes:      4,
		Putts:        2,
		PowerupNotes: &notes,
	})
	stored = &repository.Score{}
	db.First(stored, &repository.Score{RoundId: round.Id, HoleId: hole.Id})
	assert.False(t, stored.PowerupUsed)
	assert.Nil(t, stored.PowerupNotes)
}

func TestSubmitScoreGrantsAchievementsOnFullRound(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	achievementService := NewAchievementService(db)
	alice := tournament.Players[0]

	for _, hole := range tournament.Course.Holes {
		submit(t, scoreService, tournament, alice, 1, &repository.Score{
			HoleId:  hole.Id,
			Strokes: hole.Par,
			Putts:   2,
		})
	}

	earned, err := achievementService.GetAchievementsForUser(alice.Id)
	assert.NoError(t, err)
	if assert.Len(t, earned, 1, "an even par round with 36 putts is bogey free and nothing else") {
		assert.Equal(t, scoring.AchievementBogeyFree, earned[0].Achievement.Key)
		assert.Equal(t, tournament.Id, earned[0].TournamentId)
	}

	// correcting a hole after completion re-evaluates without double grants
	hole := tournament.Course.Holes[0]
	submit(t, scoreService, tournament, alice, 1, &repository.Score{
		HoleId:  hole.Id,
		Strokes: hole.Par,
		Putts:   1,
	})
	earned, err = achievementService.GetAchievementsForUser(alice.Id)
	assert.NoError(t, err)
	assert.Len(t, earned, 1)
}

func TestGetRoundsForUserReturnsOwnRoundsInOrder(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	scoreService := NewScoreService(db)
	alice := tournament.Players[0]
	bob := tournament.Players[1]

	playFullRound(t, scoreService, tournament, alice, 2, 4)
	playFullRound(t, scoreService, tournament, alice, 1, 0)
	playFullRound(t, scoreService, tournament, bob, 1, -1)

	rounds, err := scoreService.GetRoundsForUser(tournament.Id, alice.Id)
	assert.NoError(t, err)
	if assert.Len(t, rounds, 2, "only the player's own rounds are returned") {
		assert.Equal(t, 1, rounds[0].Number)
		assert.Equal(t, 72, rounds[0].TotalStrokes)
		assert.Equal(t, 2, rounds[1].Number)
		assert.Equal(t, 76, rounds[1].TotalStrokes)
		assert.Len(t, rounds[0].Scores, 18)
	}
}
