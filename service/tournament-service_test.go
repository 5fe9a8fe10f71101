package service

import (
	"errors"
	"testing"

	"fairway/app_error"
	"fairway/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestJoinTournamentEnforcesCapacityAndUniqueness(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	tournamentService := NewTournamentService(db)
	alice := tournament.Players[0]

	_, err := tournamentService.JoinTournament(tournament.Id, alice.Id)
	assert.Equal(t, 400, app_error.HTTPStatus(err), "joining twice is rejected")

	carol := &repository.User{DisplayName: "carol"}
	if err := db.Create(carol).Error; err != nil {
		t.Fatalf("Error creating user: %v", err)
	}

	db.Model(&repository.Tournament{}).Where("id = ?", tournament.Id).Update("max_players", 2)
	_, err = tournamentService.JoinTournament(tournament.Id, carol.Id)
	assert.Equal(t, 400, app_error.HTTPStatus(err), "a full tournament rejects new players")

	db.Model(&repository.Tournament{}).Where("id = ?", tournament.Id).Update("max_players", 3)
	entry, err := tournamentService.JoinTournament(tournament.Id, carol.Id)
	assert.NoError(t, err)
	assert.Equal(t, carol.Id, entry.UserId)

	players, err := tournamentService.GetPlayers(tournament.Id)
	assert.NoError(t, err)
	assert.Len(t, players, 3)
	assert.Equal(t, "carol", players[2].User.DisplayName, "players come back in signup order")
}

func TestLeaveTournament(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	tournamentService := NewTournamentService(db)
	alice := tournament.Players[0]

	assert.NoError(t, tournamentService.LeaveTournament(tournament.Id, alice.Id))

	players, err := tournamentService.GetPlayers(tournament.Id)
	assert.NoError(t, err)
	assert.Len(t, players, 1)

	err = tournamentService.LeaveTournament(tournament.Id, alice.Id)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "leaving twice reports the missing signup")
}

func TestTeeSheetAppliesFallbackChain(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	tournamentService := NewTournamentService(db)
	holes := tournament.Course.Holes

	// hole 1 plays from gold, a color the course has no distance for
	err := tournamentService.SetTeeSelections(tournament, []*repository.TournamentHoleTee{
		{HoleId: holes[0].Id, TeeColor: repository.TeeColorGold},
	})
	assert.NoError(t, err)

	tees, err := tournamentService.GetTeeSheet(tournament)
	assert.NoError(t, err)
	if !assert.Len(t, tees, 18) {
		return
	}
	assert.Equal(t, repository.TeeColorGold, tees[0].TeeColor)
	if assert.NotNil(t, tees[0].Yardage) {
		assert.Equal(t, *holes[0].YardageWhite, *tees[0].Yardage, "a color without a distance falls back to the white yardage")
	}
	assert.Equal(t, repository.TeeColorWhite, tees[1].TeeColor, "holes without a selection play from white")
	assert.Equal(t, 1, tees[0].Number, "the sheet is ordered by hole number")
}

func TestSetTeeSelectionsReplacesPreviousChoices(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	tournamentService := NewTournamentService(db)
	holes := tournament.Course.Holes

	err := tournamentService.SetTeeSelections(tournament, []*repository.TournamentHoleTee{
		{HoleId: holes[0].Id, TeeColor: repository.TeeColorBlue},
		{HoleId: holes[1].Id, TeeColor: repository.TeeColorRed},
	})
	assert.NoError(t, err)

	err = tournamentService.SetTeeSelections(tournament, []*repository.TournamentHoleTee{
		{HoleId: holes[1].Id, TeeColor: repository.TeeColorBlue},
	})
	assert.NoError(t, err)

	tees, err := tournamentService.GetTeeSheet(tournament)
	assert.NoError(t, err)
	assert.Equal(t, repository.TeeColorWhite, tees[0].TeeColor, "a replaced selection falls back to the default")
	assert.Equal(t, repository.TeeColorBlue, tees[1].TeeColor)
}

func TestSetTeeSelectionsValidates(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	tournamentService := NewTournamentService(db)
	holes := tournament.Course.Holes

	err := tournamentService.SetTeeSelections(tournament, []*repository.TournamentHoleTee{
		{HoleId: 999999, TeeColor: repository.TeeColorBlue},
	})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "the hole must belong to the tournament course")

	err = tournamentService.SetTeeSelections(tournament, []*repository.TournamentHoleTee{
		{HoleId: holes[0].Id, TeeColor: "purple"},
	})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "unknown tee colors are rejected")
}

func TestSaveTournamentKeepsOneCurrent(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	tournamentService := NewTournamentService(db)

	second, err := tournamentService.SaveTournament(&repository.Tournament{
		Name:          "Fall Classic",
		CourseId:      tournament.CourseId,
		ScoringSystem: repository.ScoringSystemStableford,
		NumRounds:     1,
		IsCurrent:     true,
		MaxPlayers:    4,
	})
	assert.NoError(t, err)

	current, err := tournamentService.GetCurrentTournament()
	assert.NoError(t, err)
	assert.Equal(t, second.Id, current.Id, "promoting a tournament demotes the previous current one")

	demoted, err := tournamentService.GetTournamentById(tournament.Id)
	assert.NoError(t, err)
	assert.False(t, demoted.IsCurrent)
}

func TestSaveTournamentValidates(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	tournamentService := NewTournamentService(db)

	_, err := tournamentService.SaveTournament(&repository.Tournament{
		Name:          "No Course Open",
		CourseId:      999999,
		ScoringSystem: repository.ScoringSystemStrokePlay,
		NumRounds:     1,
		MaxPlayers:    4,
	})
	assert.Equal(t, 400, app_error.HTTPStatus(err), "the course must exist")

	outsider := &repository.User{DisplayName: "carol"}
	if err := db.Create(outsider).Error; err != nil {
		t.Fatalf("Error creating user: %v", err)
	}
	tournament.WinnerId = &outsider.Id
	_, err = tournamentService.SaveTournament(tournament)
	assert.Equal(t, 400, app_error.HTTPStatus(err), "the winner must be a registered player")

	tournament.WinnerId = &tournament.Players[0].Id
	saved, err := tournamentService.SaveTournament(tournament)
	assert.NoError(t, err)
	assert.Equal(t, tournament.Players[0].Id, *saved.WinnerId)
}
