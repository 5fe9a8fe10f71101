package service

import (
	"fmt"
	"time"

	"fairway/app_error"
	"fairway/metrics"
	"fairway/repository"
	"fairway/scoring"
	"fairway/utils"

	"gorm.io/gorm"
)

type TournamentService struct {
	tournamentRepository *repository.TournamentRepository
	courseRepository     *repository.CourseRepository
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{
		tournamentRepository: repository.NewTournamentRepository(db),
		courseRepository:     repository.NewCourseRepository(db),
	}
}

var validScoringSystems = map[repository.ScoringSystem]bool{
	repository.ScoringSystemStrokePlay: true,
	repository.ScoringSystemHandicap:   true,
	repository.ScoringSystemStableford: true,
}

var validTeeColors = map[repository.TeeColor]bool{
	repository.TeeColorWhite: true,
	repository.TeeColorBlue:  true,
	repository.TeeColorRed:   true,
	repository.TeeColorGold:  true,
}

func (s *TournamentService) GetAllTournaments(preloads ...string) ([]*repository.Tournament, error) {
	return s.tournamentRepository.FindAll(preloads...)
}

func (s *TournamentService) GetTournamentById(tournamentId int, preloads ...string) (*repository.Tournament, error) {
	return s.tournamentRepository.GetTournamentById(tournamentId, preloads...)
}

func (s *TournamentService) GetCurrentTournament(preloads ...string) (*repository.Tournament, error) {
	return s.tournamentRepository.GetCurrentTournament(preloads...)
}

func (s *TournamentService) SaveTournament(tournament *repository.Tournament) (*repository.Tournament, error) {
	if tournament.Name == "" {
		return nil, app_error.Validation(fmt.Errorf("tournament name must not be empty"))
	}
	if !validScoringSystems[tournament.ScoringSystem] {
		return nil, app_error.Validation(fmt.Errorf("unknown scoring system %s", tournament.ScoringSystem))
	}
	if tournament.NumRounds < 1 {
		return nil, app_error.Validation(fmt.Errorf("a tournament needs at least one round"))
	}
	if tournament.MaxPlayers < 1 {
		return nil, app_error.Validation(fmt.Errorf("a tournament needs room for at least one player"))
	}
	if _, err := s.courseRepository.GetCourseById(tournament.CourseId); err != nil {
		return nil, app_error.Validation(fmt.Errorf("course %d does not exist", tournament.CourseId))
	}
	if tournament.WinnerId != nil {
		if _, err := s.tournamentRepository.GetPlayerEntry(tournament.Id, *tournament.WinnerId); err != nil {
			return nil, app_error.Validation(fmt.Errorf("the winner must be a tournament player"))
		}
	}
	return s.tournamentRepository.Save(tournament)
}

func (s *TournamentService) DeleteTournament(tournamentId int) error {
	_, err := s.tournamentRepository.GetTournamentById(tournamentId)
	if err != nil {
		return err
	}
	return s.tournamentRepository.Delete(tournamentId)
}

func (s *TournamentService) GetPlayers(tournamentId int) ([]*repository.TournamentPlayer, error) {
	return s.tournamentRepository.GetPlayersForTournament(tournamentId)
}

func (s *TournamentService) JoinTournament(tournamentId int, userId int) (*repository.TournamentPlayer, error) {
	tournament, err := s.tournamentRepository.GetTournamentById(tournamentId)
	if err != nil {
		return nil, err
	}
	if _, err := s.tournamentRepository.GetPlayerEntry(tournamentId, userId); err == nil {
		return nil, app_error.Validation(fmt.Errorf("already registered for this tournament"))
	}
	count, err := s.tournamentRepository.CountPlayers(tournamentId)
	if err != nil {
		return nil, err
	}
	if count >= int64(tournament.MaxPlayers) {
		return nil, app_error.Validation(fmt.Errorf("tournament is full"))
	}
	entry, err := s.tournamentRepository.AddPlayer(&repository.TournamentPlayer{
		TournamentId: tournamentId,
		UserId:       userId,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return nil, err
	}
	metrics.SignupsCounter.Inc()
	return entry, nil
}

func (s *TournamentService) LeaveTournament(tournamentId int, userId int) error {
	_, err := s.tournamentRepository.GetPlayerEntry(tournamentId, userId)
	if err != nil {
		return err
	}
	return s.tournamentRepository.RemovePlayer(tournamentId, userId)
}

// ResolvedTee is one line of the tee sheet, the color and distance a hole
// is actually played from.
type ResolvedTee struct {
	HoleId   int
	Number   int
	Par      int
	TeeColor repository.TeeColor
	Yardage  *int
}

func (s *TournamentService) GetTeeSheet(tournament *repository.Tournament) ([]*ResolvedTee, error) {
	holes, err := s.courseRepository.GetHolesForCourse(tournament.CourseId)
	if err != nil {
		return nil, err
	}
	selections, err := s.tournamentRepository.GetTeeSelections(tournament.Id)
	if err != nil {
		return nil, err
	}
	return utils.Map(holes, func(hole *repository.Hole) *ResolvedTee {
		color := scoring.TeeColorFor(selections, hole.Id)
		return &ResolvedTee{
			HoleId:   hole.Id,
			Number:   hole.Number,
			Par:      hole.Par,
			TeeColor: color,
			Yardage:  scoring.EffectiveYardage(hole, color),
		}
	}), nil
}

func (s *TournamentService) SetTeeSelections(tournament *repository.Tournament, selections []*repository.TournamentHoleTee) error {
	holes, err := s.courseRepository.GetHolesForCourse(tournament.CourseId)
	if err != nil {
		return err
	}
	holeById := scoring.HoleById(holes)
	for _, selection := range selections {
		if _, ok := holeById[selection.HoleId]; !ok {
			return app_error.Validation(fmt.Errorf("hole %d does not belong to the tournament course", selection.HoleId))
		}
		if !validTeeColors[selection.TeeColor] {
			return app_error.Validation(fmt.Errorf("unknown tee color %s", selection.TeeColor))
		}
	}
	return s.tournamentRepository.ReplaceTeeSelections(tournament.Id, selections)
}
