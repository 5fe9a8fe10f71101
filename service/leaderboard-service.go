package service

import (
	"fairway/repository"
	"fairway/scoring"

	"gorm.io/gorm"
)

type LeaderboardService struct {
	tournamentRepository *repository.TournamentRepository
	roundRepository      *repository.RoundRepository
	courseRepository     *repository.CourseRepository
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{
		tournamentRepository: repository.NewTournamentRepository(db),
		roundRepository:      repository.NewRoundRepository(db),
		courseRepository:     repository.NewCourseRepository(db),
	}
}

// GetLeaderboard assembles the standings for a tournament from the current
// database state. Freshness is handled by the short lived response cache on
// the route, reads here are always full rebuilds.
func (s *LeaderboardService) GetLeaderboard(tournamentId int) ([]*scoring.Entry, error) {
	tournament, err := s.tournamentRepository.GetTournamentById(tournamentId, "Players")
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundRepository.GetRoundsForTournament(tournament.Id)
	if err != nil {
		return nil, err
	}
	holes, err := s.courseRepository.GetHolesForCourse(tournament.CourseId)
	if err != nil {
		return nil, err
	}
	return scoring.AssembleLeaderboard(tournament.Players, rounds, holes, tournament.ScoringSystem), nil
}
