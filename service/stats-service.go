package service

import (
	"fairway/repository"
	"fairway/scoring"

	"gorm.io/gorm"
)

type StatsService struct {
	roundRepository      *repository.RoundRepository
	tournamentRepository *repository.TournamentRepository
	userRepository       *repository.UserRepository
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		roundRepository:      repository.NewRoundRepository(db),
		tournamentRepository: repository.NewTournamentRepository(db),
		userRepository:       repository.NewUserRepository(db),
	}
}

// GetUserStats aggregates career statistics over every round the user has
// played across all tournaments.
func (s *StatsService) GetUserStats(userId int) (*scoring.UserStats, error) {
	if _, err := s.userRepository.GetUserById(userId); err != nil {
		return nil, err
	}
	rounds, err := s.roundRepository.GetAllRoundsForUser(userId)
	if err != nil {
		return nil, err
	}
	wins, err := s.tournamentRepository.CountWinsForUser(userId)
	if err != nil {
		return nil, err
	}
	stats := scoring.ComputeUserStats(rounds, int(wins))
	return &stats, nil
}
