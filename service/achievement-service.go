package service

import (
	"time"

	"fairway/metrics"
	"fairway/repository"
	"fairway/scoring"

	"gorm.io/gorm"
)

type AchievementService struct {
	achievementRepository *repository.AchievementRepository
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{
		achievementRepository: repository.NewAchievementRepository(db),
	}
}

// GetCatalog returns all achievements, seeding the defaults on first use.
func (s *AchievementService) GetCatalog() ([]*repository.Achievement, error) {
	achievements, err := s.achievementRepository.FindAll()
	if err != nil {
		return nil, err
	}
	if len(achievements) > 0 {
		return achievements, nil
	}
	for _, achievement := range scoring.DefaultAchievements() {
		if _, err := s.achievementRepository.SaveAchievement(achievement); err != nil {
			return nil, err
		}
	}
	return s.achievementRepository.FindAll()
}

func (s *AchievementService) GetAchievementsForUser(userId int) ([]*repository.UserAchievement, error) {
	return s.achievementRepository.GetAchievementsForUser(userId)
}

// GrantForRound evaluates a completed round and grants every earned
// achievement the user does not hold yet.
func (s *AchievementService) GrantForRound(tournamentId int, round *repository.Round, scores []*repository.Score, holes []*repository.Hole) error {
	if _, err := s.GetCatalog(); err != nil {
		return err
	}
	keys := scoring.Evaluate(round, scores, holes)
	if len(keys) == 0 {
		return nil
	}
	achievements, err := s.achievementRepository.GetAchievementsByKeys(keys)
	if err != nil {
		return err
	}
	for _, achievement := range achievements {
		created, err := s.achievementRepository.GrantAchievement(&repository.UserAchievement{
			UserId:        round.UserId,
			AchievementId: achievement.Id,
			TournamentId:  tournamentId,
			RoundId:       round.Id,
			EarnedAt:      time.Now(),
		})
		if err != nil {
			return err
		}
		if created {
			metrics.AchievementsGrantedCounter.WithLabelValues(achievement.Key).Inc()
		}
	}
	return nil
}
