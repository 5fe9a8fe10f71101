package service

import (
	"errors"
	"fmt"

	"fairway/app_error"
	"fairway/metrics"
	"fairway/repository"
	"fairway/scoring"

	"gorm.io/gorm"
)

type ScoreService struct {
	scoreRepository      *repository.ScoreRepository
	roundRepository      *repository.RoundRepository
	courseRepository     *repository.CourseRepository
	tournamentRepository *repository.TournamentRepository
	achievementService   *AchievementService
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{
		scoreRepository:      repository.NewScoreRepository(db),
		roundRepository:      repository.NewRoundRepository(db),
		courseRepository:     repository.NewCourseRepository(db),
		tournamentRepository: repository.NewTournamentRepository(db),
		achievementService:   NewAchievementService(db),
	}
}

// SubmitScore records one hole score for the user's round, creating the
// round on first submission and overwriting the hole on resubmission. The
// round aggregates are rebuilt from all scores afterwards.
func (s *ScoreService) SubmitScore(tournament *repository.Tournament, user *repository.User, roundNumber int, score *repository.Score) (*repository.Round, error) {
	if roundNumber < 1 || roundNumber > tournament.NumRounds {
		return nil, app_error.Validation(fmt.Errorf("round number %d is out of range for this tournament", roundNumber))
	}
	if _, err := s.tournamentRepository.GetPlayerEntry(tournament.Id, user.Id); err != nil {
		return nil, app_error.Validation(fmt.Errorf("not registered for this tournament"))
	}
	holes, err := s.courseRepository.GetHolesForCourse(tournament.CourseId)
	if err != nil {
		return nil, err
	}
	hole, ok := scoring.HoleById(holes)[score.HoleId]
	if !ok {
		return nil, app_error.Validation(fmt.Errorf("hole %d does not belong to the tournament course", score.HoleId))
	}
	if err := validateScore(score, hole); err != nil {
		return nil, err
	}

	round, err := s.roundRepository.GetRound(tournament.Id, user.Id, roundNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		round, err = s.roundRepository.SaveRound(&repository.Round{
			TournamentId: tournament.Id,
			UserId:       user.Id,
			Number:       roundNumber,
		})
	}
	if err != nil {
		return nil, err
	}

	if existing, err := s.scoreRepository.GetScoreByRoundAndHole(round.Id, score.HoleId); err == nil {
		score.Id = existing.Id
	}
	score.RoundId = round.Id
	if _, err := s.scoreRepository.SaveScore(score); err != nil {
		return nil, err
	}
	metrics.ScoresSubmittedCounter.Inc()

	scores, err := s.scoreRepository.GetScoresForRound(round.Id)
	if err != nil {
		return nil, err
	}
	completedBefore := round.HolesCompleted
	totals := scoring.ComputeRoundTotals(holes, scores)
	round.TotalStrokes = totals.TotalStrokes
	round.TotalPutts = totals.TotalPutts
	round.FairwaysHit = totals.FairwaysHit
	round.GreensInRegulation = totals.GreensInRegulation
	round.HolesCompleted = totals.HolesCompleted
	round, err = s.roundRepository.SaveRound(round)
	if err != nil {
		return nil, err
	}

	if round.HolesCompleted == scoring.HolesPerRound {
		if completedBefore < scoring.HolesPerRound {
			metrics.RoundsCompletedCounter.Inc()
		}
		err = s.achievementService.GrantForRound(tournament.Id, round, scores, holes)
		if err != nil {
			return nil, err
		}
	}
	round.Scores = scores
	return round, nil
}

// validateScore rejects bad submissions before anything is written. A par 3
// has no fairway, so the flag is cleared there instead of rejected.
func validateScore(score *repository.Score, hole *repository.Hole) error {
	if score.Strokes < 1 {
		return app_error.Validation(fmt.Errorf("strokes must be at least 1"))
	}
	if score.Putts < 0 {
		return app_error.Validation(fmt.Errorf("putts cannot be negative"))
	}
	if score.Putts > score.Strokes {
		return app_error.Validation(fmt.Errorf("putts cannot exceed strokes"))
	}
	if score.PowerupUsed && (score.PowerupNotes == nil || *score.PowerupNotes == "") {
		return app_error.Validation(fmt.Errorf("powerup notes are required when a powerup was used"))
	}
	if !score.PowerupUsed {
		score.PowerupNotes = nil
	}
	if !scoring.CountsFairwayAttempt(hole) {
		score.FairwayHit = false
	}
	return nil
}

func (s *ScoreService) GetRound(tournamentId int, userId int, roundNumber int) (*repository.Round, error) {
	return s.roundRepository.GetRound(tournamentId, userId, roundNumber, "Scores")
}

func (s *ScoreService) GetRoundsForUser(tournamentId int, userId int) ([]*repository.Round, error) {
	return s.roundRepository.GetRoundsForUserInTournament(tournamentId, userId, "Scores")
}
