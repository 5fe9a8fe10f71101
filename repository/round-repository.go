package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Round aggregate columns are derived from the scores and recomputed on
// every submission, never edited directly.
type Round struct {
	Id                 int `gorm:"primaryKey"`
	TournamentId       int `gorm:"uniqueIndex:idx_round_identity;index;not null"`
	UserId             int `gorm:"uniqueIndex:idx_round_identity;not null"`
	Number             int `gorm:"uniqueIndex:idx_round_identity;not null"`
	TotalStrokes       int `gorm:"not null;default:0"`
	TotalPutts         int `gorm:"not null;default:0"`
	FairwaysHit        int `gorm:"not null;default:0"`
	GreensInRegulation int `gorm:"not null;default:0"`
	HolesCompleted     int `gorm:"not null;default:0"`

	Scores []*Score `gorm:"foreignKey:RoundId;constraint:OnDelete:CASCADE"`
}

type RoundRepository struct {
	DB *gorm.DB
}

func NewRoundRepository(db *gorm.DB) *RoundRepository {
	return &RoundRepository{DB: db}
}

func (r *RoundRepository) GetRound(tournamentId int, userId int, number int, preloads ...string) (*Round, error) {
	var round Round
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&round, &Round{TournamentId: tournamentId, UserId: userId, Number: number})
	if result.Error != nil {
		return nil, result.Error
	}
	return &round, nil
}

func (r *RoundRepository) GetRoundsForUserInTournament(tournamentId int, userId int, preloads ...string) ([]*Round, error) {
	rounds := make([]*Round, 0)
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("number ASC").Find(&rounds, &Round{TournamentId: tournamentId, UserId: userId})
	if result.Error != nil {
		return nil, result.Error
	}
	return rounds, nil
}

func (r *RoundRepository) GetRoundsForTournament(tournamentId int) ([]*Round, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetRoundsForTournament"))
	defer timer.ObserveDuration()
	rounds := make([]*Round, 0)
	result := r.DB.Preload("Scores").Find(&rounds, &Round{TournamentId: tournamentId})
	if result.Error != nil {
		return nil, result.Error
	}
	return rounds, nil
}

func (r *RoundRepository) GetAllRoundsForUser(userId int) ([]*Round, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAllRoundsForUser"))
	defer timer.ObserveDuration()
	rounds := make([]*Round, 0)
	result := r.DB.Find(&rounds, &Round{UserId: userId})
	if result.Error != nil {
		return nil, result.Error
	}
	return rounds, nil
}

func (r *RoundRepository) SaveRound(round *Round) (*Round, error) {
	result := r.DB.Save(round)
	if result.Error != nil {
		return nil, result.Error
	}
	return round, nil
}
