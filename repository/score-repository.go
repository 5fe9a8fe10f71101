package repository

import (
	"gorm.io/gorm"
)

// Score rows are unique per (RoundId, HoleId). Resubmitting a hole
// overwrites the existing row instead of adding a second one.
type Score struct {
	Id                int     `gorm:"primaryKey"`
	RoundId           int     `gorm:"uniqueIndex:idx_score_round_hole;index;not null"`
	HoleId            int     `gorm:"uniqueIndex:idx_score_round_hole;not null"`
	Strokes           int     `gorm:"not null"`
	Putts             int     `gorm:"not null"`
	FairwayHit        bool    `gorm:"not null"`
	GreenInRegulation bool    `gorm:"not null"`
	PowerupUsed       bool    `gorm:"not null;default:false"`
	PowerupNotes      *string `gorm:"null"`

	Hole *Hole `gorm:"foreignKey:HoleId"`
}

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

func (r *ScoreRepository) GetScoreByRoundAndHole(roundId int, holeId int) (*Score, error) {
	var score Score
	result := r.DB.First(&score, &Score{RoundId: roundId, HoleId: holeId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &score, nil
}

func (r *ScoreRepository) GetScoresForRound(roundId int, preloads ...string) ([]*Score, error) {
	scores := make([]*Score, 0)
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Find(&scores, &Score{RoundId: roundId})
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

func (r *ScoreRepository) SaveScore(score *Score) (*Score, error) {
	result := r.DB.Save(score)
	if result.Error != nil {
		return nil, result.Error
	}
	return score, nil
}
