package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type ScoringSystem string

const (
	ScoringSystemStrokePlay ScoringSystem = "stroke_play"
	ScoringSystemHandicap   ScoringSystem = "handicap"
	ScoringSystemStableford ScoringSystem = "stableford"
)

type Tournament struct {
	Id            int           `gorm:"primaryKey"`
	Name          string        `gorm:"not null"`
	CourseId      int           `gorm:"index;not null"`
	ScoringSystem ScoringSystem `gorm:"type:fairway.scoring_system;not null;default:'stroke_play'"`
	NumRounds     int           `gorm:"not null;default:1"`
	IsCurrent     bool          `gorm:"not null"`
	StartTime     time.Time     `gorm:"null"`
	EndTime       time.Time     `gorm:"null"`
	MaxPlayers    int           `gorm:"not null"`
	WinnerId      *int          `gorm:"null"`

	Course  *Course `gorm:"foreignKey:CourseId"`
	Players []*User `gorm:"many2many:tournament_players"`
}

type TournamentPlayer struct {
	TournamentId int       `gorm:"primaryKey"`
	UserId       int       `gorm:"primaryKey"`
	Timestamp    time.Time `gorm:"not null;default:now()"`

	User *User `gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
}

// TournamentHoleTee pins the tee for one hole. Holes without a row play
// from the white tees.
type TournamentHoleTee struct {
	TournamentId int      `gorm:"primaryKey"`
	HoleId       int      `gorm:"primaryKey"`
	TeeColor     TeeColor `gorm:"type:fairway.tee_color;not null;default:'white'"`
}

type TournamentRepository struct {
	DB *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) *TournamentRepository {
	return &TournamentRepository{DB: db}
}

func (r *TournamentRepository) GetCurrentTournament(preloads ...string) (*Tournament, error) {
	var tournament Tournament
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Where("is_current = ?", true).First(&tournament)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tournament, nil
}

func (r *TournamentRepository) GetTournamentById(tournamentId int, preloads ...string) (*Tournament, error) {
	var tournament Tournament
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&tournament, tournamentId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tournament, nil
}

func (r *TournamentRepository) FindAll(preloads ...string) ([]*Tournament, error) {
	tournaments := make([]*Tournament, 0)
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("start_time DESC").Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}
	return tournaments, nil
}

func (r *TournamentRepository) Save(tournament *Tournament) (*Tournament, error) {
	if tournament.IsCurrent {
		err := r.InvalidateCurrentTournament(tournament.Id)
		if err != nil {
			return nil, err
		}
	}
	result := r.DB.Save(tournament)
	if result.Error != nil {
		return nil, result.Error
	}
	return tournament, nil
}

// InvalidateCurrentTournament demotes any other tournament marked current.
// Only one tournament may be current at a time.
func (r *TournamentRepository) InvalidateCurrentTournament(exceptId int) error {
	result := r.DB.Model(&Tournament{}).Where("is_current = ? AND id != ?", true, exceptId).Update("is_current", false)
	return result.Error
}

func (r *TournamentRepository) Delete(tournamentId int) error {
	return r.DB.Delete(&Tournament{}, tournamentId).Error
}

func (r *TournamentRepository) GetPlayersForTournament(tournamentId int) ([]*TournamentPlayer, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetPlayersForTournament"))
	defer timer.ObserveDuration()
	players := make([]*TournamentPlayer, 0)
	result := r.DB.Preload("User").Order("timestamp ASC").Find(&players, &TournamentPlayer{TournamentId: tournamentId})
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

func (r *TournamentRepository) GetPlayerEntry(tournamentId int, userId int) (*TournamentPlayer, error) {
	var player TournamentPlayer
	result := r.DB.First(&player, &TournamentPlayer{TournamentId: tournamentId, UserId: userId})
	if result.Error != nil {
		return nil, result.Error
	}
	return &player, nil
}

func (r *TournamentRepository) CountPlayers(tournamentId int) (int64, error) {
	var count int64
	result := r.DB.Model(&TournamentPlayer{}).Where("tournament_id = ?", tournamentId).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *TournamentRepository) AddPlayer(player *TournamentPlayer) (*TournamentPlayer, error) {
	result := r.DB.Save(player)
	if result.Error != nil {
		return nil, result.Error
	}
	return player, nil
}

func (r *TournamentRepository) RemovePlayer(tournamentId int, userId int) error {
	result := r.DB.Delete(&TournamentPlayer{}, &TournamentPlayer{TournamentId: tournamentId, UserId: userId})
	return result.Error
}

func (r *TournamentRepository) GetTeeSelections(tournamentId int) ([]*TournamentHoleTee, error) {
	selections := make([]*TournamentHoleTee, 0)
	result := r.DB.Find(&selections, &TournamentHoleTee{TournamentId: tournamentId})
	if result.Error != nil {
		return nil, result.Error
	}
	return selections, nil
}

func (r *TournamentRepository) ReplaceTeeSelections(tournamentId int, selections []*TournamentHoleTee) error {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("ReplaceTeeSelections"))
	defer timer.ObserveDuration()

	err := r.DB.Delete(&TournamentHoleTee{}, &TournamentHoleTee{TournamentId: tournamentId}).Error
	if err != nil {
		return err
	}
	if len(selections) == 0 {
		return nil
	}
	for _, selection := range selections {
		selection.TournamentId = tournamentId
	}
	return r.DB.CreateInBatches(selections, 500).Error
}

func (r *TournamentRepository) CountWinsForUser(userId int) (int64, error) {
	var count int64
	result := r.DB.Model(&Tournament{}).Where("winner_id = ?", userId).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
