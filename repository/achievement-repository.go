package repository

import (
	"time"

	"gorm.io/gorm"
)

type IconKey string

const (
	IconTrophy IconKey = "trophy"
	IconBird   IconKey = "bird"
	IconEagle  IconKey = "eagle"
	IconShield IconKey = "shield"
	IconPutter IconKey = "putter"
	IconTarget IconKey = "target"
	IconMedal  IconKey = "medal"
)

var validIconKeys = map[IconKey]bool{
	IconTrophy: true,
	IconBird:   true,
	IconEagle:  true,
	IconShield: true,
	IconPutter: true,
	IconTarget: true,
	IconMedal:  true,
}

// NormalizeIcon maps unknown icon keys to the medal fallback so clients
// never receive an icon they cannot render.
func NormalizeIcon(icon IconKey) IconKey {
	if validIconKeys[icon] {
		return icon
	}
	return IconMedal
}

type Achievement struct {
	Id          int     `gorm:"primaryKey"`
	Key         string  `gorm:"uniqueIndex;not null"`
	Name        string  `gorm:"not null"`
	Description string  `gorm:"not null"`
	Icon        IconKey `gorm:"not null"`
}

type UserAchievement struct {
	UserId        int       `gorm:"primaryKey"`
	AchievementId int       `gorm:"primaryKey"`
	TournamentId  int       `gorm:"not null"`
	RoundId       int       `gorm:"not null"`
	EarnedAt      time.Time `gorm:"not null"`

	Achievement *Achievement `gorm:"foreignKey:AchievementId"`
}

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindAll() ([]*Achievement, error) {
	achievements := make([]*Achievement, 0)
	result := r.DB.Order("id ASC").Find(&achievements)
	if result.Error != nil {
		return nil, result.Error
	}
	return achievements, nil
}

func (r *AchievementRepository) GetAchievementsByKeys(keys []string) ([]*Achievement, error) {
	achievements := make([]*Achievement, 0)
	result := r.DB.Find(&achievements, "key in ?", keys)
	if result.Error != nil {
		return nil, result.Error
	}
	return achievements, nil
}

func (r *AchievementRepository) GetAchievementsForUser(userId int) ([]*UserAchievement, error) {
	earned := make([]*UserAchievement, 0)
	result := r.DB.Preload("Achievement").Order("earned_at DESC").Find(&earned, &UserAchievement{UserId: userId})
	if result.Error != nil {
		return nil, result.Error
	}
	return earned, nil
}

func (r *AchievementRepository) SaveAchievement(achievement *Achievement) (*Achievement, error) {
	result := r.DB.Save(achievement)
	if result.Error != nil {
		return nil, result.Error
	}
	return achievement, nil
}

// GrantAchievement reports whether a new grant was created. Users holding
// the achievement already keep their original grant.
func (r *AchievementRepository) GrantAchievement(grant *UserAchievement) (bool, error) {
	existing := UserAchievement{}
	result := r.DB.First(&existing, &UserAchievement{UserId: grant.UserId, AchievementId: grant.AchievementId})
	if result.Error == nil {
		return false, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return false, result.Error
	}
	err := r.DB.Create(grant).Error
	if err != nil {
		return false, err
	}
	return true, nil
}
