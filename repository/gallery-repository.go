package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type GalleryPhoto struct {
	Id           int       `gorm:"primaryKey"`
	TournamentId int       `gorm:"index;not null"`
	UserId       int       `gorm:"not null"`
	ObjectKey    string    `gorm:"not null"`
	Url          string    `gorm:"not null"`
	Caption      string    `gorm:"null"`
	Timestamp    time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserId"`
}

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) GetPhotosForTournament(tournamentId int) ([]*GalleryPhoto, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetPhotosForTournament"))
	defer timer.ObserveDuration()
	photos := make([]*GalleryPhoto, 0)
	result := r.DB.Preload("User").Order("timestamp DESC").Find(&photos, &GalleryPhoto{TournamentId: tournamentId})
	if result.Error != nil {
		return nil, result.Error
	}
	return photos, nil
}

func (r *GalleryRepository) GetPhotoById(photoId int) (*GalleryPhoto, error) {
	var photo GalleryPhoto
	result := r.DB.First(&photo, photoId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &photo, nil
}

func (r *GalleryRepository) SavePhoto(photo *GalleryPhoto) (*GalleryPhoto, error) {
	result := r.DB.Save(photo)
	if result.Error != nil {
		return nil, result.Error
	}
	return photo, nil
}

func (r *GalleryRepository) DeletePhoto(photoId int) error {
	return r.DB.Delete(&GalleryPhoto{}, photoId).Error
}
