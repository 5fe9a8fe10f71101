package service

import (
	"fmt"
	"time"

	"fairway/app_error"
	"fairway/client"
	"fairway/metrics"
	"fairway/repository"
	"fairway/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type GalleryService struct {
	galleryRepository *repository.GalleryRepository
	storageClient     *client.StorageClient
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{
		galleryRepository: repository.NewGalleryRepository(db),
		storageClient:     client.NewStorageClient(),
	}
}

func (s *GalleryService) GetPhotosForTournament(tournamentId int) ([]*repository.GalleryPhoto, error) {
	return s.galleryRepository.GetPhotosForTournament(tournamentId)
}

// UploadPhoto writes the image to the object store under a fresh key and
// persists the public URL.
func (s *GalleryService) UploadPhoto(tournamentId int, userId int, contentType string, data []byte, caption string) (*repository.GalleryPhoto, error) {
	extension, ok := photoExtensions[contentType]
	if !ok {
		return nil, app_error.Validation(fmt.Errorf("unsupported image type %s, supported types are %v", contentType, utils.Keys(photoExtensions)))
	}
	if len(data) == 0 {
		return nil, app_error.Validation(fmt.Errorf("uploaded file is empty"))
	}
	objectKey := uuid.NewString() + extension
	url, err := s.storageClient.Upload(objectKey, contentType, data)
	if err != nil {
		metrics.PhotoUploadErrorCounter.Inc()
		return nil, err
	}
	photo, err := s.galleryRepository.SavePhoto(&repository.GalleryPhoto{
		TournamentId: tournamentId,
		UserId:       userId,
		ObjectKey:    objectKey,
		Url:          url,
		Caption:      caption,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return nil, err
	}
	metrics.PhotosUploadedCounter.Inc()
	return photo, nil
}

// DeletePhoto removes the photo for its uploader or an admin and cleans up
// the stored object.
func (s *GalleryService) DeletePhoto(photoId int, user *repository.User) error {
	photo, err := s.galleryRepository.GetPhotoById(photoId)
	if err != nil {
		return err
	}
	if photo.UserId != user.Id && !user.HasPermission(repository.PermissionAdmin) {
		return app_error.Forbidden(fmt.Errorf("only the uploader or an admin may delete a photo"))
	}
	if err := s.storageClient.Delete(photo.ObjectKey); err != nil {
		return err
	}
	return s.galleryRepository.DeletePhoto(photoId)
}
