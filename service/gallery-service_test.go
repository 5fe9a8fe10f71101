package service

import (
	"testing"
	"time"

	"fairway/app_error"
	"fairway/repository"

	"github.com/stretchr/testify/assert"
)

func TestUploadPhotoRejectsBadInput(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	galleryService := NewGalleryService(db)
	alice := tournament.Players[0]

	_, err := galleryService.UploadPhoto(tournament.Id, alice.Id, "text/plain", []byte("not an image"), "")
	assert.Equal(t, 400, app_error.HTTPStatus(err), "only image uploads are accepted")

	_, err = galleryService.UploadPhoto(tournament.Id, alice.Id, "image/png", []byte{}, "")
	assert.Equal(t, 400, app_error.HTTPStatus(err), "empty files are rejected before the store is called")

	var photoCount int64
	db.Model(&repository.GalleryPhoto{}).Count(&photoCount)
	assert.Equal(t, int64(0), photoCount)
}

func TestDeletePhotoRequiresUploaderOrAdmin(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	galleryService := NewGalleryService(db)
	alice := tournament.Players[0]
	bob := tournament.Players[1]

	photo := &repository.GalleryPhoto{
		TournamentId: tournament.Id,
		UserId:       alice.Id,
		ObjectKey:    "abc.jpg",
		Url:          "http://localhost:9000/fairway-gallery/abc.jpg",
		Caption:      "18th green",
		Timestamp:    time.Now(),
	}
	if err := db.Create(photo).Error; err != nil {
		t.Fatalf("Error creating photo: %v", err)
	}

	err := galleryService.DeletePhoto(photo.Id, bob)
	assert.Equal(t, 403, app_error.HTTPStatus(err), "another player may not delete the photo")

	err = galleryService.DeletePhoto(999999, bob)
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	photos, err := galleryService.GetPhotosForTournament(tournament.Id)
	assert.NoError(t, err)
	if assert.Len(t, photos, 1) {
		assert.Equal(t, "18th green", photos[0].Caption)
		assert.Equal(t, alice.Id, photos[0].User.Id)
	}
}
