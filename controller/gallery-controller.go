package controller

import (
	"io"
	"strconv"
	"time"

	"fairway/app_error"
	"fairway/repository"
	"fairway/service"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GalleryController struct {
	galleryService    *service.GalleryService
	tournamentService *service.TournamentService
	userService       *service.UserService
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{
		galleryService:    service.NewGalleryService(db),
		tournamentService: service.NewTournamentService(db),
		userService:       service.NewUserService(db),
	}
}

func setupGalleryController(db *gorm.DB) []RouteInfo {
	e := NewGalleryController(db)
	basePath := ""
	routes := []RouteInfo{
		{Method: "GET", Path: "/tournaments/:tournament_id/gallery", HandlerFunc: e.getGalleryHandler(), CacheTTL: 10 * time.Second},
		{Method: "POST", Path: "/tournaments/:tournament_id/gallery", HandlerFunc: e.uploadPhotoHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/gallery/:photo_id", HandlerFunc: e.deletePhotoHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetGallery
// @Description Fetches the photos of a tournament, newest first
// @Tags gallery
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {array} GalleryPhoto
// @Router /tournaments/{tournament_id}/gallery [get]
func (e *GalleryController) getGalleryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		photos, err := e.galleryService.GetPhotosForTournament(tournament.Id)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(photos, toGalleryPhotoResponse))
	}
}

// @id UploadPhoto
// @Description Uploads a photo to the tournament gallery
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Param file formData file true "Image file"
// @Param caption formData string false "Caption"
// @Success 201 {object} GalleryPhoto
// @Security BearerAuth
// @Router /tournaments/{tournament_id}/gallery [post]
func (e *GalleryController) uploadPhotoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromContext(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		contentType := fileHeader.Header.Get("Content-Type")
		photo, err := e.galleryService.UploadPhoto(tournament.Id, user.Id, contentType, data, c.PostForm("caption"))
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		photo.User = user
		c.JSON(201, toGalleryPhotoResponse(photo))
	}
}

// @id DeletePhoto
// @Description Deletes a gallery photo. Only the uploader or an admin may do this.
// @Tags gallery
// @Param photo_id path int true "Photo Id"
// @Success 204
// @Security BearerAuth
// @Router /gallery/{photo_id} [delete]
func (e *GalleryController) deletePhotoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromContext(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		photoId, err := strconv.Atoi(c.Param("photo_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.galleryService.DeletePhoto(photoId, user); err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

type GalleryPhoto struct {
	Id           int          `json:"id" binding:"required"`
	TournamentId int          `json:"tournament_id" binding:"required"`
	Url          string       `json:"url" binding:"required"`
	Caption      string       `json:"caption"`
	Timestamp    time.Time    `json:"timestamp" binding:"required"`
	User         *MinimalUser `json:"user"`
}

func toGalleryPhotoResponse(photo *repository.GalleryPhoto) *GalleryPhoto {
	return &GalleryPhoto{
		Id:           photo.Id,
		TournamentId: photo.TournamentId,
		Url:          photo.Url,
		Caption:      photo.Caption,
		Timestamp:    photo.Timestamp,
		User:         toMinimalUserResponse(photo.User),
	}
}
