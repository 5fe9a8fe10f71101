package controller

import (
	"fairway/app_error"
	"fairway/repository"
	"fairway/service"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AchievementController struct {
	achievementService *service.AchievementService
}

func NewAchievementController(db *gorm.DB) *AchievementController {
	return &AchievementController{achievementService: service.NewAchievementService(db)}
}

func setupAchievementController(db *gorm.DB) []RouteInfo {
	e := NewAchievementController(db)
	basePath := "/achievements"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getAchievementsHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetAchievements
// @Description Fetches the achievement catalog
// @Tags achievement
// @Produce json
// @Success 200 {array} Achievement
// @Router /achievements [get]
func (e *AchievementController) getAchievementsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		achievements, err := e.achievementService.GetCatalog()
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(achievements, toAchievementResponse))
	}
}

type Achievement struct {
	Id          int    `json:"id" binding:"required"`
	Key         string `json:"key" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"required"`
}

func toAchievementResponse(achievement *repository.Achievement) *Achievement {
	return &Achievement{
		Id:          achievement.Id,
		Key:         achievement.Key,
		Name:        achievement.Name,
		Description: achievement.Description,
		Icon:        string(repository.NormalizeIcon(achievement.Icon)),
	}
}
