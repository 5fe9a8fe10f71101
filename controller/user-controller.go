package controller

import (
	"net/http"
	"strconv"
	"time"

	"fairway/app_error"
	"fairway/config"
	"fairway/repository"
	"fairway/scoring"
	"fairway/service"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService        *service.UserService
	statsService       *service.StatsService
	achievementService *service.AchievementService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService:        service.NewUserService(db),
		statsService:       service.NewStatsService(db),
		achievementService: service.NewAchievementService(db),
	}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	basePath := ""
	routes := []RouteInfo{
		{Method: "GET", Path: "/users", HandlerFunc: e.getAllUsersHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
		{Method: "GET", Path: "/users/self", HandlerFunc: e.getUserHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/users/self", HandlerFunc: e.updateUserHandler(), Authenticated: true},
		{Method: "GET", Path: "/users/:user_id", HandlerFunc: e.getUserByIdHandler()},
		{Method: "PATCH", Path: "/users/:user_id", HandlerFunc: e.changePermissionsHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
		{Method: "GET", Path: "/users/:user_id/stats", HandlerFunc: e.getUserStatsHandler()},
		{Method: "GET", Path: "/users/:user_id/achievements", HandlerFunc: e.getUserAchievementsHandler()},
		{Method: "POST", Path: "/users/remove-auth", HandlerFunc: e.logoutHandler()},
		{Method: "DELETE", Path: "/users/self/providers/:provider", HandlerFunc: e.removeProviderHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetAllUsers
// @Description Fetches all users
// @Tags user
// @Produce json
// @Success 200 {array} User
// @Security BearerAuth
// @Router /users [get]
func (e *UserController) getAllUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := e.userService.GetAllUsers()
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

// @id GetUser
// @Description Fetches the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} User
// @Security BearerAuth
// @Router /users/self [get]
func (e *UserController) getUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromContext(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id UpdateUser
// @Description Updates the authenticated user's display name
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserUpdate true "User"
// @Success 200 {object} User
// @Security BearerAuth
// @Router /users/self [patch]
func (e *UserController) updateUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromContext(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		var userUpdate UserUpdate
		if err := c.BindJSON(&userUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err = e.userService.ChangeDisplayName(user.Id, userUpdate.DisplayName)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id GetUserById
// @Description Fetches a user by id
// @Tags user
// @Produce json
// @Param user_id path int true "User Id"
// @Success 200 {object} MinimalUser
// @Router /users/{user_id} [get]
func (e *UserController) getUserByIdHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.GetUserById(userId)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toMinimalUserResponse(user))
	}
}

// @id ChangePermissions
// @Description Changes the permissions of a user
// @Tags user
// @Accept json
// @Produce json
// @Param user_id path int true "User Id"
// @Param permissions body PermissionsUpdate true "Permissions"
// @Success 200 {object} User
// @Security BearerAuth
// @Router /users/{user_id} [patch]
func (e *UserController) changePermissionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var permissionsUpdate PermissionsUpdate
		if err := c.BindJSON(&permissionsUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.ChangePermissions(userId, permissionsUpdate.Permissions)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id GetUserStats
// @Description Fetches a user's career statistics across all tournaments
// @Tags user
// @Produce json
// @Param user_id path int true "User Id"
// @Success 200 {object} UserStats
// @Router /users/{user_id}/stats [get]
func (e *UserController) getUserStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		stats, err := e.statsService.GetUserStats(userId)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toUserStatsResponse(stats))
	}
}

// @id GetUserAchievements
// @Description Fetches the achievements a user has earned, newest first
// @Tags user
// @Produce json
// @Param user_id path int true "User Id"
// @Success 200 {array} UserAchievement
// @Router /users/{user_id}/achievements [get]
func (e *UserController) getUserAchievementsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		achievements, err := e.achievementService.GetAchievementsForUser(userId)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(achievements, toUserAchievementResponse))
	}
}

// @id RemoveAuth
// @Description Logs the user out by expiring the auth cookie
// @Tags user
// @Success 204
// @Router /users/remove-auth [post]
func (e *UserController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie("auth", "", -1, "/", config.Env().PublicDomain, false, true)
		c.JSON(204, nil)
	}
}

// @id RemoveProvider
// @Description Unlinks an oauth provider from the authenticated user. The last remaining provider cannot be removed.
// @Tags user
// @Produce json
// @Param provider path string true "Provider"
// @Success 200 {object} User
// @Security BearerAuth
// @Router /users/self/providers/{provider} [delete]
func (e *UserController) removeProviderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromContext(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		user, err = e.userService.RemoveProvider(user, repository.Provider(c.Param("provider")))
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

type UserUpdate struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type PermissionsUpdate struct {
	Permissions []repository.Permission `json:"permissions" binding:"required"`
}

type User struct {
	Id          int     `json:"id" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required"`
	DiscordId   *string `json:"discord_id"`
	DiscordName *string `json:"discord_name"`
	GoogleId    *string `json:"google_id"`
	GoogleName  *string `json:"google_name"`

	Permissions []repository.Permission `json:"permissions" binding:"required"`
}

type MinimalUser struct {
	Id          int    `json:"id" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
}

type UserStats struct {
	RoundsPlayed      int     `json:"rounds_played"`
	TournamentWins    int     `json:"tournament_wins"`
	AveragePutts      float64 `json:"average_putts"`
	FairwayPercentage float64 `json:"fairway_percentage"`
	GreenPercentage   float64 `json:"green_percentage"`
}

type UserAchievement struct {
	Achievement  *Achievement `json:"achievement" binding:"required"`
	TournamentId int          `json:"tournament_id" binding:"required"`
	RoundId      int          `json:"round_id" binding:"required"`
	EarnedAt     time.Time    `json:"earned_at" binding:"required"`
}

func toUserResponse(user *repository.User) *User {
	response := &User{
		Id:          user.Id,
		DisplayName: user.DisplayName,
		Permissions: utils.Map(user.Permissions, func(permission string) repository.Permission {
			return repository.Permission(permission)
		}),
	}
	for _, oauth := range user.OauthAccounts {
		switch oauth.Provider {
		case repository.ProviderDiscord:
			response.DiscordId = &oauth.AccountId
			response.DiscordName = &oauth.Name
		case repository.ProviderGoogle:
			response.GoogleId = &oauth.AccountId
			response.GoogleName = &oauth.Name
		}
	}
	return response
}

func toMinimalUserResponse(user *repository.User) *MinimalUser {
	if user == nil {
		return nil
	}
	return &MinimalUser{
		Id:          user.Id,
		DisplayName: user.DisplayName,
	}
}

func toUserStatsResponse(stats *scoring.UserStats) *UserStats {
	return &UserStats{
		RoundsPlayed:      stats.RoundsPlayed,
		TournamentWins:    stats.TournamentWins,
		AveragePutts:      stats.AveragePutts,
		FairwayPercentage: stats.FairwayPercentage,
		GreenPercentage:   stats.GreenPercentage,
	}
}

func toUserAchievementResponse(userAchievement *repository.UserAchievement) *UserAchievement {
	return &UserAchievement{
		Achievement:  toAchievementResponse(userAchievement.Achievement),
		TournamentId: userAchievement.TournamentId,
		RoundId:      userAchievement.RoundId,
		EarnedAt:     userAchievement.EarnedAt,
	}
}
