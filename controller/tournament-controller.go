package controller

import (
	"strconv"
	"time"

	"fairway/app_error"
	"fairway/repository"
	"fairway/service"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TournamentController struct {
	tournamentService *service.TournamentService
	userService       *service.UserService
}

func NewTournamentController(db *gorm.DB) *TournamentController {
	return &TournamentController{
		tournamentService: service.NewTournamentService(db),
		userService:       service.NewUserService(db),
	}
}

func setupTournamentController(db *gorm.DB) []RouteInfo {
	e := NewTournamentController(db)
	basePath := "/tournaments"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getTournamentsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createTournamentHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
		{Method: "GET", Path: "/current", HandlerFunc: e.getCurrentTournamentHandler()},
		{Method: "GET", Path: "/:tournament_id", HandlerFunc: e.getTournamentHandler()},
		{Method: "PATCH", Path: "/:tournament_id", HandlerFunc: e.updateTournamentHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
		{Method: "DELETE", Path: "/:tournament_id", HandlerFunc: e.deleteTournamentHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
		{Method: "GET", Path: "/:tournament_id/players", HandlerFunc: e.getPlayersHandler()},
		{Method: "PUT", Path: "/:tournament_id/players/self", HandlerFunc: e.joinTournamentHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:tournament_id/players/self", HandlerFunc: e.leaveTournamentHandler(), Authenticated: true},
		{Method: "GET", Path: "/:tournament_id/tees", HandlerFunc: e.getTeeSheetHandler()},
		{Method: "PUT", Path: "/:tournament_id/tees", HandlerFunc: e.setTeeSelectionsHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

func getTournament(c *gin.Context, tournamentService *service.TournamentService, preloads ...string) *repository.Tournament {
	tournamentId, err := strconv.Atoi(c.Param("tournament_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return nil
	}
	tournament, err := tournamentService.GetTournamentById(tournamentId, preloads...)
	if err != nil {
		app_error.Abort(c, err)
		return nil
	}
	return tournament
}

// @id GetTournaments
// @Description Fetches all tournaments
// @Tags tournament
// @Produce json
// @Success 200 {array} Tournament
// @Router /tournaments [get]
func (e *TournamentController) getTournamentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournaments, err := e.tournamentService.GetAllTournaments("Course")
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(tournaments, toTournamentResponse))
	}
}

// @id GetCurrentTournament
// @Description Fetches the currently running tournament
// @Tags tournament
// @Produce json
// @Success 200 {object} Tournament
// @Router /tournaments/current [get]
func (e *TournamentController) getCurrentTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament, err := e.tournamentService.GetCurrentTournament("Course", "Course.Holes")
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toTournamentResponse(tournament))
	}
}

// @id GetTournament
// @Description Fetches a tournament by id
// @Tags tournament
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {object} Tournament
// @Router /tournaments/{tournament_id} [get]
func (e *TournamentController) getTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService, "Course", "Course.Holes")
		if tournament == nil {
			return
		}
		c.JSON(200, toTournamentResponse(tournament))
	}
}

// @id CreateTournament
// @Description Creates a new tournament
// @Tags tournament
// @Accept json
// @Produce json
// @Param tournament body TournamentCreate true "Tournament to create"
// @Success 201 {object} Tournament
// @Security BearerAuth
// @Router /tournaments [post]
func (e *TournamentController) createTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tournamentCreate TournamentCreate
		if err := c.BindJSON(&tournamentCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		tournament, err := e.tournamentService.SaveTournament(tournamentCreate.toModel())
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(201, toTournamentResponse(tournament))
	}
}

// @id UpdateTournament
// @Description Updates tournament fields, including declaring the winner
// @Tags tournament
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Param tournament body TournamentUpdate true "Fields to update"
// @Success 200 {object} Tournament
// @Security BearerAuth
// @Router /tournaments/{tournament_id} [patch]
func (e *TournamentController) updateTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		var tournamentUpdate TournamentUpdate
		if err := c.BindJSON(&tournamentUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		tournamentUpdate.applyTo(tournament)
		tournament, err := e.tournamentService.SaveTournament(tournament)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toTournamentResponse(tournament))
	}
}

// @id DeleteTournament
// @Description Deletes a tournament with its rounds and scores
// @Tags tournament
// @Param tournament_id path int true "Tournament Id"
// @Success 204
// @Security BearerAuth
// @Router /tournaments/{tournament_id} [delete]
func (e *TournamentController) deleteTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, err := strconv.Atoi(c.Param("tournament_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.tournamentService.DeleteTournament(tournamentId); err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetTournamentPlayers
// @Description Fetches the players registered for a tournament in signup order
// @Tags tournament
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {array} TournamentPlayer
// @Router /tournaments/{tournament_id}/players [get]
func (e *TournamentController) getPlayersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		players, err := e.tournamentService.GetPlayers(tournament.Id)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(players, toTournamentPlayerResponse))
	}
}

// @id JoinTournament
// @Description Registers the authenticated user for a tournament
// @Tags tournament
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 201 {object} TournamentPlayer
// @Security BearerAuth
// @Router /tournaments/{tournament_id}/players/self [put]
func (e *TournamentController) joinTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromContext(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		tournamentId, err := strconv.Atoi(c.Param("tournament_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		entry, err := e.tournamentService.JoinTournament(tournamentId, user.Id)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		entry.User = user
		c.JSON(201, toTournamentPlayerResponse(entry))
	}
}

// @id LeaveTournament
// @Description Removes the authenticated user from a tournament
// @Tags tournament
// @Param tournament_id path int true "Tournament Id"
// @Success 204
// @Security BearerAuth
// @Router /tournaments/{tournament_id}/players/self [delete]
func (e *TournamentController) leaveTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromContext(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		tournamentId, err := strconv.Atoi(c.Param("tournament_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.tournamentService.LeaveTournament(tournamentId, user.Id); err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetTeeSheet
// @Description Fetches the tee sheet, the resolved color and yardage for every hole
// @Tags tournament
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {array} ResolvedTee
// @Router /tournaments/{tournament_id}/tees [get]
func (e *TournamentController) getTeeSheetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		tees, err := e.tournamentService.GetTeeSheet(tournament)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(tees, toResolvedTeeResponse))
	}
}

// @id SetTeeSelections
// @Description Replaces the tee color selections for a tournament
// @Tags tournament
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Param selections body []TeeSelection true "Tee selections"
// @Success 200 {array} ResolvedTee
// @Security BearerAuth
// @Router /tournaments/{tournament_id}/tees [put]
func (e *TournamentController) setTeeSelectionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		var selections []*TeeSelection
		if err := c.BindJSON(&selections); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err := e.tournamentService.SetTeeSelections(tournament, utils.Map(selections, func(selection *TeeSelection) *repository.TournamentHoleTee {
			return selection.toModel()
		}))
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		tees, err := e.tournamentService.GetTeeSheet(tournament)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(tees, toResolvedTeeResponse))
	}
}

type TournamentCreate struct {
	Name          string    `json:"name" binding:"required"`
	CourseId      int       `json:"course_id" binding:"required"`
	ScoringSystem string    `json:"scoring_system"`
	NumRounds     int       `json:"num_rounds"`
	IsCurrent     bool      `json:"is_current"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	MaxPlayers    int       `json:"max_players" binding:"required"`
}

type TournamentUpdate struct {
	Name          *string    `json:"name"`
	CourseId      *int       `json:"course_id"`
	ScoringSystem *string    `json:"scoring_system"`
	NumRounds     *int       `json:"num_rounds"`
	IsCurrent     *bool      `json:"is_current"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	MaxPlayers    *int       `json:"max_players"`
	WinnerId      *int       `json:"winner_id"`
}

type TeeSelection struct {
	HoleId   int    `json:"hole_id" binding:"required"`
	TeeColor string `json:"tee_color" binding:"required"`
}

type Tournament struct {
	Id            int        `json:"id" binding:"required"`
	Name          string     `json:"name" binding:"required"`
	CourseId      int        `json:"course_id" binding:"required"`
	ScoringSystem string     `json:"scoring_system" binding:"required"`
	NumRounds     int        `json:"num_rounds" binding:"required"`
	IsCurrent     bool       `json:"is_current"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	MaxPlayers    int        `json:"max_players" binding:"required"`
	WinnerId      *int       `json:"winner_id"`
	Course        *Course    `json:"course,omitempty"`
}

type TournamentPlayer struct {
	User      *MinimalUser `json:"user" binding:"required"`
	Timestamp time.Time    `json:"timestamp" binding:"required"`
}

type ResolvedTee struct {
	HoleId   int    `json:"hole_id" binding:"required"`
	Number   int    `json:"number" binding:"required"`
	Par      int    `json:"par" binding:"required"`
	TeeColor string `json:"tee_color" binding:"required"`
	Yardage  *int   `json:"yardage"`
}

func (tournamentCreate *TournamentCreate) toModel() *repository.Tournament {
	scoringSystem := repository.ScoringSystem(tournamentCreate.ScoringSystem)
	if scoringSystem == "" {
		scoringSystem = repository.ScoringSystemStrokePlay
	}
	numRounds := tournamentCreate.NumRounds
	if numRounds == 0 {
		numRounds = 1
	}
	return &repository.Tournament{
		Name:          tournamentCreate.Name,
		CourseId:      tournamentCreate.CourseId,
		ScoringSystem: scoringSystem,
		NumRounds:     numRounds,
		IsCurrent:     tournamentCreate.IsCurrent,
		StartTime:     tournamentCreate.StartTime,
		EndTime:       tournamentCreate.EndTime,
		MaxPlayers:    tournamentCreate.MaxPlayers,
	}
}

func (tournamentUpdate *TournamentUpdate) applyTo(tournament *repository.Tournament) {
	if tournamentUpdate.Name != nil {
		tournament.Name = *tournamentUpdate.Name
	}
	if tournamentUpdate.CourseId != nil {
		tournament.CourseId = *tournamentUpdate.CourseId
	}
	if tournamentUpdate.ScoringSystem != nil {
		tournament.ScoringSystem = repository.ScoringSystem(*tournamentUpdate.ScoringSystem)
	}
	if tournamentUpdate.NumRounds != nil {
		tournament.NumRounds = *tournamentUpdate.NumRounds
	}
	if tournamentUpdate.IsCurrent != nil {
		tournament.IsCurrent = *tournamentUpdate.IsCurrent
	}
	if tournamentUpdate.StartTime != nil {
		tournament.StartTime = *tournamentUpdate.StartTime
	}
	if tournamentUpdate.EndTime != nil {
		tournament.EndTime = *tournamentUpdate.EndTime
	}
	if tournamentUpdate.MaxPlayers != nil {
		tournament.MaxPlayers = *tournamentUpdate.MaxPlayers
	}
	if tournamentUpdate.WinnerId != nil {
		tournament.WinnerId = tournamentUpdate.WinnerId
	}
}

func (selection *TeeSelection) toModel() *repository.TournamentHoleTee {
	return &repository.TournamentHoleTee{
		HoleId:   selection.HoleId,
		TeeColor: repository.TeeColor(selection.TeeColor),
	}
}

func toTournamentResponse(tournament *repository.Tournament) *Tournament {
	response := &Tournament{
		Id:            tournament.Id,
		Name:          tournament.Name,
		CourseId:      tournament.CourseId,
		ScoringSystem: string(tournament.ScoringSystem),
		NumRounds:     tournament.NumRounds,
		IsCurrent:     tournament.IsCurrent,
		StartTime:     tournament.StartTime,
		EndTime:       tournament.EndTime,
		MaxPlayers:    tournament.MaxPlayers,
		WinnerId:      tournament.WinnerId,
	}
	if tournament.Course != nil {
		response.Course = toCourseResponse(tournament.Course)
	}
	return response
}

func toTournamentPlayerResponse(player *repository.TournamentPlayer) *TournamentPlayer {
	return &TournamentPlayer{
		User:      toMinimalUserResponse(player.User),
		Timestamp: player.Timestamp,
	}
}

func toResolvedTeeResponse(tee *service.ResolvedTee) *ResolvedTee {
	return &ResolvedTee{
		HoleId:   tee.HoleId,
		Number:   tee.Number,
		Par:      tee.Par,
		TeeColor: string(tee.TeeColor),
		Yardage:  tee.Yardage,
	}
}
