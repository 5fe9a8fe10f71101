package controller

import (
	"strconv"

	"fairway/app_error"
	"fairway/repository"
	"fairway/service"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoreController struct {
	scoreService      *service.ScoreService
	tournamentService *service.TournamentService
	userService       *service.UserService
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{
		scoreService:      service.NewScoreService(db),
		tournamentService: service.NewTournamentService(db),
		userService:       service.NewUserService(db),
	}
}

func setupScoreController(db *gorm.DB) []RouteInfo {
	e := NewScoreController(db)
	basePath := "/tournaments/:tournament_id/rounds"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getRoundsHandler(), Authenticated: true},
		{Method: "PUT", Path: "/:round_number/scores", HandlerFunc: e.submitScoreHandler(), Authenticated: true},
		{Method: "GET", Path: "/:round_number/scores", HandlerFunc: e.getScorecardHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetRounds
// @Description Fetches the authenticated user's rounds for a tournament with their scores
// @Tags score
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {array} Round
// @Security BearerAuth
// @Router /tournaments/{tournament_id}/rounds [get]
func (e *ScoreController) getRoundsHandler() gin.HandlerFunc {
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
		rounds, err := e.scoreService.GetRoundsForUser(tournament.Id, user.Id)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(rounds, toRoundResponse))
	}
}

// @id SubmitScore
// @Description Submits or corrects one hole score for the authenticated user's round. The round is created on first submission and its totals are recomputed.
// @Tags score
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Param round_number path int true "Round Number"
// @Param score body ScoreSubmit true "Hole score"
// @Success 200 {object} Round
// @Security BearerAuth
// @Router /tournaments/{tournament_id}/rounds/{round_number}/scores [put]
func (e *ScoreController) submitScoreHandler() gin.HandlerFunc {
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
		roundNumber, err := strconv.Atoi(c.Param("round_number"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var scoreSubmit ScoreSubmit
		if err := c.BindJSON(&scoreSubmit); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		round, err := e.scoreService.SubmitScore(tournament, user, roundNumber, scoreSubmit.toModel())
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toRoundResponse(round))
	}
}

// @id GetScorecard
// @Description Fetches the authenticated user's scorecard for one round, each hole with the tee color and yardage it plays from
// @Tags score
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Param round_number path int true "Round Number"
// @Success 200 {object} Scorecard
// @Security BearerAuth
// @Router /tournaments/{tournament_id}/rounds/{round_number}/scores [get]
func (e *ScoreController) getScorecardHandler() gin.HandlerFunc {
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
		roundNumber, err := strconv.Atoi(c.Param("round_number"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		round, err := e.scoreService.GetRound(tournament.Id, user.Id, roundNumber)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		tees, err := e.tournamentService.GetTeeSheet(tournament)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, toScorecardResponse(round, tees))
	}
}

type ScoreSubmit struct {
	HoleId            int     `json:"hole_id" binding:"required"`
	Strokes           int     `json:"strokes" binding:"required"`
	Putts             int     `json:"putts"`
	FairwayHit        bool    `json:"fairway_hit"`
	GreenInRegulation bool    `json:"green_in_regulation"`
	PowerupUsed       bool    `json:"powerup_used"`
	PowerupNotes      *string `json:"powerup_notes"`
}

type Score struct {
	HoleId            int     `json:"hole_id" binding:"required"`
	Strokes           int     `json:"strokes" binding:"required"`
	Putts             int     `json:"putts"`
	FairwayHit        bool    `json:"fairway_hit"`
	GreenInRegulation bool    `json:"green_in_regulation"`
	PowerupUsed       bool    `json:"powerup_used"`
	PowerupNotes      *string `json:"powerup_notes"`
}

type Round struct {
	Id                 int      `json:"id" binding:"required"`
	TournamentId       int      `json:"tournament_id" binding:"required"`
	UserId             int      `json:"user_id" binding:"required"`
	Number             int      `json:"number" binding:"required"`
	TotalStrokes       int      `json:"total_strokes"`
	TotalPutts         int      `json:"total_putts"`
	FairwaysHit        int      `json:"fairways_hit"`
	GreensInRegulation int      `json:"greens_in_regulation"`
	HolesCompleted     int      `json:"holes_completed"`
	Scores             []*Score `json:"scores"`
}

type ScorecardEntry struct {
	HoleId            int     `json:"hole_id" binding:"required"`
	Number            int     `json:"number" binding:"required"`
	Par               int     `json:"par" binding:"required"`
	TeeColor          string  `json:"tee_color" binding:"required"`
	Yardage           *int    `json:"yardage"`
	Strokes           int     `json:"strokes" binding:"required"`
	Putts             int     `json:"putts"`
	FairwayHit        bool    `json:"fairway_hit"`
	GreenInRegulation bool    `json:"green_in_regulation"`
	PowerupUsed       bool    `json:"powerup_used"`
	PowerupNotes      *string `json:"powerup_notes"`
}

type Scorecard struct {
	Round   *Round            `json:"round" binding:"required"`
	Entries []*ScorecardEntry `json:"entries"`
}

func (scoreSubmit *ScoreSubmit) toModel() *repository.Score {
	return &repository.Score{
		HoleId:            scoreSubmit.HoleId,
		Strokes:           scoreSubmit.Strokes,
		Putts:             scoreSubmit.Putts,
		FairwayHit:        scoreSubmit.FairwayHit,
		GreenInRegulation: scoreSubmit.GreenInRegulation,
		PowerupUsed:       scoreSubmit.PowerupUsed,
		PowerupNotes:      scoreSubmit.PowerupNotes,
	}
}

func toScoreResponse(score *repository.Score) *Score {
	return &Score{
		HoleId:            score.HoleId,
		Strokes:           score.Strokes,
		Putts:             score.Putts,
		FairwayHit:        score.FairwayHit,
		GreenInRegulation: score.GreenInRegulation,
		PowerupUsed:       score.PowerupUsed,
		PowerupNotes:      score.PowerupNotes,
	}
}

func toRoundResponse(round *repository.Round) *Round {
	return &Round{
		Id:                 round.Id,
		TournamentId:       round.TournamentId,
		UserId:             round.UserId,
		Number:             round.Number,
		TotalStrokes:       round.TotalStrokes,
		TotalPutts:         round.TotalPutts,
		FairwaysHit:        round.FairwaysHit,
		GreensInRegulation: round.GreensInRegulation,
		HolesCompleted:     round.HolesCompleted,
		Scores:             utils.Map(round.Scores, toScoreResponse),
	}
}

// The tee sheet is ordered by hole number, so the scorecard comes back in
// playing order with unscored holes left out.
func toScorecardResponse(round *repository.Round, tees []*service.ResolvedTee) *Scorecard {
	scoreByHole := make(map[int]*repository.Score)
	for _, score := range round.Scores {
		scoreByHole[score.HoleId] = score
	}
	entries := make([]*ScorecardEntry, 0)
	for _, tee := range tees {
		score, ok := scoreByHole[tee.HoleId]
		if !ok {
			continue
		}
		entries = append(entries, &ScorecardEntry{
			HoleId:            score.HoleId,
			Number:            tee.Number,
			Par:               tee.Par,
			TeeColor:          string(tee.TeeColor),
			Yardage:           tee.Yardage,
			Strokes:           score.Strokes,
			Putts:             score.Putts,
			FairwayHit:        score.FairwayHit,
			GreenInRegulation: score.GreenInRegulation,
			PowerupUsed:       score.PowerupUsed,
			PowerupNotes:      score.PowerupNotes,
		})
	}
	return &Scorecard{Round: toRoundResponse(round), Entries: entries}
}
