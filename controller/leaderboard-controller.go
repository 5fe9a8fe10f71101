package controller

import (
	"time"

	"fairway/app_error"
	"fairway/scoring"
	"fairway/service"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	leaderboardService *service.LeaderboardService
	tournamentService  *service.TournamentService
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: service.NewLeaderboardService(db),
		tournamentService:  service.NewTournamentService(db),
	}
}

func setupLeaderboardController(db *gorm.DB) []RouteInfo {
	e := NewLeaderboardController(db)
	basePath := "/tournaments/:tournament_id"
	routes := []RouteInfo{
		{Method: "GET", Path: "/leaderboard", HandlerFunc: e.getLeaderboardHandler(), CacheTTL: 10 * time.Second},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetLeaderboard
// @Description Fetches the tournament leaderboard, ranked by gross strokes with ties sharing a rank. Responses are cached briefly, so a fresh submission may take a few seconds to show up.
// @Tags leaderboard
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {array} LeaderboardEntry
// @Router /tournaments/{tournament_id}/leaderboard [get]
func (e *LeaderboardController) getLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournament := getTournament(c, e.tournamentService)
		if tournament == nil {
			return
		}
		entries, err := e.leaderboardService.GetLeaderboard(tournament.Id)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		c.JSON(200, utils.Map(entries, toLeaderboardEntryResponse))
	}
}

type LeaderboardEntry struct {
	UserId         int    `json:"user_id" binding:"required"`
	DisplayName    string `json:"display_name" binding:"required"`
	Rank           int    `json:"rank"`
	HasScore       bool   `json:"has_score"`
	RoundsPlayed   int    `json:"rounds_played"`
	HolesCompleted int    `json:"holes_completed"`
	FrontNine      int    `json:"front_nine"`
	BackNine       int    `json:"back_nine"`
	TotalStrokes   int    `json:"total_strokes"`
	ToPar          string `json:"to_par"`
	Net            *int   `json:"net"`
}

func toLeaderboardEntryResponse(entry *scoring.Entry) *LeaderboardEntry {
	return &LeaderboardEntry{
		UserId:         entry.UserId,
		DisplayName:    entry.DisplayName,
		Rank:           entry.Rank,
		HasScore:       entry.HasScore,
		RoundsPlayed:   entry.RoundsPlayed,
		HolesCompleted: entry.HolesCompleted,
		FrontNine:      entry.FrontNine,
		BackNine:       entry.BackNine,
		TotalStrokes:   entry.TotalStrokes,
		ToPar:          entry.ToPar,
		Net:            entry.Net,
	}
}
