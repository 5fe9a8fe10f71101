package scoring

import (
	"fairway/repository"
	"fairway/utils"
	"sort"
)

const (
	AchievementSubParRound   = "sub_par_round"
	AchievementBirdieStreak  = "birdie_streak"
	AchievementEagle         = "eagle"
	AchievementBogeyFree     = "bogey_free_round"
	AchievementPuttingClinic = "putting_clinic"
	AchievementFairwayFinder = "fairway_finder"
)

const birdieStreakLength = 3

type achievementRule func(round *repository.Round, scores []*repository.Score, holeById map[int]*repository.Hole) bool

var achievementRules = map[string]achievementRule{
	AchievementSubParRound:   isSubParRound,
	AchievementBirdieStreak:  hasBirdieStreak,
	AchievementEagle:         hasEagle,
	AchievementBogeyFree:     isBogeyFree,
	AchievementPuttingClinic: isPuttingClinic,
	AchievementFairwayFinder: isFairwayFinder,
}

// Evaluate returns the keys of all achievements a completed round earns.
// Callers only invoke it once a round covers the full 18 holes.
func Evaluate(round *repository.Round, scores []*repository.Score, holes []*repository.Hole) []string {
	holeById := HoleById(holes)
	scores = utils.Filter(scores, func(score *repository.Score) bool {
		_, ok := holeById[score.HoleId]
		return ok
	})
	earned := make([]string, 0)
	for _, key := range []string{
		AchievementSubParRound,
		AchievementBirdieStreak,
		AchievementEagle,
		AchievementBogeyFree,
		AchievementPuttingClinic,
		AchievementFairwayFinder,
	} {
		if rule, ok := achievementRules[key]; ok && rule(round, scores, holeById) {
			earned = append(earned, key)
		}
	}
	return earned
}

// DefaultAchievements is the seeded catalog matching the rule table.
func DefaultAchievements() []*repository.Achievement {
	return []*repository.Achievement{
		{Key: AchievementSubParRound, Name: "Under the Card", Description: "Finish a round below course par", Icon: repository.IconTrophy},
		{Key: AchievementBirdieStreak, Name: "Bird Watcher", Description: "Score three birdies or better in a row", Icon: repository.IconBird},
		{Key: AchievementEagle, Name: "Eagle Eye", Description: "Score an eagle or better on a single hole", Icon: repository.IconEagle},
		{Key: AchievementBogeyFree, Name: "Clean Sheet", Description: "Complete a round without a single bogey", Icon: repository.IconShield},
		{Key: AchievementPuttingClinic, Name: "Putting Clinic", Description: "Complete a round with 30 putts or fewer", Icon: repository.IconPutter},
		{Key: AchievementFairwayFinder, Name: "Fairway Finder", Description: "Hit every fairway in a round", Icon: repository.IconTarget},
	}
}

func isSubParRound(round *repository.Round, scores []*repository.Score, holeById map[int]*repository.Hole) bool {
	coursePar := 0
	for _, hole := range holeById {
		coursePar += hole.Par
	}
	return round.TotalStrokes < coursePar
}

func hasBirdieStreak(round *repository.Round, scores []*repository.Score, holeById map[int]*repository.Hole) bool {
	ordered := make([]*repository.Score, 0, len(scores))
	ordered = append(ordered, scores...)
	sort.Slice(ordered, func(i, j int) bool {
		return holeById[ordered[i].HoleId].Number < holeById[ordered[j].HoleId].Number
	})
	streak := 0
	for _, score := range ordered {
		if score.Strokes <= holeById[score.HoleId].Par-1 {
			streak++
			if streak >= birdieStreakLength {
				return true
			}
		} else {
			streak = 0
		}
	}
	return false
}

func hasEagle(round *repository.Round, scores []*repository.Score, holeById map[int]*repository.Hole) bool {
	for _, score := range scores {
		if score.Strokes <= holeById[score.HoleId].Par-2 {
			return true
		}
	}
	return false
}

func isBogeyFree(round *repository.Round, scores []*repository.Score, holeById map[int]*repository.Hole) bool {
	for _, score := range scores {
		if score.Strokes > holeById[score.HoleId].Par {
			return false
		}
	}
	return true
}

func isPuttingClinic(round *repository.Round, scores []*repository.Score, holeById map[int]*repository.Hole) bool {
	return round.TotalPutts <= 30
}

func isFairwayFinder(round *repository.Round, scores []*repository.Score, holeById map[int]*repository.Hole) bool {
	return round.FairwaysHit == FairwayAttemptsPerRound
}
