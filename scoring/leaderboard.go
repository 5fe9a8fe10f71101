package scoring

import (
	"fairway/repository"
	"fairway/utils"
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultHandicapAllowance is subtracted from the gross total to form the
// net score under stroke play and handicap scoring.
// todo: source the allowance from player records once handicaps are tracked
const DefaultHandicapAllowance = 18

type Entry struct {
	UserId         int
	DisplayName    string
	Rank           int
	HasScore       bool
	RoundsPlayed   int
	HolesCompleted int
	FrontNine      int
	BackNine       int
	TotalStrokes   int
	ToPar          string
	Net            *int
}

var leaderboardAssemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "leaderboard_assembly_duration_s",
	Help: "Duration of leaderboard assembly",
	Buckets: []float64{
		0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1,
	},
})

// AssembleLeaderboard builds the ranked standings for one tournament from
// the players' round aggregates and hole scores. Players without a single
// completed hole sort last and carry no rank instead of a sentinel total.
func AssembleLeaderboard(players []*repository.User, rounds []*repository.Round, holes []*repository.Hole, system repository.ScoringSystem) []*Entry {
	timer := prometheus.NewTimer(leaderboardAssemblyDuration)
	defer timer.ObserveDuration()

	holeById := HoleById(holes)
	roundsByUser := utils.GroupBy(rounds, func(round *repository.Round) int {
		return round.UserId
	})

	entries := make([]*Entry, 0, len(players))
	for _, player := range players {
		entry := &Entry{
			UserId:      player.Id,
			DisplayName: player.DisplayName,
		}
		scoredPar := 0
		for _, round := range roundsByUser[player.Id] {
			entry.RoundsPlayed++
			entry.TotalStrokes += round.TotalStrokes
			entry.HolesCompleted += round.HolesCompleted
			for _, score := range round.Scores {
				hole, ok := holeById[score.HoleId]
				if !ok {
					continue
				}
				scoredPar += hole.Par
				if hole.Number <= 9 {
					entry.FrontNine += score.Strokes
				} else {
					entry.BackNine += score.Strokes
				}
			}
		}
		entry.HasScore = entry.HolesCompleted > 0
		if entry.HasScore {
			entry.ToPar = FormatToPar(entry.TotalStrokes - scoredPar)
		}
		if entry.HolesCompleted >= HolesPerRound {
			net := netScore(entry, roundsByUser[player.Id], holeById, system)
			entry.Net = &net
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entryLess(entries[i], entries[j])
	})
	for i, entry := range entries {
		if !entry.HasScore {
			continue
		}
		if i > 0 && isTiedWith(entries[i-1], entry) {
			entry.Rank = entries[i-1].Rank
		} else {
			entry.Rank = i + 1
		}
	}
	return entries
}

func entryLess(a *Entry, b *Entry) bool {
	if a.HasScore != b.HasScore {
		return a.HasScore
	}
	if a.HasScore && a.TotalStrokes != b.TotalStrokes {
		return a.TotalStrokes < b.TotalStrokes
	}
	return a.DisplayName < b.DisplayName
}

func isTiedWith(a *Entry, b *Entry) bool {
	return a.HasScore && b.HasScore && a.TotalStrokes == b.TotalStrokes
}

func netScore(entry *Entry, rounds []*repository.Round, holeById map[int]*repository.Hole, system repository.ScoringSystem) int {
	if system == repository.ScoringSystemStableford {
		return stablefordPoints(rounds, holeById)
	}
	return entry.TotalStrokes - DefaultHandicapAllowance
}

// stablefordPoints converts hole scores into stableford points. Every hole
// grants one allowance stroke, so a net par is worth two points.
func stablefordPoints(rounds []*repository.Round, holeById map[int]*repository.Hole) int {
	points := 0
	for _, round := range rounds {
		for _, score := range round.Scores {
			hole, ok := holeById[score.HoleId]
			if !ok {
				continue
			}
			netStrokes := score.Strokes - 1
			holePoints := 2 + hole.Par - netStrokes
			if holePoints < 0 {
				holePoints = 0
			}
			points += holePoints
		}
	}
	return points
}

// FormatToPar renders a score relative to par, with an even score shown as
// "E" instead of a signed zero.
func FormatToPar(diff int) string {
	if diff == 0 {
		return "E"
	}
	return fmt.Sprintf("%+d", diff)
}
