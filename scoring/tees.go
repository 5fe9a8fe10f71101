package scoring

import (
	"fairway/repository"
)

// TeeColorFor resolves the tee color a hole is played from. Holes without a
// selection row fall back to the white tees.
func TeeColorFor(selections []*repository.TournamentHoleTee, holeId int) repository.TeeColor {
	for _, selection := range selections {
		if selection.HoleId == holeId {
			return selection.TeeColor
		}
	}
	return repository.TeeColorWhite
}

// EffectiveYardage returns the yardage for the given tee color, falling back
// to the white yardage when the color has none. Returns nil when neither is
// recorded.
func EffectiveYardage(hole *repository.Hole, color repository.TeeColor) *int {
	if yardage := yardageFor(hole, color); yardage != nil {
		return yardage
	}
	return hole.YardageWhite
}

func yardageFor(hole *repository.Hole, color repository.TeeColor) *int {
	switch color {
	case repository.TeeColorWhite:
		return hole.YardageWhite
	case repository.TeeColorBlue:
		return hole.YardageBlue
	case repository.TeeColorRed:
		return hole.YardageRed
	case repository.TeeColorGold:
		return hole.YardageGold
	}
	return nil
}
