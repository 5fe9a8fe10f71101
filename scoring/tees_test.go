package scoring

import (
	"fairway/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeeColorForDefaultsToWhite(t *testing.T) {
	selections := []*repository.TournamentHoleTee{
		{TournamentId: 1, HoleId: 101, TeeColor: repository.TeeColorBlue},
	}

	assert.Equal(t, repository.TeeColorBlue, TeeColorFor(selections, 101))
	assert.Equal(t, repository.TeeColorWhite, TeeColorFor(selections, 102))
	assert.Equal(t, repository.TeeColorWhite, TeeColorFor(nil, 101))
}

func TestEffectiveYardageUsesSelectedColor(t *testing.T) {
	white := 350
	blue := 410
	hole := &repository.Hole{YardageWhite: &white, YardageBlue: &blue}

	assert.Equal(t, &blue, EffectiveYardage(hole, repository.TeeColorBlue))
	assert.Equal(t, &white, EffectiveYardage(hole, repository.TeeColorWhite))
}

func TestEffectiveYardageFallsBackToWhite(t *testing.T) {
	white := 350
	hole := &repository.Hole{YardageWhite: &white}

	// gold has no yardage on this hole, the white tee distance applies
	assert.Equal(t, &white, EffectiveYardage(hole, repository.TeeColorGold))
}

func TestEffectiveYardageWithoutAnyYardage(t *testing.T) {
	hole := &repository.Hole{}

	assert.Nil(t, EffectiveYardage(hole, repository.TeeColorRed))
}
