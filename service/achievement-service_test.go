package service

import (
	"testing"

	"fairway/repository"
	"fairway/scoring"

	"github.com/stretchr/testify/assert"
)

func TestAchievementCatalogSeedsOnce(t *testing.T) {
	defer TearDown()
	achievementService := NewAchievementService(db)

	catalog, err := achievementService.GetCatalog()
	assert.NoError(t, err)
	assert.Len(t, catalog, len(scoring.DefaultAchievements()))

	again, err := achievementService.GetCatalog()
	assert.NoError(t, err)
	assert.Len(t, again, len(catalog), "the seed only runs on an empty catalog")

	for _, achievement := range catalog {
		assert.Equal(t, achievement.Icon, repository.NormalizeIcon(achievement.Icon), "seeded icons are all known keys")
	}
}
