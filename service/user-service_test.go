package service

import (
	"testing"
	"time"

	"fairway/app_error"
	"fairway/repository"

	"github.com/stretchr/testify/assert"
)

func TestChangeDisplayName(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	userService := NewUserService(db)
	alice := tournament.Players[0]

	user, err := userService.ChangeDisplayName(alice.Id, "Alice Birdie")
	assert.NoError(t, err)
	assert.Equal(t, "Alice Birdie", user.DisplayName)

	_, err = userService.ChangeDisplayName(alice.Id, "")
	assert.Equal(t, 400, app_error.HTTPStatus(err), "an empty display name is rejected")

	_, err = userService.ChangeDisplayName(999999, "ghost")
	assert.Equal(t, 404, app_error.HTTPStatus(err))
}

func TestChangePermissions(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	userService := NewUserService(db)
	alice := tournament.Players[0]

	user, err := userService.ChangePermissions(alice.Id, []repository.Permission{repository.PermissionAdmin})
	assert.NoError(t, err)
	assert.True(t, user.HasPermission(repository.PermissionAdmin))

	user, err = userService.ChangePermissions(alice.Id, []repository.Permission{})
	assert.NoError(t, err)
	assert.False(t, user.HasPermission(repository.PermissionAdmin))
}

func TestRemoveProviderKeepsLastLogin(t *testing.T) {
	tournament := SetUp()
	defer TearDown()
	userService := NewUserService(db)
	aliceId := tournament.Players[0].Id

	discord := &repository.Oauth{
		UserId:      aliceId,
		Provider:    repository.ProviderDiscord,
		AccessToken: "token-d",
		Expiry:      time.Now().Add(time.Hour),
		Name:        "alice#0001",
		AccountId:   "discord-1",
	}
	if err := db.Create(discord).Error; err != nil {
		t.Fatalf("Error creating oauth account: %v", err)
	}

	alice, err := userService.GetUserById(aliceId, "OauthAccounts")
	assert.NoError(t, err)
	_, err = userService.RemoveProvider(alice, repository.ProviderDiscord)
	assert.Equal(t, 400, app_error.HTTPStatus(err), "the last provider cannot be unlinked")

	google := &repository.Oauth{
		UserId:      aliceId,
		Provider:    repository.ProviderGoogle,
		AccessToken: "token-g",
		Expiry:      time.Now().Add(time.Hour),
		Name:        "Alice",
		AccountId:   "google-1",
	}
	if err := db.Create(google).Error; err != nil {
		t.Fatalf("Error creating oauth account: %v", err)
	}

	alice, err = userService.GetUserById(aliceId, "OauthAccounts")
	assert.NoError(t, err)
	user, err := userService.RemoveProvider(alice, repository.ProviderDiscord)
	assert.NoError(t, err)
	if assert.Len(t, user.OauthAccounts, 1) {
		assert.Equal(t, repository.ProviderGoogle, user.OauthAccounts[0].Provider)
	}

	found, err := userService.GetUserByOauthProviderAndAccountId(repository.ProviderGoogle, "google-1")
	assert.NoError(t, err)
	assert.Equal(t, aliceId, found.Id)
}
