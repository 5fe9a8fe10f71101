package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fairway/config"
	"fairway/repository"
	"fairway/utils"

	"github.com/lib/pq"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type OauthState struct {
	Verifier string
	Timeout  int64
	User     *repository.User
	Redirect string
}

type OauthService struct {
	Config      map[repository.Provider]*oauth2.Config
	stateMu     sync.Mutex
	stateMap    map[string]OauthState
	userService *UserService
}

type DiscordUserResponse struct {
	Id            string `json:"id"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"global_name"`
	Locale        string `json:"locale"`
}

type GoogleUserResponse struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func NewOauthService(db *gorm.DB) *OauthService {
	cfg := config.Env()
	return &OauthService{
		Config: map[repository.Provider]*oauth2.Config{
			repository.ProviderDiscord: {
				ClientID:     cfg.DiscordClientID,
				ClientSecret: cfg.DiscordClientSecret,
				Scopes:       []string{"identify"},
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://discord.com/oauth2/authorize",
					TokenURL: "https://discord.com/api/oauth2/token",
				},
			},
			repository.ProviderGoogle: {
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Scopes:       []string{"openid", "profile"},
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://accounts.google.com/o/oauth2/auth",
					TokenURL: "https://oauth2.googleapis.com/token",
				},
			},
		},
		stateMap:    make(map[string]OauthState),
		userService: NewUserService(db),
	}
}

func (e *OauthService) GetNewVerifier(user *repository.User, lastUrl string) (string, string) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	// clean up old verifiers
	for state, v := range e.stateMap {
		if v.Timeout < time.Now().Unix() {
			delete(e.stateMap, state)
		}
	}
	state := oauth2.GenerateVerifier()
	verifier := oauth2.GenerateVerifier()
	e.stateMap[state] = OauthState{
		Verifier: verifier,
		Timeout:  time.Now().Add(1 * time.Minute).Unix(),
		User:     user,
		Redirect: lastUrl,
	}
	return state, verifier
}

func (e *OauthService) GetOauthProviderUrl(user *repository.User, provider repository.Provider, lastUrl string, redirectUrl string) string {
	state, verifier := e.GetNewVerifier(user, lastUrl)
	config := e.Config[provider]
	config.RedirectURL = redirectUrl
	return config.AuthCodeURL(
		state,
		oauth2.SetAuthURLParam("code_challenge", oauth2.S256ChallengeFromVerifier(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

func (e *OauthService) Verify(state string, code string, provider repository.Provider, oauthConfig oauth2.Config) (*OauthState, error) {
	switch provider {
	case repository.ProviderDiscord:
		return e.VerifyDiscord(state, code, oauthConfig)
	case repository.ProviderGoogle:
		return e.VerifyGoogle(state, code, oauthConfig)
	default:
		return nil, fmt.Errorf("unknown oauth provider %s", provider)
	}
}

func addAccountToUser(userService *UserService, authState *OauthState, accountId string, accountName string, token *oauth2.Token, provider repository.Provider) (*OauthState, error) {
	if authState.User == nil {
		user, err := userService.GetUserByOauthProviderAndAccountId(provider, accountId)
		if err != nil {
			user = &repository.User{
				Permissions:   pq.StringArray{},
				DisplayName:   accountName,
				OauthAccounts: []*repository.Oauth{},
			}
		}
		authState.User = user
	}
	account := &repository.Oauth{
		UserId:       authState.User.Id,
		Provider:     provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		AccountId:    accountId,
		Name:         accountName,
		Expiry:       token.Expiry,
	}
	authState.User.OauthAccounts = append(
		utils.Filter(authState.User.OauthAccounts, func(oauthAccount *repository.Oauth) bool {
			return oauthAccount.Provider != provider
		}),
		account,
	)
	if _, err := userService.SaveUser(authState.User); err != nil {
		return nil, err
	}
	// association inserts keep existing rows untouched, so a returning login
	// needs the fresh tokens written explicitly
	account.UserId = authState.User.Id
	if _, err := userService.SaveOauthAccount(account); err != nil {
		return nil, err
	}
	return authState, nil
}

func (e *OauthService) fetchToken(oauthConfig oauth2.Config, state string, code string) (*OauthState, *oauth2.Token, error) {
	e.stateMu.Lock()
	authState, ok := e.stateMap[state]
	delete(e.stateMap, state)
	e.stateMu.Unlock()
	if !ok {
		return nil, nil, fmt.Errorf("state is unknown")
	}
	token, err := oauthConfig.Exchange(context.Background(), code, oauth2.SetAuthURLParam("code_verifier", authState.Verifier))
	if err != nil {
		return nil, nil, err
	}
	return &authState, token, nil
}

func (e *OauthService) VerifyDiscord(state string, code string, oauthConfig oauth2.Config) (*OauthState, error) {
	authState, token, err := e.fetchToken(oauthConfig, state, code)
	if err != nil {
		return nil, err
	}
	client := oauthConfig.Client(context.Background(), token)
	response, err := client.Get("https://discord.com/api/users/@me")
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	discordUser := &DiscordUserResponse{}
	err = json.NewDecoder(response.Body).Decode(discordUser)
	if err != nil {
		return nil, err
	}
	name := discordUser.GlobalName
	if name == "" {
		name = discordUser.Username
	}
	return addAccountToUser(e.userService, authState, discordUser.Id, name, token, repository.ProviderDiscord)
}

func (e *OauthService) VerifyGoogle(state string, code string, oauthConfig oauth2.Config) (*OauthState, error) {
	authState, token, err := e.fetchToken(oauthConfig, state, code)
	if err != nil {
		return nil, err
	}
	client := oauthConfig.Client(context.Background(), token)
	response, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	googleUser := &GoogleUserResponse{}
	err = json.NewDecoder(response.Body).Decode(googleUser)
	if err != nil {
		return nil, err
	}
	return addAccountToUser(e.userService, authState, googleUser.Id, googleUser.Name, token, repository.ProviderGoogle)
}
