package controller

import (
	"fmt"
	"net/http"

	"fairway/auth"
	"fairway/config"
	"fairway/repository"
	"fairway/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OauthController struct {
	oauthService *service.OauthService
	userService  *service.UserService
}

func NewOauthController(db *gorm.DB) *OauthController {
	return &OauthController{
		oauthService: service.NewOauthService(db),
		userService:  service.NewUserService(db),
	}
}

func setupOauthController(db *gorm.DB) []RouteInfo {
	e := NewOauthController(db)
	basePath := "/oauth2"
	routes := []RouteInfo{
		{Method: "GET", Path: "/discord", HandlerFunc: e.oauthLoginHandler(repository.ProviderDiscord)},
		{Method: "GET", Path: "/discord/redirect", HandlerFunc: e.oauthRedirectHandler(repository.ProviderDiscord)},
		{Method: "GET", Path: "/google", HandlerFunc: e.oauthLoginHandler(repository.ProviderGoogle)},
		{Method: "GET", Path: "/google/redirect", HandlerFunc: e.oauthRedirectHandler(repository.ProviderGoogle)},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// The callback must be registered with the provider, so it is rebuilt from
// the incoming request instead of being configured once.
func oauthRedirectUrl(c *gin.Context, provider repository.Provider) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/api/oauth2/%s/redirect", scheme, c.Request.Host, provider)
}

// @id OauthLogin
// @Description Redirects to the provider's consent screen. A logged in caller links the provider to their account instead.
// @Tags oauth
// @Param provider path string true "Provider"
// @Param last_url query string false "Url to return to after login"
// @Success 307
// @Router /oauth2/{provider} [get]
func (e *OauthController) oauthLoginHandler(provider repository.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		// a logged in user gets the new provider linked to their account
		user, err := e.userService.GetUserFromContext(c)
		if err != nil {
			user = nil
		}
		url := e.oauthService.GetOauthProviderUrl(user, provider, c.Query("last_url"), oauthRedirectUrl(c, provider))
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

// @id OauthRedirect
// @Description Exchanges the provider's code for a user session and sets the auth cookie
// @Tags oauth
// @Param provider path string true "Provider"
// @Param code query string true "Authorization code"
// @Param state query string true "State"
// @Success 307
// @Router /oauth2/{provider}/redirect [get]
func (e *OauthController) oauthRedirectHandler(provider repository.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if errorString := c.Query("error"); errorString != "" {
			c.JSON(400, gin.H{"error": fmt.Sprintf("%s: %s", errorString, c.Query("error_description"))})
			return
		}
		oauthConfig := *e.oauthService.Config[provider]
		oauthConfig.RedirectURL = oauthRedirectUrl(c, provider)
		authState, err := e.oauthService.Verify(c.Query("state"), c.Query("code"), provider, oauthConfig)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		authToken, err := auth.CreateToken(authState.User)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie("auth", authToken, 60*60*24*7, "/", config.Env().PublicDomain, false, true)
		if authState.Redirect != "" {
			c.Redirect(http.StatusTemporaryRedirect, authState.Redirect)
			return
		}
		c.JSON(200, gin.H{"user_id": authState.User.Id})
	}
}
