package service

import (
	"fairway/app_error"
	"fairway/auth"
	"fairway/repository"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type UserService struct {
	userRepository  *repository.UserRepository
	oauthRepository *repository.OauthRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository:  repository.NewUserRepository(db),
		oauthRepository: repository.NewOauthRepository(db),
	}
}

func (s *UserService) GetUserByOauthProviderAndAccountId(provider repository.Provider, accountId string) (*repository.User, error) {
	oauth, err := s.oauthRepository.GetOauthByProviderAndAccountId(provider, accountId)
	if err != nil {
		return nil, err
	}
	return oauth.User, nil
}

func (s *UserService) SaveUser(user *repository.User) (*repository.User, error) {
	return s.userRepository.SaveUser(user)
}

func (s *UserService) SaveOauthAccount(oauth *repository.Oauth) (*repository.Oauth, error) {
	return s.oauthRepository.SaveOauth(oauth)
}

func (s *UserService) GetAllUsers() ([]*repository.User, error) {
	return s.userRepository.GetAllUsers()
}

func (s *UserService) GetUserById(id int, preloads ...string) (*repository.User, error) {
	return s.userRepository.GetUserById(id, preloads...)
}

// GetUserFromContext resolves the authenticated user from the auth cookie,
// falling back to a bearer token for non-browser clients.
func (s *UserService) GetUserFromContext(c *gin.Context) (*repository.User, error) {
	tokenString, err := c.Cookie("auth")
	if err != nil {
		authHeader := c.Request.Header.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return nil, fmt.Errorf("not authenticated")
		}
		tokenString = authHeader[7:]
	}
	return s.GetUserFromToken(tokenString)
}

func (s *UserService) GetUserFromToken(tokenString string) (*repository.User, error) {
	token, err := auth.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims := &auth.Claims{}
	if token.Valid {
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			return nil, err
		}
		return s.GetUserById(claims.UserId, "OauthAccounts")
	}
	return nil, jwt.ErrInvalidKey
}

func (s *UserService) ChangeDisplayName(userId int, displayName string) (*repository.User, error) {
	if displayName == "" {
		return nil, app_error.Validation(fmt.Errorf("display name must not be empty"))
	}
	user, err := s.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	user.DisplayName = displayName
	return s.userRepository.SaveUser(user)
}

func (s *UserService) ChangePermissions(userId int, permissions []repository.Permission) (*repository.User, error) {
	user, err := s.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	stringPermissions := make([]string, 0, len(permissions))
	for _, permission := range permissions {
		stringPermissions = append(stringPermissions, string(permission))
	}
	user.Permissions = stringPermissions
	return s.userRepository.SaveUser(user)
}

func (s *UserService) RemoveProvider(user *repository.User, provider repository.Provider) (*repository.User, error) {
	if len(user.OauthAccounts) < 2 {
		return nil, app_error.Validation(fmt.Errorf("cannot remove the last login provider"))
	}
	err := s.oauthRepository.DeleteOauth(user.Id, provider)
	if err != nil {
		return nil, err
	}
	return s.GetUserById(user.Id, "OauthAccounts")
}
