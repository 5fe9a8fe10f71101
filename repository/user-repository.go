package repository

import (
	"fairway/utils"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Permission string

const (
	PermissionAdmin Permission = "admin"
)

type User struct {
	Id            int            `gorm:"primaryKey"`
	DisplayName   string         `gorm:"not null"`
	Permissions   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	OauthAccounts []*Oauth       `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (user *User) HasPermission(permission Permission) bool {
	return utils.Contains(user.Permissions, string(permission))
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int, preloads ...string) (*User, error) {
	var user User
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&user, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetAllUsers() ([]*User, error) {
	users := make([]*User, 0)
	result := r.DB.Preload("OauthAccounts").Order("display_name ASC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) SaveUser(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}
