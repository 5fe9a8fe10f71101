package config

import (
	"fmt"
	"strings"

	"fairway/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var enumQueries = []string{
	`CREATE TYPE fairway.tee_color AS ENUM ('white', 'blue', 'red', 'gold')`,
	`CREATE TYPE fairway.scoring_system AS ENUM ('stroke_play', 'handicap', 'stableford')`,
}

// InitDB opens the connection, creates the schema and enum types if they are
// missing and keeps the model columns in sync.
func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "fairway.",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS fairway`)
	if x.Error != nil {
		return nil, x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return nil, x.Error
		}
	}

	err = db.AutoMigrate(
		&repository.User{},
		&repository.Oauth{},
		&repository.Course{},
		&repository.Hole{},
		&repository.Tournament{},
		&repository.TournamentPlayer{},
		&repository.TournamentHoleTee{},
		&repository.Round{},
		&repository.Score{},
		&repository.GalleryPhoto{},
		&repository.Achievement{},
		&repository.UserAchievement{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
