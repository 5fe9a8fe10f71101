package service

import (
	"log"
	"testing"
	"time"

	"fairway/config"
	"fairway/repository"

	"github.com/ory/dockertest/v3"
	"gorm.io/gorm"
)

var db *gorm.DB

// par 72 layout with four par 3s, the same shape a real course card has
var testPars = []int{4, 5, 3, 4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4}

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	// uses pool to try to connect to Docker
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		db, err = config.InitDB("localhost", resource.GetPort("5432/tcp"), "postgres", "postgres", "postgres")
		return err
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	// as of go1.15 testing.M returns the exit code of m.Run(), so it is safe to use defer here
	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM fairway.user_achievements")
	db.Exec("DELETE FROM fairway.achievements")
	db.Exec("DELETE FROM fairway.scores")
	db.Exec("DELETE FROM fairway.rounds")
	db.Exec("DELETE FROM fairway.tournament_hole_tees")
	db.Exec("DELETE FROM fairway.tournament_players")
	db.Exec("DELETE FROM fairway.gallery_photos")
	db.Exec("DELETE FROM fairway.tournaments")
	db.Exec("DELETE FROM fairway.holes")
	db.Exec("DELETE FROM fairway.courses")
	db.Exec("DELETE FROM fairway.oauths")
	db.Exec("DELETE FROM fairway.users")
}

// SetUp creates a current tournament on an 18 hole course with two
// registered players.
func SetUp() *repository.Tournament {
	holes := make([]*repository.Hole, 0, len(testPars))
	for i, par := range testPars {
		yardage := 350 + 10*i
		holes = append(holes, &repository.Hole{
			Number:       i + 1,
			Par:          par,
			HandicapRank: i + 1,
			YardageWhite: &yardage,
		})
	}
	course := &repository.Course{
		Name:     "Pebble Creek",
		Location: "Austin, TX",
		Holes:    holes,
	}
	if err := db.Create(course).Error; err != nil {
		log.Fatalf("Error creating course: %v", err)
	}

	users := []*repository.User{
		{DisplayName: "alice"},
		{DisplayName: "bob"},
	}
	if err := db.Create(users).Error; err != nil {
		log.Fatalf("Error creating users: %v", err)
	}

	tournament := &repository.Tournament{
		Name:          "Spring Invitational",
		CourseId:      course.Id,
		ScoringSystem: repository.ScoringSystemStrokePlay,
		NumRounds:     2,
		IsCurrent:     true,
		StartTime:     time.Now(),
		EndTime:       time.Now().Add(48 * time.Hour),
		MaxPlayers:    8,
	}
	if err := db.Create(tournament).Error; err != nil {
		log.Fatalf("Error creating tournament: %v", err)
	}
	for _, user := range users {
		entry := &repository.TournamentPlayer{
			TournamentId: tournament.Id,
			UserId:       user.Id,
			Timestamp:    time.Now(),
		}
		if err := db.Create(entry).Error; err != nil {
			log.Fatalf("Error registering player: %v", err)
		}
	}
	tournament.Course = course
	tournament.Players = users
	return tournament
}
