package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScoresSubmittedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "scores_submitted_total",
		Help: "Number of hole scores submitted or edited",
	},
)

var RoundsCompletedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "rounds_completed_total",
		Help: "Number of rounds that reached all 18 holes",
	},
)

var AchievementsGrantedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "achievements_granted_total",
	Help: "Number of achievements granted by achievement key",
}, []string{"achievement"})

var SignupsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tournament_signups_total",
	Help: "Number of tournament registrations",
})

var PhotosUploadedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "gallery_photos_uploaded_total",
	Help: "Number of photos uploaded to the gallery",
})

var PhotoUploadErrorCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "gallery_photo_upload_errors_total",
	Help: "Number of failed gallery uploads",
})
