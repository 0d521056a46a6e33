package routes

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	analyticsController "courtbeat_backend/internals/features/analytics/controller"
	analyticsRoute "courtbeat_backend/internals/features/analytics/route"
	authController "courtbeat_backend/internals/features/auth/controller"
	authRoute "courtbeat_backend/internals/features/auth/route"
	clubController "courtbeat_backend/internals/features/clubs/controller"
	clubRoute "courtbeat_backend/internals/features/clubs/route"
	musicController "courtbeat_backend/internals/features/music/controller"
	musicRoute "courtbeat_backend/internals/features/music/route"
	scheduleController "courtbeat_backend/internals/features/schedules/controller"
	scheduleRoute "courtbeat_backend/internals/features/schedules/route"
	videoController "courtbeat_backend/internals/features/videos/controller"
	videoRoute "courtbeat_backend/internals/features/videos/route"
	workoutController "courtbeat_backend/internals/features/workouts/controller"
	workoutRoute "courtbeat_backend/internals/features/workouts/route"
)

var startTime = time.Now()

const thumbnailsDir = "thumbnails"

// StaticUploads: hanya thumbnail yang publik. File video mentah di UPLOAD_DIR
// (menunggu diproses) tidak ikut disajikan.
func StaticUploads(app *fiber.App, uploadDir string) {
	app.Static("/uploads/"+thumbnailsDir, filepath.Join(uploadDir, thumbnailsDir),
		fiber.Static{Browse: false, MaxAge: 3600})
}

// Controllers dirakit di main (DI eksplisit, tanpa global DB)
type Controllers struct {
	Auth      *authController.AuthController
	Clubs     *clubController.ClubController
	Workouts  *workoutController.WorkoutController
	Videos    *videoController.VideoController
	Schedules *scheduleController.ScheduleController
	Analytics *analyticsController.AnalyticsController
	Music     *musicController.MusicController
}

type Options struct {
	Ping        Pinger
	UploadDir   string
	Environment string
}

func SetupRoutes(app *fiber.App, ctl Controllers, opts Options, log *logrus.Logger) {
	startTime = time.Now()

	BaseRoutes(app, opts.Ping, opts.Environment)

	StaticUploads(app, opts.UploadDir)

	api := app.Group("/api")

	log.Info("🔗 Mounting API routes")
	authRoute.AuthRoutes(api, ctl.Auth)
	clubRoute.ClubRoutes(api, ctl.Clubs)
	workoutRoute.WorkoutRoutes(api, ctl.Workouts)
	videoRoute.VideoRoutes(api, ctl.Videos)
	scheduleRoute.ScheduleRoutes(api, ctl.Schedules)
	analyticsRoute.AnalyticsRoutes(api, ctl.Analytics)
	musicRoute.MusicRoutes(api, ctl.Music)
}
