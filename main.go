package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"courtbeat_backend/internals/configs"
	database "courtbeat_backend/internals/databases"
	analyticsController "courtbeat_backend/internals/features/analytics/controller"
	"courtbeat_backend/internals/features/analytics/publisher"
	analyticsRepo "courtbeat_backend/internals/features/analytics/repository"
	analyticsService "courtbeat_backend/internals/features/analytics/service"
	"courtbeat_backend/internals/features/analytics/session"
	authController "courtbeat_backend/internals/features/auth/controller"
	authRepo "courtbeat_backend/internals/features/auth/repository"
	authService "courtbeat_backend/internals/features/auth/service"
	clubController "courtbeat_backend/internals/features/clubs/controller"
	clubRepo "courtbeat_backend/internals/features/clubs/repository"
	clubService "courtbeat_backend/internals/features/clubs/service"
	musicController "courtbeat_backend/internals/features/music/controller"
	musicRepo "courtbeat_backend/internals/features/music/repository"
	musicService "courtbeat_backend/internals/features/music/service"
	scheduleController "courtbeat_backend/internals/features/schedules/controller"
	scheduleRepo "courtbeat_backend/internals/features/schedules/repository"
	scheduleService "courtbeat_backend/internals/features/schedules/service"
	videoController "courtbeat_backend/internals/features/videos/controller"
	"courtbeat_backend/internals/features/videos/processor"
	videoRepo "courtbeat_backend/internals/features/videos/repository"
	"courtbeat_backend/internals/features/videos/scheduler"
	videoService "courtbeat_backend/internals/features/videos/service"
	"courtbeat_backend/internals/features/videos/videohost"
	workoutController "courtbeat_backend/internals/features/workouts/controller"
	workoutRepo "courtbeat_backend/internals/features/workouts/repository"
	workoutService "courtbeat_backend/internals/features/workouts/service"
	helper "courtbeat_backend/internals/helpers"
	middlewares "courtbeat_backend/internals/middlewares"
	routes "courtbeat_backend/internals/route"
	"courtbeat_backend/internals/seeds"
)

const usage = `usage: courtbeat [serve|migrate|seed]`

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ config:", err)
		os.Exit(1)
	}
	log := configs.NewLogger(cfg)

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		err = serve(cfg, log)
	case "migrate":
		err = database.Migrate(cfg.DSN(), log)
	case "seed":
		err = runSeed(cfg, log)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Fatalf("❌ %s gagal", cmd)
	}
}

func runSeed(cfg *configs.Config, log *logrus.Logger) error {
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	return seeds.RunAllSeeds(ctx, db, log)
}

func serve(cfg *configs.Config, log *logrus.Logger) error {
	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DSN(), log); err != nil {
			return err
		}
	}

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	database.TunePool(db, cfg, log)
	database.WarmUpQueries(db, log)

	if err := os.MkdirAll(filepath.Join(cfg.UploadDir, "thumbnails"), 0o755); err != nil {
		return fmt.Errorf("upload dir: %w", err)
	}

	// 🎬 video host + processor
	host := videohost.NewMuxClient(videohost.MuxConfig{
		TokenID:     cfg.MuxTokenID,
		TokenSecret: cfg.MuxTokenSecret,
		RatePerSec:  float64(cfg.MuxRatePerSec),
		PollTimeout: cfg.MuxPollTimeout,
	})
	if !cfg.MuxConfigured() {
		log.Warn("⚠️ MUX_TOKEN_ID/MUX_TOKEN_SECRET kosong, upload video akan gagal diproses")
	}
	vRepo := videoRepo.NewVideoRepository(db)
	proc := processor.New(host, vRepo, cfg.VideoMaxInflight, log)

	// ⏱ reconcile video yang tertinggal setelah crash
	reaper := scheduler.NewStaleReaper(vRepo, cfg.VideoStaleAfter, log)
	cronJobs, err := scheduler.Start(reaper, cfg.VideoReconcileSpec, log)
	if err != nil {
		return fmt.Errorf("video reaper: %w", err)
	}

	// 📊 analytics: session provider + publisher
	var rdb *redis.Client
	var sessions session.Provider = session.NewPerCallProvider()
	if cfg.SessionProvider == configs.SessionProviderRedis {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opt)
		sessions = session.NewRedisWindowProvider(rdb, cfg.SessionWindow)
		log.WithField("window", cfg.SessionWindow.String()).Info("🧭 Session id per club via Redis")
	}

	var pub publisher.Publisher = publisher.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		pub = publisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaAnalyticsTopic, log)
		log.WithField("topic", cfg.KafkaAnalyticsTopic).Info("📨 Event analytics diteruskan ke Kafka")
	}

	ctls := buildControllers(db, cfg, log, host, proc, vRepo, sessions, pub)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler(log),
		BodyLimit:             int(cfg.MaxUploadBytes()) + 1<<20,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Minute,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg)
	routes.SetupRoutes(app, ctls, routes.Options{
		Ping:        func(ctx context.Context) error { return database.Ping(ctx, db) },
		UploadDir:   cfg.UploadDir,
		Environment: cfg.Environment,
	}, log)

	// Start server non-blocking
	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("✅ Listening")
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case <-quit:
		log.Info("🛑 Shutdown dimulai")
	case serveErr = <-errCh:
		log.WithError(serveErr).Error("server berhenti")
	}

	shutdown(log, app, cronJobs, proc, pub, rdb, db)
	return serveErr
}

func buildControllers(
	db *gorm.DB,
	cfg *configs.Config,
	log *logrus.Logger,
	host videohost.Client,
	proc *processor.Processor,
	vRepo videoRepo.VideoRepository,
	sessions session.Provider,
	pub publisher.Publisher,
) routes.Controllers {
	tokens := authService.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	authSvc := authService.NewAuthService(authRepo.NewAdminRepository(db), tokens, log)

	return routes.Controllers{
		Auth:      authController.NewAuthController(authSvc, nil),
		Clubs:     clubController.NewClubController(clubService.NewClubService(clubRepo.NewClubRepository(db), log), nil),
		Workouts:  workoutController.NewWorkoutController(workoutService.NewWorkoutService(workoutRepo.NewWorkoutRepository(db), cfg.UploadDir, log), nil),
		Videos:    videoController.NewVideoController(videoService.NewVideoService(vRepo, proc, host, cfg.UploadDir, log), cfg.MaxUploadBytes()),
		Schedules: scheduleController.NewScheduleController(scheduleService.NewScheduleService(scheduleRepo.NewScheduleRepository(db), log), nil),
		Analytics: analyticsController.NewAnalyticsController(analyticsService.NewAnalyticsService(analyticsRepo.NewAnalyticsRepository(db), sessions, pub, log), nil),
		Music:     musicController.NewMusicController(musicService.NewMusicService(musicRepo.NewMusicRepository(db), log), nil),
	}
}

// shutdown: server → cron → processor → kafka → redis → DB
func shutdown(
	log *logrus.Logger,
	app *fiber.App,
	cronJobs *cron.Cron,
	proc *processor.Processor,
	pub publisher.Publisher,
	rdb *redis.Client,
	db *gorm.DB,
) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Warn("fiber shutdown")
	}

	select {
	case <-cronJobs.Stop().Done():
	case <-ctx.Done():
	}

	if err := proc.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("processor shutdown: task in-flight dibatalkan")
	}

	if err := pub.Close(); err != nil {
		log.WithError(err).Warn("kafka close")
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.WithError(err).Warn("redis close")
		}
	}

	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("db close")
	}
	log.Info("👋 Shutdown selesai")
}
