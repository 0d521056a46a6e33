package configs

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config dibangun sekali di main lalu di-inject ke tiap komponen.
type Config struct {
	Port        string
	Environment string

	// Database
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int
	AutoMigrate    bool

	// Auth
	JWTSecret    string
	JWTExpiresIn time.Duration

	// Video host (Mux)
	MuxTokenID     string
	MuxTokenSecret string
	MuxRatePerSec  int
	MuxPollTimeout time.Duration

	// Upload & video processing
	UploadDir          string
	MaxUploadMB        int
	VideoMaxInflight   int
	VideoStaleAfter    time.Duration
	VideoReconcileSpec string

	// Analytics
	SessionProvider     string
	SessionWindow       time.Duration
	RedisURL            string
	KafkaBrokers        []string
	KafkaAnalyticsTopic string

	// HTTP & logging
	CorsOrigins []string
	LogLevel    string
	LogFormat   string
}

const (
	SessionProviderPerCall = "per-call"
	SessionProviderRedis   = "redis"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}
}

// Load membaca environment (setelah LoadEnv) menjadi Config.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        GetEnv("PORT", "4000"),
		Environment: GetEnv("RAILWAY_ENVIRONMENT", "development"),

		DBHost:         GetEnv("DB_HOST", "localhost"),
		DBPort:         GetEnv("DB_PORT", "5432"),
		DBUser:         GetEnv("DB_USER", "postgres"),
		DBPassword:     GetEnv("DB_PASSWORD"),
		DBName:         GetEnv("DB_NAME", "courtbeat"),
		DBSSLMode:      GetEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 10),
		AutoMigrate:    getBoolEnv("AUTO_MIGRATE", true),

		JWTSecret:    strings.TrimSpace(GetEnv("JWT_SECRET")),
		JWTExpiresIn: getDurationEnv("JWT_EXPIRES_IN", 7*24*time.Hour),

		MuxTokenID:     GetEnv("MUX_TOKEN_ID"),
		MuxTokenSecret: GetEnv("MUX_TOKEN_SECRET"),
		MuxRatePerSec:  getIntEnv("MUX_RATE_PER_SEC", 5),
		MuxPollTimeout: getDurationEnv("MUX_POLL_TIMEOUT", 10*time.Minute),

		UploadDir:          GetEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadMB:        getIntEnv("MAX_UPLOAD_MB", 500),
		VideoMaxInflight:   getIntEnv("VIDEO_MAX_INFLIGHT", 4),
		VideoStaleAfter:    getDurationEnv("VIDEO_STALE_AFTER", 2*time.Hour),
		VideoReconcileSpec: GetEnv("VIDEO_RECONCILE_SPEC", "@every 15m"),

		SessionProvider:     strings.ToLower(GetEnv("SESSION_PROVIDER", SessionProviderPerCall)),
		SessionWindow:       getDurationEnv("SESSION_WINDOW", 30*time.Minute),
		RedisURL:            GetEnv("REDIS_URL"),
		KafkaBrokers:        getListEnv("KAFKA_BROKERS"),
		KafkaAnalyticsTopic: GetEnv("KAFKA_ANALYTICS_TOPIC", "courtbeat.analytics"),

		CorsOrigins: getListEnv("CORS_ORIGINS"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		LogFormat:   GetEnv("LOG_FORMAT", "text"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET belum diset")
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB harus > 0, dapat %d", cfg.MaxUploadMB)
	}
	if cfg.VideoMaxInflight <= 0 {
		cfg.VideoMaxInflight = 1
	}
	switch cfg.SessionProvider {
	case SessionProviderPerCall:
	case SessionProviderRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("SESSION_PROVIDER=redis butuh REDIS_URL")
		}
	default:
		return nil, fmt.Errorf("SESSION_PROVIDER tidak dikenal: %q", cfg.SessionProvider)
	}
	return cfg, nil
}

// DSN postgres untuk gorm (pgx) dan lib/pq.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("application_name", "courtbeat")
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Config) MuxConfigured() bool {
	return c.MuxTokenID != "" && c.MuxTokenSecret != ""
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getIntEnv(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️ %s bukan angka (%q), pakai default %d", key, v, def)
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("⚠️ %s bukan durasi (%q), pakai default %s", key, v, def)
	}
	return def
}

func getListEnv(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	out := make([]string, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
