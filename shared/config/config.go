package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the full service configuration. Every credential is optional:
// a missing key switches the owning component into its deterministic
// mock/fallback mode instead of failing startup.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	YouTube   YouTubeConfig
	GitHub    GitHubConfig
	Instagram InstagramConfig
	AI        AIConfig
	ImageGen  ImageGenConfig
	Schedule  ScheduleConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins string // comma-separated; empty allows all
}

type DatabaseConfig struct {
	MongoURL string
	Name     string
}

type AuthConfig struct {
	JWTSecret string
}

type YouTubeConfig struct {
	APIKey string
}

type GitHubConfig struct {
	Token string
}

type InstagramConfig struct {
	AccessToken       string
	BusinessAccountID string
}

type AIConfig struct {
	GeminiAPIKey string
	Model        string
}

type ImageGenConfig struct {
	ReplicateToken string
}

type ScheduleConfig struct {
	// PremiumSweep is a cron expression (with seconds) for the expired
	// premium subscription sweep.
	PremiumSweep string
}

// Load reads the configuration from the environment. A .env file is applied
// first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getenv("HOST", "127.0.0.1"),
			Port:           getenvInt("PORT", 8000),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			MongoURL: getenv("MONGODB_URL", "mongodb://localhost:27017"),
			Name:     getenv("DATABASE_NAME", "holokit_db"),
		},
		Auth: AuthConfig{
			JWTSecret: getenv("JWT_SECRET", "holokit-secret-change-me"),
		},
		YouTube: YouTubeConfig{
			APIKey: os.Getenv("YOUTUBE_API_KEY"),
		},
		GitHub: GitHubConfig{
			Token: os.Getenv("GITHUB_TOKEN"),
		},
		Instagram: InstagramConfig{
			AccessToken:       os.Getenv("INSTAGRAM_ACCESS_TOKEN"),
			BusinessAccountID: os.Getenv("INSTAGRAM_BUSINESS_ACCOUNT_ID"),
		},
		AI: AIConfig{
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			Model:        getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		ImageGen: ImageGenConfig{
			ReplicateToken: os.Getenv("REPLICATE_API_TOKEN"),
		},
		Schedule: ScheduleConfig{
			PremiumSweep: getenv("PREMIUM_SWEEP_SCHEDULE", "0 0 * * * *"), // Hourly
		},
	}

	return cfg, nil
}

// Configured reports whether the Instagram client has everything it needs
// for Business Discovery lookups. Both values are required together.
func (c InstagramConfig) Configured() bool {
	return c.AccessToken != "" && c.BusinessAccountID != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
