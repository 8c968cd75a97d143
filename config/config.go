package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Firestore / Firebase configuration.
	FirestoreProjectID string `mapstructure:"FIRESTORE_PROJECT_ID"`
	CredentialsFile    string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Redis configuration (best-rank cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Leaderboard data layout.
	Challenges            string `mapstructure:"CHALLENGES"`
	MappingCollection     string `mapstructure:"MAPPING_COLLECTION"`
	LeaderboardCollection string `mapstructure:"LEADERBOARD_COLLECTION"`

	// Base URL for vendor Slack profile links.
	SlackTeamURL string `mapstructure:"SLACK_TEAM_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("FIRESTORE_PROJECT_ID", "")
	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("CHALLENGES", "challenge1,challenge2,challenge3")
	viper.SetDefault("MAPPING_COLLECTION", "sales_info")
	viper.SetDefault("LEADERBOARD_COLLECTION", "leaderboard")
	viper.SetDefault("SLACK_TEAM_URL", "https://teliosa.slack.com/team/")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// ChallengeCollections returns the configured challenge collection names.
func ChallengeCollections() []string {
	parts := strings.Split(AppConfig.Challenges, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
