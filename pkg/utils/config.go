package utils

import (
	"github.com/spf13/viper"
)

// SentimentProvider selects the classification strategy at startup.
type SentimentProvider string

const (
	ProviderLocal  SentimentProvider = "local"
	ProviderOpenAI SentimentProvider = "openai"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Sentiment SentimentConfig
	Catalog   CatalogConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type SentimentConfig struct {
	Provider SentimentProvider
	APIKey   string
	Model    string
	BaseURL  string
}

type CatalogConfig struct {
	FilmsURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-reviews")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("SENTIMENT_PROVIDER", "openai")
	viper.SetDefault("OPENAI_MODEL", "gpt-4.1-mini")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com")
	viper.SetDefault("GHIBLI_FILMS_URL", "https://ghibliapi.vercel.app/films")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Sentiment: SentimentConfig{
			Provider: resolveProvider(viper.GetString("SENTIMENT_PROVIDER")),
			APIKey:   viper.GetString("OPENAI_API_KEY"),
			Model:    viper.GetString("OPENAI_MODEL"),
			BaseURL:  viper.GetString("OPENAI_BASE_URL"),
		},
		Catalog: CatalogConfig{
			FilmsURL: viper.GetString("GHIBLI_FILMS_URL"),
		},
	}

	return config, nil
}

// resolveProvider maps the env value to a closed variant once at startup.
// Anything unrecognized falls back to the local heuristic.
func resolveProvider(value string) SentimentProvider {
	if value == string(ProviderOpenAI) {
		return ProviderOpenAI
	}
	return ProviderLocal
}
