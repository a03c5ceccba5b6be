package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	// Storage
	StorageBackend  string
	MongoURI        string
	MongoDB         string
	MongoUser       string
	MongoPassword   string
	UsersCollection string
	TripsCollection string
	PostgresURI     string

	// Text generation
	GeminiAPIKey         string
	GeminiModel          string
	GeminiBaseURL        string
	GenerationMaxRetries int
	GenerationRetryDelay time.Duration

	// Images and reference data
	UnsplashAccessKey string
	UnsplashBaseURL   string
	CountriesAPIURL   string

	// Identity
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	SessionSecret      string
	SessionTTL         time.Duration
	SessionCookie      string
	SecureCookies      bool
	SignInURL          string
}

// LoadConfig loads configuration from environment variables.
// Values other than GEMINI_API_KEY fall back to placeholders when unset.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:         getEnv("APP_VERSION", "1.0.0"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Port:               getEnv("PORT", "8080"),
		ReadTimeout:        getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:       getEnvAsDuration("WRITE_TIMEOUT", 90*time.Second),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		StorageBackend:  strings.ToLower(getEnv("STORAGE_BACKEND", StorageMongo)),
		MongoURI:        getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "tripboard"),
		MongoUser:       getEnv("MONGO_USER", ""),
		MongoPassword:   getEnv("MONGO_PASSWORD", ""),
		UsersCollection: getEnv("USERS_COLLECTION", "users"),
		TripsCollection: getEnv("TRIPS_COLLECTION", "trips"),
		PostgresURI:     getEnv("POSTGRES_DSN", "host=localhost user=postgres dbname=tripboard sslmode=disable"),

		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:        getEnv("GEMINI_BASE_URL", ""),
		GenerationMaxRetries: getEnvAsInt("GENERATION_MAX_RETRIES", 0),
		GenerationRetryDelay: getEnvAsDuration("GENERATION_RETRY_BASE_DELAY", 500*time.Millisecond),

		UnsplashAccessKey: getEnv("UNSPLASH_ACCESS_KEY", ""),
		UnsplashBaseURL:   getEnv("UNSPLASH_BASE_URL", "https://api.unsplash.com"),
		CountriesAPIURL:   getEnv("COUNTRIES_API_URL", "https://restcountries.com/v3.1"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", "default"),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", "default"),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/oauth/google/callback"),
		SessionSecret:      getEnv("SESSION_SECRET", "default"),
		SessionTTL:         getEnvAsDuration("SESSION_TTL", 7*24*time.Hour),
		SessionCookie:      getEnv("SESSION_COOKIE", "tripboard_session"),
		SecureCookies:      getEnvAsBool("SECURE_COOKIES", false),
		SignInURL:          getEnv("SIGN_IN_URL", "/sign-in"),
	}

	return config, nil
}

// TextGenerationConfigured reports whether the model credential is present
func (c *Config) TextGenerationConfigured() bool {
	return c.GeminiAPIKey != ""
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
