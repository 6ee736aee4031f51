package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StoreFirestore = "firestore"
	StoreMongo     = "mongo"
	StoreMemory    = "memory"

	AuthJWT      = "jwt"
	AuthFirebase = "firebase"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port int

	StoreDriver             string
	FirebaseProjectID       string
	FirebaseCredentialsJSON string
	MongoURI                string
	MongoDatabase           string

	AuthProvider string
	JWTSecret    string

	CORSHosts []string
	StaticDir string
	LogLevel  logrus.Level
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine outside local development.
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		StoreDriver:             withDefault(getenv("STORE_DRIVER"), StoreFirestore),
		FirebaseProjectID:       getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsJSON: getenv("FIREBASE_CREDENTIALS_JSON"),
		MongoURI:                getenv("MONGO_URI"),
		MongoDatabase:           withDefault(getenv("MONGO_DATABASE"), "torneos"),
		AuthProvider:            withDefault(getenv("AUTH_PROVIDER"), AuthJWT),
		JWTSecret:               getenv("JWT_SECRET"),
		StaticDir:               getenv("STATIC_DIR"),
	}

	port, err := strconv.Atoi(withDefault(getenv("PORT"), "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}
	cfg.Port = port

	level, err := logrus.ParseLevel(withDefault(getenv("LOG_LEVEL"), "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}
	cfg.LogLevel = level

	for _, host := range strings.Split(getenv("CORS_HOSTS"), ",") {
		if host = strings.TrimSpace(host); host != "" {
			cfg.CORSHosts = append(cfg.CORSHosts, host)
		}
	}

	switch cfg.StoreDriver {
	case StoreFirestore:
		if cfg.FirebaseProjectID == "" {
			return nil, fmt.Errorf("FIREBASE_PROJECT_ID environment variable is not set")
		}
	case StoreMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI environment variable is not set")
		}
	case StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	switch cfg.AuthProvider {
	case AuthJWT:
		if len(cfg.JWTSecret) < 32 {
			return nil, fmt.Errorf("JWT_SECRET must be set and at least 32 characters long")
		}
	case AuthFirebase:
		if cfg.FirebaseProjectID == "" {
			return nil, fmt.Errorf("FIREBASE_PROJECT_ID environment variable is not set")
		}
	default:
		return nil, fmt.Errorf("unknown AUTH_PROVIDER %q", cfg.AuthProvider)
	}

	return cfg, nil
}

// NeedsFirebase reports whether a Firebase app has to be initialized.
func (c *Config) NeedsFirebase() bool {
	return c.StoreDriver == StoreFirestore || c.AuthProvider == AuthFirebase
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
