package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string // empty disables every Mongo-backed component
	DBName      string
	SkipAuth    bool
	Environment string
	AppId       string

	DatasetPath      string // JSON dataset loaded at startup instead of generated data
	SeedDemoData     bool
	Seed             uint64
	SeedExtensions   int
	SimulatedLatency bool
	SnapshotSchedule string // cron spec for catalog snapshots
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		MongoURI:    getEnv("MONGO_URI", ""),
		DBName:      getEnv("DB_NAME", "go-marketplace"),
		SkipAuth:    getEnvBool("SKIP_AUTH", false),
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "go-marketplace"),

		DatasetPath:      getEnv("DATASET_PATH", ""),
		SeedDemoData:     getEnvBool("SEED_DEMO_DATA", true),
		Seed:             getEnvUint("SEED", 42),
		SeedExtensions:   int(getEnvUint("SEED_EXTENSIONS", 100)),
		SimulatedLatency: getEnvBool("SIMULATED_LATENCY", false),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "@every 5m"),
	}, nil
}

// IsProduction reports whether ENVIRONMENT is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		log.Printf("Invalid %s, using %t", key, fallback)
		return fallback
	}
	return b
}

func getEnvUint(key string, fallback uint64) uint64 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Printf("Invalid %s, using %d", key, fallback)
		return fallback
	}
	return n
}
