package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	ReportStore     string // Report storage backend: "mongo" or "sqlite"
	SQLitePath      string // Database file used when ReportStore is "sqlite"
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	RedisAddr       string // Address of the Redis server, empty disables caching
	RedisPassword   string // Password for the Redis server
	ReportCacheTTL  int    // Seconds a cached report is kept in Redis
	RecentCapacity  int    // Number of execution ids kept in the recent index
	MaxCommands     int    // Maximum number of commands accepted per request
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	OTLPEndpoint    string // OTLP collector address, empty disables tracing
	OTLPServiceName string // Service name reported with traces
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	store := getEnvWithDefault("REPORT_STORE", "mongo")
	cfg := Config{
		HostIP:          mustGetEnv("HOST_IP"),
		RESTPort:        mustGetEnvAsInt("REST_PORT"),
		ReportStore:     store,
		SQLitePath:      getEnvWithDefault("SQLITE_PATH", "cleaner.db"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		ReportCacheTTL:  getEnvAsIntWithDefault("REPORT_CACHE_TTL", 600),
		RecentCapacity:  getEnvAsIntWithDefault("RECENT_CAPACITY", 100),
		MaxCommands:     getEnvAsIntWithDefault("MAX_COMMANDS", 10000),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTIssuer:       mustGetEnv("JWT_ISSUER"),
		OTLPEndpoint:    getEnvWithDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPServiceName: getEnvWithDefault("OTEL_SERVICE_NAME", "cleaner-api"),
	}

	// Users are always kept in MongoDB, so the connection settings are required.
	cfg.DBHost = mustGetEnv("DB_HOST")
	cfg.DBPort = mustGetEnvAsInt("DB_PORT")
	cfg.DBUser = mustGetEnv("DB_USER")
	cfg.DBPassword = mustGetEnv("DB_PASS")
	cfg.DBName = mustGetEnv("DB_NAME")

	if store != "mongo" && store != "sqlite" {
		log.Fatalf("[APP] [FATAL] REPORT_STORE must be mongo or sqlite, got %q", store)
	}

	return cfg
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integer values. A value that
// cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
