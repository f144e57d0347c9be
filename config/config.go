package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Handle backends accepted by HANDLE_BACKEND.
const (
	HandleBackendFile  = "file"
	HandleBackendRedis = "redis"
	HandleBackendMySQL = "mysql"
)

// Config stores the application configuration.
type Config struct {
	SoundDir      string // Directory scanned for ambient sound files
	PIDFile       string // File holding the pid of the last started player
	PlayerPath    string // External player binary (mplayer compatible)
	HandleBackend string // Where the player pid is persisted: file, redis or mysql

	// Redis配置
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	RedisHandleKey string

	// MySQL配置 (HANDLE_BACKEND=mysql)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// MinIO配置, used by the sync command to fetch sounds
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioPrefix    string
	MinioUseSSL    bool
	MinioRegion    string

	ServerAddr string

	// 日志配置
	LogLevel      string
	LogFile       string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool gets an environment variable as bool or returns a default value.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override existing env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}
	return fromEnv()
}

func fromEnv() *Config {
	return &Config{
		SoundDir:      getEnv("SOUND_DIR", "sounds"),
		PIDFile:       getEnv("PID_FILE", "pid.txt"),
		PlayerPath:    getEnv("PLAYER_PATH", "/usr/bin/mplayer"),
		HandleBackend: strings.ToLower(getEnv("HANDLE_BACKEND", HandleBackendFile)),

		RedisHost:      getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""), // 默认无密码
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisHandleKey: getEnv("REDIS_HANDLE_KEY", "ambient:player:pid"),

		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "ambient"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "127.0.0.1:9000"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "ambient"),
		MinioPrefix:    getEnv("MINIO_PREFIX", "sounds/"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),
		MinioRegion:    getEnv("MINIO_REGION", "us-east-1"),

		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
		LogMaxSize:    getEnvInt("LOG_MAX_SIZE", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvInt("LOG_MAX_AGE", 7),
	}
}
