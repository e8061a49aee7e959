package infra

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config 環境変数から読み込むアプリケーション設定
type Config struct {
	Env      string // development, prod
	Port     string
	LogLevel string

	// SQLite（DB_NAME未設定時）
	DBPath string

	// PostgreSQL（DB_NAME設定時）
	DBName     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string

	// トークン
	TokenDBPath string
	SecretKey   string
	TokenTTL    time.Duration

	// CORS（カンマ区切り、空ならすべて許可）
	CORSAllowedOrigins string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// LoadConfig カレントディレクトリの .env と環境変数から設定を読み込む
func LoadConfig() *Config {
	return loadConfig()
}

func loadConfig(envFiles ...string) *Config {
	loadDotEnv(envFiles...)

	port := getenv("PORT", os.Getenv("AWS_LWA_PORT"))
	if port == "" {
		port = "8080"
	}

	return &Config{
		Env:      getenv("ENV", "development"),
		Port:     port,
		LogLevel: getenv("LOG_LEVEL", ""),

		DBPath: getenv("DB_PATH", "store.db"),

		DBName:     os.Getenv("DB_NAME"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBPort:     getenv("DB_PORT", "5432"),

		TokenDBPath: getenv("TOKEN_DB_PATH", "token_blacklist.db"),
		SecretKey:   getenv("SECRET_KEY", "devsecret"),
		TokenTTL:    getdur("TOKEN_TTL", time.Hour),

		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

// UsePostgres DB_NAMEが設定されている場合はPostgreSQLを使用
func (c *Config) UsePostgres() bool {
	return c.DBName != ""
}

// PostgresDSN 本番環境ではsslmode=require、それ以外はsslmode=disable
func (c *Config) PostgresDSN() string {
	sslmode := "disable"
	if c.Env == "prod" {
		sslmode = "require"
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + sslmode +
		" connect_timeout=10"
}

// CORSOrigins 許可するオリジンのスライス
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
