package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabaseDriver string
	DatabasePath   string
	DatabaseDSN    string
	SessionSecret  string
	GinMode        string
	UploadDir      string
	UploadURLPath  string
	AdminUsername  string
	AdminPassword  string
	// AdminToken 是旧前端使用的共享令牌，设置为 "-" 时禁用。
	AdminToken     string
	AdminTokenTTL  time.Duration
	JWTSecret      string
	GitHubToken    string
	GitHubUsername string
	RedisURL       string
	AllowedOrigins []string
}

// LoadDotEnv 读取 .env 文件到进程环境，已存在的变量不会被覆盖，文件不存在时忽略。
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[config] failed to load %s: %v", path, err)
		}
	}
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := env("PORT", "8080")

	listenAddr := env("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	adminPassword := env("ADMIN_PASSWORD", "admin123")

	adminToken := env("ADMIN_TOKEN", "admin123")
	if adminToken == "-" {
		adminToken = ""
	}

	ttl := 24 * time.Hour
	if raw := env("ADMIN_TOKEN_TTL", ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			log.Printf("[config] invalid ADMIN_TOKEN_TTL %q, using %s", raw, ttl)
		} else {
			ttl = parsed
		}
	}

	sessionSecret := env("SESSION_SECRET", "devfolio-dev-secret")

	return AppConfig{
		ListenAddr:     listenAddr,
		Port:           port,
		DatabaseDriver: strings.ToLower(env("DATABASE_DRIVER", "sqlite")),
		DatabasePath:   env("DATABASE_PATH", "data/portfolio.db"),
		DatabaseDSN:    env("DATABASE_DSN", ""),
		SessionSecret:  sessionSecret,
		GinMode:        env("GIN_MODE", "release"),
		UploadDir:      env("UPLOAD_DIR", "uploads"),
		UploadURLPath:  env("UPLOAD_URL_PATH", "/uploads"),
		AdminUsername:  env("ADMIN_USERNAME", "admin"),
		AdminPassword:  adminPassword,
		AdminToken:     adminToken,
		AdminTokenTTL:  ttl,
		JWTSecret:      env("JWT_SECRET", sessionSecret),
		GitHubToken:    env("GITHUB_TOKEN", ""),
		GitHubUsername: env("GITHUB_USERNAME", "assisberlanda"),
		RedisURL:       env("REDIS_URL", ""),
		AllowedOrigins: splitList(env("ALLOWED_ORIGINS", "*")),
	}
}

func env(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// DatabaseTarget 返回当前驱动对应的连接串：sqlite 为文件路径，mysql 为 DSN。
func (c AppConfig) DatabaseTarget() string {
	if c.DatabaseDriver == "mysql" {
		return c.DatabaseDSN
	}
	return c.DatabasePath
}
