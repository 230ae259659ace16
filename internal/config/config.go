package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置，启动时从环境变量读取一次
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	PostsPerPage  int           // 列表页每页文章数
	CacheTTL      time.Duration // 首页缓存有效期
	UploadDir     string        // 文章配图的本地存储目录
}

// Load 加载配置，缺省值用于本地开发
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		PostsPerPage:  getEnvInt("POSTS_PER_PAGE", 10),
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 20)) * time.Second,
		UploadDir:     getEnv("UPLOAD_DIR", "./web/uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
