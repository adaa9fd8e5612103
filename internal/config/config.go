package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート

	DatabaseURL      string // 指定されていれば接続文字列をそのまま使う
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret string        // JWT署名シークレット
	JWTTTL    time.Duration // アクセストークンの有効期限

	ImageDir string // 商品画像の保存先ディレクトリ
}

// Loadは環境変数から設定を組み立てる。
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "ecshop"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),

		ImageDir: getenv("IMAGE_DIR", "images"),
	}

	pgPort, err := strconv.Atoi(getenv("POSTGRES_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("POSTGRES_PORT must be number: %w", err)
	}
	cfg.PostgresPort = pgPort

	ttlMin, err := strconv.Atoi(getenv("JWT_TTL_MINUTES", "30"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_TTL_MINUTES must be number: %w", err)
	}
	cfg.JWTTTL = time.Duration(ttlMin) * time.Minute

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
