/* 환경변수 기반 설정. 프로세스 시작 시 한 번 로드되고 이후 변경되지 않음 */

package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration

	// 유일한 로그인 계정. 다중 사용자 지원 없음
	APIUsername string
	APIPassword string
}

func Load() *Config {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		secret = "default_secret_key" // 기본 키 설정 (권장하지 않음)
		log.Println("Warning: JWT_SECRET_KEY environment variable is not set. Using default key.")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "./patients.db"),
		JWTSecret:   secret,
		TokenTTL:    time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
		APIUsername: getEnv("API_USERNAME", "admin"),
		APIPassword: getEnv("API_PASSWORD", "admin123"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: %s=%q is not an integer, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
