package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration
	ResetTTL  time.Duration

	GatewayPort string
	AuthPort    string
	CorePort    string
	ChatPort    string

	// gateway upstreams
	AuthURL string
	CoreURL string
	ChatURL string

	CORSOrigins  []string
	MaxBodyBytes int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "huequitas.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,
		ResetTTL:  15 * time.Minute,

		GatewayPort: getEnv("GATEWAY_PORT", "4000"),
		AuthPort:    getEnv("AUTH_PORT", "4001"),
		CorePort:    getEnv("CORE_PORT", "4002"),
		ChatPort:    getEnv("CHAT_PORT", "4003"),

		AuthURL: getEnv("AUTH_URL", "http://localhost:4001"),
		CoreURL: getEnv("CORE_URL", "http://localhost:4002"),
		ChatURL: getEnv("CHAT_URL", "http://localhost:4003"),

		CORSOrigins:  splitEnv("CORS_ORIGINS", "*"),
		MaxBodyBytes: 100 << 20,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitEnv(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
