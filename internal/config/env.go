package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env carries all runtime configuration. Everything has a default so
// the service runs with no environment at all (in-memory only).
type Env struct {
	AppAddr string
	GinMode string

	// Fleet
	BusCodes    []string
	SeatsPerBus int

	// Fare policy
	BaseFare     float64
	PremiumBuses []string

	// Optional collaborators
	MySQLDSN  string
	RedisAddr string
	AMQPURL   string

	// Admin auth
	AdminUser         string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitCapacity int
	RateLimitRefill   time.Duration
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:           getStr("APP_ADDR", ":8080"),
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		BusCodes:          getList("BUS_CODES", []string{"BUS001", "BUS002", "BUS003", "BUS004", "BUS005"}),
		SeatsPerBus:       getInt("SEATS_PER_BUS", 40),
		BaseFare:          getFloat("BASE_FARE", 50.0),
		PremiumBuses:      getList("PREMIUM_BUSES", []string{"BUS001", "BUS002"}),
		MySQLDSN:          strings.TrimSpace(os.Getenv("MYSQL_DSN")),
		RedisAddr:         strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		AMQPURL:           strings.TrimSpace(os.Getenv("AMQP_URL")),
		AdminUser:         getStr("ADMIN_USER", "admin"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		JWTSecret:         getStr("JWT_SECRET", "dev-secret-change-in-production"),
		TokenTTL:          getDuration("TOKEN_TTL", 24*time.Hour),
		RateLimitEnabled:  getBool("RATELIMIT_ENABLED", true),
		RateLimitCapacity: getInt("RATELIMIT_CAPACITY", 100),
		RateLimitRefill:   getDuration("RATELIMIT_REFILL", 36*time.Second),
	}
	return env
}

func getStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getList(key string, def []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
