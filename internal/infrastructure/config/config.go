package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"bidboard/internal/domain/pricing"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"

	defaultPort        = 8080
	defaultModel       = "gemini-3-flash-preview"
	defaultChatModel   = "gemini-3-pro-preview"
	defaultMaxAttempts = 2
)

// Config holds application configuration sourced from environment variables.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - ESTIMATES_BACKEND: memory | dynamodb (default: memory)
//   - SEED_DEMO_DATA (default: true; memory backend only)
//   - NEGATIVE_VALUES_POLICY: allow | reject | clamp (default: allow)
//   - GEMINI_API_KEY or API_KEY, GEMINI_MODEL, GEMINI_CHAT_MODEL
//   - AI_GATEWAY_MOCK (default: false)
//   - AI_STALE_GUARD (default: true)
//   - AI_MAX_ATTEMPTS (default: 2)
type Config struct {
	Port           int
	Backend        string
	SeedDemoData   bool
	NegativePolicy pricing.NegativePolicy

	GeminiAPIKey    string
	GeminiModel     string
	GeminiChatModel string
	AIGatewayMock   bool
	AIStaleGuard    bool
	AIMaxAttempts   int
}

// Load reads the environment. Invalid values fall back to defaults with a warning.
func Load() Config {
	cfg := Config{
		Port:            getenvInt("PORT", defaultPort),
		Backend:         strings.ToLower(getenvDefault("ESTIMATES_BACKEND", BackendMemory)),
		SeedDemoData:    getenvBool("SEED_DEMO_DATA", true),
		GeminiAPIKey:    getenvDefault("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:     getenvDefault("GEMINI_MODEL", defaultModel),
		GeminiChatModel: getenvDefault("GEMINI_CHAT_MODEL", defaultChatModel),
		AIGatewayMock:   getenvBool("AI_GATEWAY_MOCK", false),
		AIStaleGuard:    getenvBool("AI_STALE_GUARD", true),
		AIMaxAttempts:   getenvInt("AI_MAX_ATTEMPTS", defaultMaxAttempts),
	}

	policy, err := pricing.ParseNegativePolicy(os.Getenv("NEGATIVE_VALUES_POLICY"))
	if err != nil {
		log.Printf("[config] %v; using %s", err, pricing.NegativeAllow)
	}
	cfg.NegativePolicy = policy

	if cfg.Backend != BackendMemory && cfg.Backend != BackendDynamoDB {
		log.Printf("[config] unknown ESTIMATES_BACKEND=%q; using %s", cfg.Backend, BackendMemory)
		cfg.Backend = BackendMemory
	}
	if cfg.AIMaxAttempts < 1 {
		cfg.AIMaxAttempts = 1
	}
	if cfg.GeminiAPIKey == "" && !cfg.AIGatewayMock {
		log.Print("[config] warning: GEMINI_API_KEY is not set; AI features disabled")
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q; using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
