// internal/config/config.go
// Loader konfigurasi dari environment variables

package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	AppName   string
	AppEnv    string
	AppPort   string
	MCPPort   string
	LogLevel  string
	LogFormat string

	NWS struct {
		BaseURL        string
		UserAgent      string
		TimeoutSeconds int
	}

	MySQL struct {
		Host     string
		Port     string
		DB       string
		User     string
		Password string
		MaxOpen  int
		MaxIdle  int
	}

	LLM struct {
		Provider string // default: openai
		APIKey   string
		APIBase  string
		Model    string
	}
}

func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "mcp-weather")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.MCPPort = getEnv("MCP_PORT", "8090")
	c.LogLevel = getEnv("LOG_LEVEL", "debug")
	c.LogFormat = getEnv("LOG_FORMAT", "json")

	// NWS upstream (api.weather.gov)
	c.NWS.BaseURL = getEnv("NWS_API_BASE", "https://api.weather.gov")
	c.NWS.UserAgent = getEnv("NWS_USER_AGENT", "weather-app/2.0")
	c.NWS.TimeoutSeconds = getEnvInt("NWS_TIMEOUT_SECONDS", 10)

	// MySQL opsional: dipakai audit trail invocation tool
	c.MySQL.Host = getEnv("MYSQL_HOST", "")
	c.MySQL.Port = getEnv("MYSQL_PORT", "3306")
	c.MySQL.DB = getEnv("MYSQL_DB", "mcp_weather")
	c.MySQL.User = getEnv("MYSQL_USER", "root")
	c.MySQL.Password = getEnv("MYSQL_PASSWORD", "")
	c.MySQL.MaxOpen = getEnvInt("MYSQL_MAX_OPEN_CONNS", 10)
	c.MySQL.MaxIdle = getEnvInt("MYSQL_MAX_IDLE_CONNS", 5)

	// LLM / OpenAI: hanya untuk memilih tool di /mcp/route
	c.LLM.Provider = getEnv("LLM_PROVIDER", "openai")
	c.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
	c.LLM.APIBase = getEnv("OPENAI_API_BASE", "https://api.openai.com/v1")
	c.LLM.Model = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	if c.LLM.APIKey == "" {
		log.Println("[WARN] OPENAI_API_KEY is not set, LLM tool chooser disabled")
	}

	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}
