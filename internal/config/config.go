/**
* Name: 			config.go
* Description: 		환경 변수 기반 서버 설정
* Workflow: 		.env 로드(main) 후 Load()로 필드 채움, 잘못된 형식은 에러
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	MongoURI   string
	DBName     string
	SQLitePath string

	JWTSecret string
	TokenTTL  time.Duration

	LLMBaseURL        string
	LLMModel          string
	LLMInterviewModel string

	RedisURL   string
	RefDataDir string

	AdminEnabled bool
	AdminKey     string

	ResumeArchiveDir string
	S3Bucket         string
	S3Region         string
	S3Endpoint       string
	AWSAccessKeyID   string
	AWSSecretKey     string

	SpeechEnabled   bool
	GoogleCredsFile string

	RateLimitRPS   float64
	RateLimitBurst int

	SessionTTL   time.Duration
	ErrorLogPath string
}

// 기본 JWT 키, 운영 환경에서는 반드시 JWT_SECRET_KEY 설정
const DefaultJWTSecret = "supersecretkey"

func Load() (Config, error) {
	var errs []string
	str := func(key, def string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return def
	}
	boolean := func(key string, def bool) bool {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
			return def
		}
		return v
	}
	integer := func(key string, def int) int {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
			return def
		}
		return v
	}
	float := func(key string, def float64) float64 {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
			return def
		}
		return v
	}
	duration := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
			return def
		}
		return v
	}

	cfg := Config{
		Port:     str("PORT", "5000"),
		AppEnv:   str("APP_ENV", "production"),
		LogLevel: str("LOG_LEVEL", "info"),

		MongoURI:   str("MONGO_URI", ""),
		DBName:     str("DB_NAME", "career_genome"),
		SQLitePath: str("SQLITE_PATH", "file:career_genome?mode=memory&cache=shared"),

		JWTSecret: str("JWT_SECRET_KEY", DefaultJWTSecret),
		TokenTTL:  duration("TOKEN_TTL", 7*24*time.Hour),

		LLMBaseURL:        strings.TrimRight(str("LLM_BASE_URL", "http://localhost:11434"), "/"),
		LLMModel:          str("LLM_MODEL", "phi"),
		LLMInterviewModel: str("LLM_INTERVIEW_MODEL", "llama3.2:1b"),

		RedisURL:   str("REDIS_URL", ""),
		RefDataDir: str("REFDATA_DIR", "data"),

		AdminEnabled: boolean("ADMIN_ENABLED", false),
		AdminKey:     str("ADMIN_KEY", ""),

		ResumeArchiveDir: str("RESUME_ARCHIVE_DIR", ""),
		S3Bucket:         str("S3_BUCKET", ""),
		S3Region:         str("S3_REGION", "us-east-1"),
		S3Endpoint:       str("S3_ENDPOINT", ""),
		AWSAccessKeyID:   str("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:     str("AWS_SECRET_ACCESS_KEY", ""),

		SpeechEnabled:   boolean("SPEECH_ENABLED", false),
		GoogleCredsFile: str("GOOGLE_APPLICATION_CREDENTIALS", ""),

		RateLimitRPS:   float("RATE_LIMIT_RPS", 2),
		RateLimitBurst: integer("RATE_LIMIT_BURST", 5),

		SessionTTL:   duration("SESSION_TTL", time.Hour),
		ErrorLogPath: str("ERROR_LOG_PATH", "server_error.log"),
	}

	if len(errs) > 0 {
		return cfg, fmt.Errorf("config: invalid values: %s", strings.Join(errs, "; "))
	}
	if cfg.SpeechEnabled && cfg.GoogleCredsFile == "" {
		return cfg, fmt.Errorf("config: SPEECH_ENABLED requires GOOGLE_APPLICATION_CREDENTIALS")
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}
