// internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Engine   EngineConfig
	Advisor  AdvisorConfig
	Archive  ArchiveConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	LogLevel       string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled                  bool
	RedisURL                 string
	RedisHost                string
	RedisPort                string
	RedisPassword            string
	RedisDB                  int
	RecommendationTTLSeconds int
}

// EngineConfig holds every tunable of the recommendation engine. The source
// revisions disagreed on several of these values; this is the one canonical
// set, and nothing in the engine hardcodes them.
type EngineConfig struct {
	TrendMinHistory  int     // entries required before a trend can be called
	TrendWindow      int     // most-recent entries inspected for momentum
	TrendThreshold   int     // adjacent increases needed within the window
	TrendBoost       float64 // demand multiplier when trending up
	MarginHighTier   float64 // margin fraction for the high boost tier
	MarginMidTier    float64 // margin fraction for the mid boost tier
	MarginHighBoost  float64
	MarginMidBoost   float64
	FestivalBoost    float64 // seasonality demand multiplier
	BufferDays       int     // days of effective demand the stock should cover
	HistoryCap       int     // weekly entries retained per item
	PriorityTrendMul float64 // allocator urgency multiplier when trending
	PriorityFestMul  float64 // allocator urgency multiplier in festival mode
}

type AdvisorConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})

		viper.SetDefault("DB_ENABLED", false)
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "stockwise")
		viper.SetDefault("DB_SSLMODE", "disable")

		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_RECOMMENDATION_TTL_SECONDS", 60)

		viper.SetDefault("ENGINE_TREND_MIN_HISTORY", 3)
		viper.SetDefault("ENGINE_TREND_WINDOW", 4)
		viper.SetDefault("ENGINE_TREND_THRESHOLD", 2)
		viper.SetDefault("ENGINE_TREND_BOOST", 1.15)
		viper.SetDefault("ENGINE_MARGIN_HIGH_TIER", 0.45)
		viper.SetDefault("ENGINE_MARGIN_MID_TIER", 0.30)
		viper.SetDefault("ENGINE_MARGIN_HIGH_BOOST", 1.15)
		viper.SetDefault("ENGINE_MARGIN_MID_BOOST", 1.10)
		viper.SetDefault("ENGINE_FESTIVAL_BOOST", 1.25)
		viper.SetDefault("ENGINE_BUFFER_DAYS", 14)
		viper.SetDefault("ENGINE_HISTORY_CAP", 12)
		viper.SetDefault("ENGINE_PRIORITY_TREND_MUL", 1.3)
		viper.SetDefault("ENGINE_PRIORITY_FESTIVAL_MUL", 1.25)

		viper.SetDefault("GEMINI_API_KEY", "")
		viper.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
		viper.SetDefault("GEMINI_TIMEOUT_SECONDS", 10)

		viper.SetDefault("ARCHIVE_ENABLED", false)
		viper.SetDefault("ARCHIVE_ENDPOINT", "")
		viper.SetDefault("ARCHIVE_ACCESS_KEY", "")
		viper.SetDefault("ARCHIVE_SECRET_KEY", "")
		viper.SetDefault("ARCHIVE_BUCKET", "")
		viper.SetDefault("ARCHIVE_REGION", "")
		viper.SetDefault("ARCHIVE_USE_SSL", true)

		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				LogLevel:       viper.GetString("LOG_LEVEL"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Enabled:  viper.GetBool("DB_ENABLED"),
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Cache: CacheConfig{
				Enabled:                  viper.GetBool("CACHE_ENABLED"),
				RedisURL:                 viper.GetString("REDIS_URL"),
				RedisHost:                viper.GetString("REDIS_HOST"),
				RedisPort:                viper.GetString("REDIS_PORT"),
				RedisPassword:            viper.GetString("REDIS_PASSWORD"),
				RedisDB:                  viper.GetInt("REDIS_DB"),
				RecommendationTTLSeconds: viper.GetInt("CACHE_RECOMMENDATION_TTL_SECONDS"),
			},
			Engine: EngineConfig{
				TrendMinHistory:  viper.GetInt("ENGINE_TREND_MIN_HISTORY"),
				TrendWindow:      viper.GetInt("ENGINE_TREND_WINDOW"),
				TrendThreshold:   viper.GetInt("ENGINE_TREND_THRESHOLD"),
				TrendBoost:       viper.GetFloat64("ENGINE_TREND_BOOST"),
				MarginHighTier:   viper.GetFloat64("ENGINE_MARGIN_HIGH_TIER"),
				MarginMidTier:    viper.GetFloat64("ENGINE_MARGIN_MID_TIER"),
				MarginHighBoost:  viper.GetFloat64("ENGINE_MARGIN_HIGH_BOOST"),
				MarginMidBoost:   viper.GetFloat64("ENGINE_MARGIN_MID_BOOST"),
				FestivalBoost:    viper.GetFloat64("ENGINE_FESTIVAL_BOOST"),
				BufferDays:       viper.GetInt("ENGINE_BUFFER_DAYS"),
				HistoryCap:       viper.GetInt("ENGINE_HISTORY_CAP"),
				PriorityTrendMul: viper.GetFloat64("ENGINE_PRIORITY_TREND_MUL"),
				PriorityFestMul:  viper.GetFloat64("ENGINE_PRIORITY_FESTIVAL_MUL"),
			},
			Advisor: AdvisorConfig{
				APIKey:         viper.GetString("GEMINI_API_KEY"),
				Model:          viper.GetString("GEMINI_MODEL"),
				TimeoutSeconds: viper.GetInt("GEMINI_TIMEOUT_SECONDS"),
			},
			Archive: ArchiveConfig{
				Enabled:   viper.GetBool("ARCHIVE_ENABLED"),
				Endpoint:  viper.GetString("ARCHIVE_ENDPOINT"),
				AccessKey: viper.GetString("ARCHIVE_ACCESS_KEY"),
				SecretKey: viper.GetString("ARCHIVE_SECRET_KEY"),
				Bucket:    viper.GetString("ARCHIVE_BUCKET"),
				Region:    viper.GetString("ARCHIVE_REGION"),
				UseSSL:    viper.GetBool("ARCHIVE_USE_SSL"),
			},
		}
	})

	return instance
}

// DefaultEngineConfig returns the canonical engine constants without going
// through viper. Used by tests and by callers that only need the engine.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TrendMinHistory:  3,
		TrendWindow:      4,
		TrendThreshold:   2,
		TrendBoost:       1.15,
		MarginHighTier:   0.45,
		MarginMidTier:    0.30,
		MarginHighBoost:  1.15,
		MarginMidBoost:   1.10,
		FestivalBoost:    1.25,
		BufferDays:       14,
		HistoryCap:       12,
		PriorityTrendMul: 1.3,
		PriorityFestMul:  1.25,
	}
}
