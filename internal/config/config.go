package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix scopes environment overrides, e.g. BEDS_HTTP_PORT=9000.
const envPrefix = "BEDS"

// Config is the full runtime configuration of the service.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Capacity CapacityConfig `mapstructure:"capacity"`
	Forecast ForecastConfig `mapstructure:"forecast"`
	Model    ModelConfig    `mapstructure:"model"`
	DB       DBConfig       `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

type HTTPConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	// StrictStatus switches error payloads from always-200 to 400/503/500.
	StrictStatus bool `mapstructure:"strict_status"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type CapacityConfig struct {
	TotalBeds int `mapstructure:"total_beds"`
}

// ForecastConfig holds the fixed policy knobs of the forecast pipeline.
type ForecastConfig struct {
	HorizonDays       int    `mapstructure:"horizon_days"`
	CriticalThreshold int    `mapstructure:"critical_threshold"`
	RestDay           string `mapstructure:"rest_day"`
}

type ModelConfig struct {
	Path      string        `mapstructure:"path"`
	RemoteURL string        `mapstructure:"remote_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults. Capacity, horizon and threshold mirror the values the model was built for.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = "8000"
	DefaultTotalBeds         = 150
	DefaultHorizonDays       = 7
	DefaultCriticalThreshold = 15
	DefaultRestDay           = "sunday"
	DefaultModelPath         = "artifacts/hospital_bed_model.json"
	DefaultModelTimeout      = 2 * time.Second
	DefaultDBPath            = "bed_forecast.db"
	DefaultCacheTTL          = time.Hour
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.host", DefaultHost)
	v.SetDefault("http.port", DefaultPort)
	v.SetDefault("http.strict_status", false)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("capacity.total_beds", DefaultTotalBeds)
	v.SetDefault("forecast.horizon_days", DefaultHorizonDays)
	v.SetDefault("forecast.critical_threshold", DefaultCriticalThreshold)
	v.SetDefault("forecast.rest_day", DefaultRestDay)
	v.SetDefault("model.path", DefaultModelPath)
	v.SetDefault("model.remote_url", "")
	v.SetDefault("model.timeout", DefaultModelTimeout)
	v.SetDefault("db.path", DefaultDBPath)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", DefaultCacheTTL)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads .env (if present), configs/config.yml (if present) and BEDS_* env vars,
// in increasing order of precedence.
func Load(configPaths ...string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	setDefaults(v)

	if len(configPaths) == 0 {
		configPaths = []string{"configs"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p) // <path>/config.yml
	}
	v.SetConfigName("config")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the forecast pipeline cannot honour.
func (c *Config) Validate() error {
	if c.Capacity.TotalBeds <= 0 {
		return fmt.Errorf("capacity.total_beds must be > 0, got %d", c.Capacity.TotalBeds)
	}
	if c.Forecast.HorizonDays <= 0 {
		return fmt.Errorf("forecast.horizon_days must be > 0, got %d", c.Forecast.HorizonDays)
	}
	if c.Forecast.CriticalThreshold < 0 {
		return fmt.Errorf("forecast.critical_threshold must be >= 0, got %d", c.Forecast.CriticalThreshold)
	}
	if _, err := ParseWeekday(c.Forecast.RestDay); err != nil {
		return err
	}
	if c.Model.Timeout <= 0 {
		return fmt.Errorf("model.timeout must be > 0, got %s", c.Model.Timeout)
	}
	return nil
}

// Addr returns host:port for the HTTP listener.
func (c HTTPConfig) Addr() string {
	return c.Host + ":" + strings.TrimPrefix(c.Port, ":")
}

// RestWeekday returns the configured rest day; Validate guarantees it parses.
func (c ForecastConfig) RestWeekday() time.Weekday {
	d, _ := ParseWeekday(c.RestDay)
	return d
}

// ParseWeekday accepts English weekday names and three-letter abbreviations.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("forecast.rest_day: unknown weekday %q", s)
}
