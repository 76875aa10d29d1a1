package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SHELLDON_DB_PATH.
const EnvPrefix = "SHELLDON"

const (
	defaultPort         = "8080"
	defaultDBFile       = "shelldon.db"
	defaultFixturePath  = "configs/fixture.json"
	defaultFixtureTO    = 5 * time.Second
	defaultChartTTL     = time.Minute
	defaultChartWidth   = 960
	defaultChartHeight  = 400
	defaultTokenTTL     = time.Hour
	defaultRateRPS      = 20.0
	defaultRateBurst    = 40
	defaultStreamChan   = "shelldonlive"
	defaultMQTTPrefix   = "shelldon"
	defaultMQTTClientID = "shelldon-live"

	HistorySourceFixture = "fixture"
	HistorySourceSQLite  = "sqlite"
)

// Config is the full application configuration.
type Config struct {
	Port      string          `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Fixture   FixtureConfig   `mapstructure:"fixture"`
	History   HistoryConfig   `mapstructure:"history"`
	Charts    ChartsConfig    `mapstructure:"charts"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Stream    StreamConfig    `mapstructure:"stream"`
	MQTT      MQTTConfig      `mapstructure:"mqtt"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// FixtureConfig locates the dashboard fixture. URL wins over Path when set.
type FixtureConfig struct {
	Path    string        `mapstructure:"path"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type HistoryConfig struct {
	Source string `mapstructure:"source"` // fixture | sqlite
}

type ChartsConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Width    int           `mapstructure:"width"`
	Height   int           `mapstructure:"height"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// StreamConfig describes the embedded video player.
type StreamConfig struct {
	Channel string   `mapstructure:"channel"`
	Parents []string `mapstructure:"parents"`
}

type MQTTConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Broker      string `mapstructure:"broker"`
	ClientID    string `mapstructure:"client_id"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	TopicPrefix string `mapstructure:"topic_prefix"`
}

// Load reads .env (if present), then the config file, then SHELLDON_*
// environment overrides. An empty file argument searches ./configs/config.yml.
// A missing config file is not an error; defaults apply.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Only the default search may come up empty; a named file must exist.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = DefaultDBPath()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", DefaultDBPath())
	v.SetDefault("fixture.path", defaultFixturePath)
	v.SetDefault("fixture.url", "")
	v.SetDefault("fixture.timeout", defaultFixtureTO)
	v.SetDefault("history.source", HistorySourceFixture)
	v.SetDefault("charts.cache_ttl", defaultChartTTL)
	v.SetDefault("charts.width", defaultChartWidth)
	v.SetDefault("charts.height", defaultChartHeight)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", defaultTokenTTL)
	v.SetDefault("ratelimit.rps", defaultRateRPS)
	v.SetDefault("ratelimit.burst", defaultRateBurst)
	v.SetDefault("stream.channel", defaultStreamChan)
	v.SetDefault("stream.parents", []string{"localhost"})
	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.client_id", defaultMQTTClientID)
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.topic_prefix", defaultMQTTPrefix)
}

// DefaultDBPath places the database under the XDG data directory, falling
// back to the working directory when it cannot be created.
func DefaultDBPath() string {
	p, err := xdg.DataFile("shelldon/" + defaultDBFile)
	if err != nil {
		return defaultDBFile
	}
	return p
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	switch c.History.Source {
	case HistorySourceFixture, HistorySourceSQLite:
	default:
		return fmt.Errorf("invalid history.source %q: must be %q or %q",
			c.History.Source, HistorySourceFixture, HistorySourceSQLite)
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return errors.New("mqtt.broker is required when mqtt.enabled is true")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("ratelimit.rps and ratelimit.burst must not be negative")
	}
	return nil
}

// StreamEmbedURL is the iframe source for the video player.
func (s StreamConfig) StreamEmbedURL() string {
	var b strings.Builder
	b.WriteString("https://player.twitch.tv/?channel=")
	b.WriteString(s.Channel)
	for _, p := range s.Parents {
		b.WriteString("&parent=")
		b.WriteString(p)
	}
	b.WriteString("&muted=false")
	return b.String()
}

// ChannelURL links to the channel page with chat.
func (s StreamConfig) ChannelURL() string {
	return "https://twitch.tv/" + s.Channel
}
