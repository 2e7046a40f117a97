package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"displaybot/internal/domain"
)

type Config struct {
	DataDir  string           `yaml:"data_dir" validate:"required"`
	LogLevel string           `yaml:"log_level" validate:"oneof=debug info warn error"`
	Database DatabaseConfig   `yaml:"database"`
	Telegram TelegramConfig   `yaml:"telegram"`
	Ingest   IngestConfig     `yaml:"ingest"`
	Playback PlaybackConfig   `yaml:"playback"`
	Radio    RadioConfig      `yaml:"radio"`
	Wiki     WikiConfig       `yaml:"wiki"`
	RabbitMQ RabbitMQConfig   `yaml:"rabbitmq"`
	Router   RouterConfig     `yaml:"router"`
	Host     HostConfig       `yaml:"host"`
	Stations []domain.Station `yaml:"stations" validate:"dive"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" validate:"oneof=sqlite3 postgres"`
	DSN    string `yaml:"dsn" validate:"required"`
}

type TelegramConfig struct {
	TokenFile    string        `yaml:"token_file" validate:"required"`
	Token        string        `yaml:"-"`
	AllowedUsers []string      `yaml:"allowed_users"`
	SendRate     float64       `yaml:"send_rate" validate:"gt=0"`
	PollTimeout  time.Duration `yaml:"poll_timeout"`
}

type IngestConfig struct {
	SupportedTypes []string      `yaml:"supported_types" validate:"min=1"`
	ClipDir        string        `yaml:"clip_dir" validate:"required"`
	Timeout        time.Duration `yaml:"timeout"`
	FFmpegPath     string        `yaml:"ffmpeg_path" validate:"required"`
	Retry          RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts" validate:"gte=1"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type PlaybackConfig struct {
	Player       string        `yaml:"player" validate:"required"`
	Args         []string      `yaml:"args"`
	SlaveMode    bool          `yaml:"slave_mode"`
	Dwell        time.Duration `yaml:"dwell" validate:"gt=0"`
	IdleInterval time.Duration `yaml:"idle_interval" validate:"gt=0"`
}

type RadioConfig struct {
	Player        string        `yaml:"player" validate:"required"`
	Args          []string      `yaml:"args"`
	PollInterval  time.Duration `yaml:"poll_interval" validate:"gt=0"`
	TitleInterval time.Duration `yaml:"title_interval" validate:"gt=0"`
	FIPInterval   time.Duration `yaml:"fip_interval" validate:"gt=0"`
	FIPBaseURL    string        `yaml:"fip_base_url" validate:"required,url"`
}

type WikiConfig struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether events should be published at all.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type RouterConfig struct {
	URL          string `yaml:"url"`
	PasswordFile string `yaml:"password_file"`
}

type HostConfig struct {
	ShutdownCommand []string `yaml:"shutdown_command"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse builds a config from raw YAML, applying defaults and validation.
// The Telegram token is not read here; see ReadToken.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// ReadToken loads the Telegram API token from its file.
func (c *Config) ReadToken() error {
	data, err := os.ReadFile(c.Telegram.TokenFile)
	if err != nil {
		return fmt.Errorf("read token file: %w", err)
	}
	c.Telegram.Token = strings.TrimSpace(string(data))
	if c.Telegram.Token == "" {
		return fmt.Errorf("token file %s is empty", c.Telegram.TokenFile)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.DataDir == "" {
		home, _ := os.UserHomeDir()
		c.DataDir = filepath.Join(home, ".displayBot")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite3"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite3" {
		c.Database.DSN = "file:" + filepath.Join(c.DataDir, "displaybot.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	}
	if c.Telegram.TokenFile == "" {
		c.Telegram.TokenFile = filepath.Join(c.DataDir, "TELEGRAM_API_TOKEN")
	}
	if c.Telegram.SendRate == 0 {
		c.Telegram.SendRate = 1
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 60 * time.Second
	}
	if len(c.Ingest.SupportedTypes) == 0 {
		c.Ingest.SupportedTypes = []string{"video/mp4", "video/webm", "image/gif"}
	}
	if c.Ingest.ClipDir == "" {
		c.Ingest.ClipDir = filepath.Join(c.DataDir, "clips")
	}
	if c.Ingest.Timeout == 0 {
		c.Ingest.Timeout = 60 * time.Second
	}
	if c.Ingest.FFmpegPath == "" {
		c.Ingest.FFmpegPath = "ffmpeg"
	}
	if c.Ingest.Retry.MaxAttempts == 0 {
		c.Ingest.Retry.MaxAttempts = 3
	}
	if c.Ingest.Retry.InitialBackoff == 0 {
		c.Ingest.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Ingest.Retry.MaxBackoff == 0 {
		c.Ingest.Retry.MaxBackoff = 10 * time.Second
	}
	if c.Playback.Player == "" {
		c.Playback.Player = "mplayer"
		if len(c.Playback.Args) == 0 {
			c.Playback.Args = []string{"-slave", "-fs", "-vo", "sdl"}
			c.Playback.SlaveMode = true
		}
	}
	if c.Playback.Dwell == 0 {
		c.Playback.Dwell = 5 * time.Second
	}
	if c.Playback.IdleInterval == 0 {
		c.Playback.IdleInterval = 5 * time.Second
	}
	if c.Radio.Player == "" {
		c.Radio.Player = "mplayer"
		if len(c.Radio.Args) == 0 {
			c.Radio.Args = []string{"-quiet"}
		}
	}
	if c.Radio.PollInterval == 0 {
		c.Radio.PollInterval = 1 * time.Second
	}
	if c.Radio.TitleInterval == 0 {
		c.Radio.TitleInterval = 1 * time.Second
	}
	if c.Radio.FIPInterval == 0 {
		c.Radio.FIPInterval = 7 * time.Second
	}
	if c.Radio.FIPBaseURL == "" {
		c.Radio.FIPBaseURL = "http://www.fipradio.fr/livemeta"
	}
	if c.Wiki.BaseURL == "" {
		c.Wiki.BaseURL = "https://en.wikipedia.org/w/api.php"
	}
	if c.Wiki.Timeout == 0 {
		c.Wiki.Timeout = 10 * time.Second
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "displaybot"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "events"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "displaybot_events"
	}
	if c.Router.URL == "" {
		c.Router.URL = "http://192.168.188.1"
	}
	if c.Router.PasswordFile == "" {
		c.Router.PasswordFile = filepath.Join(c.DataDir, "ROUTER_LOGIN")
	}
	if len(c.Host.ShutdownCommand) == 0 {
		c.Host.ShutdownCommand = []string{"sudo", "shutdown", "-h", "now"}
	}
	if len(c.Stations) == 0 {
		c.Stations = DefaultStations()
	}
}

// DefaultStations is the built-in station list seeded on first run.
func DefaultStations() []domain.Station {
	return []domain.Station{
		{Name: "91.4", URL: "http://138.201.251.233/brf_128"},
		{Name: "deutschlandfunk", URL: "http://dradio_mp3_dlf_m.akacast.akamaistream.net/7/249/142684/v1/gnl.akacast.akamaistream.net/dradio_mp3_dlf_m"},
		{Name: "dradio-kultur", URL: "http://dradio_mp3_dkultur_m.akacast.akamaistream.net/7/530/142684/v1/gnl.akacast.akamaistream.net/dradio_mp3_dkultur_m"},
		{Name: "dronezone", URL: "http://ice1.somafm.com/dronezone-128-aac"},
		{Name: "fip", URL: "http://direct.fipradio.fr/live/fip-midfi.mp3"},
		{Name: "fip du groove", URL: "http://direct.fipradio.fr/live/fip-webradio3.mp3"},
		{Name: "fip du jazz", URL: "http://direct.fipradio.fr/live/fip-webradio2.mp3"},
		{Name: "fip du monde", URL: "http://direct.fipradio.fr/live/fip-webradio4.mp3"},
		{Name: "fip du reggae", URL: "http://direct.fipradio.fr/live/fip-webradio6.mp3"},
		{Name: "fip du rock", URL: "http://direct.fipradio.fr/live/fip-webradio1.mp3"},
		{Name: "fip tout nouveau", URL: "http://direct.fipradio.fr/live/fip-webradio5.mp3"},
	}
}
