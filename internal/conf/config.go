package conf

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Share    ShareConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Table    string `mapstructure:"table"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// StorageConfig configures the S3-compatible object storage backend.
type StorageConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Region        string `mapstructure:"region"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	Bucket        string `mapstructure:"bucket"`
	PartSize      uint64 `mapstructure:"part_size"`
	UploadWorkers uint   `mapstructure:"upload_workers"`
}

type ShareConfig struct {
	MaxUploadSize int64           `mapstructure:"max_upload_size"`
	QRModuleSize  int             `mapstructure:"qr_module_size"`
	CacheTTL      time.Duration   `mapstructure:"cache_ttl"`
	Shortener     ShortenerConfig `mapstructure:"shortener"`
}

type ShortenerConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableCaller     bool          `mapstructure:"enablecaller"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.SetDefaults()

	return &config, nil
}

// SetDefaults fills in values the config file may omit.
func (c *Config) SetDefaults() {
	if c.Database.Table == "" {
		c.Database.Table = "file_records"
	}
	if c.Storage.PartSize == 0 {
		c.Storage.PartSize = 5 * 1024 * 1024
	}
	if c.Storage.UploadWorkers == 0 {
		c.Storage.UploadWorkers = 10
	}
	if c.Share.MaxUploadSize == 0 {
		c.Share.MaxUploadSize = 100 * 1024 * 1024
	}
	if c.Share.QRModuleSize == 0 {
		c.Share.QRModuleSize = 4
	}
	if c.Share.CacheTTL == 0 {
		c.Share.CacheTTL = 5 * time.Minute
	}
	if c.Share.Shortener.Timeout == 0 {
		c.Share.Shortener.Timeout = 3 * time.Second
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
