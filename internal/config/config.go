package config

import (
	"errors"
	"strings"
	"time"
)

// Config is the application configuration root
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Store   StoreConfig   `mapstructure:"store"`
	AI      AIConfig      `mapstructure:"ai"`
	Storage StorageConfig `mapstructure:"storage"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LogConfig zerolog settings
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// MongoConfig MongoDB settings
type MongoConfig struct {
	URI         string `mapstructure:"uri"`
	Database    string `mapstructure:"database"`
	MaxPoolSize uint64 `mapstructure:"max_pool_size"`
	MinPoolSize uint64 `mapstructure:"min_pool_size"`
}

// RedisConfig Redis settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig token settings
type AuthConfig struct {
	JWTSecret          string        `mapstructure:"jwt_secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_token_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_token_expiry"`
}

// StoreConfig storefront identity-registry settings.
//
// MasterSerialIDs carries every serial ID the product has historically
// treated as master. Two values (1 and 111) were honored by different
// revisions of the original admin shell; which one is canonical is still
// an open product decision, so both stay configurable and both grant
// master access. The registry only ever assigns the first entry.
type StoreConfig struct {
	AdminEmail      string  `mapstructure:"admin_email"`
	MasterSerialIDs []int64 `mapstructure:"master_serial_ids"`
	SerialBase      int64   `mapstructure:"serial_base"`
	SiteName        string  `mapstructure:"site_name"`
}

// MasterSerialID returns the serial ID the registry assigns to the admin account
func (c *StoreConfig) MasterSerialID() int64 {
	if len(c.MasterSerialIDs) == 0 {
		return 1
	}
	return c.MasterSerialIDs[0]
}

// IsMasterSerial reports whether id is one of the reserved master values
func (c *StoreConfig) IsMasterSerial(id int64) bool {
	for _, m := range c.MasterSerialIDs {
		if id == m {
			return true
		}
	}
	return false
}

// AIConfig gift-consultant LLM settings
type AIConfig struct {
	Provider string          `mapstructure:"provider"`
	APIKey   string          `mapstructure:"api_key"`
	Model    string          `mapstructure:"model"`
	BaseURL  string          `mapstructure:"base_url"`
	Options  AIOptionsConfig `mapstructure:"options"`
}

// AIOptionsConfig LLM sampling parameters
type AIOptionsConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	TopP        float64 `mapstructure:"top_p"`
}

// StorageConfig media storage settings
type StorageConfig struct {
	Type  string       `mapstructure:"type"` // local, oss
	Local *LocalConfig `mapstructure:"local,omitempty"`
	OSS   *OSSConfig   `mapstructure:"oss,omitempty"`
}

// LocalConfig local filesystem storage
type LocalConfig struct {
	BasePath      string `mapstructure:"base_path"`
	BaseURL       string `mapstructure:"base_url"`
	PresignExpiry int    `mapstructure:"presign_expiry"`
}

// OSSConfig Aliyun OSS storage
type OSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	PresignExpiry   int    `mapstructure:"presign_expiry"`
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if c.Store.AdminEmail == "" || !strings.Contains(c.Store.AdminEmail, "@") {
		return errors.New("store.admin_email must be a valid email address")
	}
	if len(c.Store.MasterSerialIDs) == 0 {
		return errors.New("store.master_serial_ids must not be empty")
	}
	if c.Store.SerialBase <= 0 {
		return errors.New("store.serial_base must be positive")
	}
	for _, m := range c.Store.MasterSerialIDs {
		if m >= c.Store.SerialBase {
			return errors.New("reserved master serial IDs must be below serial_base")
		}
	}

	return nil
}
