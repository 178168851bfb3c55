package config

import (
	"encoding/xml"
	"io"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	Pagination     PaginationConfig     `xml:"PAGINATION"`
	RateLimit      RateLimitConfig      `xml:"RATE_LIMIT"`
	DB             DBConfig             `xml:"DB"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
}

// AuthenticationConfig holds token settings. The signing secret itself is
// never stored in the XML file; SecretEnv names the environment variable
// that carries it.
type AuthenticationConfig struct {
	SecretEnv          string `xml:"SECRET_ENV"`
	TokenExpiryMinutes int    `xml:"TOKEN_EXPIRY_MINUTES"`
}

// Secret resolves the signing secret from the environment.
func (a AuthenticationConfig) Secret() string {
	return os.Getenv(a.SecretEnv)
}

// PaginationConfig holds pagination settings.
type PaginationConfig struct {
	PageSize int `xml:"PAGE_SIZE"`
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	Enabled           bool    `xml:"ENABLED"`
	RequestsPerSecond float64 `xml:"REQUESTS_PER_SECOND"`
	Burst             int     `xml:"BURST"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	Name       string       `xml:"NAME"`
	SSLMode    string       `xml:"SSL_MODE"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// Resolve returns the password, following the ENV indirection when the
// TYPE attribute asks for it.
func (p DBPassword) Resolve() string {
	if p.Type == "env" {
		return os.Getenv(p.Value)
	}
	return p.Value
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// LoadConfig loads and parses the XML configuration from the given file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}

		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
