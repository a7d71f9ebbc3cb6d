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
	DB             DBConfig             `xml:"DB"`
	Scoring        ScoringConfig        `xml:"SCORING"`
	RateLimit      RateLimitConfig      `xml:"RATE_LIMIT"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
	LogDir   string `xml:"LOG_DIR"`
}

// AuthenticationConfig holds authentication settings.
type AuthenticationConfig struct {
	MultipleSameUserSessions bool `xml:"MULTIPLE_SAME_USER_SESSIONS,attr"`
	EnableTokenAuth          bool `xml:"ENABLE_TOKEN_AUTH"`
	SessionTimeout           int  `xml:"SESSION_TIMEOUT"`
}

// PaginationConfig holds pagination settings.
type PaginationConfig struct {
	PageSize int `xml:"PAGE_SIZE"`
}

// ScoringConfig holds the clinical policy knobs that must stay auditable:
// which severity band triggers an appointment offer, and whether the
// DASS-21 total column is filled with the sum of the three subscales.
type ScoringConfig struct {
	Dass21TotalIsSum    bool   `xml:"DASS21_TOTAL_IS_SUM"`
	InterventionBand    string `xml:"INTERVENTION_BAND"`     // DASS-21 categories
	CFQInterventionBand string `xml:"CFQ_INTERVENTION_BAND"` // CFQ band table uses its own labels
}

// RateLimitConfig throttles survey submissions.
type RateLimitConfig struct {
	RequestsPerSecond float64 `xml:"REQUESTS_PER_SECOND"`
	Burst             int     `xml:"BURST"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Server     string       `xml:"SERVER"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	Driver     string       `xml:"DRIVER"`
	SSLMode    string       `xml:"SSL_MODE"`
	Names      DBNames      `xml:"NAMES"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBNames holds the names defined in the DB section.
type DBNames struct {
	MINDCARE string `xml:"MINDCARE,attr"`
}

// DBPassword holds password details. TYPE="env" reads the value as an
// environment variable name instead of a literal password.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// Resolve returns the literal password, going through the environment
// when TYPE="env" (the .env file is loaded by main before config).
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
	var loadErr error
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			loadErr = err
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			loadErr = err
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			loadErr = err
			return
		}

		cfg = &newCfg
	})

	if loadErr != nil {
		return nil, loadErr
	}
	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
