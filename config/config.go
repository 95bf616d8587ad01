package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultPort               = 5555
	defaultMaxRequestBodySize = "100KB"
	defaultCookieName         = "session"
	defaultSessionMaxAge      = 24 * time.Hour
	defaultDatabaseDriver     = DriverSQLite
	defaultDatabaseDSN        = "file:cookbook.db?_foreign_keys=on"
	defaultMetricsPath        = "/metrics"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env      EnvConfig       `json:"env" yaml:"env"`
	HTTP     HTTPConfig      `json:"http" yaml:"http"`
	Database *DatabaseConfig `json:"database" yaml:"database"`
	Session  *SessionConfig  `json:"session" yaml:"session"`
	Auth     *AuthConfig     `json:"auth" yaml:"auth"`
	Metrics  *MetricsConfig  `json:"metrics" yaml:"metrics"`
}

type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

// HTTPConfig configures the API listener. MaxRequestBodySize uses echo's
// BodyLimit syntax, e.g. "100KB".
type HTTPConfig struct {
	Port               int            `json:"port" yaml:"port"`
	MaxRequestBodySize string         `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           TimeoutsConfig `json:"timeouts" yaml:"timeouts"`
	CORS               CORSConfig     `json:"cors" yaml:"cors"`
}

// CORSConfig lists the browser origins allowed to make credentialed
// requests. With no origins every origin may call the API, without cookies.
type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

type TimeoutsConfig struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// DatabaseConfig selects the relational backend and its connection pool.
type DatabaseConfig struct {
	// Driver is either "sqlite" or "postgres".
	Driver string `json:"driver" yaml:"driver"`

	// DSN is passed verbatim to the driver.
	DSN string `json:"dsn" yaml:"dsn"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`

	// Replicas are read-only DSNs used for queries (postgres only).
	Replicas []string `json:"replicas" yaml:"replicas"`

	// AutoMigrate applies embedded schema migrations on startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	Secret     string        `json:"secret" yaml:"secret"`
	MaxAge     time.Duration `json:"maxAge" yaml:"maxAge"`
	Secure     bool          `json:"secure" yaml:"secure"`
	SameSite   string        `json:"sameSite" yaml:"sameSite"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file, e.g. SESSION_SECRET -> session.secret.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = defaultDatabaseDriver
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == DriverSQLite {
		cfg.Database.DSN = defaultDatabaseDSN
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultCookieName
	}
	if cfg.Session.MaxAge <= 0 {
		cfg.Session.MaxAge = defaultSessionMaxAge
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

func (cfg *Config) validate() error {
	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return errors.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return errors.New("database dsn must be provided")
	}
	if cfg.Session.Secret == "" {
		return errors.New("session secret must be provided")
	}

	return nil
}

// canonicalizeEnvKey maps an environment variable onto the key path already
// present in the loaded file. Underscores separate words as well as levels,
// so runs of segments are joined greedily to match the longest existing key:
// HTTP_MAX_REQUEST_BODY_SIZE becomes http.maxRequestBodySize. Segments with no
// counterpart fall back to one level each.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var segments []string
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	path := make([]string, 0, len(segments))
	level := existing
	for i := 0; i < len(segments); {
		key, child, consumed := longestKeyMatch(level, segments[i:])
		if consumed == 0 {
			path = append(path, segments[i])
			level = nil
			i++

			continue
		}
		path = append(path, key)
		level = child
		i += consumed
	}

	return strings.Join(path, ".")
}

func longestKeyMatch(level map[string]any, segments []string) (key string, child map[string]any, consumed int) {
	if len(level) == 0 {
		return "", nil, 0
	}

	for n := len(segments); n > 0; n-- {
		needle := normalizeToken(strings.Join(segments[:n], ""))
		for candidate, value := range level {
			if normalizeToken(candidate) == needle {
				child, _ = value.(map[string]any)

				return candidate, child, n
			}
		}
	}

	return "", nil, 0
}

// normalizeToken lowercases s and drops everything but letters and digits.
func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// Addr returns the listen port as a string.
func (cfg *Config) Addr() string {
	return strconv.Itoa(cfg.HTTP.Port)
}
