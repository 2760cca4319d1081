package config

import (
	"net/url"
	"os"
	"path/filepath"
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
	defaultMaxRequestBodySize = "20MB"
	defaultAPIBaseURL         = "http://127.0.0.1:8000/api"
	defaultOpenBaseURL        = "http://localhost:5173/open"
	defaultSessionFile        = ".fieldservice/session.json"
	defaultQRCodeSize         = 256
	defaultHTTPPort           = 8080
	defaultSessionIdleTimeout = 12 * time.Hour
	defaultViewIdleTimeout    = 30 * time.Minute
	defaultMaxViews           = 1024
)

// DefaultJustifications are the failure reasons accepted by the order server.
var DefaultJustifications = []string{"ausencia_titular", "familiar_ausente", "menor_de_edad"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API points at the external order server
	API APIConfig `json:"api" yaml:"api"`

	// Session configures where login tokens are persisted
	Session SessionConfig `json:"session" yaml:"session"`

	// QRCode configuration for open-link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Closure configuration for the closure wizard
	Closure ClosureConfig `json:"closure" yaml:"closure"`

	// Reports configuration for archiving downloaded PDFs
	Reports *ReportsConfig `json:"reports" yaml:"reports"`
}

// APIConfig defines how the order server is reached
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines session persistence
type SessionConfig struct {
	// Store is "file" (default) or "memory"
	Store string `json:"store" yaml:"store"`
	// Path of the session file; relative paths are resolved against the user's home directory
	Path string `json:"path" yaml:"path"`
	// IdleTimeout drops an HTTP client's gateway session after this long unused
	IdleTimeout time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// OpenBaseURL is the page technicians land on, e.g. https://app.example.com/open
	OpenBaseURL string `json:"openBaseUrl" yaml:"openBaseUrl"`
}

// ClosureConfig defines the closure wizard's enumerations
type ClosureConfig struct {
	Justifications []string `json:"justifications" yaml:"justifications"`
	// ViewIdleTimeout tears down an order view nobody touched for this long
	ViewIdleTimeout time.Duration `json:"viewIdleTimeout" yaml:"viewIdleTimeout"`
	// MaxViews caps the open order views; the least recently used one is evicted
	MaxViews int `json:"maxViews" yaml:"maxViews"`
}

// ReportsConfig defines where downloaded PDFs are archived
type ReportsConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/fieldservice/reports or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// EnvPrefix scopes the environment variables that override the YAML config,
// e.g. FIELDSERVICE_API_BASEURL -> api.baseUrl.
const EnvPrefix = "FIELDSERVICE_"

// LoadWithEnv loads .yaml files through koanf. The file is optional; environment
// variables are applied on top of whatever was found.
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	// Load YAML config file
	if found {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: FIELDSERVICE_API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// Load reads config.yaml from the usual search paths, applies environment
// overrides and fills defaults.
func Load() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func New() (*Config, error) {
	return Load()
}

// ApplyDefaults fills unset values and checks the API base address.
func (c *Config) ApplyDefaults() error {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = "fieldservice"
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}

	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultAPIBaseURL
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("invalid api.baseUrl %q", c.API.BaseURL)
	}

	if c.Session.Store == "" {
		c.Session.Store = "file"
	}
	if c.Session.Path == "" {
		c.Session.Path = defaultSessionFile
	}
	if c.Session.IdleTimeout == 0 {
		c.Session.IdleTimeout = defaultSessionIdleTimeout
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size == 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = "M"
	}
	if c.QRCode.OpenBaseURL == "" {
		c.QRCode.OpenBaseURL = defaultOpenBaseURL
	}

	if len(c.Closure.Justifications) == 0 {
		c.Closure.Justifications = append([]string(nil), DefaultJustifications...)
	}
	if c.Closure.ViewIdleTimeout == 0 {
		c.Closure.ViewIdleTimeout = defaultViewIdleTimeout
	}
	if c.Closure.MaxViews == 0 {
		c.Closure.MaxViews = defaultMaxViews
	}

	return nil
}

// SessionPath resolves the session file location.
func (c *Config) SessionPath() (string, error) {
	if filepath.IsAbs(c.Session.Path) {
		return c.Session.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "os.UserHomeDir")
	}

	return filepath.Join(home, c.Session.Path), nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
