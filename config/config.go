package config

import (
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
	defaultMaxRequestBodySize = "10MB"
	defaultBackendBaseURL     = "http://localhost:8080"
	defaultBackendTimeout     = 15 * time.Second
	defaultLikeResource       = "HomEat"
	defaultCookieName         = "homeat_session"
)

// ErrNotFound is returned when no config file exists in any search path.
var ErrNotFound = errors.New("not found in any search path")

// Auth providers understood by the identity layer.
const (
	AuthProviderJWT    = "jwt"
	AuthProviderGoogle = "google"
)

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

	// Backend is the remote recipe REST service.
	Backend BackendConfig `json:"backend" yaml:"backend"`

	// Favorites configures where the device-local favorite set is kept.
	Favorites FavoritesConfig `json:"favorites" yaml:"favorites"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// QRCode configuration for recipe share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// LikeResource is the path segment of the like endpoint: /{resource}/{id}/like.
	LikeResource string `json:"likeResource" yaml:"likeResource"`
}

type FavoritesConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///home/me/.config/homeat or mem://.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// AuthConfig describes how identity-provider tokens are verified.
type AuthConfig struct {
	Provider       string `json:"provider" yaml:"provider"`
	Issuer         string `json:"issuer" yaml:"issuer"`
	Audience       string `json:"audience" yaml:"audience"`
	Secret         string `json:"secret" yaml:"secret"`
	PublicKeyPath  string `json:"publicKeyPath" yaml:"publicKeyPath"`
	GoogleClientID string `json:"googleClientId" yaml:"googleClientId"`
	CookieName     string `json:"cookieName" yaml:"cookieName"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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
		return nil, errors.Wrapf(ErrNotFound, "config file %s.yaml", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// BACKEND_BASEURL -> backend.baseUrl, aligned with the keys already in the YAML.
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

	cfg.ApplyDefaults()

	return cfg, nil
}

// Defaults returns a config built only from defaults, for tools that may run
// outside a directory holding config.yaml.
func Defaults() *Config {
	cfg := new(Config)
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills every optional setting left empty by the YAML and env sources.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 5173
	}

	c.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(c.Backend.BaseURL), "/")
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = defaultBackendBaseURL
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = defaultBackendTimeout
	}
	if c.Backend.LikeResource == "" {
		c.Backend.LikeResource = defaultLikeResource
	}

	if c.Favorites.BucketURL == "" {
		c.Favorites.BucketURL = defaultFavoritesBucketURL()
	}

	if c.Auth.Provider == "" {
		c.Auth.Provider = AuthProviderJWT
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = defaultCookieName
	}
}

func defaultFavoritesBucketURL() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mem://"
	}

	return "file://" + filepath.ToSlash(filepath.Join(dir, "homeat")) + "?create_dir=true"
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
