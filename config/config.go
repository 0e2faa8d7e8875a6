package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Upstream configuration for the platform API that owns the
	// authoritative lives counts.
	Upstream *UpstreamConfig `json:"upstream" yaml:"upstream"`

	// Lives configuration for the regeneration and synchronization rules.
	Lives *LivesConfig `json:"lives" yaml:"lives"`

	// PubSub configuration for lives event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for regeneration push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the connection to the snapshot cache.
type RedisConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// UpstreamConfig defines how hearts reaches the platform lives endpoints.
type UpstreamConfig struct {
	// Base URL of the platform API, e.g. https://api.platform.internal
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Service-to-service bearer token
	ServiceToken string `json:"serviceToken" yaml:"serviceToken"`

	// Per-request timeout for lives reads and loss pushes
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Client-side rate limit towards the platform API
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// LivesConfig defines the process-wide lives rules. These are not
// user-specific; the upstream may still apply its own floor and ceiling.
type LivesConfig struct {
	MaxLives             int           `json:"maxLives" yaml:"maxLives"`
	RegenerationInterval time.Duration `json:"regenerationInterval" yaml:"regenerationInterval"`
	LivesPerRegeneration int           `json:"livesPerRegeneration" yaml:"livesPerRegeneration"`
	LossPerQuizFailure   int           `json:"lossPerQuizFailure" yaml:"lossPerQuizFailure"`

	// How often the regeneration window is re-evaluated
	RegenerationCheckInterval time.Duration `json:"regenerationCheckInterval" yaml:"regenerationCheckInterval"`

	// How often the remote count is re-fetched to correct drift
	ReconcileInterval time.Duration `json:"reconcileInterval" yaml:"reconcileInterval"`

	// Bound on the history log, oldest entries dropped past it
	HistoryLimit int `json:"historyLimit" yaml:"historyLimit"`
}

// PubSubConfig defines Pub/Sub configuration for lives event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Topic prefix; each signed-in client subscribes to "<prefix>-<userID>"
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
}

// LoadWithEnv loads .yaml files through koanf, then overlays environment
// variables (UPSTREAM_BASEURL -> upstream.baseurl, matched case-insensitively
// against struct fields during unmarshalling).
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
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
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

	if cfg.Lives == nil {
		cfg.Lives = &LivesConfig{}
	}
	cfg.Lives.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills unset lives rules with the platform defaults.
func (c *LivesConfig) ApplyDefaults() {
	if c.MaxLives <= 0 {
		c.MaxLives = 10
	}
	if c.RegenerationInterval <= 0 {
		c.RegenerationInterval = 24 * time.Hour
	}
	if c.LivesPerRegeneration <= 0 {
		c.LivesPerRegeneration = 10
	}
	if c.LossPerQuizFailure <= 0 {
		c.LossPerQuizFailure = 1
	}
	if c.RegenerationCheckInterval <= 0 {
		c.RegenerationCheckInterval = time.Minute
	}
	if c.ReconcileInterval <= 0 {
		c.ReconcileInterval = 5 * time.Minute
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = 50
	}
}
