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
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "64KB"

	defaultUsersCollection  = "users"
	defaultTokenMapField    = "fcmTokens"
	defaultTokenValuesField = "fcmTokenValues"

	defaultAPNSRetryDelay   = 3 * time.Second
	defaultSubscriberBuffer = 16
	defaultDispatchBatch    = 500
	defaultBridgeIssuer     = "carepush-native-shell"
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

	// Firebase configuration shared by messaging, auth and Firestore
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Store selects where user token sets live
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Platform describes the device-side push platform the bridge emulates
	Platform *PlatformConfig `json:"platform" yaml:"platform"`

	// Bridge configures credentials for the native shell
	Bridge *BridgeConfig `json:"bridge" yaml:"bridge"`

	// Push holds token lifecycle and dispatch policy
	Push *PushConfig `json:"push" yaml:"push"`

	// PubSub configuration for dispatch events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase project settings
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// StoreConfig defines the token store backend
type StoreConfig struct {
	// Provider type: "firestore" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// Firestore collection holding one document per user
	Collection string `json:"collection" yaml:"collection"`

	// Map field keyed by token value
	TokenMapField string `json:"tokenMapField" yaml:"tokenMapField"`

	// Array field mirroring the token values, used for ownership lookups
	TokenValuesField string `json:"tokenValuesField" yaml:"tokenValuesField"`

	// AutoMigrate creates the push token table on start (postgres provider only)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// PlatformConfig defines the device platform the bridge stands in for
type PlatformConfig struct {
	// OS is "ios" or "android"
	OS string `json:"os" yaml:"os"`

	// Permission is the answer given to a permission prompt until the shell reports one
	Permission string `json:"permission" yaml:"permission"`

	// APNSRetryDelay is the single wait before re-polling the APNs identifier
	APNSRetryDelay time.Duration `json:"apnsRetryDelay" yaml:"apnsRetryDelay"`

	// SubscriberBuffer is the per-listener queue of the broadcast channels
	SubscriberBuffer int `json:"subscriberBuffer" yaml:"subscriberBuffer"`
}

// BridgeConfig defines the shared secret used to sign bridge tokens
type BridgeConfig struct {
	Secret string `json:"secret" yaml:"secret"`
	Issuer string `json:"issuer" yaml:"issuer"`
}

// PushConfig defines token lifecycle and dispatch policies
type PushConfig struct {
	// ExclusiveOwnership removes a token from other users when it is registered
	ExclusiveOwnership *bool `json:"exclusiveOwnership" yaml:"exclusiveOwnership"`

	// PruneRotatedTokens removes the superseded value when a token rotates
	PruneRotatedTokens *bool `json:"pruneRotatedTokens" yaml:"pruneRotatedTokens"`

	// BatchSize is the multicast size used by the dispatch worker (max 500)
	BatchSize int `json:"batchSize" yaml:"batchSize"`
}

// PubSubConfig defines Pub/Sub configuration for dispatch events
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

// IsExclusiveOwnership reports whether registering a token evicts it from other users.
func (c *PushConfig) IsExclusiveOwnership() bool {
	if c == nil || c.ExclusiveOwnership == nil {
		return true
	}

	return *c.ExclusiveOwnership
}

// IsPruneRotatedTokens reports whether a rotated-away token is removed from the user's set.
func (c *PushConfig) IsPruneRotatedTokens() bool {
	if c == nil || c.PruneRotatedTokens == nil {
		return true
	}

	return *c.PruneRotatedTokens
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

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env vars override yaml. FIREBASE_CREDENTIALSPATH -> firebase.credentialsPath
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

func findConfigFile(name string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never nil-check.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = "firestore"
	}
	if cfg.Store.Collection == "" {
		cfg.Store.Collection = defaultUsersCollection
	}
	if cfg.Store.TokenMapField == "" {
		cfg.Store.TokenMapField = defaultTokenMapField
	}
	if cfg.Store.TokenValuesField == "" {
		cfg.Store.TokenValuesField = defaultTokenValuesField
	}

	if cfg.Platform == nil {
		cfg.Platform = &PlatformConfig{}
	}
	if cfg.Platform.OS == "" {
		cfg.Platform.OS = "android"
	}
	if cfg.Platform.Permission == "" {
		cfg.Platform.Permission = "notDetermined"
	}
	if cfg.Platform.APNSRetryDelay <= 0 {
		cfg.Platform.APNSRetryDelay = defaultAPNSRetryDelay
	}
	if cfg.Platform.SubscriberBuffer <= 0 {
		cfg.Platform.SubscriberBuffer = defaultSubscriberBuffer
	}

	if cfg.Bridge == nil {
		cfg.Bridge = &BridgeConfig{}
	}
	if cfg.Bridge.Issuer == "" {
		cfg.Bridge.Issuer = defaultBridgeIssuer
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.BatchSize <= 0 || cfg.Push.BatchSize > defaultDispatchBatch {
		cfg.Push.BatchSize = defaultDispatchBatch
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, ok := findExistingSegment(current, segment)
		if !ok {
			canonical = append(canonical, segment)
			current = nil

			continue
		}

		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
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
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
