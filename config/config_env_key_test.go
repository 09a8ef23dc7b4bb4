package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"credentialsPath": "",
		},
		"platform": map[string]any{
			"apnsRetryDelay": "3s",
		},
		"store": map[string]any{
			"tokenMapField": "fcmTokens",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "PLATFORM_APNSRETRYDELAY", want: "platform.apnsRetryDelay"},
		{envKey: "STORE_TOKENMAPFIELD", want: "store.tokenMapField"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Store)
	assert.Equal(t, "firestore", cfg.Store.Provider)
	assert.Equal(t, "users", cfg.Store.Collection)
	assert.Equal(t, "fcmTokens", cfg.Store.TokenMapField)
	assert.Equal(t, "fcmTokenValues", cfg.Store.TokenValuesField)

	require.NotNil(t, cfg.Platform)
	assert.Equal(t, "android", cfg.Platform.OS)
	assert.Equal(t, 3*time.Second, cfg.Platform.APNSRetryDelay)
	assert.Equal(t, 16, cfg.Platform.SubscriberBuffer)

	require.NotNil(t, cfg.Push)
	assert.Equal(t, 500, cfg.Push.BatchSize)
	assert.True(t, cfg.Push.IsExclusiveOwnership())
	assert.True(t, cfg.Push.IsPruneRotatedTokens())
	assert.Equal(t, "64KB", cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_CapsBatchSize(t *testing.T) {
	disabled := false
	cfg := &Config{Push: &PushConfig{BatchSize: 2000, PruneRotatedTokens: &disabled}}

	applyDefaults(cfg)

	assert.Equal(t, 500, cfg.Push.BatchSize)
	assert.False(t, cfg.Push.IsPruneRotatedTokens())
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("env:\n  serviceName: carepush\nplatform:\n  os: ios\n  apnsRetryDelay: 1s\n")
	require.NoError(t, writeFile(dir, "config.yaml", yamlBody))

	t.Chdir(dir)
	t.Setenv("PLATFORM_OS", "android")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "carepush", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Platform)
	assert.Equal(t, "android", cfg.Platform.OS)
	assert.Equal(t, time.Second, cfg.Platform.APNSRetryDelay)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.Error(t, err)
}

func writeFile(dir, name string, body []byte) error {
	return os.WriteFile(filepath.Join(dir, name), body, 0o600)
}
