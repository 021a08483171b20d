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
		"backend": map[string]any{
			"baseUrl":      "",
			"likeResource": "HomEat",
		},
		"favorites": map[string]any{
			"bucketUrl": "",
		},
		"auth": map[string]any{
			"googleClientId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "BACKEND_LIKERESOURCE", want: "backend.likeResource"},
		{envKey: "FAVORITES_BUCKETURL", want: "favorites.bucketUrl"},
		{envKey: "AUTH_GOOGLECLIENTID", want: "auth.googleClientId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := `
env:
  log:
    level: debug
http:
  port: 9000
backend:
  baseUrl: http://recipes.local/
  timeout: 3s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yml), 0o600))

	t.Chdir(dir)
	t.Setenv("BACKEND_LIKERESOURCE", "recipes")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	cfg.ApplyDefaults()

	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "http://recipes.local", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "recipes", cfg.Backend.LikeResource)
	assert.Equal(t, AuthProviderJWT, cfg.Auth.Provider)
	assert.Equal(t, "homeat_session", cfg.Auth.CookieName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestApplyDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, defaultBackendBaseURL, cfg.Backend.BaseURL)
	assert.Equal(t, defaultBackendTimeout, cfg.Backend.Timeout)
	assert.Equal(t, "HomEat", cfg.Backend.LikeResource)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.NotEmpty(t, cfg.Favorites.BucketURL)
}
