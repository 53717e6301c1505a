package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"PORT",
	"LOG_LEVEL",
	"CORS_ALLOWED_ORIGINS",
	"TWITTER_BEARER_TOKEN",
	"TWITTER_API_BASE_URL",
	"TWITTER_TIMEOUT",
	"AVATAR_STRIP_SUFFIX",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadFromDirUsesDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TWITTER_BEARER_TOKEN", "test-token")

	cfg, err := LoadFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, "test-token", cfg.Twitter.BearerToken)
	assert.Equal(t, DefaultTwitterBaseURL, cfg.Twitter.BaseURL)
	assert.Equal(t, DefaultTwitterTimeout, cfg.Twitter.Timeout)
	assert.Equal(t, []string{"profile_image_url", "description", "name"}, cfg.Twitter.UserFields)
	assert.True(t, cfg.Twitter.Avatar.StripSuffix)
	assert.Equal(t, "_normal", cfg.Twitter.Avatar.Suffix)
}

func TestLoadFromDirRequiresBearerToken(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadFromDir(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingBearerToken)
	assert.Nil(t, cfg)
}

func TestLoadFromDirReadsYAML(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TWITTER_BEARER_TOKEN", "test-token")

	dir := t.TempDir()
	writeFile(t, dir, CONFIG_FILE, `
logging:
  level: debug
server:
  port: "8081"
  cors_allowed_origins:
    - https://example.com
twitter:
  base_url: http://twitter.local/2
  timeout: 3s
  user_fields: [profile_image_url]
  avatar:
    strip_suffix: false
`)

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "http://twitter.local/2", cfg.Twitter.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Twitter.Timeout)
	assert.Equal(t, []string{"profile_image_url"}, cfg.Twitter.UserFields)
	assert.False(t, cfg.Twitter.Avatar.StripSuffix)
	// suffix 를 지정하지 않으면 기본값이 유지된다.
	assert.Equal(t, "_normal", cfg.Twitter.Avatar.Suffix)
}

func TestLoadFromDirEnvOverridesYAML(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TWITTER_BEARER_TOKEN", "test-token")
	t.Setenv("PORT", "9090")
	t.Setenv("TWITTER_API_BASE_URL", "http://override.local/2")
	t.Setenv("TWITTER_TIMEOUT", "250ms")
	t.Setenv("AVATAR_STRIP_SUFFIX", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	dir := t.TempDir()
	writeFile(t, dir, CONFIG_FILE, "server:\n  port: \"8081\"\ntwitter:\n  base_url: http://twitter.local/2\n")

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://override.local/2", cfg.Twitter.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Twitter.Timeout)
	assert.False(t, cfg.Twitter.Avatar.StripSuffix)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoadFromDirReadsDotEnv(t *testing.T) {
	clearConfigEnv(t)
	// godotenv 는 이미 존재하는 변수를 덮어쓰지 않으므로 테스트 동안만 제거한다.
	// t.Setenv 가 종료 시 원래 상태로 복구한다.
	require.NoError(t, os.Unsetenv("TWITTER_BEARER_TOKEN"))

	dir := t.TempDir()
	writeFile(t, dir, ENV_FILE, "TWITTER_BEARER_TOKEN=from-dotenv\n")

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Twitter.BearerToken)
}

func TestLoadFromDirRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "timeout", key: "TWITTER_TIMEOUT", val: "soon"},
		{name: "strip suffix", key: "AVATAR_STRIP_SUFFIX", val: "maybe"},
		{name: "port", key: "PORT", val: "http"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("TWITTER_BEARER_TOKEN", "test-token")
			t.Setenv(testCase.key, testCase.val)

			_, err := LoadFromDir(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestGetBasePathFindsConfigInParent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, CONFIG_FILE, "logging:\n  level: info\n")
	nested := filepath.Join(root, "cmd", "api")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	t.Chdir(nested)

	got, err := filepath.EvalSymlinks(GetBasePath())
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
