package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	DefaultPort           = "3000"
	DefaultLogLevel       = "info"
	DefaultTwitterBaseURL = "https://api.twitter.com/2"
	DefaultTwitterTimeout = 10 * time.Second
	DefaultAvatarSuffix   = "_normal"
)

// ErrMissingBearerToken 은 Twitter API 호출에 필요한 토큰이 설정되지 않았을 때 반환된다.
var ErrMissingBearerToken = errors.New("TWITTER_BEARER_TOKEN is not set")

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Twitter TwitterConfig `yaml:"twitter"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// CORSAllowedOrigins 가 비어 있으면 모든 Origin("*")을 허용한다.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// Addr 는 http.Server 에 넘길 listen 주소를 반환한다.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// TwitterConfig 는 외부 프로필 조회 API(Twitter v2) 호출 설정이다.
type TwitterConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	UserFields []string      `yaml:"user_fields"`
	Avatar     AvatarConfig  `yaml:"avatar"`

	// BearerToken 은 파일에 두지 않고 환경변수(TWITTER_BEARER_TOKEN)로만 받는다.
	BearerToken string `yaml:"-"`
}

// AvatarConfig 는 profile_image_url 에서 사이즈 토큰(_normal 등)을 제거할지 여부를 정한다.
type AvatarConfig struct {
	StripSuffix bool   `yaml:"strip_suffix"`
	Suffix      string `yaml:"suffix"`
}

// Default 는 설정 파일이나 환경변수가 없을 때 사용하는 기본 설정을 반환한다.
func Default() *AppConfig {
	return &AppConfig{
		Logging: LoggingConfig{Level: DefaultLogLevel},
		Server: ServerConfig{
			Port:               DefaultPort,
			CORSAllowedOrigins: []string{"*"},
		},
		Twitter: TwitterConfig{
			BaseURL:    DefaultTwitterBaseURL,
			Timeout:    DefaultTwitterTimeout,
			UserFields: DefaultUserFields(),
			Avatar: AvatarConfig{
				StripSuffix: true,
				Suffix:      DefaultAvatarSuffix,
			},
		},
	}
}

// DefaultUserFields 는 user.fields 쿼리로 요청하는 기본 필드 목록이다.
func DefaultUserFields() []string {
	return []string{"profile_image_url", "description", "name"}
}

// Load 는 config.yaml 이 있는 디렉터리(현재 경로에서 상위로 탐색)를 기준으로 설정을 읽는다.
// 프로세스 시작 시 한 번만 호출하고, 반환된 값을 각 컴포넌트에 명시적으로 넘긴다.
func Load() (*AppConfig, error) {
	return LoadFromDir(GetBasePath())
}

// LoadFromDir 는 dir 의 .env 와 config.yaml 을 읽고 환경변수로 덮어쓴 뒤 검증한다.
// config.yaml 은 선택 사항이며, 없으면 기본값과 환경변수만 사용한다.
func LoadFromDir(dir string) (*AppConfig, error) {
	// .env 가 없어도 환경변수만으로 동작할 수 있어야 하므로 에러는 무시한다.
	_ = godotenv.Load(filepath.Join(dir, ENV_FILE))

	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.Server.CORSAllowedOrigins = splitList(v)
	}

	c.Twitter.BearerToken = strings.TrimSpace(os.Getenv("TWITTER_BEARER_TOKEN"))
	if v := os.Getenv("TWITTER_API_BASE_URL"); v != "" {
		c.Twitter.BaseURL = v
	}
	if v := os.Getenv("TWITTER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TWITTER_TIMEOUT %q: %w", v, err)
		}
		c.Twitter.Timeout = d
	}
	if v := os.Getenv("AVATAR_STRIP_SUFFIX"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AVATAR_STRIP_SUFFIX %q: %w", v, err)
		}
		c.Twitter.Avatar.StripSuffix = b
	}
	return nil
}

// Validate 는 필수값을 확인하고 비어 있는 선택값을 기본값으로 채운다.
func (c *AppConfig) Validate() error {
	if c.Twitter.BearerToken == "" {
		return ErrMissingBearerToken
	}
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Server.Port, err)
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"*"}
	}
	if c.Twitter.BaseURL == "" {
		c.Twitter.BaseURL = DefaultTwitterBaseURL
	}
	if c.Twitter.Timeout <= 0 {
		c.Twitter.Timeout = DefaultTwitterTimeout
	}
	if len(c.Twitter.UserFields) == 0 {
		c.Twitter.UserFields = DefaultUserFields()
	}
	if c.Twitter.Avatar.Suffix == "" {
		c.Twitter.Avatar.Suffix = DefaultAvatarSuffix
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
