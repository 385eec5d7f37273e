package config

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"taai-api/biz/infrastructure/util/log"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
)

//go:embed taai-api.yaml
var embeddedConfig []byte

const (
	StorageDriverRest = "rest"
	StorageDriverS3   = "s3"
)

type Config struct {
	service.ServiceConf
	ListenOn     string        `json:",default=0.0.0.0:8000,env=LISTEN_ON"`
	ReadTimeout  time.Duration `json:",default=30s"`
	WriteTimeout time.Duration `json:",default=5m"`
	ExitWaitTime time.Duration `json:",default=5s"`
	// 上传不在本地限制大小, 这里只是 hertz 的请求体上限
	MaxRequestBodySize int `json:",default=1073741824"`
	Supabase           Supabase
	Storage            Storage
	// 以下结构体不能标 optional, 否则配置文件缺少该段时 env 标签不会生效
	Google    Google
	Anthropic Anthropic
	Metrics   Metrics
}

type Supabase struct {
	URL     string        `json:",env=VITE_SUPABASE_URL"`
	AnonKey string        `json:",env=VITE_SUPABASE_SUPABASE_ANON_KEY"`
	Timeout time.Duration `json:",default=10s"`
	// 为 true 时把调用方的 bearer token 透传给 PostgREST/Storage, 由行级策略鉴权
	ForwardUserToken bool `json:",optional"`
}

type Storage struct {
	Driver string `json:",default=rest,options=rest|s3,env=STORAGE_DRIVER"`
	Bucket string `json:",default=taai-files"`
	Prefix string `json:",default=uploads"`
	S3     S3
}

type S3 struct {
	Endpoint        string `json:",optional,env=STORAGE_S3_ENDPOINT"`
	Region          string `json:",default=us-east-1,env=STORAGE_S3_REGION"`
	AccessKeyID     string `json:",optional,env=STORAGE_S3_ACCESS_KEY_ID"`
	SecretAccessKey string `json:",optional,env=STORAGE_S3_SECRET_ACCESS_KEY"`
}

// Google 预留给后续的 Classroom 同步, 目前没有 handler 使用
type Google struct {
	ClientID     string `json:",optional,env=GOOGLE_CLIENT_ID"`
	ClientSecret string `json:",optional,env=GOOGLE_CLIENT_SECRET"`
}

// Anthropic 预留给 AI 辅助批改, 目前没有 handler 使用
type Anthropic struct {
	APIKey string `json:",optional,env=ANTHROPIC_API_KEY"`
}

type Metrics struct {
	ListenOn string `json:",optional"`
	Path     string `json:",default=/metrics"`
}

// NewConfig 加载配置: .env -> CONFIG_PATH 指定的yaml 或内置默认配置 -> 环境变量
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("NewConfig no .env file loaded, using process environment")
	}

	c := new(Config)
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		log.Info("NewConfig load config from path: %s", path)
		if err := conf.Load(path, c, conf.UseEnv()); err != nil {
			return nil, err
		}
	} else if err := conf.LoadFromYamlBytes(embeddedConfig, c); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.SetUp(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate 校验 go-zero 标签无法表达的约束
func (c *Config) Validate() error {
	u, err := url.Parse(c.Supabase.URL)
	if err != nil {
		return fmt.Errorf("invalid supabase url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid supabase url %q: scheme and host required", c.Supabase.URL)
	}
	if strings.TrimSpace(c.Supabase.AnonKey) == "" {
		return errors.New("supabase anon key is required")
	}
	if c.Supabase.Timeout <= 0 {
		return errors.New("supabase timeout must be positive")
	}
	if c.Storage.Driver == StorageDriverS3 {
		s3 := c.Storage.S3
		if s3.Endpoint == "" || s3.AccessKeyID == "" || s3.SecretAccessKey == "" {
			return errors.New("s3 storage driver requires endpoint, access key id and secret access key")
		}
	}
	return nil
}

// BaseURL 去掉末尾斜杠的服务地址
func (s Supabase) BaseURL() string {
	return strings.TrimRight(s.URL, "/")
}
