// Package supabase 是对托管后端(PostgREST/GoTrue/Storage)的一层薄封装.
// 上层只依赖 Database/Auth/Storage 三个接口, 所有失败都以 *APIError 或传输层错误返回.
package supabase

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"taai-api/biz/infrastructure/config"
	"taai-api/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/google/wire"
)

const (
	restPath    = "/rest/v1/"
	authPath    = "/auth/v1"
	storagePath = "/storage/v1"
)

var ProviderSet = wire.NewSet(
	NewClient,
	NewStorage,
	wire.Bind(new(Database), new(*Client)),
	wire.Bind(new(Auth), new(*Client)),
)

// Client 进程内共享一个, hertz client 自带连接池, 并发安全
type Client struct {
	baseURL      string
	apiKey       string
	timeout      time.Duration
	forwardToken bool
	hc           *client.Client
}

func NewClient(c *config.Config) (*Client, error) {
	hc, err := client.NewClient(
		client.WithDialer(standard.NewDialer()),
		client.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}),
		client.WithDialTimeout(c.Supabase.Timeout),
		client.WithClientReadTimeout(c.Supabase.Timeout),
	)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:      c.Supabase.BaseURL(),
		apiKey:       c.Supabase.AnonKey,
		timeout:      c.Supabase.Timeout,
		forwardToken: c.Supabase.ForwardUserToken,
		hc:           hc,
	}, nil
}

// bearer PostgREST/Storage 使用的身份, 默认是 anon key
func (c *Client) bearer(ctx context.Context) string {
	if c.forwardToken {
		if token := AccessTokenFrom(ctx); token != "" {
			return token
		}
	}
	return c.apiKey
}

type request struct {
	method      string
	uri         string
	header      map[string]string
	contentType string
	body        []byte
}

// do 发送一次请求, 不重试. 非 2xx 返回 *APIError
func (c *Client) do(ctx context.Context, r *request) ([]byte, error) {
	req, resp := protocol.AcquireRequest(), protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetRequestURI(r.uri)
	req.SetMethod(r.method)
	req.SetHeader("apikey", c.apiKey)
	req.SetHeader(consts.Authorization, consts.BearerPrefix+c.bearer(ctx))
	for k, v := range r.header {
		req.SetHeader(k, v)
	}
	if r.contentType != "" {
		req.Header.SetContentTypeBytes([]byte(r.contentType))
	}
	if r.body != nil {
		req.SetBody(r.body)
	}

	if err := c.hc.DoTimeout(ctx, req, resp, c.timeout); err != nil {
		return nil, err
	}

	body := append([]byte(nil), resp.Body()...)
	if status := resp.StatusCode(); status < 200 || status >= 300 {
		return nil, newAPIError(status, body)
	}
	return body, nil
}

func (c *Client) url(prefix string, parts ...string) string {
	return c.baseURL + prefix + strings.Join(parts, "")
}
