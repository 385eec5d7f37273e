package supabase

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"taai-api/biz/infrastructure/config"
)

// Storage 对象存储接口
type Storage interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
	PublicURL(bucket, key string) string
}

// NewStorage 按配置选择上传通道, 公网地址的拼法两者一致
func NewStorage(c *config.Config, cli *Client) (Storage, error) {
	if c.Storage.Driver == config.StorageDriverS3 {
		return NewS3Storage(c)
	}
	return &RestStorage{client: cli}, nil
}

// RestStorage 通过 Storage REST 接口上传
type RestStorage struct {
	client *Client
}

func (s *RestStorage) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := s.client.do(ctx, &request{
		method: http.MethodPost,
		uri:    s.client.url(storagePath, "/object/", escapePath(bucket), "/", escapePath(key)),
		header: map[string]string{
			"x-upsert":      "false",
			"cache-control": "max-age=3600",
		},
		contentType: contentType,
		body:        data,
	})
	return err
}

func (s *RestStorage) PublicURL(bucket, key string) string {
	return publicURL(s.client.baseURL, bucket, key)
}

// publicURL 与官方 SDK 的 get_public_url 一致, 路径不做转义
func publicURL(baseURL, bucket, key string) string {
	return baseURL + storagePath + "/object/public/" + bucket + "/" + key
}

// escapePath 逐段转义, 保留分隔符
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
