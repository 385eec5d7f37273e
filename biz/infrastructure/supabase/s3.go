package supabase

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"taai-api/biz/infrastructure/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// S3Storage 走 Storage 的 S3 兼容端点上传, 适合大文件
type S3Storage struct {
	api     s3iface.S3API
	baseURL string
}

func NewS3Storage(c *config.Config) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(c.Storage.S3.Endpoint),
		Region:           aws.String(c.Storage.S3.Region),
		Credentials:      credentials.NewStaticCredentials(c.Storage.S3.AccessKeyID, c.Storage.S3.SecretAccessKey, ""),
		S3ForcePathStyle: aws.Bool(true),
		MaxRetries:       aws.Int(0),
		// AWS_CA_BUNDLE 只能打在 *http.Transport 上, 会话建好后再套 otelhttp
		HTTPClient: &http.Client{
			Timeout:   c.Supabase.Timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
	})
	if err != nil {
		return nil, err
	}
	sess.Config.HTTPClient.Transport = otelhttp.NewTransport(sess.Config.HTTPClient.Transport)
	return &S3Storage{api: s3.New(sess), baseURL: c.Supabase.BaseURL()}, nil
}

func (s *S3Storage) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := s.api.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return s3Error(err)
	}
	return nil
}

func (s *S3Storage) PublicURL(bucket, key string) string {
	return publicURL(s.baseURL, bucket, key)
}

// s3Error 把 awserr 转成和 REST 通道一致的 APIError
func s3Error(err error) error {
	var rf awserr.RequestFailure
	if errors.As(err, &rf) && rf.Message() != "" {
		return &APIError{Status: rf.StatusCode(), Message: rf.Message()}
	}
	return err
}
