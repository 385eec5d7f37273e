package service

import (
	"context"
	"io"
	"mime/multipart"
	"strings"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"
	"taai-api/biz/infrastructure/config"
	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/supabase"
	"taai-api/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IFileService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*taai.FileUploadResp, error)
}

type FileService struct {
	Config  *config.Config
	Storage supabase.Storage
}

var FileServiceSet = wire.NewSet(
	wire.Struct(new(FileService), "*"),
	wire.Bind(new(IFileService), new(*FileService)),
)

// Upload 文件存放在 {prefix}/{filename}, 不限制大小与类型
func (s *FileService) Upload(ctx context.Context, file *multipart.FileHeader) (*taai.FileUploadResp, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	data, err := readAll(file)
	if err != nil {
		log.CtxError(ctx, "read upload %s failed: %v", file.Filename, err)
		return nil, consts.FromBackend(err)
	}

	bucket := s.Config.Storage.Bucket
	key := s.objectKey(file.Filename)
	contentType := lo.CoalesceOrEmpty(file.Header.Get("Content-Type"), consts.ContentTypeOctetStream)
	if err = s.Storage.Upload(ctx, bucket, key, data, contentType); err != nil {
		log.CtxError(ctx, "upload %s/%s failed: %v", bucket, key, err)
		return nil, consts.FromBackend(err)
	}

	return &taai.FileUploadResp{
		FileURL:  s.Storage.PublicURL(bucket, key),
		FileName: file.Filename,
		FileType: contentType,
	}, nil
}

func (s *FileService) objectKey(filename string) string {
	prefix := strings.Trim(s.Config.Storage.Prefix, "/")
	if prefix == "" {
		return filename
	}
	return prefix + "/" + filename
}

func readAll(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
