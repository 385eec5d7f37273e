package api

import (
	"context"
	"errors"
	"net/http"

	"taai-api/biz/adaptor"
	"taai-api/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
)

var errFileRequired = consts.InvalidParams(errors.New("file is required"))

// Upload 表单字段 file
// @router /api/files/upload [POST]
func (h *Handler) Upload(ctx context.Context, c *app.RequestContext) {
	file, err := c.FormFile(consts.FormFileField)
	if err != nil {
		adaptor.ReturnError(c, http.StatusUnprocessableEntity, errFileRequired)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.FileService.Upload(ctx, file)
	adaptor.PostProcess(ctx, c, file.Filename, resp, err)
}
