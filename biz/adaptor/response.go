package adaptor

import (
	"context"
	"net/http"

	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/util"
	"taai-api/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
)

// Redactor 响应中带有凭证时, 日志只记录 Redact 的结果
type Redactor interface {
	Redact() any
}

type ErrorResp struct {
	Detail string `json:"detail"`
}

// PostProcess 统一写回响应, 出错时只返回 detail
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	if err != nil {
		status := consts.HTTPStatus(err)
		log.CtxInfo(ctx, "[%s] req=%s, status=%d, err=%v", c.FullPath(), util.JSONF(req), status, err)
		ReturnError(c, status, err)
		return
	}
	view := resp
	if r, ok := resp.(Redactor); ok {
		view = r.Redact()
	}
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s", c.FullPath(), util.JSONF(req), util.JSONF(view))
	c.JSON(http.StatusOK, resp)
}

func ReturnError(c *app.RequestContext, status int, err error) {
	c.JSON(status, &ErrorResp{Detail: err.Error()})
}
