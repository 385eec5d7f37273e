// Package api 对外的 /api 接口, 只负责参数绑定和写回响应
package api

import (
	"net/http"

	"taai-api/biz/adaptor"
	"taai-api/biz/infrastructure/consts"
	"taai-api/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

type Handler struct {
	p *provider.Provider
}

func NewHandler(p *provider.Provider) *Handler {
	return &Handler{p: p}
}

type checker interface {
	Check() error
}

// bind 绑定失败或缺少必填字段时返回 422
func bind(c *app.RequestContext, req any) bool {
	err := c.BindAndValidate(req)
	if err == nil {
		if ck, ok := req.(checker); ok {
			err = ck.Check()
		}
	}
	if err != nil {
		adaptor.ReturnError(c, http.StatusUnprocessableEntity, consts.InvalidParams(err))
		return false
	}
	return true
}
