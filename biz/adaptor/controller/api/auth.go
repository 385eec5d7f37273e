package api

import (
	"context"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"

	"github.com/cloudwego/hertz/pkg/app"
)

// GoogleAuth .
// @router /api/auth/google [POST]
func (h *Handler) GoogleAuth(ctx context.Context, c *app.RequestContext) {
	var req taai.GoogleAuthReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.AuthService.GoogleAuth(ctx, &req)
	// 请求中的 credential 不写日志
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// Logout .
// @router /api/auth/logout [POST]
func (h *Handler) Logout(ctx context.Context, c *app.RequestContext) {
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.AuthService.Logout(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}
