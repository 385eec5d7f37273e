package api

import (
	"context"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListClassrooms .
// @router /api/classrooms/ [GET]
func (h *Handler) ListClassrooms(ctx context.Context, c *app.RequestContext) {
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.ClassroomService.ListClassrooms(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// GetClassroom .
// @router /api/classrooms/:classroom_id [GET]
func (h *Handler) GetClassroom(ctx context.Context, c *app.RequestContext) {
	var req taai.GetClassroomReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.ClassroomService.GetClassroom(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
