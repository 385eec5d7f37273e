package api

import (
	"context"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListAssignments .
// @router /api/assignments/classroom/:classroom_id [GET]
func (h *Handler) ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req taai.ListAssignmentsReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.AssignmentService.ListAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAssignment .
// @router /api/assignments/:assignment_id [GET]
func (h *Handler) GetAssignment(ctx context.Context, c *app.RequestContext) {
	var req taai.GetAssignmentReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.AssignmentService.GetAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateAssignment .
// @router /api/assignments/ [POST]
func (h *Handler) CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req taai.CreateAssignmentReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.AssignmentService.CreateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
