package api

import (
	"context"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListCriteria .
// @router /api/grading/criteria/assignment/:assignment_id [GET]
func (h *Handler) ListCriteria(ctx context.Context, c *app.RequestContext) {
	var req taai.ListCriteriaReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.GradingService.ListCriteria(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateCriterion .
// @router /api/grading/criteria [POST]
func (h *Handler) CreateCriterion(ctx context.Context, c *app.RequestContext) {
	var req taai.CreateCriterionReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.GradingService.CreateCriterion(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateGrade .
// @router /api/grading/grades [POST]
func (h *Handler) CreateGrade(ctx context.Context, c *app.RequestContext) {
	var req taai.CreateGradeReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.GradingService.CreateGrade(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetGrade .
// @router /api/grading/grades/submission/:submission_id [GET]
func (h *Handler) GetGrade(ctx context.Context, c *app.RequestContext) {
	var req taai.GetGradeReq
	if !bind(c, &req) {
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := h.p.GradingService.GetGrade(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
