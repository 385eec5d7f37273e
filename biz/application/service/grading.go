package service

import (
	"context"
	"errors"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"
	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/repository/grading"
	"taai-api/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IGradingService interface {
	ListCriteria(ctx context.Context, req *taai.ListCriteriaReq) ([]*taai.Criterion, error)
	CreateCriterion(ctx context.Context, req *taai.CreateCriterionReq) (*taai.Criterion, error)
	CreateGrade(ctx context.Context, req *taai.CreateGradeReq) (*taai.Grade, error)
	GetGrade(ctx context.Context, req *taai.GetGradeReq) (*taai.Grade, error)
}

type GradingService struct {
	CriterionMapper grading.ICriterionMapper
	GradeMapper     grading.IGradeMapper
}

var GradingServiceSet = wire.NewSet(
	wire.Struct(new(GradingService), "*"),
	wire.Bind(new(IGradingService), new(*GradingService)),
)

// ListCriteria 按 order_index 升序
func (s *GradingService) ListCriteria(ctx context.Context, req *taai.ListCriteriaReq) ([]*taai.Criterion, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.CriterionMapper.FindByAssignmentID(ctx, req.AssignmentID)
	if err != nil {
		log.CtxError(ctx, "list criteria of assignment %s failed: %v", req.AssignmentID, err)
		return nil, consts.FromBackend(err)
	}
	return projectAll[taai.Criterion](rows)
}

func (s *GradingService) CreateCriterion(ctx context.Context, req *taai.CreateCriterionReq) (*taai.Criterion, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	created, err := s.CriterionMapper.Insert(ctx, &grading.NewCriterion{
		AssignmentID:  lo.FromPtr(req.AssignmentID),
		SubtaskName:   lo.FromPtr(req.SubtaskName),
		Description:   lo.FromPtr(req.Description),
		MaxPoints:     lo.FromPtr(req.MaxPoints),
		OrderIndex:    lo.FromPtrOr(req.OrderIndex, consts.DefaultOrderIndex),
		IsAIGenerated: lo.FromPtr(req.IsAIGenerated),
	})
	if err != nil {
		log.CtxError(ctx, "create criterion failed: %v", err)
		return nil, consts.FromBackend(err)
	}
	return project[taai.Criterion](created)
}

// CreateGrade 同一提交重复评分由数据库唯一约束拒绝
func (s *GradingService) CreateGrade(ctx context.Context, req *taai.CreateGradeReq) (*taai.Grade, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	created, err := s.GradeMapper.Insert(ctx, &grading.NewGrade{
		SubmissionID:  lo.FromPtr(req.SubmissionID),
		TotalPoints:   lo.FromPtr(req.TotalPoints),
		LatePenalty:   lo.FromPtrOr(req.LatePenalty, consts.DefaultLatePenalty),
		FinalScore:    lo.FromPtr(req.FinalScore),
		Feedback:      req.Feedback,
		IsAIGenerated: lo.FromPtr(req.IsAIGenerated),
	})
	if err != nil {
		log.CtxError(ctx, "create grade failed: %v", err)
		return nil, consts.FromBackend(err)
	}
	return project[taai.Grade](created)
}

func (s *GradingService) GetGrade(ctx context.Context, req *taai.GetGradeReq) (*taai.Grade, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.GradeMapper.FindBySubmissionID(ctx, req.SubmissionID)
	switch {
	case errors.Is(err, consts.ErrNotFound):
		return nil, consts.ErrGradeNotFound
	case err != nil:
		log.CtxError(ctx, "get grade of submission %s failed: %v", req.SubmissionID, err)
		return nil, consts.FromBackend(err)
	}
	return project[taai.Grade](g)
}
