package service

import (
	"context"
	"errors"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"
	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/repository/assignment"
	"taai-api/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IAssignmentService interface {
	ListAssignments(ctx context.Context, req *taai.ListAssignmentsReq) ([]*taai.Assignment, error)
	GetAssignment(ctx context.Context, req *taai.GetAssignmentReq) (*taai.Assignment, error)
	CreateAssignment(ctx context.Context, req *taai.CreateAssignmentReq) (*taai.Assignment, error)
}

type AssignmentService struct {
	AssignmentMapper assignment.IMapper
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

func (s *AssignmentService) ListAssignments(ctx context.Context, req *taai.ListAssignmentsReq) ([]*taai.Assignment, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.AssignmentMapper.FindByClassroomID(ctx, req.ClassroomID)
	if err != nil {
		log.CtxError(ctx, "list assignments of classroom %s failed: %v", req.ClassroomID, err)
		return nil, consts.FromBackend(err)
	}
	return projectAll[taai.Assignment](rows)
}

func (s *AssignmentService) GetAssignment(ctx context.Context, req *taai.GetAssignmentReq) (*taai.Assignment, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentID)
	switch {
	case errors.Is(err, consts.ErrNotFound):
		return nil, consts.ErrAssignmentNotFound
	case err != nil:
		log.CtxError(ctx, "get assignment %s failed: %v", req.AssignmentID, err)
		return nil, consts.FromBackend(err)
	}
	return project[taai.Assignment](a)
}

// CreateAssignment 外键是否存在由数据库判断
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *taai.CreateAssignmentReq) (*taai.Assignment, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	created, err := s.AssignmentMapper.Insert(ctx, &assignment.NewAssignment{
		GoogleAssignmentID: lo.FromPtr(req.GoogleAssignmentID),
		ClassroomID:        lo.FromPtr(req.ClassroomID),
		Title:              lo.FromPtr(req.Title),
		Description:        req.Description,
		MaxPoints:          lo.FromPtrOr(req.MaxPoints, consts.DefaultMaxPoints),
		DueDate:            req.DueDate,
	})
	if err != nil {
		log.CtxError(ctx, "create assignment failed: %v", err)
		return nil, consts.FromBackend(err)
	}
	return project[taai.Assignment](created)
}
