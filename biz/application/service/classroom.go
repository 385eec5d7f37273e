package service

import (
	"context"
	"errors"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"
	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/repository/classroom"
	"taai-api/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IClassroomService interface {
	ListClassrooms(ctx context.Context) ([]*taai.Classroom, error)
	GetClassroom(ctx context.Context, req *taai.GetClassroomReq) (*taai.Classroom, error)
}

type ClassroomService struct {
	ClassroomMapper classroom.IMapper
}

var ClassroomServiceSet = wire.NewSet(
	wire.Struct(new(ClassroomService), "*"),
	wire.Bind(new(IClassroomService), new(*ClassroomService)),
)

// ListClassrooms 可见范围由后端的行级策略决定
func (s *ClassroomService) ListClassrooms(ctx context.Context) ([]*taai.Classroom, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.ClassroomMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "list classrooms failed: %v", err)
		return nil, consts.FromBackend(err)
	}
	return projectAll[taai.Classroom](rows)
}

func (s *ClassroomService) GetClassroom(ctx context.Context, req *taai.GetClassroomReq) (*taai.Classroom, error) {
	ctx, err := adaptor.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.ClassroomMapper.FindOne(ctx, req.ClassroomID)
	switch {
	case errors.Is(err, consts.ErrNotFound):
		return nil, consts.ErrClassroomNotFound
	case err != nil:
		log.CtxError(ctx, "get classroom %s failed: %v", req.ClassroomID, err)
		return nil, consts.FromBackend(err)
	}
	return project[taai.Classroom](c)
}
