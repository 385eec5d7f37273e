package consts

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

func (en *Errno) Unwrap() error {
	return en.err
}

func (en *Errno) Code() codes.Code {
	return en.code
}

// HTTPStatus 错误类型到http状态码的映射
func (en *Errno) HTTPStatus() int {
	switch en.code {
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrAuthorizationRequired = NewErrno(codes.Unauthenticated, errors.New("Authorization header required"))
	ErrClassroomNotFound     = NewErrno(codes.NotFound, errors.New("Classroom not found"))
	ErrAssignmentNotFound    = NewErrno(codes.NotFound, errors.New("Assignment not found"))
	ErrGradeNotFound         = NewErrno(codes.NotFound, errors.New("Grade not found"))
)

// 数据库相关错误
var (
	ErrNotFound = NewErrno(codes.NotFound, errors.New("not found"))
)

// Unauthorized 身份交换失败, 透传上游错误信息
func Unauthorized(err error) *Errno {
	return NewErrno(codes.Unauthenticated, err)
}

// InvalidParams 请求体校验失败
func InvalidParams(err error) *Errno {
	return NewErrno(codes.InvalidArgument, err)
}

// FromBackend 后端调用失败统一转为 BadRequest, 已分类的错误原样返回
func FromBackend(err error) *Errno {
	var en *Errno
	if errors.As(err, &en) {
		return en
	}
	return NewErrno(codes.Unknown, err)
}

// HTTPStatus 未分类的错误按 BadRequest 处理
func HTTPStatus(err error) int {
	return FromBackend(err).HTTPStatus()
}
