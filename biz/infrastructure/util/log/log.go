package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// 统一日志出口, 底层使用 go-zero logx, 带 ctx 的方法会附带 trace/span id

func Info(format string, v ...any) {
	logx.Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.Errorf(format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Errorf(format, v...)
}
