package middleware

import (
	"context"
	"time"

	"taai-api/biz/adaptor"
	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// AccessLog 补全请求 id 并记录每个请求的结果
func AccessLog() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		requestID := string(c.GetHeader(consts.RequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(consts.RequestID, requestID)

		c.Next(ctx)

		traceID := ""
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}
		log.CtxInfo(ctx, "access method=%s path=%s status=%d latency=%s request_id=%s trace_id=%s sub=%s",
			c.Method(), c.Path(), c.Response.StatusCode(), time.Since(start), requestID, traceID,
			adaptor.Subject(string(c.GetHeader(consts.Authorization))))
	}
}
