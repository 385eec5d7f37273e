package middleware

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
)

// CORS 允许任意来源携带凭证访问, 预检请求直接返回 200
func CORS() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		origin := string(c.GetHeader("Origin"))
		if origin == "" {
			c.Next(ctx)
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")

		method := string(c.GetHeader("Access-Control-Request-Method"))
		if string(c.Method()) != http.MethodOptions || method == "" {
			c.Next(ctx)
			return
		}

		c.Header("Access-Control-Allow-Methods", "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT")
		if headers := c.GetHeader("Access-Control-Request-Headers"); len(headers) > 0 {
			c.Header("Access-Control-Allow-Headers", string(headers))
		}
		c.Header("Access-Control-Max-Age", "600")
		c.AbortWithStatus(http.StatusOK)
	}
}
