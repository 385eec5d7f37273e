package controller

import (
	"context"
	"errors"
	"net/http"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"
	"taai-api/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
)

// Root .
// @router / [GET]
func Root(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, &taai.MessageResp{Message: consts.RootMessage})
}

// Health 不检查后端是否可达
// @router /health [GET]
func Health(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, &taai.StatusResp{Status: consts.HealthStatus})
}

func NotFound(ctx context.Context, c *app.RequestContext) {
	adaptor.ReturnError(c, http.StatusNotFound, errors.New("Not Found"))
}
