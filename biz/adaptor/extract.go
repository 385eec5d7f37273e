package adaptor

import (
	"context"
	"errors"
	"strings"

	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/supabase"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cast"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractAuthorization 原样返回 Authorization 头
func ExtractAuthorization(ctx context.Context) string {
	c, err := ExtractContext(ctx)
	if err != nil {
		return ""
	}
	return string(c.GetHeader(consts.Authorization))
}

// BearerToken 去掉 Bearer 前缀, 没有前缀时原样返回
func BearerToken(authorization string) string {
	if len(authorization) >= len(consts.BearerPrefix) &&
		strings.EqualFold(authorization[:len(consts.BearerPrefix)], consts.BearerPrefix) {
		return strings.TrimSpace(authorization[len(consts.BearerPrefix):])
	}
	return strings.TrimSpace(authorization)
}

// Authorize 只检查 Authorization 头是否存在, 令牌的真伪由后端的行级策略判断
func Authorize(ctx context.Context) (context.Context, error) {
	authorization := ExtractAuthorization(ctx)
	if authorization == "" {
		return ctx, consts.ErrAuthorizationRequired
	}
	return supabase.WithAccessToken(ctx, BearerToken(authorization)), nil
}

// Subject 读取令牌中的 sub, 不校验签名, 只用于日志
func Subject(authorization string) string {
	token := BearerToken(authorization)
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	return cast.ToString(claims["sub"])
}
