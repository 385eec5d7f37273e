package supabase

import "context"

type accessTokenKey struct{}

// WithAccessToken 记录调用方的 access token, 仅在 ForwardUserToken 打开时使用
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

func AccessTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}
