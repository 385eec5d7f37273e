package service

import (
	"context"

	"taai-api/biz/adaptor"
	"taai-api/biz/application/dto/taai"
	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/supabase"
	"taai-api/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
)

type IAuthService interface {
	GoogleAuth(ctx context.Context, req *taai.GoogleAuthReq) (*taai.AuthResp, error)
	Logout(ctx context.Context) (*taai.MessageResp, error)
}

type AuthService struct {
	Auth supabase.Auth
}

var AuthServiceSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)

// userMetadata Google 登录时写入的资料
type userMetadata struct {
	FullName  string `mapstructure:"full_name"`
	AvatarURL string `mapstructure:"avatar_url"`
}

// GoogleAuth 用 Google ID token 换取会话, 任何失败都按未认证返回上游信息
func (s *AuthService) GoogleAuth(ctx context.Context, req *taai.GoogleAuthReq) (*taai.AuthResp, error) {
	session, err := s.Auth.SignInWithIDToken(ctx, consts.ProviderGoogle, *req.Credential)
	if err != nil {
		log.CtxError(ctx, "google sign in failed: %v", err)
		return nil, consts.Unauthorized(err)
	}

	var meta userMetadata
	if err = mapstructure.WeakDecode(session.User.UserMetadata, &meta); err != nil {
		log.CtxInfo(ctx, "decode user metadata of %s: %v", session.User.ID, err)
	}

	return &taai.AuthResp{
		AccessToken: session.AccessToken,
		User: &taai.User{
			ID:      session.User.ID,
			Email:   session.User.Email,
			Name:    meta.FullName,
			Picture: meta.AvatarURL,
		},
	}, nil
}

// Logout 注销调用方的会话, 没有携带令牌时直接确认
func (s *AuthService) Logout(ctx context.Context) (*taai.MessageResp, error) {
	token := adaptor.BearerToken(adaptor.ExtractAuthorization(ctx))
	if token != "" {
		if err := s.Auth.SignOut(ctx, token); err != nil {
			log.CtxError(ctx, "sign out failed: %v", err)
			return nil, consts.FromBackend(err)
		}
	}
	return &taai.MessageResp{Message: consts.LogoutMessage}, nil
}
