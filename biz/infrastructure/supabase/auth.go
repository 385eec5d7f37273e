package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"taai-api/biz/infrastructure/consts"
)

// Auth 身份服务接口
type Auth interface {
	SignInWithIDToken(ctx context.Context, provider, idToken string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

func (s *Session) Check() error {
	if s.AccessToken == "" {
		return errors.New("auth service returned a session without access token")
	}
	return Require("user.id", s.User.ID)
}

type idTokenGrant struct {
	Provider string `json:"provider"`
	IDToken  string `json:"id_token"`
}

// SignInWithIDToken 用第三方 ID token 换取会话
func (c *Client) SignInWithIDToken(ctx context.Context, provider, idToken string) (*Session, error) {
	payload, err := json.Marshal(&idTokenGrant{Provider: provider, IDToken: idToken})
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, &request{
		method:      http.MethodPost,
		uri:         c.url(authPath, "/token?grant_type=id_token"),
		contentType: consts.ContentTypeJson,
		body:        payload,
	})
	if err != nil {
		return nil, err
	}
	session := new(Session)
	if err = json.Unmarshal(body, session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if err = session.Check(); err != nil {
		return nil, err
	}
	return session, nil
}

// SignOut 注销 accessToken 对应的会话
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.do(ctx, &request{
		method: http.MethodPost,
		uri:    c.url(authPath, "/logout"),
		header: map[string]string{consts.Authorization: consts.BearerPrefix + accessToken},
	})
	return err
}
