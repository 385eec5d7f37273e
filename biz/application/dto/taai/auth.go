package taai

type GoogleAuthReq struct {
	Credential *string `json:"credential"`
}

func (r *GoogleAuthReq) Check() error {
	return required("credential", r.Credential)
}

type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type AuthResp struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// Redact 日志中不出现 access_token
func (r *AuthResp) Redact() any {
	return struct {
		User *User `json:"user"`
	}{User: r.User}
}

type MessageResp struct {
	Message string `json:"message"`
}

type StatusResp struct {
	Status string `json:"status"`
}
