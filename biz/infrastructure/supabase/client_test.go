package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taai-api/biz/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID         string `json:"id"`
	OrderIndex int    `json:"order_index"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(c *config.Config)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := &config.Config{}
	c.Supabase = config.Supabase{URL: srv.URL + "/", AnonKey: "anon-key", Timeout: 2 * time.Second}
	for _, m := range mutate {
		m(c)
	}
	cli, err := NewClient(c)
	require.NoError(t, err)
	return cli
}

func TestSelect_EncodesFiltersAndOrder(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/grading_criteria", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "eq.a-1", r.URL.Query().Get("assignment_id"))
		assert.Equal(t, "order_index.asc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":"c1","order_index":0},{"id":"c2","order_index":1}]`)
	})

	var rows []*row
	err := cli.Select(context.Background(), From("grading_criteria").Eq("assignment_id", "a-1").Order("order_index", true), &rows)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c2", rows[1].ID)
}

func TestSelect_ForwardsUserToken(t *testing.T) {
	var got string
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `[]`)
	}, func(c *config.Config) { c.Supabase.ForwardUserToken = true })

	var rows []*row
	ctx := WithAccessToken(context.Background(), "user-jwt")
	require.NoError(t, cli.Select(ctx, From("assignments"), &rows))
	assert.Equal(t, "Bearer user-jwt", got)
	assert.Empty(t, rows)
}

func TestSelect_PostgrestErrorPassesMessageThrough(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"code":"22P02","details":null,"hint":null,"message":"invalid input syntax for type uuid: \"nope\""}`)
	})

	var rows []*row
	err := cli.Select(context.Background(), From("assignments").Eq("id", "nope"), &rows)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, `invalid input syntax for type uuid: "nope"`, err.Error())
}

func TestSelect_Timeout(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = io.WriteString(w, `[]`)
	}, func(c *config.Config) { c.Supabase.Timeout = 50 * time.Millisecond })

	var rows []*row
	err := cli.Select(context.Background(), From("assignments"), &rows)
	assert.Error(t, err)
}

func TestInsert_ReturnsRepresentation(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/assignments", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(3), body["order_index"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `[{"id":"new-id","order_index":3}]`)
	})

	var rows []*row
	err := cli.Insert(context.Background(), "assignments", &row{OrderIndex: 3}, &rows)
	require.NoError(t, err)
	first, err := First("assignments", rows)
	require.NoError(t, err)
	assert.Equal(t, "new-id", first.ID)
}

func TestSignInWithIDToken(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "id_token", r.URL.Query().Get("grant_type"))
		var grant idTokenGrant
		require.NoError(t, json.NewDecoder(r.Body).Decode(&grant))
		if grant.IDToken != "good" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"code":400,"error_code":"bad_jwt","msg":"Bad ID token"}`)
			return
		}
		assert.Equal(t, "google", grant.Provider)
		_, _ = io.WriteString(w, `{"access_token":"at","token_type":"bearer","expires_in":3600,"refresh_token":"rt",
			"user":{"id":"u1","email":"t@example.com","user_metadata":{"full_name":"Teacher"}}}`)
	})

	s, err := cli.SignInWithIDToken(context.Background(), "google", "good")
	require.NoError(t, err)
	assert.Equal(t, "at", s.AccessToken)
	assert.Equal(t, "u1", s.User.ID)
	assert.Equal(t, "Teacher", s.User.UserMetadata["full_name"])

	_, err = cli.SignInWithIDToken(context.Background(), "google", "bad")
	assert.EqualError(t, err, "Bad ID token")
}

func TestSignInWithIDToken_RejectsEmptySession(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"user":{"id":"u1"}}`)
	})
	_, err := cli.SignInWithIDToken(context.Background(), "google", "token")
	assert.Error(t, err)
}

func TestSignOut_SendsUserToken(t *testing.T) {
	var got string
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, cli.SignOut(context.Background(), "user-jwt"))
	assert.Equal(t, "Bearer user-jwt", got)
}

func TestRestStorage_UploadAndPublicURL(t *testing.T) {
	var (
		gotPath string
		gotType string
		gotBody []byte
	)
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{"Key":"taai-files/uploads/my report.pdf"}`)
	})
	s := &RestStorage{client: cli}

	err := s.Upload(context.Background(), "taai-files", "uploads/my report.pdf", []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/taai-files/uploads/my%20report.pdf", gotPath)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, []byte("%PDF"), gotBody)
	assert.Equal(t, cli.baseURL+"/storage/v1/object/public/taai-files/uploads/my report.pdf",
		s.PublicURL("taai-files", "uploads/my report.pdf"))
}

func TestRestStorage_DuplicateObject(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`)
	})
	s := &RestStorage{client: cli}
	err := s.Upload(context.Background(), "taai-files", "uploads/a.txt", []byte("a"), "text/plain")
	assert.EqualError(t, err, "The resource already exists")
}

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "postgrest", status: 409, body: `{"message":"duplicate key"}`, want: "duplicate key"},
		{name: "gotrue msg", status: 400, body: `{"msg":"Unsupported provider"}`, want: "Unsupported provider"},
		{name: "gotrue oauth", status: 400, body: `{"error":"invalid_grant","error_description":"Invalid token"}`, want: "Invalid token"},
		{name: "plain text", status: 502, body: "bad gateway\n", want: "bad gateway"},
		{name: "empty", status: 503, body: "", want: "Service Unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newAPIError(tt.status, []byte(tt.body)).Error())
		})
	}
}

func TestMaybeSingle(t *testing.T) {
	_, err := MaybeSingle([]int{})
	assert.ErrorIs(t, err, ErrNoRows)

	v, err := MaybeSingle([]int{7})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = MaybeSingle([]int{1, 2})
	assert.ErrorIs(t, err, ErrMultipleRows)
}

func TestRequire(t *testing.T) {
	assert.NoError(t, Require("id", "x", "name", "y"))
	assert.EqualError(t, Require("id", "x", "owner_id", ""), `missing required field "owner_id"`)
}
