package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"taai-api/biz/adaptor/middleware"
	"taai-api/biz/application/service"
	"taai-api/biz/infrastructure/config"
	"taai-api/biz/infrastructure/consts"
	"taai-api/biz/infrastructure/repository/assignment"
	"taai-api/biz/infrastructure/repository/classroom"
	"taai-api/biz/infrastructure/repository/grading"
	"taai-api/biz/infrastructure/supabase"
	"taai-api/biz/infrastructure/supabase/supabasetest"
	"taai-api/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bearer = ut.Header{Key: consts.Authorization, Value: "Bearer token-1"}
var jsonType = ut.Header{Key: "Content-Type", Value: consts.ContentTypeJson}

func newTestServer(t *testing.T) (*server.Hertz, *supabasetest.Backend) {
	t.Helper()
	b := supabasetest.New()
	b.Unique(consts.TableGrades, consts.SubmissionID)

	c := &config.Config{}
	c.Storage.Bucket = "taai-files"
	c.Storage.Prefix = "uploads"

	p := &provider.Provider{
		Config:            c,
		AuthService:       &service.AuthService{Auth: b},
		ClassroomService:  &service.ClassroomService{ClassroomMapper: classroom.NewMapper(b)},
		AssignmentService: &service.AssignmentService{AssignmentMapper: assignment.NewMapper(b)},
		GradingService: &service.GradingService{
			CriterionMapper: grading.NewCriterionMapper(b),
			GradeMapper:     grading.NewGradeMapper(b),
		},
		FileService: &service.FileService{Config: c, Storage: b},
	}

	h := server.Default()
	h.Use(middleware.AccessLog(), middleware.CORS())
	customizedRegister(h, p)
	return h, b
}

func jsonBody(s string) *ut.Body {
	return &ut.Body{Body: bytes.NewBufferString(s), Len: len(s)}
}

type upload struct {
	body        *ut.Body
	contentType ut.Header
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) upload {
	t.Helper()
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return upload{
		body:        &ut.Body{Body: buf, Len: buf.Len()},
		contentType: ut.Header{Key: "Content-Type", Value: w.FormDataContentType()},
	}
}

func decode(t *testing.T, w *ut.ResponseRecorder) map[string]any {
	t.Helper()
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Result().Body(), &m), string(w.Result().Body()))
	return m
}

func detail(t *testing.T, w *ut.ResponseRecorder) string {
	t.Helper()
	m := decode(t, w)
	require.Len(t, m, 1)
	return m["detail"].(string)
}

func TestRouter_Probes(t *testing.T) {
	h, b := newTestServer(t)

	w := ut.PerformRequest(h.Engine, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode())
	assert.Equal(t, map[string]any{"message": "TAAI API is running"}, decode(t, w))

	w = ut.PerformRequest(h.Engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Result().StatusCode())
	assert.Equal(t, map[string]any{"status": "healthy"}, decode(t, w))

	w = ut.PerformRequest(h.Engine, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode())
	assert.Equal(t, "Not Found", detail(t, w))

	assert.Zero(t, b.Calls())
}

func TestRouter_PreflightFromAnyOrigin(t *testing.T) {
	h, b := newTestServer(t)
	for _, origin := range []string{"http://localhost:5173", "https://evil.example", "null"} {
		w := ut.PerformRequest(h.Engine, http.MethodOptions, "/api/grading/grades", nil,
			ut.Header{Key: "Origin", Value: origin},
			ut.Header{Key: "Access-Control-Request-Method", Value: http.MethodPost},
			ut.Header{Key: "Access-Control-Request-Headers", Value: "Authorization, Content-Type"},
		)
		resp := w.Result()
		assert.Equal(t, http.StatusOK, resp.StatusCode(), origin)
		assert.Equal(t, origin, resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
		assert.Equal(t, "Authorization, Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
	}
	assert.Zero(t, b.Calls())
}

func TestRouter_AuthorizationRequired(t *testing.T) {
	h, b := newTestServer(t)
	file := multipartBody(t, consts.FormFileField, "report.pdf", "application/pdf", []byte("%PDF"))

	cases := []struct {
		method string
		path   string
		body   *ut.Body
		header ut.Header
	}{
		{http.MethodGet, "/api/classrooms", nil, jsonType},
		{http.MethodGet, "/api/classrooms/", nil, jsonType},
		{http.MethodGet, "/api/classrooms/c1", nil, jsonType},
		{http.MethodGet, "/api/assignments/classroom/c1", nil, jsonType},
		{http.MethodGet, "/api/assignments/a1", nil, jsonType},
		{http.MethodPost, "/api/assignments/", jsonBody(`{"google_assignment_id":"g","classroom_id":"c1","title":"t"}`), jsonType},
		{http.MethodGet, "/api/grading/criteria/assignment/a1", nil, jsonType},
		{http.MethodPost, "/api/grading/criteria", jsonBody(`{"assignment_id":"a1","subtask_name":"s","description":"d","max_points":5}`), jsonType},
		{http.MethodPost, "/api/grading/grades", jsonBody(`{"submission_id":"s1","total_points":5,"final_score":5}`), jsonType},
		{http.MethodGet, "/api/grading/grades/submission/s1", nil, jsonType},
		{http.MethodPost, "/api/files/upload", file.body, file.contentType},
	}
	for _, tc := range cases {
		w := ut.PerformRequest(h.Engine, tc.method, tc.path, tc.body, tc.header)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode(), tc.path)
		assert.Equal(t, "Authorization header required", detail(t, w), tc.path)
	}
	assert.Zero(t, b.Calls())
}

func TestRouter_GetMissingIsNotFound(t *testing.T) {
	h, _ := newTestServer(t)
	cases := map[string]string{
		"/api/classrooms/missing":                "Classroom not found",
		"/api/assignments/missing":               "Assignment not found",
		"/api/grading/grades/submission/missing": "Grade not found",
	}
	for path, msg := range cases {
		w := ut.PerformRequest(h.Engine, http.MethodGet, path, nil, bearer)
		assert.Equal(t, http.StatusNotFound, w.Result().StatusCode(), path)
		assert.Equal(t, msg, detail(t, w))
	}
}

func TestRouter_CreateMissingFieldIsUnprocessable(t *testing.T) {
	h, b := newTestServer(t)
	cases := []struct {
		path string
		body string
		want string
	}{
		{"/api/assignments", `{"classroom_id":"c1","title":"t"}`, "google_assignment_id is required"},
		{"/api/grading/criteria", `{"assignment_id":"a1","subtask_name":"s","description":"d"}`, "max_points is required"},
		{"/api/grading/grades", `{"submission_id":"s1","total_points":5}`, "final_score is required"},
		{"/api/auth/google", `{}`, "credential is required"},
	}
	for _, tc := range cases {
		w := ut.PerformRequest(h.Engine, http.MethodPost, tc.path, jsonBody(tc.body), bearer, jsonType)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Result().StatusCode(), tc.path)
		assert.Equal(t, tc.want, detail(t, w))
	}

	w := ut.PerformRequest(h.Engine, http.MethodPost, "/api/grading/grades", jsonBody(`{"submission_id":`), bearer, jsonType)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Result().StatusCode())

	w = ut.PerformRequest(h.Engine, http.MethodPost, "/api/files/upload", nil, bearer)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Result().StatusCode())
	assert.Equal(t, "file is required", detail(t, w))

	assert.Zero(t, b.Calls())
}

func TestRouter_AssignmentRoundTrip(t *testing.T) {
	h, _ := newTestServer(t)

	for _, path := range []string{"/api/assignments", "/api/assignments/"} {
		w := ut.PerformRequest(h.Engine, http.MethodPost, path,
			jsonBody(`{"google_assignment_id":"ga-1","classroom_id":"c1","title":"Lab report"}`), bearer, jsonType)
		require.Equal(t, http.StatusOK, w.Result().StatusCode(), string(w.Result().Body()))
		created := decode(t, w)
		assert.Equal(t, 100.0, created["max_points"])
		assert.Nil(t, created["description"])

		w = ut.PerformRequest(h.Engine, http.MethodGet, "/api/assignments/"+created["id"].(string), nil, bearer)
		require.Equal(t, http.StatusOK, w.Result().StatusCode())
		assert.Equal(t, created, decode(t, w))
	}

	w := ut.PerformRequest(h.Engine, http.MethodGet, "/api/assignments/classroom/c1", nil, bearer)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Result().Body(), &list))
	assert.Len(t, list, 2)

	w = ut.PerformRequest(h.Engine, http.MethodGet, "/api/classrooms", nil, bearer)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	assert.Equal(t, "[]", string(w.Result().Body()))
}

func TestRouter_CriteriaOrderAndDuplicateGrade(t *testing.T) {
	h, _ := newTestServer(t)
	for _, body := range []string{
		`{"assignment_id":"a1","subtask_name":"c","description":"d","max_points":5,"order_index":2}`,
		`{"assignment_id":"a1","subtask_name":"a","description":"d","max_points":5}`,
		`{"assignment_id":"a1","subtask_name":"b","description":"d","max_points":5,"order_index":1}`,
	} {
		w := ut.PerformRequest(h.Engine, http.MethodPost, "/api/grading/criteria", jsonBody(body), bearer, jsonType)
		require.Equal(t, http.StatusOK, w.Result().StatusCode(), string(w.Result().Body()))
	}
	w := ut.PerformRequest(h.Engine, http.MethodGet, "/api/grading/criteria/assignment/a1", nil, bearer)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	var criteria []map[string]any
	require.NoError(t, json.Unmarshal(w.Result().Body(), &criteria))
	require.Len(t, criteria, 3)
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, name, criteria[i]["subtask_name"])
		assert.Equal(t, float64(i), criteria[i]["order_index"])
	}

	grade := `{"submission_id":"s1","total_points":8,"final_score":8}`
	w = ut.PerformRequest(h.Engine, http.MethodPost, "/api/grading/grades", jsonBody(grade), bearer, jsonType)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	assert.Equal(t, 0.0, decode(t, w)["late_penalty"])

	w = ut.PerformRequest(h.Engine, http.MethodPost, "/api/grading/grades", jsonBody(grade), bearer, jsonType)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode())
	assert.Equal(t, `duplicate key value violates unique constraint "grades_submission_id_key"`, detail(t, w))
}

func TestRouter_Upload(t *testing.T) {
	h, b := newTestServer(t)

	file := multipartBody(t, consts.FormFileField, "report.pdf", "application/pdf", []byte("%PDF-1.7"))
	w := ut.PerformRequest(h.Engine, http.MethodPost, "/api/files/upload", file.body, bearer, file.contentType)
	require.Equal(t, http.StatusOK, w.Result().StatusCode(), string(w.Result().Body()))
	assert.Equal(t, map[string]any{
		"file_url":  supabasetest.BaseURL + "/storage/v1/object/public/taai-files/uploads/report.pdf",
		"file_name": "report.pdf",
		"file_type": "application/pdf",
	}, decode(t, w))
	_, ok := b.Object("taai-files", "uploads/report.pdf")
	assert.True(t, ok)

	file = multipartBody(t, consts.FormFileField, "blob", "", []byte{0x0})
	w = ut.PerformRequest(h.Engine, http.MethodPost, "/api/files/upload", file.body, bearer, file.contentType)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	assert.Equal(t, consts.ContentTypeOctetStream, decode(t, w)["file_type"])
}

func TestRouter_Auth(t *testing.T) {
	h, b := newTestServer(t)
	b.AddSession("id-token", &supabase.Session{
		AccessToken: "access-1",
		User: supabase.User{
			ID: "u1", Email: "t@school.edu",
			UserMetadata: map[string]any{"full_name": "Ada", "avatar_url": "https://img/a.png"},
		},
	})

	w := ut.PerformRequest(h.Engine, http.MethodPost, "/api/auth/google", jsonBody(`{"credential":"id-token"}`), jsonType)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	assert.Equal(t, map[string]any{
		"access_token": "access-1",
		"user": map[string]any{
			"id": "u1", "email": "t@school.edu", "name": "Ada", "picture": "https://img/a.png",
		},
	}, decode(t, w))

	w = ut.PerformRequest(h.Engine, http.MethodPost, "/api/auth/google", jsonBody(`{"credential":"forged"}`), jsonType)
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())
	assert.Equal(t, "Bad ID token", detail(t, w))

	w = ut.PerformRequest(h.Engine, http.MethodPost, "/api/auth/logout", nil, bearer)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	assert.Equal(t, map[string]any{"message": "Logged out successfully"}, decode(t, w))
	assert.Equal(t, []string{"token-1"}, b.SignOuts())
}
