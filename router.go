package main

import (
	"context"
	"net/http"

	handler "taai-api/biz/adaptor/controller"
	"taai-api/biz/adaptor/controller/api"
	"taai-api/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz, p *provider.Provider) {
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	r.NoRoute(handler.NotFound)

	// 预检请求由 CORS 中间件应答, 这里只保证能匹配到路由
	r.OPTIONS("/*path", func(ctx context.Context, c *app.RequestContext) {
		c.Status(http.StatusNoContent)
	})

	h := api.NewHandler(p)
	root := r.Group("/api")
	{
		auth := root.Group("/auth")
		auth.POST("/google", h.GoogleAuth)
		auth.POST("/logout", h.Logout)
	}
	{
		classrooms := root.Group("/classrooms")
		classrooms.GET("", h.ListClassrooms)
		classrooms.GET("/", h.ListClassrooms)
		classrooms.GET("/:classroom_id", h.GetClassroom)
	}
	{
		assignments := root.Group("/assignments")
		assignments.GET("/classroom/:classroom_id", h.ListAssignments)
		assignments.GET("/:assignment_id", h.GetAssignment)
		assignments.POST("", h.CreateAssignment)
		assignments.POST("/", h.CreateAssignment)
	}
	{
		grading := root.Group("/grading")
		grading.GET("/criteria/assignment/:assignment_id", h.ListCriteria)
		grading.POST("/criteria", h.CreateCriterion)
		grading.POST("/grades", h.CreateGrade)
		grading.GET("/grades/submission/:submission_id", h.GetGrade)
	}
	{
		files := root.Group("/files")
		files.POST("/upload", h.Upload)
	}
}
