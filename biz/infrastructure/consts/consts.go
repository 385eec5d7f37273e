package consts

// 数据库相关
const (
	ID                   = "id"
	TableClassrooms      = "google_classrooms"
	TableAssignments     = "assignments"
	TableGradingCriteria = "grading_criteria"
	TableGrades          = "grades"
	ClassroomID          = "classroom_id"
	AssignmentID         = "assignment_id"
	SubmissionID         = "submission_id"
	OrderIndex           = "order_index"
)

// http
const (
	Authorization          = "Authorization"
	BearerPrefix           = "Bearer "
	RequestID              = "X-Request-Id"
	ContentTypeJson        = "application/json"
	ContentTypeOctetStream = "application/octet-stream"
	FormFileField          = "file"
)

// 默认值
const (
	ProviderGoogle     = "google"
	DefaultMaxPoints   = 100.0
	DefaultLatePenalty = 0.0
	DefaultOrderIndex  = 0
	LogoutMessage      = "Logged out successfully"
	RootMessage        = "TAAI API is running"
	HealthStatus       = "healthy"
)
