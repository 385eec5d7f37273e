package taai

type Criterion struct {
	ID            string  `json:"id"`
	AssignmentID  string  `json:"assignment_id"`
	CreatedBy     *string `json:"created_by"`
	SubtaskName   string  `json:"subtask_name"`
	Description   string  `json:"description"`
	MaxPoints     float64 `json:"max_points"`
	OrderIndex    int     `json:"order_index"`
	IsAIGenerated bool    `json:"is_ai_generated"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ListCriteriaReq struct {
	AssignmentID string `path:"assignment_id"`
}

type CreateCriterionReq struct {
	AssignmentID  *string  `json:"assignment_id"`
	SubtaskName   *string  `json:"subtask_name"`
	Description   *string  `json:"description"`
	MaxPoints     *float64 `json:"max_points"`
	OrderIndex    *int     `json:"order_index"`
	IsAIGenerated *bool    `json:"is_ai_generated"`
}

func (r *CreateCriterionReq) Check() error {
	return required(
		"assignment_id", r.AssignmentID,
		"subtask_name", r.SubtaskName,
		"description", r.Description,
		"max_points", r.MaxPoints,
	)
}

type Grade struct {
	ID            string  `json:"id"`
	SubmissionID  string  `json:"submission_id"`
	GradedBy      *string `json:"graded_by"`
	TotalPoints   float64 `json:"total_points"`
	LatePenalty   float64 `json:"late_penalty"`
	FinalScore    float64 `json:"final_score"`
	Feedback      *string `json:"feedback"`
	IsAIGenerated bool    `json:"is_ai_generated"`
	GradedAt      string  `json:"graded_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type GetGradeReq struct {
	SubmissionID string `path:"submission_id"`
}

type CreateGradeReq struct {
	SubmissionID  *string  `json:"submission_id"`
	TotalPoints   *float64 `json:"total_points"`
	LatePenalty   *float64 `json:"late_penalty"`
	FinalScore    *float64 `json:"final_score"`
	Feedback      *string  `json:"feedback"`
	IsAIGenerated *bool    `json:"is_ai_generated"`
}

func (r *CreateGradeReq) Check() error {
	return required(
		"submission_id", r.SubmissionID,
		"total_points", r.TotalPoints,
		"final_score", r.FinalScore,
	)
}
