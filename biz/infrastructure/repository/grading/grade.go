package grading

// Grade 每个提交至多一条, 唯一性由数据库约束保证
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

func (g *Grade) Required() []string {
	return []string{
		"id",
		"submission_id",
		"total_points",
		"late_penalty",
		"final_score",
		"is_ai_generated",
		"graded_at",
		"updated_at",
	}
}

type NewGrade struct {
	SubmissionID  string  `json:"submission_id"`
	TotalPoints   float64 `json:"total_points"`
	LatePenalty   float64 `json:"late_penalty"`
	FinalScore    float64 `json:"final_score"`
	Feedback      *string `json:"feedback"`
	IsAIGenerated bool    `json:"is_ai_generated"`
}
