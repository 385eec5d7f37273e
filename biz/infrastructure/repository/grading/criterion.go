package grading

// Criterion 作业下的评分细则, 按 OrderIndex 升序展示
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

func (c *Criterion) Required() []string {
	return []string{
		"id",
		"assignment_id",
		"subtask_name",
		"description",
		"max_points",
		"order_index",
		"is_ai_generated",
		"created_at",
		"updated_at",
	}
}

type NewCriterion struct {
	AssignmentID  string  `json:"assignment_id"`
	SubtaskName   string  `json:"subtask_name"`
	Description   string  `json:"description"`
	MaxPoints     float64 `json:"max_points"`
	OrderIndex    int     `json:"order_index"`
	IsAIGenerated bool    `json:"is_ai_generated"`
}
