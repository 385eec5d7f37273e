package assignment

type Assignment struct {
	ID                 string  `json:"id"`
	GoogleAssignmentID string  `json:"google_assignment_id"`
	ClassroomID        string  `json:"classroom_id"`
	CreatorID          *string `json:"creator_id"`
	Title              string  `json:"title"`
	Description        *string `json:"description"`
	MaxPoints          float64 `json:"max_points"`
	DueDate            *string `json:"due_date"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

func (a *Assignment) Required() []string {
	return []string{
		"id",
		"google_assignment_id",
		"classroom_id",
		"title",
		"max_points",
		"created_at",
		"updated_at",
	}
}

// NewAssignment 插入时写入的列, 其余由数据库生成
type NewAssignment struct {
	GoogleAssignmentID string  `json:"google_assignment_id"`
	ClassroomID        string  `json:"classroom_id"`
	Title              string  `json:"title"`
	Description        *string `json:"description"`
	MaxPoints          float64 `json:"max_points"`
	DueDate            *string `json:"due_date"`
}
