package taai

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

type ListAssignmentsReq struct {
	ClassroomID string `path:"classroom_id"`
}

type GetAssignmentReq struct {
	AssignmentID string `path:"assignment_id"`
}

// CreateAssignmentReq max_points 缺省为 100
type CreateAssignmentReq struct {
	GoogleAssignmentID *string  `json:"google_assignment_id"`
	ClassroomID        *string  `json:"classroom_id"`
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	MaxPoints          *float64 `json:"max_points"`
	DueDate            *string  `json:"due_date"`
}

func (r *CreateAssignmentReq) Check() error {
	return required(
		"google_assignment_id", r.GoogleAssignmentID,
		"classroom_id", r.ClassroomID,
		"title", r.Title,
	)
}
