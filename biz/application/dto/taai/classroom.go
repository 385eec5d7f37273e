package taai

type Classroom struct {
	ID             string  `json:"id"`
	GoogleCourseID string  `json:"google_course_id"`
	Name           string  `json:"name"`
	Section        *string `json:"section"`
	Description    *string `json:"description"`
	OwnerID        string  `json:"owner_id"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type GetClassroomReq struct {
	ClassroomID string `path:"classroom_id"`
}
