package classroom

// Classroom 同步自 Google Classroom 的课程, 本服务只读
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

// Required 可为空的列不在其中
func (c *Classroom) Required() []string {
	return []string{
		"id",
		"google_course_id",
		"name",
		"owner_id",
		"created_at",
		"updated_at",
	}
}
