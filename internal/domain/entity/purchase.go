package entity

import "time"

// Purchase records that a user bought a course. CourseID is stored as the
// client sent it and may not resolve to an existing course.
type Purchase struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}
