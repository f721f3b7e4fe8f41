package user

import (
	"strings"
	"time"
)

// Enrollment records that a user added a course. AddedAt is reset on every
// successful add; removing and re-adding a course creates a fresh record.
type Enrollment struct {
	CourseID string    `json:"course_id" dynamodbav:"course_id"`
	AddedAt  time.Time `json:"added_at" dynamodbav:"added_at"`
}

// NormalizeCourseID canonicalizes a course identifier: trims surrounding
// whitespace, upper-cases, and removes interior spaces. " cs 101 ",
// "cs101" and "CS 101" all normalize to "CS101". Normalization is a fixed
// point, so applying it twice is safe.
//
// The normalized form is the uniqueness key for enrollment and is applied
// on both add and remove so lookups always match the stored sort key.
func NormalizeCourseID(courseID string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(courseID)), " ", "")
}
