// Package user holds the domain records for user profiles and course
// enrollments. These records are storage- and transport-agnostic; the
// persistence layer owns their item representation.
package user

import "time"

// StudyPreferences describes how a user prefers to study. Both fields are
// optional; the struct is always written wholesale, never field-merged.
type StudyPreferences struct {
	PreferredTime  *string `json:"preferred_time,omitempty" dynamodbav:"preferred_time,omitempty"`
	PreferredStyle *string `json:"preferred_style,omitempty" dynamodbav:"preferred_style,omitempty"`
}

// PrivacySettings controls what a user's public profile exposes.
type PrivacySettings struct {
	ShowCourses bool `json:"show_courses" dynamodbav:"show_courses"`
}

// DefaultPrivacySettings returns the privacy settings applied to a freshly
// created profile.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{ShowCourses: true}
}

// Profile is the per-user profile record. Exactly one exists per user id;
// CreatedAt is set once at creation and never mutated.
type Profile struct {
	UserID           string            `json:"user_id" dynamodbav:"user_id"`
	Email            string            `json:"email" dynamodbav:"email"`
	Name             *string           `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Interests        []string          `json:"interests" dynamodbav:"interests"`
	StudyPreferences *StudyPreferences `json:"study_preferences,omitempty" dynamodbav:"study_preferences,omitempty"`
	Privacy          PrivacySettings   `json:"privacy" dynamodbav:"privacy"`
	CreatedAt        time.Time         `json:"created_at" dynamodbav:"created_at"`
}

// NewDefaultProfile builds the profile created in response to a
// registration event: no name, no interests, no study preferences,
// courses visible.
func NewDefaultProfile(userID, email string) Profile {
	return Profile{
		UserID:    userID,
		Email:     email,
		Interests: []string{},
		Privacy:   DefaultPrivacySettings(),
		CreatedAt: time.Now().UTC(),
	}
}

// UpdateProfileRequest is a partial update: nil fields are left untouched,
// present fields replace the stored value wholesale.
type UpdateProfileRequest struct {
	Name             *string           `json:"name,omitempty" validate:"omitempty,max=100"`
	Interests        *[]string         `json:"interests,omitempty" validate:"omitempty,max=50,dive,min=1,max=100"`
	StudyPreferences *StudyPreferences `json:"study_preferences,omitempty"`
}

// IsEmpty reports whether the request carries no fields at all. Callers
// must skip the backend write entirely for empty requests.
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.Interests == nil && r.StudyPreferences == nil
}
