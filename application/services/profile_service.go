// Package services contains the application layer coordinating
// repositories, events and privacy rules on behalf of the handlers.
package services

import (
	"context"
	"sync"

	"korabo/application/ports"
	"korabo/domain/events"
	"korabo/domain/user"
	apperrors "korabo/pkg/errors"

	"go.uber.org/zap"
)

// PublicProfile is the privacy-filtered view served to other users.
// Email is never included; Courses is nil when the owner hides them.
type PublicProfile struct {
	UserID           string                 `json:"user_id"`
	Name             *string                `json:"name,omitempty"`
	Interests        []string               `json:"interests"`
	StudyPreferences *user.StudyPreferences `json:"study_preferences,omitempty"`
	Courses          []string               `json:"courses,omitempty"`
}

// ProfileService coordinates profile and enrollment operations
type ProfileService struct {
	repo     ports.ProfileRepository
	eventBus ports.EventBus
	logger   *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(repo ports.ProfileRepository, eventBus ports.EventBus, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// GetOwnProfile returns the caller's profile, or nil when registration
// has not materialized it yet.
func (s *ProfileService) GetOwnProfile(ctx context.Context, userID string) (*user.Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's profile
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) error {
	return s.repo.UpdateProfile(ctx, userID, req)
}

// GetCourses returns the caller's enrolled course ids
func (s *ProfileService) GetCourses(ctx context.Context, userID string) ([]string, error) {
	return s.repo.GetCourses(ctx, userID)
}

// AddCourse enrolls the caller in a course and announces the enrollment.
// A publish failure is logged but does not undo or fail the enrollment;
// the write is already durable.
func (s *ProfileService) AddCourse(ctx context.Context, userID, courseID string) error {
	if err := s.repo.AddCourse(ctx, userID, courseID); err != nil {
		return err
	}

	normalized := user.NormalizeCourseID(courseID)
	if err := s.eventBus.Publish(ctx, events.NewCourseAdded(userID, normalized)); err != nil {
		s.logger.Error("Failed to publish course added event",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("courseID", normalized),
		)
	}

	return nil
}

// RemoveCourse drops one of the caller's enrollments
func (s *ProfileService) RemoveCourse(ctx context.Context, userID, courseID string) error {
	return s.repo.RemoveCourse(ctx, userID, courseID)
}

// GetPublicProfile assembles another user's profile view. Profile and
// courses are fetched concurrently; the courses fetch is skipped from the
// result when the owner's privacy settings hide them.
func (s *ProfileService) GetPublicProfile(ctx context.Context, userID string) (*PublicProfile, error) {
	var (
		wg         sync.WaitGroup
		profile    *user.Profile
		courses    []string
		profileErr error
		coursesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profileErr = s.repo.GetProfile(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		courses, coursesErr = s.repo.GetCourses(ctx, userID)
	}()
	wg.Wait()

	if profileErr != nil {
		return nil, profileErr
	}
	if profile == nil {
		return nil, apperrors.NewNotFoundError("profile")
	}
	if coursesErr != nil {
		return nil, coursesErr
	}

	public := &PublicProfile{
		UserID:           profile.UserID,
		Name:             profile.Name,
		Interests:        profile.Interests,
		StudyPreferences: profile.StudyPreferences,
	}
	if profile.Privacy.ShowCourses {
		public.Courses = courses
	}

	return public, nil
}
