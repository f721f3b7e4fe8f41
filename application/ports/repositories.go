package ports

import (
	"context"

	"korabo/domain/events"
	"korabo/domain/user"
)

// ProfileRepository defines the interface for profile and enrollment
// persistence. This is a port; the domain does not know about DynamoDB.
//
// Implementations never retry: backend failures surface as Database
// errors, undecodable items as Serialization errors, and failed
// existence preconditions as ConditionalCheck errors (see pkg/errors).
type ProfileRepository interface {
	// CreateDefaultProfile writes the default profile for a newly
	// registered user. Fails with a ConditionalCheck error if the user
	// already has a profile; idempotent callers swallow that failure.
	CreateDefaultProfile(ctx context.Context, userID, email string) error

	// GetProfile returns the user's profile, or nil when none exists.
	// Absence is not an error: it is the transient state between
	// registration and profile materialization.
	GetProfile(ctx context.Context, userID string) (*user.Profile, error)

	// GetCourses returns the user's normalized course ids in store order.
	GetCourses(ctx context.Context, userID string) ([]string, error)

	// UpdateProfile applies a partial update. An empty request succeeds
	// without touching the backend. Fails with a ConditionalCheck error
	// when the user has no profile yet.
	UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) error

	// AddCourse enrolls the user in the normalized course id. Fails with
	// a ConditionalCheck error when the enrollment already exists.
	AddCourse(ctx context.Context, userID, courseID string) error

	// RemoveCourse deletes the enrollment for the normalized course id.
	// Fails with a ConditionalCheck error when no such enrollment exists.
	RemoveCourse(ctx context.Context, userID, courseID string) error
}

// EventBus publishes domain events to the message bus
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
