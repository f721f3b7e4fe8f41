// Package events defines the domain events this service publishes.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies this service on the event bus.
const Source = "korabo.user"

// DomainEvent is the base interface for all published events
type DomainEvent interface {
	GetEventID() string
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetEventID() string      { return e.EventID }
func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// CourseAdded is raised after a course enrollment is committed
type CourseAdded struct {
	BaseEvent
	UserID   string `json:"user_id"`
	CourseID string `json:"course_id"`
}

// NewCourseAdded creates a CourseAdded event for a normalized course id
func NewCourseAdded(userID, courseID string) CourseAdded {
	return CourseAdded{
		BaseEvent: BaseEvent{
			EventID:     uuid.NewString(),
			AggregateID: userID,
			EventType:   "user.course_added",
			Timestamp:   time.Now().UTC(),
		},
		UserID:   userID,
		CourseID: courseID,
	}
}

// ProfileCreated is raised after a default profile is materialized
type ProfileCreated struct {
	BaseEvent
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// NewProfileCreated creates a ProfileCreated event
func NewProfileCreated(userID, email string) ProfileCreated {
	return ProfileCreated{
		BaseEvent: BaseEvent{
			EventID:     uuid.NewString(),
			AggregateID: userID,
			EventType:   "user.profile_created",
			Timestamp:   time.Now().UTC(),
		},
		UserID: userID,
		Email:  email,
	}
}
