package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultProfile(t *testing.T) {
	p := NewDefaultProfile("user-123", "alice@example.com")

	assert.Equal(t, "user-123", p.UserID)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.Nil(t, p.Name)
	assert.NotNil(t, p.Interests)
	assert.Empty(t, p.Interests)
	assert.Nil(t, p.StudyPreferences)
	assert.True(t, p.Privacy.ShowCourses)
	assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt, 2*time.Second)
}

func TestUpdateProfileRequestIsEmpty(t *testing.T) {
	name := "Alice"
	interests := []string{"math"}

	assert.True(t, UpdateProfileRequest{}.IsEmpty())
	assert.False(t, UpdateProfileRequest{Name: &name}.IsEmpty())
	assert.False(t, UpdateProfileRequest{Interests: &interests}.IsEmpty())
	assert.False(t, UpdateProfileRequest{StudyPreferences: &StudyPreferences{}}.IsEmpty())
}

func TestRegistrationEventValid(t *testing.T) {
	assert.True(t, RegistrationEvent{UserID: "u1", Email: "a@b.c"}.Valid())
	assert.False(t, RegistrationEvent{Email: "a@b.c"}.Valid())
	assert.False(t, RegistrationEvent{UserID: "u1"}.Valid())
	assert.False(t, RegistrationEvent{}.Valid())
}
