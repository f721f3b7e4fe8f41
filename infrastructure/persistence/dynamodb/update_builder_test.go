package dynamodb

import (
	"testing"

	"korabo/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for _, v := range m {
		names = append(names, v)
	}
	return names
}

func TestBuildProfileUpdateEmptyRequest(t *testing.T) {
	_, hasUpdate, err := buildProfileUpdate(user.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.False(t, hasUpdate)
}

func TestBuildProfileUpdateFieldSelection(t *testing.T) {
	name := "Ada"
	interests := []string{"math"}
	prefs := user.StudyPreferences{}

	tests := []struct {
		name   string
		req    user.UpdateProfileRequest
		expect []string
		absent []string
	}{
		{
			name:   "name only",
			req:    user.UpdateProfileRequest{Name: &name},
			expect: []string{"name"},
			absent: []string{"interests", "study_preferences"},
		},
		{
			name:   "interests only",
			req:    user.UpdateProfileRequest{Interests: &interests},
			expect: []string{"interests"},
			absent: []string{"name", "study_preferences"},
		},
		{
			name:   "study preferences only",
			req:    user.UpdateProfileRequest{StudyPreferences: &prefs},
			expect: []string{"study_preferences"},
			absent: []string{"name", "interests"},
		},
		{
			name: "all fields",
			req: user.UpdateProfileRequest{
				Name:             &name,
				Interests:        &interests,
				StudyPreferences: &prefs,
			},
			expect: []string{"name", "interests", "study_preferences"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, hasUpdate, err := buildProfileUpdate(tt.req)
			require.NoError(t, err)
			require.True(t, hasUpdate)
			require.NotNil(t, expr.Update())
			require.NotNil(t, expr.Condition())

			names := namesOf(expr.Names())
			for _, attr := range tt.expect {
				assert.Contains(t, names, attr)
			}
			for _, attr := range tt.absent {
				assert.NotContains(t, names, attr)
			}

			// The condition guards against upserting a missing profile.
			assert.Contains(t, *expr.Condition(), "attribute_exists")
			assert.Contains(t, names, "PK")
			assert.NotContains(t, names, "created_at")
		})
	}
}

func TestBuildProfileUpdateClearsNameWithEmptyString(t *testing.T) {
	empty := ""
	expr, hasUpdate, err := buildProfileUpdate(user.UpdateProfileRequest{Name: &empty})
	require.NoError(t, err)
	require.True(t, hasUpdate)
	assert.Contains(t, namesOf(expr.Names()), "name")
}
