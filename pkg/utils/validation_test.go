package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `validate:"required,max=10"`
	Email string   `validate:"omitempty,email"`
	Tags  []string `validate:"omitempty,max=3"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sample{Name: "ok"}))
}

func TestValidateStructMessages(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		message string
	}{
		{
			name:    "missing required field",
			input:   sample{},
			message: "name is required",
		},
		{
			name:    "field too long",
			input:   sample{Name: strings.Repeat("x", 11)},
			message: "name must be at most 10 characters",
		},
		{
			name:    "invalid email",
			input:   sample{Name: "ok", Email: "not-an-email"},
			message: "email must be a valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
