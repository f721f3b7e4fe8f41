package dynamodb

import (
	"korabo/domain/user"
	apperrors "korabo/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// buildProfileUpdate translates a partial-update request into a DynamoDB
// update expression. Each present field contributes exactly one SET
// clause; absent fields contribute nothing, so stored values they would
// have addressed are never cleared. Structured fields are written
// wholesale as a nested map, never field-merged.
//
// The second return value reports whether the expression carries any
// update at all. When false the caller must skip the write entirely:
// DynamoDB rejects an empty update expression, and an empty request is
// defined to be a no-op.
func buildProfileUpdate(req user.UpdateProfileRequest) (expression.Expression, bool, error) {
	if req.IsEmpty() {
		return expression.Expression{}, false, nil
	}

	var update expression.UpdateBuilder
	if req.Name != nil {
		update = update.Set(expression.Name("name"), expression.Value(*req.Name))
	}
	if req.Interests != nil {
		update = update.Set(expression.Name("interests"), expression.Value(*req.Interests))
	}
	if req.StudyPreferences != nil {
		update = update.Set(expression.Name("study_preferences"), expression.Value(*req.StudyPreferences))
	}

	// The update only ever targets an existing profile; creation goes
	// through the conditional put in CreateDefaultProfile.
	condition := expression.AttributeExists(expression.Name("PK"))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(condition).
		Build()
	if err != nil {
		return expression.Expression{}, false, apperrors.NewSerializationError("failed to build profile update expression", err)
	}

	return expr, true, nil
}
