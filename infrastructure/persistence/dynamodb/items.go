// Package dynamodb implements the profile repository on a single DynamoDB
// table. All records for one user share the partition key USER#<id>; the
// sort key discriminates the record type (PROFILE, COURSE#<id>). This is
// the persisted layout and must be preserved exactly.
package dynamodb

import (
	"fmt"
	"time"

	"korabo/domain/user"
	apperrors "korabo/pkg/errors"
	"korabo/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	userKeyPrefix    = "USER#"
	profileSortKey   = "PROFILE"
	courseSortPrefix = "COURSE#"
)

// profileKey derives the composite key addressing a user's profile record.
func profileKey(userID string) (pk, sk string) {
	return userKeyPrefix + userID, profileSortKey
}

// courseKey derives the composite key addressing one course enrollment.
// The course id must already be normalized.
func courseKey(userID, courseID string) (pk, sk string) {
	return userKeyPrefix + userID, courseSortPrefix + courseID
}

// keyAttributes builds the primary key map for point operations.
func keyAttributes(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}

// profileItem is the stored shape of a profile record.
type profileItem struct {
	PK               string                 `dynamodbav:"PK"`
	SK               string                 `dynamodbav:"SK"`
	UserID           string                 `dynamodbav:"user_id"`
	Email            string                 `dynamodbav:"email"`
	Name             *string                `dynamodbav:"name,omitempty"`
	Interests        []string               `dynamodbav:"interests"`
	StudyPreferences *user.StudyPreferences `dynamodbav:"study_preferences,omitempty"`
	Privacy          user.PrivacySettings   `dynamodbav:"privacy"`
	CreatedAt        string                 `dynamodbav:"created_at"`
}

// courseItem is the stored shape of one course enrollment.
type courseItem struct {
	PK       string `dynamodbav:"PK"`
	SK       string `dynamodbav:"SK"`
	CourseID string `dynamodbav:"course_id"`
	AddedAt  string `dynamodbav:"added_at"`
}

// encodeProfile converts a profile record into its attribute map, key
// fields included.
func encodeProfile(p user.Profile) (map[string]types.AttributeValue, error) {
	pk, sk := profileKey(p.UserID)
	item := profileItem{
		PK:               pk,
		SK:               sk,
		UserID:           p.UserID,
		Email:            p.Email,
		Name:             p.Name,
		Interests:        p.Interests,
		StudyPreferences: p.StudyPreferences,
		Privacy:          p.Privacy,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, apperrors.NewSerializationError("failed to marshal profile item", err)
	}
	return av, nil
}

// decodeProfile converts a stored attribute map back into a profile
// record, failing with a serialization error when required fields are
// absent or mistyped.
func decodeProfile(av map[string]types.AttributeValue) (*user.Profile, error) {
	var item profileItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, apperrors.NewSerializationError("failed to unmarshal profile item", err)
	}

	if item.UserID == "" || item.Email == "" || item.CreatedAt == "" {
		return nil, apperrors.NewSerializationError(
			fmt.Sprintf("profile item for key %q is missing required fields", item.PK), nil)
	}

	createdAt, err := utils.ParseRFC3339(item.CreatedAt)
	if err != nil {
		return nil, apperrors.NewSerializationError("profile item has invalid created_at", err)
	}

	return &user.Profile{
		UserID:           item.UserID,
		Email:            item.Email,
		Name:             item.Name,
		Interests:        item.Interests,
		StudyPreferences: item.StudyPreferences,
		Privacy:          item.Privacy,
		CreatedAt:        createdAt,
	}, nil
}

// encodeCourse converts an enrollment into its attribute map. The
// enrollment's course id must already be normalized.
func encodeCourse(userID string, e user.Enrollment) (map[string]types.AttributeValue, error) {
	pk, sk := courseKey(userID, e.CourseID)
	item := courseItem{
		PK:       pk,
		SK:       sk,
		CourseID: e.CourseID,
		AddedAt:  e.AddedAt.UTC().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, apperrors.NewSerializationError("failed to marshal course item", err)
	}
	return av, nil
}

// decodeCourse extracts the normalized course id from a stored enrollment.
func decodeCourse(av map[string]types.AttributeValue) (string, error) {
	var item courseItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return "", apperrors.NewSerializationError("failed to unmarshal course item", err)
	}
	if item.CourseID == "" {
		return "", apperrors.NewSerializationError(
			fmt.Sprintf("course item for key %q is missing course_id", item.PK), nil)
	}
	return item.CourseID, nil
}
