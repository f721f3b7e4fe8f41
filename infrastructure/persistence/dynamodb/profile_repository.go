package dynamodb

import (
	"context"
	"errors"
	"time"

	"korabo/application/ports"
	"korabo/domain/user"
	apperrors "korabo/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ProfileRepository implements ports.ProfileRepository on a single
// DynamoDB table. It holds no mutable state and is safe for concurrent
// use; every operation suspends at exactly one network call and no
// operation retries internally.
type ProfileRepository struct {
	client    Client
	tableName string
	logger    *zap.Logger
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(client Client, tableName string, logger *zap.Logger) ports.ProfileRepository {
	return &ProfileRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// CreateDefaultProfile writes the default profile for a newly registered
// user, conditional on no profile existing under the partition yet. The
// resulting ConditionalCheck error on duplicates is what makes at-least-
// once event delivery safe: the second delivery loses the conditional
// write instead of overwriting the first.
func (r *ProfileRepository) CreateDefaultProfile(ctx context.Context, userID, email string) error {
	profile := user.NewDefaultProfile(userID, email)

	av, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	cond, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("PK"))).
		Build()
	if err != nil {
		return apperrors.NewSerializationError("failed to build create condition", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       cond.Condition(),
		ExpressionAttributeNames:  cond.Names(),
		ExpressionAttributeValues: cond.Values(),
	})
	if err != nil {
		return r.mapWriteError(err, "PutItem", "profile already exists")
	}

	r.logger.Info("Default profile created",
		zap.String("userID", userID),
	)
	return nil
}

// GetProfile retrieves a user's profile. A missing profile is returned as
// nil without error; it is a legitimate transient state between
// registration and profile materialization.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*user.Profile, error) {
	pk, sk := profileKey(userID)

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       keyAttributes(pk, sk),
	})
	if err != nil {
		return nil, apperrors.NewDatabaseError("GetItem", err)
	}
	if len(result.Item) == 0 {
		return nil, nil
	}

	return decodeProfile(result.Item)
}

// GetCourses returns the normalized course ids the user has added, in
// store order. Callers get no ordering guarantee beyond stability within
// one query.
func (r *ProfileRepository) GetCourses(ctx context.Context, userID string) ([]string, error) {
	pk, _ := profileKey(userID)

	keyCond, err := expression.NewBuilder().
		WithKeyCondition(expression.KeyAnd(
			expression.Key("PK").Equal(expression.Value(pk)),
			expression.Key("SK").BeginsWith(courseSortPrefix),
		)).
		Build()
	if err != nil {
		return nil, apperrors.NewSerializationError("failed to build course key condition", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    keyCond.KeyCondition(),
		ExpressionAttributeNames:  keyCond.Names(),
		ExpressionAttributeValues: keyCond.Values(),
	}

	courses := []string{}
	paginator := dynamodb.NewQueryPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperrors.NewDatabaseError("Query", err)
		}
		for _, item := range page.Items {
			courseID, err := decodeCourse(item)
			if err != nil {
				return nil, err
			}
			courses = append(courses, courseID)
		}
	}

	return courses, nil
}

// UpdateProfile applies a partial update to an existing profile. An empty
// request returns success without any backend call. Present fields replace
// the stored value wholesale; created_at is never part of the expression
// and so stays immutable.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) error {
	expr, hasUpdate, err := buildProfileUpdate(req)
	if err != nil {
		return err
	}
	if !hasUpdate {
		r.logger.Debug("Skipping empty profile update",
			zap.String("userID", userID),
		)
		return nil
	}

	pk, sk := profileKey(userID)

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       keyAttributes(pk, sk),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return r.mapWriteError(err, "UpdateItem", "profile does not exist")
	}

	return nil
}

// AddCourse enrolls the user in a course, keyed by the normalized course
// id. Re-adding the same normalized id loses the conditional write rather
// than duplicating the record. AddedAt is reset on every successful add.
func (r *ProfileRepository) AddCourse(ctx context.Context, userID, courseID string) error {
	normalized := user.NormalizeCourseID(courseID)
	if normalized == "" {
		return apperrors.NewValidationError("course id must not be empty")
	}

	av, err := encodeCourse(userID, user.Enrollment{
		CourseID: normalized,
		AddedAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	cond, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("SK"))).
		Build()
	if err != nil {
		return apperrors.NewSerializationError("failed to build add-course condition", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       cond.Condition(),
		ExpressionAttributeNames:  cond.Names(),
		ExpressionAttributeValues: cond.Values(),
	})
	if err != nil {
		return r.mapWriteError(err, "PutItem", "course already added")
	}

	r.logger.Debug("Course added",
		zap.String("userID", userID),
		zap.String("courseID", normalized),
	)
	return nil
}

// RemoveCourse deletes the user's enrollment for the normalized course
// id, conditional on the enrollment existing. Normalization mirrors
// AddCourse so the delete always addresses the same sort key the add
// wrote.
func (r *ProfileRepository) RemoveCourse(ctx context.Context, userID, courseID string) error {
	normalized := user.NormalizeCourseID(courseID)
	if normalized == "" {
		return apperrors.NewValidationError("course id must not be empty")
	}

	pk, sk := courseKey(userID, normalized)

	cond, err := expression.NewBuilder().
		WithCondition(expression.AttributeExists(expression.Name("SK"))).
		Build()
	if err != nil {
		return apperrors.NewSerializationError("failed to build remove-course condition", err)
	}

	_, err = r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       keyAttributes(pk, sk),
		ConditionExpression:       cond.Condition(),
		ExpressionAttributeNames:  cond.Names(),
		ExpressionAttributeValues: cond.Values(),
	})
	if err != nil {
		return r.mapWriteError(err, "DeleteItem", "course is not added")
	}

	r.logger.Debug("Course removed",
		zap.String("userID", userID),
		zap.String("courseID", normalized),
	)
	return nil
}

// mapWriteError classifies an SDK write failure: a failed existence
// precondition becomes a ConditionalCheck error for callers to interpret
// per operation, everything else is a backend failure carrying the cause
// for logging only.
func (r *ProfileRepository) mapWriteError(err error, operation, conditionMessage string) error {
	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return apperrors.NewConditionalCheckError(conditionMessage)
	}
	return apperrors.NewDatabaseError(operation, err)
}
