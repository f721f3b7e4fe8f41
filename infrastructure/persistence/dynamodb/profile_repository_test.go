package dynamodb

import (
	"context"
	"errors"
	"testing"

	"korabo/domain/user"
	apperrors "korabo/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeClient records the inputs of every call and replays canned outputs.
type fakeClient struct {
	getInput    *dynamodb.GetItemInput
	putInput    *dynamodb.PutItemInput
	updateInput *dynamodb.UpdateItemInput
	deleteInput *dynamodb.DeleteItemInput
	queryInputs []*dynamodb.QueryInput

	getOutput    *dynamodb.GetItemOutput
	queryOutputs []*dynamodb.QueryOutput

	getErr    error
	putErr    error
	updateErr error
	deleteErr error
	queryErr  error

	calls int
}

func (f *fakeClient) GetItem(ctx context.Context, input *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.calls++
	f.getInput = input
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOutput != nil {
		return f.getOutput, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeClient) PutItem(ctx context.Context, input *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.calls++
	f.putInput = input
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeClient) UpdateItem(ctx context.Context, input *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.calls++
	f.updateInput = input
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeClient) DeleteItem(ctx context.Context, input *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.calls++
	f.deleteInput = input
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeClient) Query(ctx context.Context, input *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.calls++
	f.queryInputs = append(f.queryInputs, input)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if len(f.queryOutputs) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queryOutputs[0]
	f.queryOutputs = f.queryOutputs[1:]
	return out, nil
}

func newTestRepository(client *fakeClient) *ProfileRepository {
	return NewProfileRepository(client, "korabo-test", zap.NewNop()).(*ProfileRepository)
}

func stringAttr(av types.AttributeValue) string {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	return s.Value
}

func TestCreateDefaultProfile(t *testing.T) {
	client := &fakeClient{}
	repo := newTestRepository(client)

	err := repo.CreateDefaultProfile(context.Background(), "user-123", "ada@example.com")
	require.NoError(t, err)

	require.NotNil(t, client.putInput)
	assert.Equal(t, "korabo-test", *client.putInput.TableName)
	assert.Equal(t, "USER#user-123", stringAttr(client.putInput.Item["PK"]))
	assert.Equal(t, "PROFILE", stringAttr(client.putInput.Item["SK"]))
	require.NotNil(t, client.putInput.ConditionExpression)
	assert.Contains(t, *client.putInput.ConditionExpression, "attribute_not_exists")
}

func TestCreateDefaultProfileAlreadyExists(t *testing.T) {
	client := &fakeClient{putErr: &types.ConditionalCheckFailedException{}}
	repo := newTestRepository(client)

	err := repo.CreateDefaultProfile(context.Background(), "user-123", "ada@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsConditionalCheck(err))
}

func TestCreateDefaultProfileBackendFailure(t *testing.T) {
	client := &fakeClient{putErr: errors.New("throughput exceeded")}
	repo := newTestRepository(client)

	err := repo.CreateDefaultProfile(context.Background(), "user-123", "ada@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsDatabase(err))
	assert.False(t, apperrors.IsConditionalCheck(err))
}

func TestGetProfile(t *testing.T) {
	profile := user.NewDefaultProfile("user-123", "ada@example.com")
	item, err := encodeProfile(profile)
	require.NoError(t, err)

	client := &fakeClient{getOutput: &dynamodb.GetItemOutput{Item: item}}
	repo := newTestRepository(client)

	got, err := repo.GetProfile(context.Background(), "user-123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-123", got.UserID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.True(t, got.Privacy.ShowCourses)

	require.NotNil(t, client.getInput)
	assert.Equal(t, "USER#user-123", stringAttr(client.getInput.Key["PK"]))
	assert.Equal(t, "PROFILE", stringAttr(client.getInput.Key["SK"]))
}

func TestGetProfileNotFound(t *testing.T) {
	client := &fakeClient{}
	repo := newTestRepository(client)

	got, err := repo.GetProfile(context.Background(), "user-123")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetProfileBackendFailure(t *testing.T) {
	client := &fakeClient{getErr: errors.New("connection reset")}
	repo := newTestRepository(client)

	_, err := repo.GetProfile(context.Background(), "user-123")
	require.Error(t, err)
	assert.True(t, apperrors.IsDatabase(err))
}

func TestGetCourses(t *testing.T) {
	first, err := encodeCourse("user-123", user.Enrollment{CourseID: "CS101"})
	require.NoError(t, err)
	second, err := encodeCourse("user-123", user.Enrollment{CourseID: "MATH240"})
	require.NoError(t, err)

	client := &fakeClient{
		queryOutputs: []*dynamodb.QueryOutput{
			{
				Items:            []map[string]types.AttributeValue{first},
				LastEvaluatedKey: keyAttributes("USER#user-123", "COURSE#CS101"),
			},
			{
				Items: []map[string]types.AttributeValue{second},
			},
		},
	}
	repo := newTestRepository(client)

	courses, err := repo.GetCourses(context.Background(), "user-123")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101", "MATH240"}, courses)

	require.Len(t, client.queryInputs, 2)
	assert.Nil(t, client.queryInputs[0].ExclusiveStartKey)
	assert.NotNil(t, client.queryInputs[1].ExclusiveStartKey)
	require.NotNil(t, client.queryInputs[0].KeyConditionExpression)
	assert.Contains(t, *client.queryInputs[0].KeyConditionExpression, "begins_with")
}

func TestGetCoursesEmpty(t *testing.T) {
	client := &fakeClient{}
	repo := newTestRepository(client)

	courses, err := repo.GetCourses(context.Background(), "user-123")
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestUpdateProfile(t *testing.T) {
	name := "Ada"
	client := &fakeClient{}
	repo := newTestRepository(client)

	err := repo.UpdateProfile(context.Background(), "user-123", user.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	require.NotNil(t, client.updateInput)
	assert.Equal(t, "USER#user-123", stringAttr(client.updateInput.Key["PK"]))
	assert.Equal(t, "PROFILE", stringAttr(client.updateInput.Key["SK"]))
	require.NotNil(t, client.updateInput.UpdateExpression)
	assert.Contains(t, *client.updateInput.UpdateExpression, "SET")
	require.NotNil(t, client.updateInput.ConditionExpression)
	assert.Contains(t, *client.updateInput.ConditionExpression, "attribute_exists")
}

func TestUpdateProfileEmptyRequestSkipsWrite(t *testing.T) {
	client := &fakeClient{}
	repo := newTestRepository(client)

	err := repo.UpdateProfile(context.Background(), "user-123", user.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Zero(t, client.calls)
}

func TestUpdateProfileMissingProfile(t *testing.T) {
	name := "Ada"
	client := &fakeClient{updateErr: &types.ConditionalCheckFailedException{}}
	repo := newTestRepository(client)

	err := repo.UpdateProfile(context.Background(), "user-123", user.UpdateProfileRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, apperrors.IsConditionalCheck(err))
}

func TestAddCourse(t *testing.T) {
	client := &fakeClient{}
	repo := newTestRepository(client)

	err := repo.AddCourse(context.Background(), "user-123", " cs 101 ")
	require.NoError(t, err)

	require.NotNil(t, client.putInput)
	assert.Equal(t, "USER#user-123", stringAttr(client.putInput.Item["PK"]))
	assert.Equal(t, "COURSE#CS101", stringAttr(client.putInput.Item["SK"]))
	assert.Equal(t, "CS101", stringAttr(client.putInput.Item["course_id"]))
	require.NotNil(t, client.putInput.ConditionExpression)
	assert.Contains(t, *client.putInput.ConditionExpression, "attribute_not_exists")
}

func TestAddCourseEmptyID(t *testing.T) {
	client := &fakeClient{}
	repo := newTestRepository(client)

	err := repo.AddCourse(context.Background(), "user-123", "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, client.calls)
}

func TestAddCourseDuplicate(t *testing.T) {
	client := &fakeClient{putErr: &types.ConditionalCheckFailedException{}}
	repo := newTestRepository(client)

	err := repo.AddCourse(context.Background(), "user-123", "CS101")
	require.Error(t, err)
	assert.True(t, apperrors.IsConditionalCheck(err))
}

func TestRemoveCourse(t *testing.T) {
	client := &fakeClient{}
	repo := newTestRepository(client)

	err := repo.RemoveCourse(context.Background(), "user-123", "cs 101")
	require.NoError(t, err)

	require.NotNil(t, client.deleteInput)
	assert.Equal(t, "USER#user-123", stringAttr(client.deleteInput.Key["PK"]))
	assert.Equal(t, "COURSE#CS101", stringAttr(client.deleteInput.Key["SK"]))
	require.NotNil(t, client.deleteInput.ConditionExpression)
	assert.Contains(t, *client.deleteInput.ConditionExpression, "attribute_exists")
}

func TestRemoveCourseNotEnrolled(t *testing.T) {
	client := &fakeClient{deleteErr: &types.ConditionalCheckFailedException{}}
	repo := newTestRepository(client)

	err := repo.RemoveCourse(context.Background(), "user-123", "CS101")
	require.Error(t, err)
	assert.True(t, apperrors.IsConditionalCheck(err))
}
