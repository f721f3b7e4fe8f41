// Package di wires the application together.
package di

import (
	"context"

	"korabo/application/ports"
	"korabo/application/services"
	"korabo/infrastructure/config"
	"korabo/infrastructure/messaging/eventbridge"
	"korabo/infrastructure/persistence/dynamodb"
	"korabo/interfaces/messaging/sqs"
	"korabo/pkg/auth"
	"korabo/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	ProfileRepo ports.ProfileRepository
	EventBus    ports.EventBus
	Service     *services.ProfileService
	Validator   *auth.JWTValidator
	Metrics     *observability.Metrics
	Tracer      *observability.Tracer
	Consumer    *sqs.RegistrationConsumer
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideProfileRepository,
	ProvideEventBus,
	ProvideProfileService,
	ProvideJWTValidator,
	ProvideMetrics,
	ProvideTracer,
	ProvideRegistrationConsumer,
	wire.Struct(new(Container), "*"),
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client when metrics are
// enabled. The nil client turns metric emission off downstream.
func ProvideCloudWatchClient(awsCfg aws.Config, cfg *config.Config) *awscloudwatch.Client {
	if !cfg.EnableMetrics {
		return nil
	}
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideProfileRepository creates a profile repository
func ProvideProfileRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProfileRepository {
	return dynamodb.NewProfileRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventBus creates an event bus
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideProfileService creates the profile service
func ProvideProfileService(repo ports.ProfileRepository, eventBus ports.EventBus, logger *zap.Logger) *services.ProfileService {
	return services.NewProfileService(repo, eventBus, logger)
}

// ProvideJWTValidator creates the token validator. Development runs get
// a fixed secret; production refuses to start without one.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && cfg.IsDevelopment() {
		secret = "development-secret-change-in-production"
	}

	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		Audience:  []string{cfg.JWTAudience},
	})
}

// ProvideMetrics creates the metrics instance
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	return observability.NewMetrics(cfg.MetricsNamespace, client, logger)
}

// ProvideTracer creates the tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer("korabo", cfg.EnableTracing)
}

// ProvideRegistrationConsumer creates the registration consumer
func ProvideRegistrationConsumer(
	repo ports.ProfileRepository,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *sqs.RegistrationConsumer {
	return sqs.NewRegistrationConsumer(repo, eventBus, metrics, tracer, logger)
}
