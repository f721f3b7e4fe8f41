// Package sqs consumes registration events from the signup queue and
// materializes default profiles for new users.
package sqs

import (
	"context"
	"encoding/json"
	"time"

	"korabo/application/ports"
	"korabo/domain/events"
	"korabo/domain/user"
	apperrors "korabo/pkg/errors"
	"korabo/pkg/observability"

	awsevents "github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// RegistrationConsumer processes SQS registration batches. Malformed
// messages are skipped so they cannot poison the queue; duplicate
// registrations are treated as success; any other failure aborts the
// batch so every message is redelivered. Combined with the conditional
// profile create, redelivery is safe at-least-once processing.
type RegistrationConsumer struct {
	repo     ports.ProfileRepository
	eventBus ports.EventBus
	metrics  *observability.Metrics
	tracer   *observability.Tracer
	logger   *zap.Logger
}

// NewRegistrationConsumer creates a new registration consumer
func NewRegistrationConsumer(
	repo ports.ProfileRepository,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *RegistrationConsumer {
	return &RegistrationConsumer{
		repo:     repo,
		eventBus: eventBus,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
	}
}

// Handle processes one SQS batch. Returning an error makes Lambda
// redeliver the whole batch, which is the intended retry mechanism for
// transient backend failures.
func (c *RegistrationConsumer) Handle(ctx context.Context, batch awsevents.SQSEvent) error {
	c.logger.Info("Processing registration batch",
		zap.Int("records", len(batch.Records)),
	)

	for _, record := range batch.Records {
		if err := c.processRecord(ctx, record); err != nil {
			return err
		}
	}

	return nil
}

func (c *RegistrationConsumer) processRecord(ctx context.Context, record awsevents.SQSMessage) error {
	return c.tracer.TraceFunction(ctx, "ProcessRegistration", func(ctx context.Context) error {
		start := time.Now()

		var event user.RegistrationEvent
		if err := json.Unmarshal([]byte(record.Body), &event); err != nil {
			c.logger.Warn("Skipping malformed registration message",
				zap.Error(err),
				zap.String("messageID", record.MessageId),
			)
			c.metrics.RecordRegistration(ctx, "malformed", time.Since(start))
			return nil
		}
		if !event.Valid() {
			c.logger.Warn("Skipping registration message with missing fields",
				zap.String("messageID", record.MessageId),
			)
			c.metrics.RecordRegistration(ctx, "malformed", time.Since(start))
			return nil
		}

		c.tracer.AddAnnotation(ctx, "userID", event.UserID)

		err := c.repo.CreateDefaultProfile(ctx, event.UserID, event.Email)
		switch {
		case err == nil:
			c.publishProfileCreated(ctx, event)
			c.metrics.RecordRegistration(ctx, "created", time.Since(start))
			return nil
		case apperrors.IsConditionalCheck(err):
			// Redelivered message; the first delivery already won.
			c.logger.Info("Profile already exists, skipping duplicate registration",
				zap.String("userID", event.UserID),
				zap.String("messageID", record.MessageId),
			)
			c.metrics.RecordRegistration(ctx, "duplicate", time.Since(start))
			return nil
		default:
			c.logger.Error("Failed to create default profile, aborting batch",
				zap.Error(err),
				zap.String("userID", event.UserID),
				zap.String("messageID", record.MessageId),
			)
			c.metrics.RecordRegistration(ctx, "failed", time.Since(start))
			return err
		}
	})
}

func (c *RegistrationConsumer) publishProfileCreated(ctx context.Context, event user.RegistrationEvent) {
	if err := c.eventBus.Publish(ctx, events.NewProfileCreated(event.UserID, event.Email)); err != nil {
		c.logger.Error("Failed to publish profile created event",
			zap.Error(err),
			zap.String("userID", event.UserID),
		)
	}
}
