package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"engage-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs. A nil *Client drops every
// enqueue; the periodic sweep catches those campaigns up once a worker is
// running.
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// RedisOpt builds the asynq connection options shared by client and worker.
func RedisOpt(addr, password string, db int) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: addr, Password: password, DB: db}
}

// NewClient creates a new job client
func NewClient(opt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(opt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// ScheduleCampaignActivation enqueues the Scheduled -> Running transition at startAt.
func (c *Client) ScheduleCampaignActivation(ctx context.Context, campaignID uuid.UUID, startAt time.Time) error {
	return c.enqueue(ctx, TypeCampaignActivate, CampaignTransitionPayload{
		CampaignID:     campaignID,
		ExpectedStatus: "Scheduled",
		ScheduledFor:   startAt,
	})
}

// ScheduleCampaignCompletion enqueues the Running -> Completed transition at endAt.
func (c *Client) ScheduleCampaignCompletion(ctx context.Context, campaignID uuid.UUID, endAt time.Time) error {
	return c.enqueue(ctx, TypeCampaignComplete, CampaignTransitionPayload{
		CampaignID:     campaignID,
		ExpectedStatus: "Running",
		ScheduledFor:   endAt,
	})
}

func (c *Client) enqueue(ctx context.Context, taskType string, payload CampaignTransitionPayload) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "task_type", Value: taskType},
		observability.Field{Key: "campaign_id", Value: payload.CampaignID.String()},
	)

	if c == nil {
		return nil
	}

	task, err := newCampaignTask(taskType, payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create campaign task", err)
		return fmt.Errorf("failed to create campaign task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		c.logger.Error(ctx, "failed to enqueue campaign task", err)
		return fmt.Errorf("failed to enqueue campaign task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued campaign task: %s (queue: %s, process_at: %s)",
		info.ID, info.Queue, info.NextProcessAt.Format(time.RFC3339)))
	return nil
}
