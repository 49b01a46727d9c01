package workers

import (
	"context"
	"fmt"
	"time"

	"engage-server/internal/jobs"
	"engage-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// CampaignScheduler applies time-driven lifecycle transitions. Each call is
// a no-op when the campaign has already left the expected status.
type CampaignScheduler interface {
	ActivateScheduled(ctx context.Context, campaignID uuid.UUID) error
	CompleteRunning(ctx context.Context, campaignID uuid.UUID) error
	SweepDue(ctx context.Context, now time.Time) (int, error)
}

// CampaignWorker handles campaign activation and completion jobs
type CampaignWorker struct {
	campaigns CampaignScheduler
	logger    *observability.Logger
	now       func() time.Time
}

// NewCampaignWorker creates a new campaign worker
func NewCampaignWorker(campaigns CampaignScheduler, logger *observability.Logger) *CampaignWorker {
	return &CampaignWorker{
		campaigns: campaigns,
		logger:    logger,
		now:       time.Now,
	}
}

// ProcessActivateTask processes a campaign:activate task
func (w *CampaignWorker) ProcessActivateTask(ctx context.Context, task *asynq.Task) error {
	payload, err := jobs.ParseCampaignTransitionPayload(task)
	if err != nil {
		w.logger.Error(ctx, "failed to parse activation payload", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: payload.CampaignID.String()})
	if err := w.campaigns.ActivateScheduled(ctx, payload.CampaignID); err != nil {
		w.logger.Error(ctx, "failed to activate campaign", err)
		return fmt.Errorf("failed to activate campaign: %w", err)
	}
	return nil
}

// ProcessCompleteTask processes a campaign:complete task
func (w *CampaignWorker) ProcessCompleteTask(ctx context.Context, task *asynq.Task) error {
	payload, err := jobs.ParseCampaignTransitionPayload(task)
	if err != nil {
		w.logger.Error(ctx, "failed to parse completion payload", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: payload.CampaignID.String()})
	if err := w.campaigns.CompleteRunning(ctx, payload.CampaignID); err != nil {
		w.logger.Error(ctx, "failed to complete campaign", err)
		return fmt.Errorf("failed to complete campaign: %w", err)
	}
	return nil
}

// ProcessSweepTask catches up campaigns whose scheduled transition was
// never enqueued or was lost.
func (w *CampaignWorker) ProcessSweepTask(ctx context.Context, _ *asynq.Task) error {
	n, err := w.campaigns.SweepDue(ctx, w.now())
	if err != nil {
		w.logger.Error(ctx, "campaign sweep failed", err)
		return fmt.Errorf("campaign sweep failed: %w", err)
	}
	if n > 0 {
		w.logger.Info(ctx, fmt.Sprintf("campaign sweep applied %d transitions", n))
	}
	return nil
}
