package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCampaignActivate = "campaign:activate"
	TypeCampaignComplete = "campaign:complete"
	TypeCampaignSweep    = "campaign:sweep"
)

// Queue names
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// CampaignTransitionPayload names the campaign a scheduled transition
// applies to and the status it must still be in when the job runs.
type CampaignTransitionPayload struct {
	CampaignID     uuid.UUID `json:"campaign_id"`
	ExpectedStatus string    `json:"expected_status"`
	ScheduledFor   time.Time `json:"scheduled_for"`
}

func newCampaignTask(taskType string, payload CampaignTransitionPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	// One task per campaign and due time: re-enqueueing the same schedule is
	// a no-op, a rescheduled campaign gets a fresh task.
	taskID := fmt.Sprintf("%s:%s:%d", taskType, payload.CampaignID, payload.ScheduledFor.Unix())

	return asynq.NewTask(taskType, data,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(5),
		asynq.TaskID(taskID),
		asynq.ProcessAt(payload.ScheduledFor),
	), nil
}

// NewCampaignActivateTask moves a Scheduled campaign to Running at its start.
func NewCampaignActivateTask(payload CampaignTransitionPayload) (*asynq.Task, error) {
	return newCampaignTask(TypeCampaignActivate, payload)
}

// NewCampaignCompleteTask moves a Running campaign to Completed at its end.
func NewCampaignCompleteTask(payload CampaignTransitionPayload) (*asynq.Task, error) {
	return newCampaignTask(TypeCampaignComplete, payload)
}

// ParseCampaignTransitionPayload decodes a campaign task payload.
func ParseCampaignTransitionPayload(task *asynq.Task) (CampaignTransitionPayload, error) {
	var payload CampaignTransitionPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal campaign transition payload: %w", err)
	}
	if payload.CampaignID == uuid.Nil {
		return payload, fmt.Errorf("campaign transition payload has no campaign id")
	}
	return payload, nil
}
