package events

import (
	"context"
	"time"

	"engage-server/internal/campaign/lifecycle"
	"engage-server/internal/clients/kafka"
	"engage-server/internal/observability"

	"github.com/google/uuid"
)

const (
	TypeCampaignStatusChanged   = "campaign.status_changed"
	TypeCampaignApprovalDecided = "campaign.approval_decided"
	TypePasswordResetRequested  = "user.password_reset_requested"
	resourceCampaign            = "campaign"
	resourceUser                = "user"
)

type eventWriter interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka. Publish failures are
// logged and swallowed: the database write that triggered the event has
// already committed.
type Publisher struct {
	writer eventWriter
	logger *observability.Logger
	now    func() time.Time
}

// NewPublisher creates a new event publisher. producer may be nil.
func NewPublisher(producer *kafka.Producer, logger *observability.Logger) *Publisher {
	return newPublisher(producer, logger)
}

func newPublisher(writer eventWriter, logger *observability.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

func (p *Publisher) publish(ctx context.Context, event kafka.EventMessage) {
	event.ID = uuid.New().String()
	event.Timestamp = p.now().UTC().Format(time.RFC3339)
	if err := p.writer.PublishEvent(ctx, event); err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "event_type", Value: event.Type})
		p.logger.Error(ctx, "failed to publish event", err)
	}
}

func actorRef(actorID uuid.UUID) *string {
	if actorID == uuid.Nil {
		return nil
	}
	s := actorID.String()
	return &s
}

// CampaignStatusChanged publishes a campaign.status_changed event
func (p *Publisher) CampaignStatusChanged(ctx context.Context, actorID, campaignID uuid.UUID, action lifecycle.Action, from, to lifecycle.Status) {
	p.publish(ctx, kafka.EventMessage{
		Type:         TypeCampaignStatusChanged,
		Key:          campaignID.String(),
		ActorID:      actorRef(actorID),
		ResourceType: resourceCampaign,
		ResourceID:   campaignID.String(),
		Data: map[string]any{
			"action": string(action),
			"from":   string(from),
			"to":     string(to),
		},
	})
}

// CampaignApprovalDecided publishes a campaign.approval_decided event
func (p *Publisher) CampaignApprovalDecided(ctx context.Context, approverID, campaignID uuid.UUID, decision lifecycle.Decision, status lifecycle.Status) {
	p.publish(ctx, kafka.EventMessage{
		Type:         TypeCampaignApprovalDecided,
		Key:          campaignID.String(),
		ActorID:      actorRef(approverID),
		ResourceType: resourceCampaign,
		ResourceID:   campaignID.String(),
		Data: map[string]any{
			"decision": string(decision),
			"status":   string(status),
		},
	})
}

// PasswordResetRequested publishes a user.password_reset_requested event
func (p *Publisher) PasswordResetRequested(ctx context.Context, userID uuid.UUID, email string) {
	p.publish(ctx, kafka.EventMessage{
		Type:         TypePasswordResetRequested,
		Key:          userID.String(),
		ResourceType: resourceUser,
		ResourceID:   userID.String(),
		Data: map[string]any{
			"email": email,
		},
	})
}
