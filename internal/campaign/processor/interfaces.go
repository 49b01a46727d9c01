package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"engage-server/internal/campaign/lifecycle"
	"engage-server/internal/querycache"
	"engage-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams, audit store.AuditEntry) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListCampaignsParams) ([]store.Campaign, int, error)
	ListAllCampaigns(ctx context.Context, params store.ListCampaignsParams) ([]store.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, expectedStatus string, params store.UpdateCampaignParams, audit store.AuditEntry) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID uuid.UUID, expectedStatus string, audit store.AuditEntry) error
	TransitionCampaignStatus(ctx context.Context, params store.TransitionParams) (store.Campaign, error)
	ListDueCampaigns(ctx context.Context, now time.Time, limit int) ([]store.Campaign, error)
	CountSegmentsByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
	RecordApprovalDecision(ctx context.Context, params store.RecordDecisionParams) (store.Campaign, store.ApprovalTrailEntry, error)
	GetApprovalTrail(ctx context.Context, campaignID uuid.UUID) ([]store.ApprovalTrailEntry, error)
	GetApprovalTrails(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID][]store.ApprovalTrailEntry, error)
}

// EventPublisher announces lifecycle changes to downstream consumers.
type EventPublisher interface {
	CampaignStatusChanged(ctx context.Context, actorID, campaignID uuid.UUID, action lifecycle.Action, from, to lifecycle.Status)
	CampaignApprovalDecided(ctx context.Context, approverID, campaignID uuid.UUID, decision lifecycle.Decision, status lifecycle.Status)
}

// JobScheduler enqueues the time-driven transitions.
type JobScheduler interface {
	ScheduleCampaignActivation(ctx context.Context, campaignID uuid.UUID, startAt time.Time) error
	ScheduleCampaignCompletion(ctx context.Context, campaignID uuid.UUID, endAt time.Time) error
}

// ListCache caches list responses per resource.
type ListCache interface {
	Get(ctx context.Context, resource string, params any, dest any) (querycache.Slot, bool)
	Put(ctx context.Context, slot querycache.Slot, value any)
	InvalidateResource(ctx context.Context, resource string)
}
