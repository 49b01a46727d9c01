package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

func audit(action, resource string) AuditEntry {
	return AuditEntry{Action: action, ResourceType: resource}
}

// --- User Fixtures ---

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(role string) User {
	f.t.Helper()
	user, err := f.testDB.Store.CreateUser(f.ctx, CreateUserParams{
		Email:        "user-" + uuid.New().String()[:8] + "@example.com",
		FullName:     "Test User",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         role,
	}, audit("create", AuditResourceUser))
	require.NoError(f.t, err, "failed to create test user")
	return user
}

// --- Campaign Fixtures ---

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	Name       string
	Status     string
	SegmentIDs []string
	StartAt    *time.Time
	EndAt      *time.Time
}

// CreateCampaign creates a test campaign with optional customization.
func (f *Fixtures) CreateCampaign(opts ...func(*CampaignOpts)) Campaign {
	f.t.Helper()
	o := CampaignOpts{Name: "Spring Promo", Status: "Draft"}
	for _, fn := range opts {
		fn(&o)
	}
	campaign, err := f.testDB.Store.CreateCampaign(f.ctx, CreateCampaignParams{
		Name:        o.Name,
		Type:        "Incentive",
		Status:      o.Status,
		SegmentIDs:  StringArray(o.SegmentIDs),
		Channels:    ChannelConfigs{{Channel: "SMS", Priority: 1, Messages: map[string]string{"en": "Hi"}}},
		TriggerType: "scheduled",
		StartAt:     o.StartAt,
		EndAt:       o.EndAt,
	}, audit("create", AuditResourceCampaign))
	require.NoError(f.t, err, "failed to create test campaign")
	return campaign
}

// --- Segment Fixtures ---

// CreateSegment creates an active dynamic segment.
func (f *Fixtures) CreateSegment(name string) Segment {
	f.t.Helper()
	days := 30
	segment, err := f.testDB.Store.CreateSegment(f.ctx, CreateSegmentParams{
		Name:        name,
		Type:        SegmentTypeDynamic,
		Filters:     SegmentFilters{Behavioral: &BehavioralFilter{LastActivityDays: &days}},
		Logic:       SegmentLogicAnd,
		RuleSummary: "Active in last 30 days",
		Status:      SegmentStatusActive,
	}, audit("create", AuditResourceSegment))
	require.NoError(f.t, err, "failed to create test segment")
	return segment
}
