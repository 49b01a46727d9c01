package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"engage-server/internal/actor"
	"engage-server/internal/campaign/lifecycle"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrInvalidCampaign       = errors.New("invalid campaign")
	ErrInvalidCampaignType   = errors.New("invalid campaign type")
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
	ErrUnknownSegment        = errors.New("one or more segments do not exist")
	ErrCampaignNotEditable   = errors.New("campaign can only be edited while in draft")
	ErrCampaignIncomplete    = errors.New("campaign needs at least one segment and one channel before submission")
	ErrActionNotAllowed      = errors.New("action not allowed in current status")
	ErrConfirmationRequired  = errors.New("confirmation required")
	ErrStatusConflict        = errors.New("campaign status changed concurrently")
	ErrForbidden             = errors.New("not permitted to perform this operation")
)

const (
	cacheResourceCampaigns = "campaigns"
	cacheResourceApprovals = "approvals"

	// sweepBatchSize bounds how many due campaigns a single sweep handles.
	sweepBatchSize = 100
)

// System-driven actions recorded in audit rows and events.
const (
	actionScheduledActivate lifecycle.Action = "scheduled_activate"
	actionScheduledComplete lifecycle.Action = "scheduled_complete"
	actionScheduledFail     lifecycle.Action = "scheduled_fail"
)

const (
	actionCreate = "create"
	actionUpdate = "update"
)

// ConfirmationRequiredError is returned when a destructive operation is
// attempted without confirm=true. It carries the text the client shows in
// its confirmation dialog.
type ConfirmationRequiredError struct {
	Confirmation string
}

func (e *ConfirmationRequiredError) Error() string {
	return ErrConfirmationRequired.Error()
}

func (e *ConfirmationRequiredError) Unwrap() error {
	return ErrConfirmationRequired
}

// Details is rendered into the error response body.
func (e *ConfirmationRequiredError) Details() any {
	return map[string]string{"confirmation": e.Confirmation}
}

type CampaignProcessor struct {
	store  CampaignStore
	events EventPublisher
	jobs   JobScheduler
	cache  ListCache
	logger *observability.Logger
	now    func() time.Time
}

func New(store CampaignStore, events EventPublisher, jobs JobScheduler, cache ListCache, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		events: events,
		jobs:   jobs,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

type CreateCampaignParams struct {
	Name         string
	Description  string
	Objective    string
	// OwnerID defaults to the creating user.
	OwnerID      *uuid.UUID
	Type         string
	SegmentIDs   []uuid.UUID
	Channels     []store.ChannelConfig
	TriggerType  string
	StartAt      *time.Time
	EndAt        *time.Time
	FrequencyCap int
	RewardConfig store.RewardConfig
}

type UpdateCampaignParams struct {
	Name         *string
	Description  *string
	Objective    *string
	OwnerID      *uuid.UUID
	Type         *string
	SegmentIDs   *[]uuid.UUID
	Channels     *[]store.ChannelConfig
	TriggerType  *string
	StartAt      *time.Time
	EndAt        *time.Time
	FrequencyCap *int
	RewardConfig *store.RewardConfig
}

type ListCampaignsParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Status   string `json:"status"`
	Type     string `json:"type"`
}

type CampaignList struct {
	Items      []store.Campaign `json:"items"`
	Pagination pagination.Info  `json:"pagination"`
}

// CampaignDetail is a campaign plus what its detail page may show.
type CampaignDetail struct {
	Campaign store.Campaign `json:"campaign"`
	Gate     lifecycle.View `json:"gate"`
}

func newDetail(campaign store.Campaign) CampaignDetail {
	return CampaignDetail{Campaign: campaign, Gate: lifecycle.Gate(lifecycle.Status(campaign.Status))}
}

func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func segmentStrings(ids []uuid.UUID) store.StringArray {
	out := make(store.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func (p *CampaignProcessor) ensureSegmentsExist(ctx context.Context, ids []uuid.UUID) error {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil
	}
	count, err := p.store.CountSegmentsByIDs(ctx, unique)
	if err != nil {
		p.logger.Error(ctx, "failed to count segments", err)
		return err
	}
	if count != len(unique) {
		return ErrUnknownSegment
	}
	return nil
}

// CreateCampaign validates and stores a new Draft campaign.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, a actor.Actor, params CreateCampaignParams) (CampaignDetail, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "campaign_type", Value: params.Type},
	)

	if !a.CanManageCampaigns() {
		return CampaignDetail{}, ErrForbidden
	}
	if !lifecycle.ValidType(params.Type) {
		return CampaignDetail{}, ErrInvalidCampaignType
	}
	if params.TriggerType == "" {
		params.TriggerType = store.TriggerImmediate
	}
	if err := validateCampaign(campaignFields{
		Name:         params.Name,
		Objective:    params.Objective,
		FrequencyCap: params.FrequencyCap,
		Channels:     params.Channels,
		TriggerType:  params.TriggerType,
		StartAt:      params.StartAt,
		EndAt:        params.EndAt,
		RewardConfig: params.RewardConfig,
	}); err != nil {
		return CampaignDetail{}, err
	}
	if err := p.ensureSegmentsExist(ctx, params.SegmentIDs); err != nil {
		return CampaignDetail{}, err
	}
	owner := params.OwnerID
	if owner == nil {
		owner = nullableID(a.ID)
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:         strings.TrimSpace(params.Name),
		Description:  params.Description,
		Objective:    strings.TrimSpace(params.Objective),
		OwnerID:      owner,
		FrequencyCap: params.FrequencyCap,
		Type:         params.Type,
		Status:       string(lifecycle.StatusDraft),
		SegmentIDs:   segmentStrings(uniqueIDs(params.SegmentIDs)),
		Channels:     params.Channels,
		TriggerType:  params.TriggerType,
		StartAt:      params.StartAt,
		EndAt:        params.EndAt,
		RewardConfig: params.RewardConfig,
		CreatedBy:    a.ID,
	}, a.Audit(actionCreate, store.AuditResourceCampaign, "", store.JSONB{"name": params.Name, "type": params.Type}))
	if err != nil {
		if errors.Is(err, store.ErrUnknownOwner) {
			return CampaignDetail{}, invalid("owner does not exist")
		}
		p.logger.Error(ctx, "failed to create campaign", err)
		return CampaignDetail{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResourceCampaigns)
	return newDetail(campaign), nil
}

// GetCampaign returns a campaign with its gate view.
func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID) (CampaignDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignDetail{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignDetail{}, err
	}
	return newDetail(campaign), nil
}

func parseStatusFilter(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		st, err := lifecycle.ParseStatus(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCampaignStatus, part)
		}
		out = append(out, string(st))
	}
	return out, nil
}

// ListCampaigns returns one page of campaigns matching the filters.
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, params ListCampaignsParams) (CampaignList, error) {
	page := pagination.Params{Page: params.Page, PageSize: params.PageSize}.Normalize()
	params.Page, params.PageSize = page.Page, page.PageSize

	statuses, err := parseStatusFilter(params.Status)
	if err != nil {
		return CampaignList{}, err
	}
	if params.Type != "" && !lifecycle.ValidType(params.Type) {
		return CampaignList{}, ErrInvalidCampaignType
	}

	var cached CampaignList
	slot, hit := p.cache.Get(ctx, cacheResourceCampaigns, params, &cached)
	if hit {
		return cached, nil
	}

	items, total, err := p.store.ListCampaigns(ctx, store.ListCampaignsParams{
		Search:   params.Search,
		Statuses: statuses,
		Type:     params.Type,
		Limit:    page.Limit(),
		Offset:   page.Offset(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return CampaignList{}, err
	}

	result := CampaignList{Items: items, Pagination: pagination.NewInfo(total, page)}
	p.cache.Put(ctx, slot, result)
	return result, nil
}

// UpdateCampaign edits a Draft campaign.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, a actor.Actor, campaignID uuid.UUID, params UpdateCampaignParams) (CampaignDetail, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	if !a.CanManageCampaigns() {
		return CampaignDetail{}, ErrForbidden
	}

	current, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignDetail{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign for update", err)
		return CampaignDetail{}, err
	}
	if lifecycle.Status(current.Status) != lifecycle.StatusDraft {
		return CampaignDetail{}, ErrCampaignNotEditable
	}

	merged := campaignFields{
		Name:         current.Name,
		Objective:    current.Objective,
		FrequencyCap: current.FrequencyCap,
		Channels:     current.Channels,
		TriggerType:  current.TriggerType,
		StartAt:      current.StartAt,
		EndAt:        current.EndAt,
		RewardConfig: current.RewardConfig,
	}
	changes := store.JSONB{}
	update := store.UpdateCampaignParams{
		Description: params.Description,
		StartAt:     params.StartAt,
		EndAt:       params.EndAt,
	}
	if params.Type != nil {
		if !lifecycle.ValidType(*params.Type) {
			return CampaignDetail{}, ErrInvalidCampaignType
		}
		update.Type = params.Type
		changes["type"] = *params.Type
	}
	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		merged.Name = name
		update.Name = &name
		changes["name"] = name
	}
	if params.Objective != nil {
		objective := strings.TrimSpace(*params.Objective)
		merged.Objective = objective
		update.Objective = &objective
		changes["objective"] = objective
	}
	if params.OwnerID != nil {
		update.OwnerID = params.OwnerID
		changes["owner_id"] = params.OwnerID.String()
	}
	if params.FrequencyCap != nil {
		merged.FrequencyCap = *params.FrequencyCap
		update.FrequencyCap = params.FrequencyCap
		changes["frequency_cap"] = *params.FrequencyCap
	}
	if params.Channels != nil {
		channels := store.ChannelConfigs(*params.Channels)
		merged.Channels = channels
		update.Channels = &channels
		changes["channels"] = len(channels)
	}
	if params.TriggerType != nil {
		merged.TriggerType = *params.TriggerType
		update.TriggerType = params.TriggerType
		changes["trigger_type"] = *params.TriggerType
	}
	if params.StartAt != nil {
		merged.StartAt = params.StartAt
		changes["start_at"] = params.StartAt.UTC().Format(time.RFC3339)
	}
	if params.EndAt != nil {
		merged.EndAt = params.EndAt
		changes["end_at"] = params.EndAt.UTC().Format(time.RFC3339)
	}
	if params.RewardConfig != nil {
		merged.RewardConfig = *params.RewardConfig
		update.RewardConfig = params.RewardConfig
		changes["reward_config"] = *params.RewardConfig
	}
	if err := validateCampaign(merged); err != nil {
		return CampaignDetail{}, err
	}
	if params.SegmentIDs != nil {
		if err := p.ensureSegmentsExist(ctx, *params.SegmentIDs); err != nil {
			return CampaignDetail{}, err
		}
		ids := segmentStrings(uniqueIDs(*params.SegmentIDs))
		update.SegmentIDs = &ids
		changes["segment_ids"] = []string(ids)
	}

	audit := a.Audit(actionUpdate, store.AuditResourceCampaign, campaignID.String(), changes)
	updated, err := p.store.UpdateCampaign(ctx, campaignID, string(lifecycle.StatusDraft), update, audit)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return CampaignDetail{}, ErrCampaignNotFound
		case errors.Is(err, store.ErrStatusConflict):
			return CampaignDetail{}, ErrCampaignNotEditable
		case errors.Is(err, store.ErrUnknownOwner):
			return CampaignDetail{}, invalid("owner does not exist")
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return CampaignDetail{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResourceCampaigns)
	return newDetail(updated), nil
}

// DeleteCampaign removes a Draft campaign through the delete action.
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, a actor.Actor, campaignID uuid.UUID, confirm bool) error {
	_, err := p.PerformAction(ctx, a, campaignID, lifecycle.ActionDelete, confirm)
	return err
}

func actionConfirmation(action lifecycle.Action, campaign store.Campaign) string {
	switch action {
	case lifecycle.ActionDelete:
		return fmt.Sprintf("Delete campaign %q? This cannot be undone.", campaign.Name)
	case lifecycle.ActionCancel:
		return fmt.Sprintf("Cancel campaign %q? It will return to draft.", campaign.Name)
	}
	return fmt.Sprintf("Confirm %s for campaign %q.", action.Spec().Label, campaign.Name)
}

func authorizeAction(a actor.Actor, from lifecycle.Status, action lifecycle.Action) error {
	if from == lifecycle.StatusPendingApproval && action == lifecycle.ActionStart {
		if !a.CanApprove() {
			return ErrForbidden
		}
		return nil
	}
	if !a.CanManageCampaigns() {
		return ErrForbidden
	}
	return nil
}

// PerformAction applies an operator action to a campaign. The transition is
// a compare-and-set on the status the gate was evaluated against; nothing
// changes when any step fails. The returned detail is zero for delete.
func (p *CampaignProcessor) PerformAction(ctx context.Context, a actor.Actor, campaignID uuid.UUID, action lifecycle.Action, confirm bool) (CampaignDetail, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "action", Value: string(action)},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignDetail{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign for action", err)
		return CampaignDetail{}, err
	}

	from := lifecycle.Status(campaign.Status)
	to, err := lifecycle.Transition(from, action)
	if err != nil {
		return CampaignDetail{}, fmt.Errorf("%w: %s on %s campaign", ErrActionNotAllowed, action, from)
	}
	if err := authorizeAction(a, from, action); err != nil {
		return CampaignDetail{}, err
	}
	if action.RequiresConfirm() && !confirm {
		return CampaignDetail{}, &ConfirmationRequiredError{Confirmation: actionConfirmation(action, campaign)}
	}
	if action == lifecycle.ActionSubmitForApproval && (len(campaign.SegmentIDs) == 0 || len(campaign.Channels) == 0) {
		return CampaignDetail{}, ErrCampaignIncomplete
	}

	audit := a.Audit(string(action), store.AuditResourceCampaign, campaignID.String(), store.JSONB{
		"from": string(from),
		"to":   string(to),
	})

	if action == lifecycle.ActionDelete {
		if err := p.store.DeleteCampaign(ctx, campaignID, string(from), audit); err != nil {
			return CampaignDetail{}, p.transitionError(ctx, err)
		}
		p.logger.Info(ctx, "campaign deleted")
		p.events.CampaignStatusChanged(ctx, a.ID, campaignID, action, from, to)
		p.invalidate(ctx)
		return CampaignDetail{}, nil
	}

	updated, err := p.store.TransitionCampaignStatus(ctx, store.TransitionParams{
		CampaignID: campaignID,
		From:       string(from),
		To:         string(to),
		Audit:      audit,
	})
	if err != nil {
		return CampaignDetail{}, p.transitionError(ctx, err)
	}

	p.logger.Info(ctx, fmt.Sprintf("campaign moved from %s to %s", from, to))
	p.events.CampaignStatusChanged(ctx, a.ID, campaignID, action, from, to)
	p.invalidate(ctx)
	p.scheduleFollowUp(ctx, updated)

	return newDetail(updated), nil
}

func (p *CampaignProcessor) transitionError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrCampaignNotFound
	case errors.Is(err, store.ErrStatusConflict):
		p.logger.Warn(ctx, "campaign status changed before transition applied")
		return ErrStatusConflict
	}
	p.logger.Error(ctx, "failed to transition campaign", err)
	return err
}

func (p *CampaignProcessor) invalidate(ctx context.Context) {
	p.cache.InvalidateResource(ctx, cacheResourceCampaigns)
	p.cache.InvalidateResource(ctx, cacheResourceApprovals)
}

// scheduleFollowUp enqueues the next time-driven transition for a campaign
// that just reached Scheduled or Running. Enqueue failures are logged; the
// periodic sweep picks up anything that was missed.
func (p *CampaignProcessor) scheduleFollowUp(ctx context.Context, campaign store.Campaign) {
	switch lifecycle.Status(campaign.Status) {
	case lifecycle.StatusScheduled:
		at := p.now()
		if campaign.StartAt != nil && campaign.StartAt.After(at) {
			at = *campaign.StartAt
		}
		if err := p.jobs.ScheduleCampaignActivation(ctx, campaign.ID, at); err != nil {
			p.logger.Error(ctx, "failed to schedule campaign activation", err)
		}
	case lifecycle.StatusRunning:
		if campaign.EndAt == nil {
			return
		}
		if err := p.jobs.ScheduleCampaignCompletion(ctx, campaign.ID, *campaign.EndAt); err != nil {
			p.logger.Error(ctx, "failed to schedule campaign completion", err)
		}
	}
}

// activationFailure explains why a Scheduled campaign cannot start, or
// returns "" when it can.
func activationFailure(campaign store.Campaign, now time.Time) string {
	if len(campaign.Channels) == 0 {
		return "no delivery channels configured"
	}
	if len(campaign.SegmentIDs) == 0 {
		return "no target segments configured"
	}
	if campaign.EndAt != nil && !campaign.EndAt.After(now) {
		return "schedule window ended before activation"
	}
	return ""
}

// ActivateScheduled starts a Scheduled campaign whose start time has come.
// A campaign that left Scheduled in the meantime is left alone.
func (p *CampaignProcessor) ActivateScheduled(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "scheduled campaign no longer exists")
			return nil
		}
		p.logger.Error(ctx, "failed to get campaign for activation", err)
		return err
	}
	if lifecycle.Status(campaign.Status) != lifecycle.StatusScheduled {
		p.logger.Info(ctx, "campaign is no longer scheduled, skipping activation")
		return nil
	}
	now := p.now()
	if campaign.StartAt != nil && campaign.StartAt.After(now) {
		p.logger.Info(ctx, "campaign start not reached yet, skipping activation")
		return nil
	}

	to := lifecycle.StatusRunning
	action := actionScheduledActivate
	var reason *string
	if msg := activationFailure(campaign, now); msg != "" {
		to = lifecycle.StatusFailed
		action = actionScheduledFail
		reason = &msg
	}

	changes := store.JSONB{"from": string(lifecycle.StatusScheduled), "to": string(to)}
	if reason != nil {
		changes["failure_reason"] = *reason
	}
	updated, err := p.store.TransitionCampaignStatus(ctx, store.TransitionParams{
		CampaignID:    campaignID,
		From:          string(lifecycle.StatusScheduled),
		To:            string(to),
		FailureReason: reason,
		Audit:         actor.System.Audit(string(action), store.AuditResourceCampaign, campaignID.String(), changes),
	})
	if err != nil {
		if errors.Is(err, store.ErrStatusConflict) || errors.Is(err, store.ErrNotFound) {
			return nil
		}
		p.logger.Error(ctx, "failed to activate campaign", err)
		return err
	}

	if reason != nil {
		p.logger.Warn(ctx, "scheduled campaign failed to start: "+*reason)
	} else {
		p.logger.Info(ctx, "scheduled campaign started")
	}
	p.events.CampaignStatusChanged(ctx, uuid.Nil, campaignID, action, lifecycle.StatusScheduled, to)
	p.invalidate(ctx)
	p.scheduleFollowUp(ctx, updated)
	return nil
}

// CompleteRunning completes a Running campaign whose end time has passed.
func (p *CampaignProcessor) CompleteRunning(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		p.logger.Error(ctx, "failed to get campaign for completion", err)
		return err
	}
	if lifecycle.Status(campaign.Status) != lifecycle.StatusRunning {
		return nil
	}
	if campaign.EndAt == nil || campaign.EndAt.After(p.now()) {
		return nil
	}

	_, err = p.store.TransitionCampaignStatus(ctx, store.TransitionParams{
		CampaignID: campaignID,
		From:       string(lifecycle.StatusRunning),
		To:         string(lifecycle.StatusCompleted),
		Audit: actor.System.Audit(string(actionScheduledComplete), store.AuditResourceCampaign, campaignID.String(), store.JSONB{
			"from": string(lifecycle.StatusRunning),
			"to":   string(lifecycle.StatusCompleted),
		}),
	})
	if err != nil {
		if errors.Is(err, store.ErrStatusConflict) || errors.Is(err, store.ErrNotFound) {
			return nil
		}
		p.logger.Error(ctx, "failed to complete campaign", err)
		return err
	}

	p.logger.Info(ctx, "campaign completed")
	p.events.CampaignStatusChanged(ctx, uuid.Nil, campaignID, actionScheduledComplete, lifecycle.StatusRunning, lifecycle.StatusCompleted)
	p.invalidate(ctx)
	return nil
}

// SweepDue applies every time-driven transition that is due at now. It keeps
// going past individual failures and reports them together.
func (p *CampaignProcessor) SweepDue(ctx context.Context, now time.Time) (int, error) {
	due, err := p.store.ListDueCampaigns(ctx, now, sweepBatchSize)
	if err != nil {
		p.logger.Error(ctx, "failed to list due campaigns", err)
		return 0, err
	}

	var (
		applied int
		errs    []error
	)
	for _, campaign := range due {
		var err error
		switch lifecycle.Status(campaign.Status) {
		case lifecycle.StatusScheduled:
			err = p.ActivateScheduled(ctx, campaign.ID)
		case lifecycle.StatusRunning:
			err = p.CompleteRunning(ctx, campaign.ID)
		default:
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("campaign %s: %w", campaign.ID, err))
			continue
		}
		applied++
	}
	return applied, errors.Join(errs...)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
