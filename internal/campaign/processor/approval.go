package processor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"engage-server/internal/actor"
	"engage-server/internal/campaign/lifecycle"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrDecisionNotAllowed   = errors.New("campaign is not awaiting an approval decision")
	ErrCommentRequired      = lifecycle.ErrCommentRequired
	ErrUnknownDecision      = lifecycle.ErrUnknownDecision
	ErrInvalidApprovalState = lifecycle.ErrUnknownApprovalState
)

const actionDecide = "approval_decision"

type DecisionInput struct {
	Decision string
	Comment  string
	Confirm  bool
}

// DecisionPreview is a validated, normalized decision and the text the
// confirmation dialog shows before it is recorded.
type DecisionPreview struct {
	Decision     lifecycle.Decision `json:"decision"`
	Comment      string             `json:"comment"`
	Confirmation string             `json:"confirmation"`
}

// ApprovalView is what the approval detail page renders.
type ApprovalView struct {
	Campaign        store.Campaign             `json:"campaign"`
	Trail           []store.ApprovalTrailEntry `json:"trail"`
	State           lifecycle.ApprovalState    `json:"state,omitempty"`
	CurrentDecision *store.ApprovalTrailEntry  `json:"current_decision,omitempty"`
	FormVisible     bool                       `json:"form_visible"`
	Summary         *string                    `json:"summary,omitempty"`
}

type ApprovalQueueParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	State    string `json:"state"`
}

type ApprovalQueueItem struct {
	Campaign        store.Campaign            `json:"campaign"`
	State           lifecycle.ApprovalState   `json:"state"`
	CurrentDecision *store.ApprovalTrailEntry `json:"current_decision,omitempty"`
}

type ApprovalQueuePage struct {
	Items      []ApprovalQueueItem `json:"items"`
	Pagination pagination.Info     `json:"pagination"`
}

func sortTrail(entries []store.ApprovalTrailEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DecidedAt.Before(entries[j].DecidedAt)
	})
}

func toLifecycleTrail(entries []store.ApprovalTrailEntry) []lifecycle.TrailEntry {
	out := make([]lifecycle.TrailEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, lifecycle.TrailEntry{
			Decision:  lifecycle.Decision(e.Decision),
			Comment:   e.Comment,
			Timestamp: e.DecidedAt,
		})
	}
	return out
}

// deriveState returns the approval state and the last entry of a
// chronologically sorted trail.
func deriveState(campaign store.Campaign, entries []store.ApprovalTrailEntry) (lifecycle.ApprovalState, bool, *store.ApprovalTrailEntry) {
	state, ok := lifecycle.DeriveApprovalState(lifecycle.Status(campaign.Status), toLifecycleTrail(entries))
	var last *store.ApprovalTrailEntry
	if len(entries) > 0 {
		e := entries[len(entries)-1]
		last = &e
	}
	return state, ok, last
}

func buildApprovalView(campaign store.Campaign, entries []store.ApprovalTrailEntry) ApprovalView {
	sortTrail(entries)
	state, _, last := deriveState(campaign, entries)

	view := ApprovalView{
		Campaign:        campaign,
		Trail:           entries,
		State:           state,
		CurrentDecision: last,
		FormVisible:     lifecycle.DecisionFormVisible(state),
	}
	if !view.FormVisible && last != nil {
		summary := lifecycle.DecisionSummary(lifecycle.TrailEntry{
			Decision:  lifecycle.Decision(last.Decision),
			Timestamp: last.DecidedAt,
		})
		view.Summary = &summary
	}
	return view
}

// PrepareDecision validates and normalizes a decision without touching the
// store.
func PrepareDecision(in DecisionInput) (DecisionPreview, error) {
	decision, err := lifecycle.ParseDecision(in.Decision)
	if err != nil {
		return DecisionPreview{}, err
	}
	comment := lifecycle.TruncateComment(strings.TrimSpace(in.Comment))
	if err := lifecycle.ValidateDecision(decision, comment); err != nil {
		return DecisionPreview{}, err
	}
	return DecisionPreview{
		Decision:     decision,
		Comment:      comment,
		Confirmation: lifecycle.ConfirmationText(decision, comment),
	}, nil
}

// GetApproval returns the approval view of one campaign.
func (p *CampaignProcessor) GetApproval(ctx context.Context, campaignID uuid.UUID) (ApprovalView, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ApprovalView{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign for approval", err)
		return ApprovalView{}, err
	}

	trail, err := p.store.GetApprovalTrail(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get approval trail", err)
		return ApprovalView{}, err
	}
	return buildApprovalView(campaign, trail), nil
}

// ApprovalQueue lists campaigns by derived approval state. With no state
// filter it returns the campaigns awaiting a decision.
func (p *CampaignProcessor) ApprovalQueue(ctx context.Context, a actor.Actor, params ApprovalQueueParams) (ApprovalQueuePage, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "actor_id", Value: a.ID.String()})

	if !a.CanApprove() {
		return ApprovalQueuePage{}, ErrForbidden
	}

	page := pagination.Params{Page: params.Page, PageSize: params.PageSize}.Normalize()
	params.Page, params.PageSize = page.Page, page.PageSize

	var want lifecycle.ApprovalState
	if strings.TrimSpace(params.State) != "" {
		st, err := lifecycle.ParseApprovalState(params.State)
		if err != nil {
			return ApprovalQueuePage{}, err
		}
		want = st
		params.State = string(st)
	}

	var cached ApprovalQueuePage
	slot, hit := p.cache.Get(ctx, cacheResourceApprovals, params, &cached)
	if hit {
		return cached, nil
	}

	listParams := store.ListCampaignsParams{}
	if want == "" || lifecycle.AwaitingApprover(want) {
		listParams.Statuses = []string{string(lifecycle.StatusPendingApproval)}
	}
	campaigns, err := p.store.ListAllCampaigns(ctx, listParams)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns for approval queue", err)
		return ApprovalQueuePage{}, err
	}

	ids := make([]uuid.UUID, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	trails, err := p.store.GetApprovalTrails(ctx, ids)
	if err != nil {
		p.logger.Error(ctx, "failed to load approval trails", err)
		return ApprovalQueuePage{}, err
	}

	items := make([]ApprovalQueueItem, 0, len(campaigns))
	for _, c := range campaigns {
		entries := trails[c.ID]
		sortTrail(entries)
		state, ok, last := deriveState(c, entries)
		if !ok {
			continue
		}
		if want == "" && !lifecycle.AwaitingApprover(state) {
			continue
		}
		if want != "" && state != want {
			continue
		}
		items = append(items, ApprovalQueueItem{Campaign: c, State: state, CurrentDecision: last})
	}

	pageItems, info := pagination.Slice(items, page)
	result := ApprovalQueuePage{Items: pageItems, Pagination: info}
	p.cache.Put(ctx, slot, result)
	return result, nil
}

// RecordDecision appends an approver decision and moves the campaign to the
// status that decision implies, in one transaction.
func (p *CampaignProcessor) RecordDecision(ctx context.Context, a actor.Actor, campaignID uuid.UUID, in DecisionInput) (ApprovalView, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	preview, err := PrepareDecision(in)
	if err != nil {
		return ApprovalView{}, err
	}
	if !in.Confirm {
		return ApprovalView{}, &ConfirmationRequiredError{Confirmation: preview.Confirmation}
	}
	if !a.CanApprove() {
		return ApprovalView{}, ErrForbidden
	}

	view, err := p.GetApproval(ctx, campaignID)
	if err != nil {
		return ApprovalView{}, err
	}
	if !view.FormVisible {
		return ApprovalView{}, ErrDecisionNotAllowed
	}

	from := lifecycle.Status(view.Campaign.Status)
	to := lifecycle.StatusAfterDecision(preview.Decision)
	updated, entry, err := p.store.RecordApprovalDecision(ctx, store.RecordDecisionParams{
		CampaignID: campaignID,
		ApproverID: a.ID,
		Decision:   string(preview.Decision),
		Comment:    preview.Comment,
		DecidedAt:  p.now().UTC(),
		From:       string(from),
		To:         string(to),
		Audit: a.Audit(actionDecide, store.AuditResourceCampaign, campaignID.String(), store.JSONB{
			"decision": string(preview.Decision),
			"comment":  preview.Comment,
			"from":     string(from),
			"to":       string(to),
		}),
	})
	if err != nil {
		if errors.Is(err, store.ErrStatusConflict) {
			return ApprovalView{}, ErrDecisionNotAllowed
		}
		return ApprovalView{}, p.transitionError(ctx, err)
	}

	p.logger.Info(ctx, fmt.Sprintf("approval decision %s recorded", preview.Decision))
	p.events.CampaignApprovalDecided(ctx, a.ID, campaignID, preview.Decision, to)
	p.invalidate(ctx)
	p.scheduleFollowUp(ctx, updated)

	return buildApprovalView(updated, append(view.Trail, entry)), nil
}

// Resubmit sends a Draft campaign back for review after it was rejected or
// returned as uncompleted. Drafts that were never reviewed, or whose last
// decision was an approval, go through a plain submit instead.
func (p *CampaignProcessor) Resubmit(ctx context.Context, a actor.Actor, campaignID uuid.UUID) (ApprovalView, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	trail, err := p.store.GetApprovalTrail(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get approval trail for resubmit", err)
		return ApprovalView{}, err
	}
	sortTrail(trail)
	if len(trail) == 0 {
		return ApprovalView{}, fmt.Errorf("%w: campaign was never reviewed", ErrActionNotAllowed)
	}
	switch last := lifecycle.Decision(trail[len(trail)-1].Decision); last {
	case lifecycle.DecisionRejected, lifecycle.DecisionUncompleted:
	default:
		return ApprovalView{}, fmt.Errorf("%w: last decision was %s", ErrActionNotAllowed, last)
	}

	if _, err := p.PerformAction(ctx, a, campaignID, lifecycle.ActionSubmitForApproval, false); err != nil {
		return ApprovalView{}, err
	}
	return p.GetApproval(ctx, campaignID)
}
