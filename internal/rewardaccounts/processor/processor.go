package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/querycache"
	"engage-server/internal/store"

	"github.com/google/uuid"
)

// RewardAccountStore defines the database operations required by RewardAccountProcessor
type RewardAccountStore interface {
	CreateRewardAccount(ctx context.Context, params store.CreateRewardAccountParams, audit store.AuditEntry) (store.RewardAccount, error)
	GetRewardAccountByID(ctx context.Context, accountID uuid.UUID) (store.RewardAccount, error)
	ListRewardAccounts(ctx context.Context, params store.ListRewardAccountsParams) ([]store.RewardAccount, error)
	UpdateRewardAccount(ctx context.Context, accountID uuid.UUID, params store.UpdateRewardAccountParams, audit store.AuditEntry) (store.RewardAccount, error)
	DeleteRewardAccount(ctx context.Context, accountID uuid.UUID, audit store.AuditEntry) error
}

// ListCache caches list responses per resource.
type ListCache interface {
	Get(ctx context.Context, resource string, params any, dest any) (querycache.Slot, bool)
	Put(ctx context.Context, slot querycache.Slot, value any)
	InvalidateResource(ctx context.Context, resource string)
}

var (
	ErrRewardAccountNotFound = errors.New("reward account not found")
	ErrInvalidRewardAccount  = errors.New("invalid reward account")
	ErrAccountNumberExists   = errors.New("account number already registered")
	ErrBalanceReadOnly       = errors.New("balance is owned by the payout system and cannot be edited")
	ErrForbidden             = errors.New("not permitted to manage reward accounts")
)

const cacheResource = "reward_accounts"

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

type RewardAccountProcessor struct {
	store  RewardAccountStore
	cache  ListCache
	logger *observability.Logger
}

func New(store RewardAccountStore, cache ListCache, logger *observability.Logger) RewardAccountProcessor {
	return RewardAccountProcessor{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// CreateRewardAccountRequest registers an account mirrored from the payout
// system. Balance is the opening balance reported by that system.
type CreateRewardAccountRequest struct {
	Name                string
	AccountNumber       string
	ExternalRef         string
	RewardType          string
	Currency            string
	Balance             int64
	LowBalanceThreshold int64
	Status              string
	AssignedCampaignIDs []uuid.UUID
}

// UpdateRewardAccountRequest carries the editable fields. Balance is only
// present so an attempt to change it can be rejected.
type UpdateRewardAccountRequest struct {
	Name                *string
	ExternalRef         *string
	LowBalanceThreshold *int64
	Status              *string
	AssignedCampaignIDs *[]uuid.UUID
	Balance             *int64
}

type ListRewardAccountsRequest struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Search     string `json:"search"`
	Status     string `json:"status"`
	RewardType string `json:"reward_type"`
}

// AccountSummary aggregates the filtered account set
type AccountSummary struct {
	TotalBalance int64 `json:"total_balance"`
	Active       int   `json:"active"`
	LowBalance   int   `json:"low_balance"`
}

type RewardAccountList struct {
	Items      []store.RewardAccount `json:"items"`
	Pagination pagination.Info       `json:"pagination"`
	Summary    AccountSummary        `json:"summary"`
}

func validRewardType(t string) bool {
	switch t {
	case store.RewardTypeAirtime, store.RewardTypeData, store.RewardTypePoints, store.RewardTypeCashback:
		return true
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case store.RewardAccountStatusActive, store.RewardAccountStatusSuspended, store.RewardAccountStatusClosed:
		return true
	}
	return false
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRewardAccount, fmt.Sprintf(format, args...))
}

func campaignIDStrings(ids []uuid.UUID) store.StringArray {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := store.StringArray{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id.String())
	}
	return out
}

// Summarize totals balances and counts active and low-balance accounts
func Summarize(accounts []store.RewardAccount) AccountSummary {
	var s AccountSummary
	for _, a := range accounts {
		s.TotalBalance += a.Balance
		if a.Status == store.RewardAccountStatusActive {
			s.Active++
		}
		if a.LowBalance() {
			s.LowBalance++
		}
	}
	return s
}

// CreateRewardAccount registers a reward account
func (p *RewardAccountProcessor) CreateRewardAccount(ctx context.Context, a actor.Actor, req CreateRewardAccountRequest) (store.RewardAccount, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "account_number", Value: req.AccountNumber},
	)

	if !a.CanManageCampaigns() {
		return store.RewardAccount{}, ErrForbidden
	}

	name := strings.TrimSpace(req.Name)
	number := strings.TrimSpace(req.AccountNumber)
	switch {
	case name == "":
		return store.RewardAccount{}, invalid("name is required")
	case number == "":
		return store.RewardAccount{}, invalid("account number is required")
	case !validRewardType(req.RewardType):
		return store.RewardAccount{}, invalid("unknown reward type %q", req.RewardType)
	case !currencyPattern.MatchString(req.Currency):
		return store.RewardAccount{}, invalid("currency must be a three letter ISO code")
	case req.Balance < 0 || req.LowBalanceThreshold < 0:
		return store.RewardAccount{}, invalid("amounts must not be negative")
	}
	if req.Status == "" {
		req.Status = store.RewardAccountStatusActive
	}
	if !validStatus(req.Status) {
		return store.RewardAccount{}, invalid("unknown status %q", req.Status)
	}

	account, err := p.store.CreateRewardAccount(ctx, store.CreateRewardAccountParams{
		Name:                name,
		AccountNumber:       number,
		ExternalRef:         req.ExternalRef,
		RewardType:          req.RewardType,
		Currency:            req.Currency,
		Balance:             req.Balance,
		LowBalanceThreshold: req.LowBalanceThreshold,
		Status:              req.Status,
		AssignedCampaignIDs: campaignIDStrings(req.AssignedCampaignIDs),
	}, a.Audit("create", store.AuditResourceRewardAccount, "", store.JSONB{"name": name, "account_number": number}))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return store.RewardAccount{}, ErrAccountNumberExists
		}
		p.logger.Error(ctx, "failed to create reward account", err)
		return store.RewardAccount{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	p.logger.Info(ctx, "reward account created successfully")
	return account, nil
}

// GetRewardAccount retrieves a reward account by ID
func (p *RewardAccountProcessor) GetRewardAccount(ctx context.Context, accountID uuid.UUID) (store.RewardAccount, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "reward_account_id", Value: accountID.String()})

	account, err := p.store.GetRewardAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.RewardAccount{}, ErrRewardAccountNotFound
		}
		p.logger.Error(ctx, "failed to get reward account", err)
		return store.RewardAccount{}, err
	}
	return account, nil
}

func (p *RewardAccountProcessor) filtered(ctx context.Context, search, status, rewardType string) ([]store.RewardAccount, error) {
	if status != "" && !validStatus(status) {
		return nil, invalid("unknown status %q", status)
	}
	if rewardType != "" && !validRewardType(rewardType) {
		return nil, invalid("unknown reward type %q", rewardType)
	}

	accounts, err := p.store.ListRewardAccounts(ctx, store.ListRewardAccountsParams{
		Search:     search,
		Status:     status,
		RewardType: rewardType,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list reward accounts", err)
		return nil, err
	}
	return accounts, nil
}

// ListRewardAccounts returns one page of the filtered accounts and a summary
// over the whole filtered set
func (p *RewardAccountProcessor) ListRewardAccounts(ctx context.Context, req ListRewardAccountsRequest) (RewardAccountList, error) {
	page := pagination.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	req.Page, req.PageSize = page.Page, page.PageSize

	var cached RewardAccountList
	slot, hit := p.cache.Get(ctx, cacheResource, req, &cached)
	if hit {
		return cached, nil
	}

	accounts, err := p.filtered(ctx, req.Search, req.Status, req.RewardType)
	if err != nil {
		return RewardAccountList{}, err
	}

	items, info := pagination.Slice(accounts, page)
	result := RewardAccountList{
		Items:      items,
		Pagination: info,
		Summary:    Summarize(accounts),
	}
	p.cache.Put(ctx, slot, result)
	return result, nil
}

// UpdateRewardAccount applies a partial update. Balance cannot be changed.
func (p *RewardAccountProcessor) UpdateRewardAccount(ctx context.Context, a actor.Actor, accountID uuid.UUID, req UpdateRewardAccountRequest) (store.RewardAccount, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reward_account_id", Value: accountID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	if !a.CanManageCampaigns() {
		return store.RewardAccount{}, ErrForbidden
	}
	if req.Balance != nil {
		return store.RewardAccount{}, ErrBalanceReadOnly
	}

	params := store.UpdateRewardAccountParams{
		ExternalRef:         req.ExternalRef,
		LowBalanceThreshold: req.LowBalanceThreshold,
	}
	changes := store.JSONB{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return store.RewardAccount{}, invalid("name is required")
		}
		params.Name = &name
		changes["name"] = name
	}
	if req.LowBalanceThreshold != nil {
		if *req.LowBalanceThreshold < 0 {
			return store.RewardAccount{}, invalid("amounts must not be negative")
		}
		changes["low_balance_threshold"] = *req.LowBalanceThreshold
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return store.RewardAccount{}, invalid("unknown status %q", *req.Status)
		}
		params.Status = req.Status
		changes["status"] = *req.Status
	}
	if req.AssignedCampaignIDs != nil {
		ids := campaignIDStrings(*req.AssignedCampaignIDs)
		params.AssignedCampaignIDs = &ids
		changes["assigned_campaign_ids"] = []string(ids)
	}

	account, err := p.store.UpdateRewardAccount(ctx, accountID, params,
		a.Audit("update", store.AuditResourceRewardAccount, accountID.String(), changes))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.RewardAccount{}, ErrRewardAccountNotFound
		}
		p.logger.Error(ctx, "failed to update reward account", err)
		return store.RewardAccount{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	p.logger.Info(ctx, "reward account updated successfully")
	return account, nil
}

// DeleteRewardAccount removes a reward account
func (p *RewardAccountProcessor) DeleteRewardAccount(ctx context.Context, a actor.Actor, accountID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reward_account_id", Value: accountID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	if !a.CanManageCampaigns() {
		return ErrForbidden
	}

	err := p.store.DeleteRewardAccount(ctx, accountID, a.Audit("delete", store.AuditResourceRewardAccount, accountID.String(), nil))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRewardAccountNotFound
		}
		p.logger.Error(ctx, "failed to delete reward account", err)
		return err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	p.logger.Info(ctx, "reward account deleted successfully")
	return nil
}
