package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	// Handle empty array
	if str == "" || str == "{}" {
		*a = []string{}
		return nil
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	parts := strings.Split(str, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(p, `"`)
	}
	*a = parts
	return nil
}

func jsonValue(v any) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonScan(value interface{}, dest any) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSON column: %T", value)
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

// User is a console operator.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	FullName     string     `db:"full_name" json:"full_name"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Role is a named permission set.
type Role struct {
	Name        string      `db:"name" json:"name"`
	Description string      `db:"description" json:"description"`
	Permissions StringArray `db:"permissions" json:"permissions"`
}

// ChannelConfig is one delivery channel of a campaign.
type ChannelConfig struct {
	Channel  string            `json:"channel"`
	Priority int               `json:"priority"`
	Messages map[string]string `json:"messages"`
	// Cap limits messages sent on this channel; zero means uncapped.
	Cap   int64 `json:"cap"`
	Retry bool  `json:"retry"`
}

// ChannelConfigs is stored as a JSONB array.
type ChannelConfigs []ChannelConfig

func (c ChannelConfigs) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return jsonValue([]ChannelConfig(c))
}

func (c *ChannelConfigs) Scan(value interface{}) error {
	var out []ChannelConfig
	if err := jsonScan(value, &out); err != nil {
		return err
	}
	*c = out
	return nil
}

// RewardConfig describes what a campaign pays out. Amounts are in minor units.
type RewardConfig struct {
	Type            string     `json:"type,omitempty"`
	Amount          int64      `json:"amount"`
	PerCustomerCap  int64      `json:"per_customer_cap"`
	DailyCap        int64      `json:"daily_cap"`
	TotalBudget     int64      `json:"total_budget"`
	RewardAccountID *uuid.UUID `json:"reward_account_id,omitempty"`
}

func (r RewardConfig) Value() (driver.Value, error) {
	return jsonValue(r)
}

func (r *RewardConfig) Scan(value interface{}) error {
	return jsonScan(value, r)
}

type Campaign struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	Objective     string         `db:"objective" json:"objective"`
	OwnerID       *uuid.UUID     `db:"owner_id" json:"owner_id,omitempty"`
	Type          string         `db:"type" json:"type"`
	Status        string         `db:"status" json:"status"`
	SegmentIDs    StringArray    `db:"segment_ids" json:"segment_ids"`
	Channels      ChannelConfigs `db:"channels" json:"channels"`
	TriggerType   string         `db:"trigger_type" json:"trigger_type"`
	StartAt       *time.Time     `db:"start_at" json:"start_at,omitempty"`
	EndAt         *time.Time     `db:"end_at" json:"end_at,omitempty"`
	FrequencyCap  int            `db:"frequency_cap" json:"frequency_cap"`
	RewardConfig  RewardConfig   `db:"reward_config" json:"reward_config"`
	FailureReason *string        `db:"failure_reason" json:"failure_reason,omitempty"`
	CreatedBy     *uuid.UUID     `db:"created_by" json:"created_by,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// ApprovalTrailEntry is one recorded approver decision. Entries are
// append-only.
type ApprovalTrailEntry struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	CampaignID uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	ApproverID *uuid.UUID `db:"approver_id" json:"approver_id,omitempty"`
	Decision   string     `db:"decision" json:"decision"`
	Comment    string     `db:"comment" json:"comment"`
	DecidedAt  time.Time  `db:"decided_at" json:"decided_at"`
}

type DemographicFilter struct {
	AgeMin  *int     `json:"ageMin,omitempty"`
	AgeMax  *int     `json:"ageMax,omitempty"`
	Gender  string   `json:"gender,omitempty"`
	Regions []string `json:"regions,omitempty"`
}

type BehavioralFilter struct {
	LastActivityDays *int     `json:"lastActivityDays,omitempty"`
	MinTransactions  *int     `json:"minTransactions,omitempty"`
	Channels         []string `json:"channels,omitempty"`
}

type ValueFilter struct {
	Tier     string `json:"tier,omitempty"`
	MinSpend *int64 `json:"minSpend,omitempty"`
}

// SegmentFilters is the rule set of a segment, stored as JSONB.
type SegmentFilters struct {
	Demographic *DemographicFilter `json:"demographic,omitempty"`
	Behavioral  *BehavioralFilter  `json:"behavioral,omitempty"`
	ValueTier   *ValueFilter       `json:"value,omitempty"`
}

func (f SegmentFilters) Value() (driver.Value, error) {
	return jsonValue(f)
}

func (f *SegmentFilters) Scan(value interface{}) error {
	return jsonScan(value, f)
}

type Segment struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	Type          string         `db:"type" json:"type"`
	Filters       SegmentFilters `db:"filters" json:"filters"`
	Logic         string         `db:"logic" json:"logic"`
	RuleSummary   string         `db:"rule_summary" json:"rule_summary"`
	EstimatedSize int            `db:"estimated_size" json:"estimated_size"`
	Status        string         `db:"status" json:"status"`
	CreatedBy     *uuid.UUID     `db:"created_by" json:"created_by,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

type Report struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Description  string     `db:"description" json:"description"`
	SourceType   string     `db:"source_type" json:"source_type"`
	ExportFormat string     `db:"export_format" json:"export_format"`
	Parameters   JSONB      `db:"parameters" json:"parameters"`
	Status       string     `db:"status" json:"status"`
	RowCount     int        `db:"row_count" json:"row_count"`
	GeneratedBy  *uuid.UUID `db:"generated_by" json:"generated_by,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// RewardAccount mirrors a float account in the external payout system.
// Balance and threshold are in minor units.
type RewardAccount struct {
	ID                  uuid.UUID   `db:"id" json:"id"`
	Name                string      `db:"name" json:"name"`
	AccountNumber       string      `db:"account_number" json:"account_number"`
	ExternalRef         string      `db:"external_ref" json:"external_ref"`
	RewardType          string      `db:"reward_type" json:"reward_type"`
	Currency            string      `db:"currency" json:"currency"`
	Balance             int64       `db:"balance" json:"balance"`
	LowBalanceThreshold int64       `db:"low_balance_threshold" json:"low_balance_threshold"`
	Status              string      `db:"status" json:"status"`
	AssignedCampaignIDs StringArray `db:"assigned_campaign_ids" json:"assigned_campaign_ids"`
	CreatedAt           time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time   `db:"updated_at" json:"updated_at"`
}

// LowBalance reports whether the account is at or under its threshold.
func (a RewardAccount) LowBalance() bool {
	return a.LowBalanceThreshold > 0 && a.Balance <= a.LowBalanceThreshold
}

type AuditLog struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ActorID      *uuid.UUID `db:"actor_id" json:"actor_id,omitempty"`
	Action       string     `db:"action" json:"action"`
	ResourceType string     `db:"resource_type" json:"resource_type"`
	ResourceID   string     `db:"resource_id" json:"resource_id"`
	Changes      JSONB      `db:"changes" json:"changes"`
	IPAddress    *string    `db:"ip_address" json:"ip_address,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

type Task struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Status      string     `db:"status" json:"status"`
	Assignee    *string    `db:"assignee" json:"assignee,omitempty"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
	CreatedBy   *uuid.UUID `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Transaction is a subscriber transaction from the warehouse.
type Transaction struct {
	ID              int64     `db:"id" json:"id"`
	MSISDN          string    `db:"msisdn" json:"msisdn"`
	TransactionType string    `db:"transaction_type" json:"transaction_type"`
	Channel         string    `db:"channel" json:"channel"`
	Amount          float64   `db:"amount" json:"amount"`
	Reference       string    `db:"reference" json:"reference"`
	OccurredAt      time.Time `db:"occurred_at" json:"occurred_at"`
}

// ColumnInfo describes a column of a prepared working table.
type ColumnInfo struct {
	Name     string `db:"column_name" json:"name"`
	DataType string `db:"data_type" json:"data_type"`
}
