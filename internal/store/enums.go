package store

// Segment ENUMs
const (
	SegmentTypeStatic  = "static"
	SegmentTypeDynamic = "dynamic"
)

const (
	SegmentStatusActive   = "active"
	SegmentStatusArchived = "archived"
)

const (
	SegmentLogicAnd = "AND"
	SegmentLogicOr  = "OR"
)

// Report ENUMs
const (
	ReportSourceCampaign    = "campaign"
	ReportSourceSegment     = "segment"
	ReportSourceReward      = "reward"
	ReportSourceTransaction = "transaction"
)

const (
	ReportFormatCSV  = "csv"
	ReportFormatXLSX = "xlsx"
	ReportFormatPDF  = "pdf"
)

const (
	ReportStatusReady      = "ready"
	ReportStatusGenerating = "generating"
	ReportStatusFailed     = "failed"
)

// Reward ENUMs
const (
	RewardTypeAirtime  = "airtime"
	RewardTypeData     = "data"
	RewardTypePoints   = "points"
	RewardTypeCashback = "cashback"
)

const (
	RewardAccountStatusActive    = "active"
	RewardAccountStatusSuspended = "suspended"
	RewardAccountStatusClosed    = "closed"
)

// Task ENUMs
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Role names
const (
	RoleAdmin           = "admin"
	RoleApprover        = "approver"
	RoleCampaignManager = "campaign_manager"
	RoleAnalyst         = "analyst"
	RoleViewer          = "viewer"
)

// Audit resource types
const (
	AuditResourceCampaign      = "campaign"
	AuditResourceSegment       = "segment"
	AuditResourceReport        = "report"
	AuditResourceRewardAccount = "reward_account"
	AuditResourceUser          = "user"
	AuditResourceTask          = "task"
	AuditResourceTable         = "table"
)

// Campaign ENUMs
const (
	TriggerImmediate = "immediate"
	TriggerScheduled = "scheduled"
	TriggerRecurring = "recurring"
	TriggerEvent     = "event"
)

const (
	ChannelSMS   = "SMS"
	ChannelUSSD  = "USSD"
	ChannelApp   = "App"
	ChannelEmail = "Email"
)
