// Package lifecycle holds the campaign status machine and the approval
// vocabulary that sits beside it. Everything here is pure: callers load
// records, ask what is legal, and persist the outcome themselves.
package lifecycle

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Status is the canonical campaign lifecycle state.
type Status string

const (
	StatusDraft           Status = "Draft"
	StatusPendingApproval Status = "Pending_Approval"
	StatusScheduled       Status = "Scheduled"
	StatusRunning         Status = "Running"
	StatusPaused          Status = "Paused"
	StatusCompleted       Status = "Completed"
	StatusFailed          Status = "Failed"
)

var ErrUnknownStatus = errors.New("unknown campaign status")

// AllStatuses lists every lifecycle state in display order.
func AllStatuses() []Status {
	return []Status{
		StatusDraft,
		StatusPendingApproval,
		StatusScheduled,
		StatusRunning,
		StatusPaused,
		StatusCompleted,
		StatusFailed,
	}
}

// ParseStatus accepts the console spelling ("Pending_Approval") as well as
// the snake-case spelling ("pending_approval"), case-insensitively.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	for _, st := range AllStatuses() {
		if strings.ToLower(string(st)) == normalized {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Valid reports whether s is one of the canonical statuses.
func (s Status) Valid() bool {
	for _, st := range AllStatuses() {
		if s == st {
			return true
		}
	}
	return false
}

// Terminal statuses accept no further actions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Live statuses are the ones with delivery data behind them.
func (s Status) Live() bool {
	return s == StatusRunning || s == StatusPaused || s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalJSON normalizes either spelling into the canonical value.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Tab is a detail-page section.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabLogs        Tab = "logs"
	TabAudience    Tab = "audience"
	TabChannels    Tab = "channels"
	TabRewards     Tab = "rewards"
	TabPerformance Tab = "performance"
)

// Type is the campaign objective family.
type Type string

const (
	TypeIncentive     Type = "Incentive"
	TypeWinBack       Type = "Win-back"
	TypeInformational Type = "Informational"
	TypeCrossSell     Type = "Cross-sell"
)

// ValidType reports whether t is a known campaign type.
func ValidType(t string) bool {
	switch Type(t) {
	case TypeIncentive, TypeWinBack, TypeInformational, TypeCrossSell:
		return true
	}
	return false
}
