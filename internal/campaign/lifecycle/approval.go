package lifecycle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Decision is what an approver records against a campaign.
type Decision string

const (
	DecisionApproved    Decision = "approved"
	DecisionRejected    Decision = "rejected"
	DecisionUncompleted Decision = "uncompleted"
)

// ApprovalState is the approver-facing view of a campaign. It is derived
// from the lifecycle status and the trail tail, never stored.
type ApprovalState string

const (
	ApprovalPending                ApprovalState = "pending"
	ApprovalApproved               ApprovalState = "approved"
	ApprovalRejected               ApprovalState = "rejected"
	ApprovalUncompleted            ApprovalState = "uncompleted"
	ApprovalUncompletedResubmitted ApprovalState = "uncompleted_resubmitted"
)

// MaxCommentLength is the longest comment kept, in characters.
const MaxCommentLength = 500

var (
	ErrUnknownDecision      = errors.New("unknown approval decision")
	ErrUnknownApprovalState = errors.New("unknown approval state")
	ErrCommentRequired      = errors.New("comment is required unless approving")
)

// ParseDecision accepts "approve"/"approved", "reject"/"rejected" and
// "uncompleted".
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approve", "approved":
		return DecisionApproved, nil
	case "reject", "rejected":
		return DecisionRejected, nil
	case "uncompleted", "uncomplete":
		return DecisionUncompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDecision, s)
}

// ParseApprovalState validates an approval state name.
func ParseApprovalState(s string) (ApprovalState, error) {
	st := ApprovalState(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalUncompleted, ApprovalUncompletedResubmitted:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownApprovalState, s)
}

// TrailEntry is one recorded decision.
type TrailEntry struct {
	Decision  Decision
	Comment   string
	Timestamp time.Time
}

// SortTrail orders entries chronologically. Entries with equal timestamps
// keep their relative order.
func SortTrail(trail []TrailEntry) {
	sort.SliceStable(trail, func(i, j int) bool {
		return trail[i].Timestamp.Before(trail[j].Timestamp)
	})
}

// CurrentDecision returns the chronologically last entry.
func CurrentDecision(trail []TrailEntry) (TrailEntry, bool) {
	if len(trail) == 0 {
		return TrailEntry{}, false
	}
	sorted := make([]TrailEntry, len(trail))
	copy(sorted, trail)
	SortTrail(sorted)
	return sorted[len(sorted)-1], true
}

// DeriveApprovalState maps lifecycle status plus trail onto the approver
// vocabulary. The bool is false for campaigns that never entered review.
func DeriveApprovalState(s Status, trail []TrailEntry) (ApprovalState, bool) {
	last, ok := CurrentDecision(trail)
	if s == StatusPendingApproval {
		// A resubmission after rejection or approval-then-cancel opens a
		// fresh review; only a sent-back campaign keeps its history marker.
		if ok && last.Decision == DecisionUncompleted {
			return ApprovalUncompletedResubmitted, true
		}
		return ApprovalPending, true
	}
	if !ok {
		return "", false
	}

	switch last.Decision {
	case DecisionApproved:
		return ApprovalApproved, true
	case DecisionRejected:
		return ApprovalRejected, true
	case DecisionUncompleted:
		return ApprovalUncompleted, true
	}
	return "", false
}

// StatusAfterDecision is the lifecycle status a decision moves a campaign to.
func StatusAfterDecision(d Decision) Status {
	if d == DecisionApproved {
		return StatusScheduled
	}
	return StatusDraft
}

// DecisionFormVisible reports whether an approver may record a decision.
func DecisionFormVisible(st ApprovalState) bool {
	return st == ApprovalPending || st == ApprovalUncompletedResubmitted
}

// AwaitingApprover reports whether a campaign belongs in the approver queue.
func AwaitingApprover(st ApprovalState) bool {
	return DecisionFormVisible(st)
}

// TruncateComment trims a comment to MaxCommentLength characters.
func TruncateComment(comment string) string {
	if utf8.RuneCountInString(comment) <= MaxCommentLength {
		return comment
	}
	runes := []rune(comment)
	return string(runes[:MaxCommentLength])
}

// ValidateDecision enforces the comment rule.
func ValidateDecision(d Decision, comment string) error {
	switch d {
	case DecisionApproved:
		return nil
	case DecisionRejected, DecisionUncompleted:
		if strings.TrimSpace(comment) == "" {
			return ErrCommentRequired
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownDecision, d)
}

// DecisionSummary renders the read-only "Status: X on {date}" line.
func DecisionSummary(e TrailEntry) string {
	return fmt.Sprintf("Status: %s on %s", e.Decision, e.Timestamp.UTC().Format("2006-01-02"))
}

// ConfirmationText renders what the confirmation dialog states before a
// decision is recorded.
func ConfirmationText(d Decision, comment string) string {
	verb := map[Decision]string{
		DecisionApproved:    "approve",
		DecisionRejected:    "reject",
		DecisionUncompleted: "mark as uncompleted",
	}[d]
	if strings.TrimSpace(comment) == "" {
		return fmt.Sprintf("You are about to %s this campaign.", verb)
	}
	return fmt.Sprintf("You are about to %s this campaign with comment: %q", verb, comment)
}
