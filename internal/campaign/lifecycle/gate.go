package lifecycle

import (
	"errors"
	"fmt"
)

// Action is an operator-triggered lifecycle transition.
type Action string

const (
	ActionSubmitForApproval Action = "submit_for_approval"
	ActionDelete            Action = "delete"
	ActionStart             Action = "start"
	ActionCancel            Action = "cancel"
	ActionStartNow          Action = "start_now"
	ActionPause             Action = "pause"
	ActionResume            Action = "resume"
)

var (
	ErrActionNotAllowed = errors.New("action not allowed in current status")
	ErrUnknownAction    = errors.New("unknown campaign action")
)

// ActionSpec describes one button on the detail page.
type ActionSpec struct {
	Action          Action `json:"action"`
	Label           string `json:"label"`
	RequiresConfirm bool   `json:"requires_confirm"`
}

var actionSpecs = map[Action]ActionSpec{
	ActionSubmitForApproval: {Action: ActionSubmitForApproval, Label: "Submit for Approval"},
	ActionDelete:            {Action: ActionDelete, Label: "Delete", RequiresConfirm: true},
	ActionStart:             {Action: ActionStart, Label: "Start Campaign"},
	ActionCancel:            {Action: ActionCancel, Label: "Cancel", RequiresConfirm: true},
	ActionStartNow:          {Action: ActionStartNow, Label: "Start Now"},
	ActionPause:             {Action: ActionPause, Label: "Pause"},
	ActionResume:            {Action: ActionResume, Label: "Resume"},
}

// transitions is the complete table of legal moves. A status absent from
// the table, or an action absent from its row, is illegal.
// Delete has no successor state: the record is removed.
var transitions = map[Status][]struct {
	action Action
	to     Status
}{
	StatusDraft: {
		{ActionSubmitForApproval, StatusPendingApproval},
		{ActionDelete, ""},
	},
	StatusPendingApproval: {
		{ActionStart, StatusRunning},
		{ActionCancel, StatusDraft},
	},
	StatusScheduled: {
		{ActionStartNow, StatusRunning},
		{ActionCancel, StatusDraft},
	},
	StatusRunning: {
		{ActionPause, StatusPaused},
	},
	StatusPaused: {
		{ActionResume, StatusRunning},
	},
}

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := actionSpecs[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// Spec returns the display spec for a.
func (a Action) Spec() ActionSpec {
	return actionSpecs[a]
}

// RequiresConfirm reports whether the client must confirm before a runs.
func (a Action) RequiresConfirm() bool {
	return actionSpecs[a].RequiresConfirm
}

// AllowedActions returns the actions legal in status s, in button order.
func AllowedActions(s Status) []Action {
	row := transitions[s]
	out := make([]Action, 0, len(row))
	for _, t := range row {
		out = append(out, t.action)
	}
	return out
}

// IsAllowed reports whether a is legal in status s.
func IsAllowed(s Status, a Action) bool {
	for _, t := range transitions[s] {
		if t.action == a {
			return true
		}
	}
	return false
}

// Transition returns the status s moves to under a.
// For ActionDelete the returned status is empty.
func Transition(s Status, a Action) (Status, error) {
	for _, t := range transitions[s] {
		if t.action == a {
			return t.to, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrActionNotAllowed, a, s)
}

// VisibleTabs returns the detail tabs shown for status s.
func VisibleTabs(s Status) []Tab {
	tabs := []Tab{TabOverview, TabLogs}
	if s.Live() {
		tabs = append(tabs, TabAudience, TabChannels, TabRewards, TabPerformance)
	}
	return tabs
}

// ShowFailureBanner reports whether the persistent failure alert renders.
func ShowFailureBanner(s Status) bool {
	return s == StatusFailed
}

// FailureBannerMessage is the text of the persistent failure alert.
const FailureBannerMessage = "This campaign failed to run. Please contact support."

// View is everything the detail page needs to decide what to render.
type View struct {
	Status        Status       `json:"status"`
	Actions       []ActionSpec `json:"actions"`
	Tabs          []Tab        `json:"tabs"`
	FailureBanner *string      `json:"failure_banner,omitempty"`
}

// Gate builds the View for status s.
func Gate(s Status) View {
	actions := AllowedActions(s)
	specs := make([]ActionSpec, 0, len(actions))
	for _, a := range actions {
		specs = append(specs, a.Spec())
	}

	v := View{
		Status:  s,
		Actions: specs,
		Tabs:    VisibleTabs(s),
	}
	if ShowFailureBanner(s) {
		msg := FailureBannerMessage
		v.FailureBanner = &msg
	}
	return v
}
