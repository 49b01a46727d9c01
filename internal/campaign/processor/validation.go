package processor

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"engage-server/internal/store"
)

const (
	maxCampaignNameLength = 120
	maxObjectiveLength    = 500
)

// campaignFields is the subset of a campaign that validation looks at, so
// create and update check the same merged shape.
type campaignFields struct {
	Name         string
	Objective    string
	FrequencyCap int
	Channels     []store.ChannelConfig
	TriggerType  string
	StartAt      *time.Time
	EndAt        *time.Time
	RewardConfig store.RewardConfig
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCampaign, fmt.Sprintf(format, args...))
}

func validateCampaign(f campaignFields) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return invalid("name is required")
	}
	if utf8.RuneCountInString(name) > maxCampaignNameLength {
		return invalid("name must be at most %d characters", maxCampaignNameLength)
	}
	if utf8.RuneCountInString(f.Objective) > maxObjectiveLength {
		return invalid("objective must be at most %d characters", maxObjectiveLength)
	}
	if f.FrequencyCap < 0 {
		return invalid("frequency cap must not be negative")
	}
	if err := validateChannels(f.Channels); err != nil {
		return err
	}
	if err := validateSchedule(f.TriggerType, f.StartAt, f.EndAt); err != nil {
		return err
	}
	return validateReward(f.RewardConfig)
}

func validateChannels(channels []store.ChannelConfig) error {
	seen := make(map[string]bool, len(channels))
	for i, ch := range channels {
		switch ch.Channel {
		case store.ChannelSMS, store.ChannelUSSD, store.ChannelApp, store.ChannelEmail:
		default:
			return invalid("channels[%d]: unknown channel %q", i, ch.Channel)
		}
		if seen[ch.Channel] {
			return invalid("channels[%d]: %s configured more than once", i, ch.Channel)
		}
		seen[ch.Channel] = true
		if ch.Priority < 1 {
			return invalid("channels[%d]: priority must be at least 1", i)
		}
		if ch.Cap < 0 {
			return invalid("channels[%d]: cap must not be negative", i)
		}
		if len(ch.Messages) == 0 {
			return invalid("channels[%d]: at least one message is required", i)
		}
		for lang, msg := range ch.Messages {
			if strings.TrimSpace(lang) == "" || strings.TrimSpace(msg) == "" {
				return invalid("channels[%d]: message for %q must not be empty", i, lang)
			}
		}
	}
	return nil
}

func validateSchedule(trigger string, startAt, endAt *time.Time) error {
	switch trigger {
	case store.TriggerImmediate, store.TriggerRecurring, store.TriggerEvent:
	case store.TriggerScheduled:
		if startAt == nil {
			return invalid("scheduled campaigns need a start time")
		}
	default:
		return invalid("unknown trigger type %q", trigger)
	}
	if startAt != nil && endAt != nil && !endAt.After(*startAt) {
		return invalid("end must be after start")
	}
	return nil
}

func validateReward(r store.RewardConfig) error {
	switch r.Type {
	case "", store.RewardTypeAirtime, store.RewardTypeData, store.RewardTypePoints, store.RewardTypeCashback:
	default:
		return invalid("unknown reward type %q", r.Type)
	}
	if r.Amount < 0 || r.PerCustomerCap < 0 || r.DailyCap < 0 || r.TotalBudget < 0 {
		return invalid("reward amounts must not be negative")
	}
	if r.TotalBudget > 0 && r.PerCustomerCap > r.TotalBudget {
		return invalid("per-customer cap exceeds total budget")
	}
	if r.TotalBudget > 0 && r.DailyCap > r.TotalBudget {
		return invalid("daily cap exceeds total budget")
	}
	return nil
}
