package processor

import (
	"fmt"
	"strings"

	"engage-server/internal/store"
)

const allCustomers = "All customers"

var validTiers = map[string]bool{
	"low":     true,
	"medium":  true,
	"high":    true,
	"premium": true,
}

// RuleSummary renders the human-readable form of a segment's filters, one
// clause per rule in a fixed order joined by the segment logic.
func RuleSummary(filters store.SegmentFilters, logic string) string {
	var clauses []string

	if d := filters.Demographic; d != nil {
		switch {
		case d.AgeMin != nil && d.AgeMax != nil:
			clauses = append(clauses, fmt.Sprintf("Age %d-%d", *d.AgeMin, *d.AgeMax))
		case d.AgeMin != nil:
			clauses = append(clauses, fmt.Sprintf("Age >= %d", *d.AgeMin))
		case d.AgeMax != nil:
			clauses = append(clauses, fmt.Sprintf("Age <= %d", *d.AgeMax))
		}
		if d.Gender != "" {
			clauses = append(clauses, "Gender = "+d.Gender)
		}
		if len(d.Regions) > 0 {
			clauses = append(clauses, "Region in ["+strings.Join(d.Regions, ", ")+"]")
		}
	}

	if b := filters.Behavioral; b != nil {
		if b.LastActivityDays != nil {
			clauses = append(clauses, fmt.Sprintf("Active in last %d days", *b.LastActivityDays))
		}
		if b.MinTransactions != nil {
			clauses = append(clauses, fmt.Sprintf("At least %d transactions", *b.MinTransactions))
		}
		if len(b.Channels) > 0 {
			clauses = append(clauses, "Channel in ["+strings.Join(b.Channels, ", ")+"]")
		}
	}

	if v := filters.ValueTier; v != nil {
		if v.Tier != "" {
			clauses = append(clauses, "Value Tier = "+v.Tier)
		}
		if v.MinSpend != nil {
			clauses = append(clauses, fmt.Sprintf("Spend >= %d", *v.MinSpend))
		}
	}

	if len(clauses) == 0 {
		return allCustomers
	}
	return strings.Join(clauses, " "+normalizeLogic(logic)+" ")
}

func normalizeLogic(logic string) string {
	if strings.EqualFold(strings.TrimSpace(logic), store.SegmentLogicOr) {
		return store.SegmentLogicOr
	}
	return store.SegmentLogicAnd
}

func invalidFilter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFilters, fmt.Sprintf(format, args...))
}

// validateFilters rejects negative numbers, inverted age ranges and unknown
// value tiers.
func validateFilters(filters store.SegmentFilters) error {
	if d := filters.Demographic; d != nil {
		if d.AgeMin != nil && *d.AgeMin < 0 {
			return invalidFilter("ageMin must not be negative")
		}
		if d.AgeMax != nil && *d.AgeMax < 0 {
			return invalidFilter("ageMax must not be negative")
		}
		if d.AgeMin != nil && d.AgeMax != nil && *d.AgeMin > *d.AgeMax {
			return invalidFilter("ageMin must not exceed ageMax")
		}
	}
	if b := filters.Behavioral; b != nil {
		if b.LastActivityDays != nil && *b.LastActivityDays < 0 {
			return invalidFilter("lastActivityDays must not be negative")
		}
		if b.MinTransactions != nil && *b.MinTransactions < 0 {
			return invalidFilter("minTransactions must not be negative")
		}
	}
	if v := filters.ValueTier; v != nil {
		if v.Tier != "" && !validTiers[v.Tier] {
			return invalidFilter("unknown value tier %q", v.Tier)
		}
		if v.MinSpend != nil && *v.MinSpend < 0 {
			return invalidFilter("minSpend must not be negative")
		}
	}
	return nil
}
