// Package actor identifies who performs an operation, for authorization
// checks and audit rows.
package actor

import (
	"engage-server/internal/store"

	"github.com/google/uuid"
)

// Actor is the authenticated caller. The zero Actor is the system itself,
// used by scheduled jobs.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  string
	IP    string
}

// System is the actor for time-driven transitions.
var System = Actor{}

func (a Actor) IsSystem() bool {
	return a.ID == uuid.Nil
}

func (a Actor) IsAdmin() bool {
	return a.Role == store.RoleAdmin
}

// CanApprove reports whether the actor may record approval decisions.
func (a Actor) CanApprove() bool {
	return a.Role == store.RoleAdmin || a.Role == store.RoleApprover
}

// CanManageCampaigns reports whether the actor may author campaigns and segments.
func (a Actor) CanManageCampaigns() bool {
	return a.IsSystem() || a.Role == store.RoleAdmin || a.Role == store.RoleCampaignManager
}

// CanPrepareData reports whether the actor may build reports and working tables.
func (a Actor) CanPrepareData() bool {
	return a.Role == store.RoleAdmin || a.Role == store.RoleCampaignManager || a.Role == store.RoleAnalyst
}

// Audit builds an audit row attributed to the actor.
func (a Actor) Audit(action, resourceType, resourceID string, changes store.JSONB) store.AuditEntry {
	return store.AuditEntry{
		ActorID:      a.ID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      changes,
		IPAddress:    a.IP,
	}
}
