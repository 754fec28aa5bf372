// Package authz decides listing visibility and permitted status mutations
// from the caller's identity, role, record ownership and record status.
// Handlers must apply these decisions at the query boundary via ListScope;
// a view never fetches rows it is not entitled to see.
package authz

import (
	"github.com/centralbjl/directory/pkg/models"
	"github.com/centralbjl/directory/pkg/repository"
)

// CanView reports whether actor may see a listing owned by ownerID in the
// given status. A nil actor is an anonymous caller.
func CanView(actor *models.Profile, ownerID string, status models.Status) bool {
	if status == models.StatusActive {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleAdmin || actor.ID == ownerID
}

// CanSetStatus reports whether actor may move a listing owned by ownerID from
// current to next. Admins may trigger any transition. Owners may only flip
// between active and inactive (pause/activate); approval of a pending listing
// stays with admins, including the owner's own submissions.
func CanSetStatus(actor *models.Profile, ownerID string, current, next models.Status) bool {
	if actor == nil {
		return false
	}
	if actor.Role == models.RoleAdmin {
		return true
	}
	if actor.ID != ownerID {
		return false
	}
	switch {
	case current == models.StatusActive && next == models.StatusInactive:
		return true
	case current == models.StatusInactive && next == models.StatusActive:
		return true
	}
	return false
}

// CanDelete reports whether actor may remove a listing owned by ownerID.
func CanDelete(actor *models.Profile, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleAdmin || actor.ID == ownerID
}

// ListScope returns the store-level filters for list queries made on behalf of
// actor. Anonymous callers and plain users browsing public pages see only
// active rows; a user's own dashboard sees all of their rows regardless of
// status; admins see everything.
func ListScope(actor *models.Profile) repository.ListingQuery {
	if actor == nil {
		return repository.ListingQuery{Status: models.StatusActive}
	}
	if actor.Role == models.RoleAdmin {
		return repository.ListingQuery{}
	}
	return repository.ListingQuery{UserID: actor.ID}
}

// PublicScope is the filter for unauthenticated listing pages.
func PublicScope() repository.ListingQuery {
	return repository.ListingQuery{Status: models.StatusActive}
}
