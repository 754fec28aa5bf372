package authz_test

import (
	"testing"

	"github.com/centralbjl/directory/internal/authz"
	"github.com/centralbjl/directory/pkg/models"
)

var (
	owner    = &models.Profile{ID: "u1", Name: "Owner", Role: models.RoleUser}
	stranger = &models.Profile{ID: "u2", Name: "Other", Role: models.RoleUser}
	admin    = &models.Profile{ID: "adm", Name: "Admin", Role: models.RoleAdmin}
)

func TestCanView(t *testing.T) {
	tests := []struct {
		name   string
		actor  *models.Profile
		status models.Status
		want   bool
	}{
		{"anonymous active", nil, models.StatusActive, true},
		{"anonymous pending", nil, models.StatusPending, false},
		{"anonymous inactive", nil, models.StatusInactive, false},
		{"stranger active", stranger, models.StatusActive, true},
		{"stranger pending", stranger, models.StatusPending, false},
		{"stranger inactive", stranger, models.StatusInactive, false},
		{"owner pending", owner, models.StatusPending, true},
		{"owner inactive", owner, models.StatusInactive, true},
		{"admin pending", admin, models.StatusPending, true},
		{"admin inactive", admin, models.StatusInactive, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authz.CanView(tt.actor, owner.ID, tt.status); got != tt.want {
				t.Fatalf("CanView = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanSetStatus(t *testing.T) {
	tests := []struct {
		name          string
		actor         *models.Profile
		current, next models.Status
		want          bool
	}{
		{"anonymous approve", nil, models.StatusPending, models.StatusActive, false},
		{"admin approve", admin, models.StatusPending, models.StatusActive, true},
		{"admin reject", admin, models.StatusPending, models.StatusInactive, true},
		{"admin pause", admin, models.StatusActive, models.StatusInactive, true},
		{"admin activate", admin, models.StatusInactive, models.StatusActive, true},
		{"owner pause", owner, models.StatusActive, models.StatusInactive, true},
		{"owner activate", owner, models.StatusInactive, models.StatusActive, true},
		{"owner self-approve", owner, models.StatusPending, models.StatusActive, false},
		{"owner self-reject", owner, models.StatusPending, models.StatusInactive, false},
		{"stranger approve", stranger, models.StatusPending, models.StatusActive, false},
		{"stranger pause", stranger, models.StatusActive, models.StatusInactive, false},
		{"stranger activate", stranger, models.StatusInactive, models.StatusActive, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authz.CanSetStatus(tt.actor, owner.ID, tt.current, tt.next); got != tt.want {
				t.Fatalf("CanSetStatus = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListScope(t *testing.T) {
	if q := authz.ListScope(nil); q.Status != models.StatusActive || q.UserID != "" {
		t.Fatalf("anonymous scope = %+v", q)
	}
	if q := authz.ListScope(owner); q.UserID != owner.ID || q.Status != "" {
		t.Fatalf("owner scope = %+v", q)
	}
	if q := authz.ListScope(admin); q.UserID != "" || q.Status != "" {
		t.Fatalf("admin scope = %+v", q)
	}
	if q := authz.PublicScope(); q.Status != models.StatusActive {
		t.Fatalf("public scope = %+v", q)
	}
}
