package utilities

import (
	"testing"

	"critico-backend/internal/model"
)

func TestCanAccessDashboards(t *testing.T) {
	if d := CanAccessDashboards(model.RoleTeacher); !d.Allowed {
		t.Errorf("teacher must reach the dashboards, denied with %q", d.Reason)
	}
	for _, role := range []string{model.RoleStudent, "", "admin"} {
		d := CanAccessDashboards(role)
		if d.Allowed {
			t.Errorf("role %q must not reach the dashboards", role)
		}
		if d.Reason != ReasonNotTeacher {
			t.Errorf("role %q: expected reason %q, got %q", role, ReasonNotTeacher, d.Reason)
		}
	}
}

func TestCanManageCourse(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		caller  uint
		owner   uint
		allowed bool
		reason  string
	}{
		{"owning teacher", model.RoleTeacher, 1, 1, true, ReasonAllowed},
		{"other teacher", model.RoleTeacher, 2, 1, false, ReasonNotOwner},
		{"student, even as owner id", model.RoleStudent, 1, 1, false, ReasonNotTeacher},
		{"missing identity", model.RoleTeacher, 0, 1, false, ReasonUnknownActor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := CanManageCourse(tc.role, tc.caller, tc.owner)
			if d.Allowed != tc.allowed {
				t.Errorf("expected allowed=%v, got %v", tc.allowed, d.Allowed)
			}
			if d.Reason != tc.reason {
				t.Errorf("expected reason %q, got %q", tc.reason, d.Reason)
			}
		})
	}
}
