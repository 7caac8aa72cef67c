package authz_test

import (
	"testing"

	"go-onboarding/internal/authz"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Run("accepts every known role", func(t *testing.T) {
		for _, raw := range []string{"employee", "supervisor", "manager", "hr"} {
			role, err := authz.ParseRole(raw)
			assert.NoError(t, err)
			assert.True(t, role.Valid())
			assert.Equal(t, raw, role.String())
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := authz.ParseRole("admin")
		assert.ErrorIs(t, err, authz.ErrUnknownRole)
	})

	t.Run("rejects empty role", func(t *testing.T) {
		_, err := authz.ParseRole("")
		assert.ErrorIs(t, err, authz.ErrUnknownRole)
	})
}

func TestCapabilities(t *testing.T) {
	cases := []struct {
		role        authz.Role
		canEdit     bool
		canAdvance  bool
		canValidate bool
	}{
		{authz.RoleEmployee, false, false, false},
		{authz.RoleSupervisor, true, true, false},
		{authz.RoleManager, false, false, false},
		{authz.RoleHR, true, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.role.String(), func(t *testing.T) {
			assert.Equal(t, tc.canEdit, authz.CanEditTasks(tc.role))
			assert.Equal(t, tc.canAdvance, authz.CanAdvancePhases(tc.role))
			assert.Equal(t, tc.canValidate, authz.CanValidateTasks(tc.role))
		})
	}
}

func TestCanViewUser(t *testing.T) {
	subject := authz.Subject{UserID: "emp-1", SupervisorID: "sup-1"}

	t.Run("hr bypasses hierarchy", func(t *testing.T) {
		actor := authz.Actor{UserID: "hr-1", Role: authz.RoleHR}
		assert.True(t, authz.CanViewUser(actor, subject))
	})

	t.Run("own record is visible", func(t *testing.T) {
		actor := authz.Actor{UserID: "emp-1", Role: authz.RoleEmployee}
		assert.True(t, authz.CanViewUser(actor, subject))
	})

	t.Run("direct supervisor is allowed", func(t *testing.T) {
		actor := authz.Actor{UserID: "sup-1", Role: authz.RoleSupervisor}
		assert.True(t, authz.CanViewUser(actor, subject))
	})

	t.Run("unrelated supervisor is rejected", func(t *testing.T) {
		actor := authz.Actor{UserID: "sup-2", Role: authz.RoleSupervisor}
		assert.False(t, authz.CanViewUser(actor, subject))
	})

	t.Run("empty supervisor id never matches", func(t *testing.T) {
		orphan := authz.Subject{UserID: "emp-2"}
		actor := authz.Actor{UserID: "", Role: authz.RoleSupervisor}
		assert.False(t, authz.CanViewUser(actor, orphan))
	})
}
