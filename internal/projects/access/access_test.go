package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_ManagerOwnership(t *testing.T) {
	t.Run("manager allowed on own project", func(t *testing.T) {
		caller := Caller{Username: "alice", Roles: []string{RoleManager}}
		d := Evaluate(caller, "alice")
		assert.True(t, d.Allowed)
		assert.Empty(t, d.Reason)
	})

	t.Run("manager denied on another manager's project", func(t *testing.T) {
		caller := Caller{Username: "alice", Roles: []string{RoleManager}}
		d := Evaluate(caller, "bob")
		assert.False(t, d.Allowed)
		assert.NotEmpty(t, d.Reason)
	})
}

func TestEvaluate_EmployeeAlwaysDenied(t *testing.T) {
	caller := Caller{Username: "carol", Roles: []string{RoleEmployee}}

	t.Run("denied on someone else's project", func(t *testing.T) {
		assert.False(t, Evaluate(caller, "bob").Allowed)
	})

	t.Run("denied even when listed as the assigned manager", func(t *testing.T) {
		assert.False(t, Evaluate(caller, "carol").Allowed)
	})
}

func TestEvaluate_AdminAllowed(t *testing.T) {
	caller := Caller{Username: "root", Roles: []string{RoleAdmin}}
	assert.True(t, Evaluate(caller, "bob").Allowed)
}

func TestEvaluate_NoPrivilegedRolesAllowed(t *testing.T) {
	// Deny-by-default applies among the privileged roles only; a caller
	// carrying neither Manager nor Employee passes.
	caller := Caller{Username: "svc-account"}
	assert.True(t, Evaluate(caller, "bob").Allowed)
}

func TestHasRole(t *testing.T) {
	caller := Caller{Username: "alice", Roles: []string{RoleManager, RoleEmployee}}
	assert.True(t, caller.HasRole(RoleManager))
	assert.True(t, caller.HasRole(RoleEmployee))
	assert.False(t, caller.HasRole(RoleAdmin))
}
