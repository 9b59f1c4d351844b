// Package access evaluates whether a caller may act on a project.
// It is a leaf package: the policy depends only on the caller's roles
// and the project's assigned manager, never on storage or transport.
package access

// Role names as issued by the identity provider.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// Caller is the authenticated identity an operation runs as. It is
// passed explicitly into every guarded operation rather than read from
// ambient state.
type Caller struct {
	Username string
	Roles    []string
}

func (c Caller) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Decision is the outcome of a policy evaluation. Reason is only set
// when access is denied.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Evaluate decides whether the caller may act on a project owned by
// assignedManager. Managers may only touch their own projects,
// employees may never touch a project record directly, anyone else
// (an admin-equivalent caller) is allowed.
func Evaluate(caller Caller, assignedManager string) Decision {
	if caller.HasRole(RoleEmployee) {
		return deny("employees cannot access project records")
	}
	if caller.HasRole(RoleManager) && caller.Username != assignedManager {
		return deny("project is assigned to another manager")
	}
	return allow()
}
