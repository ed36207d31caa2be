// Package rbac decides whether a role may perform an operation. The decision
// is a pure table lookup with no I/O so handlers and middleware can call it
// freely and tests can enumerate the whole matrix.
package rbac

// Role names known to the application. The role column itself is an open
// string set (the source system never constrained it), so unknown values can
// appear in tokens; they simply never match an admin-gated operation.
const (
	RoleCandidate = "candidate"
	RoleMember    = "member"
	RoleAdmin     = "admin"
	RoleChairman  = "chairman"
)

// Operation identifies an action a caller wants to perform.
type Operation string

const (
	OpListEvents       Operation = "events:list"
	OpCreateEvent      Operation = "events:create"
	OpSubmitAttendance Operation = "attendance:submit"
	OpListUsers        Operation = "users:list"
	OpUpdateUserRole   Operation = "users:update_role"
)

// policy maps each operation to the set of roles allowed to perform it. A nil
// entry means any authenticated role is allowed, including roles outside the
// known set above. Unauthenticated callers are rejected before this table is
// consulted.
var policy = map[Operation]map[string]bool{
	OpListEvents:       nil,
	OpSubmitAttendance: nil,
	OpCreateEvent:      {RoleAdmin: true, RoleChairman: true},
	OpListUsers:        {RoleAdmin: true, RoleChairman: true},
	OpUpdateUserRole:   {RoleAdmin: true, RoleChairman: true},
}

// Allowed reports whether the given role may perform op. Unknown operations
// are denied.
func Allowed(role string, op Operation) bool {
	allowed, ok := policy[op]
	if !ok {
		return false
	}
	if allowed == nil {
		return role != ""
	}
	return allowed[role]
}
