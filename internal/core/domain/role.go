package domain

// Role is the trust tier assigned to an account.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManagement Role = "management"
	RoleUser       Role = "user"
)

// Operation identifies a role-gated administrative action.
type Operation string

const (
	OpListAccounts  Operation = "list_accounts"
	OpUpdateAccount Operation = "update_account"
	OpDeleteAccount Operation = "delete_account"
)

// allowedRoles defines, per operation, the exact set of roles permitted to
// perform it. Authorization is membership in these sets, not a tier
// comparison: management may list accounts but never update or delete them.
var allowedRoles = map[Operation][]Role{
	OpListAccounts:  {RoleAdmin, RoleManagement},
	OpUpdateAccount: {RoleAdmin},
	OpDeleteAccount: {RoleAdmin},
}

// IsValid reports whether r is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManagement, RoleUser:
		return true
	}
	return false
}

// Can reports whether the role is allowed to perform op.
func (r Role) Can(op Operation) bool {
	for _, allowed := range allowedRoles[op] {
		if allowed == r {
			return true
		}
	}
	return false
}

// CanListAccounts reports whether the role may list accounts.
func (r Role) CanListAccounts() bool { return r.Can(OpListAccounts) }

// CanUpdateAccount reports whether the role may update other accounts.
func (r Role) CanUpdateAccount() bool { return r.Can(OpUpdateAccount) }

// CanDeleteAccount reports whether the role may delete accounts.
func (r Role) CanDeleteAccount() bool { return r.Can(OpDeleteAccount) }
