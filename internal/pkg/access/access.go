// Package access computes effective admin capabilities for a profile.
// It is a pure projection of the current profile fields: no caching and
// no side effects, so a permission revocation takes effect as soon as
// the next profile load is observed.
package access

import (
	"gother/internal/model/auth"
)

// Resolver derives effective access from role, permission set and the
// reserved master serial IDs.
type Resolver struct {
	masterSerialIDs []int64
}

// NewResolver creates a resolver honoring the given reserved serial IDs
func NewResolver(masterSerialIDs []int64) *Resolver {
	ids := make([]int64, len(masterSerialIDs))
	copy(ids, masterSerialIDs)
	return &Resolver{masterSerialIDs: ids}
}

// IsMaster reports whether the profile is a master admin: either it holds
// one of the reserved serial IDs or its stored role is admin.
func (r *Resolver) IsMaster(u *auth.User) bool {
	if u == nil {
		return false
	}
	for _, m := range r.masterSerialIDs {
		if u.SerialID == m {
			return true
		}
	}
	return u.Role == auth.RoleAdmin
}

// EffectiveRole is admin for masters, otherwise the stored role
func (r *Resolver) EffectiveRole(u *auth.User) auth.UserRole {
	if r.IsMaster(u) {
		return auth.RoleAdmin
	}
	if u == nil {
		return auth.RoleUser
	}
	return u.Role
}

// HasAccess reports whether the profile may use the given admin feature.
// Masters bypass the permission set entirely; moderators need the tag in
// their set; everyone else is denied. A missing permission set means no
// access, not an error.
func (r *Resolver) HasAccess(u *auth.User, perm auth.Permission) bool {
	if r.IsMaster(u) {
		return true
	}
	if u == nil || u.Role != auth.RoleModerator {
		return false
	}
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// CanManageStaff is master-only regardless of permission tags
func (r *Resolver) CanManageStaff(u *auth.User) bool {
	return r.IsMaster(u)
}

// DefaultTab picks the landing tab for an admin session: the dashboard
// when permitted, else the first granted permission, else the dashboard.
func (r *Resolver) DefaultTab(u *auth.User) auth.Permission {
	if r.IsMaster(u) || r.HasAccess(u, auth.PermDashboard) {
		return auth.PermDashboard
	}
	if u != nil && len(u.Permissions) > 0 {
		return u.Permissions[0]
	}
	return auth.PermDashboard
}
