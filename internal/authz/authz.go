// Package authz holds the authorization predicates evaluated by handlers.
// There is no role hierarchy: decisions are ownership ("is this the resource
// owner") or the admin flag, expressed as plain functions over
// (principal, resource) so they are testable without HTTP.
package authz

import "github.com/yogastudio/yoga-backend/internal/model"

// IsAdmin reports whether the principal is an administrator.
func IsAdmin(p *model.Principal) bool {
	return p != nil && p.Admin
}

// IsSelf reports whether the principal is the account with the given id.
func IsSelf(p *model.Principal, userID int64) bool {
	return p != nil && p.ID == userID
}

// CanDeleteUser reports whether the principal may delete the given account.
// Account removal is strictly self-service; admins get no override.
func CanDeleteUser(p *model.Principal, userID int64) bool {
	return IsSelf(p, userID)
}
