// Package authz decides, per operation, whether the acting identity may
// proceed. Every protected route declares one of three privilege levels and
// goes through the single Check function; rule specializations (ownership of
// a rental, pickup state) are layered on top by the services.
package authz

import "errors"

var (
	// ErrUnauthorized means no valid identity was presented at all.
	ErrUnauthorized = errors.New("authz: authentication required")
	// ErrForbidden means the identity is valid but lacks the privilege.
	ErrForbidden = errors.New("authz: insufficient privileges")
)

// Identity is the verified claim attached to a request. A nil *Identity is
// an anonymous caller.
type Identity struct {
	UserID  uint
	IsAdmin bool
}

// Privilege is the access level a route or operation demands.
type Privilege int

const (
	// Public needs no identity.
	Public Privilege = iota
	// SelfOrAdmin passes admins and the owner of the target resource.
	SelfOrAdmin
	// AdminOnly passes admins.
	AdminOnly
)

// Check authorizes id against the required privilege. ownerID identifies the
// owner of the target resource and is only consulted for SelfOrAdmin.
func Check(id *Identity, required Privilege, ownerID uint) error {
	if required == Public {
		return nil
	}
	if id == nil {
		return ErrUnauthorized
	}

	switch required {
	case SelfOrAdmin:
		if id.IsAdmin || id.UserID == ownerID {
			return nil
		}
	case AdminOnly:
		if id.IsAdmin {
			return nil
		}
	}

	return ErrForbidden
}
