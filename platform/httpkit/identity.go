// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity is the caller as established by AuthRequired.
type Identity struct {
	userID uuid.UUID
	roles  []string
}

// UserID returns the token subject, or uuid.Nil for anonymous callers.
func (i Identity) UserID() uuid.UUID {
	return i.userID
}

// Actor is the subject rendered for audit fields; "anonymous" when unset.
func (i Identity) Actor() string {
	if i.userID == uuid.Nil {
		return "anonymous"
	}
	return i.userID.String()
}

// HasRole checks if the caller carries role.
func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.roles, role)
}

// IsAuthenticated reports whether a valid token was presented.
func (i Identity) IsAuthenticated() bool {
	return i.userID != uuid.Nil
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	raw, ok := c.Get(ContextUserIDKey)
	if !ok {
		return Identity{}
	}
	uid, ok := raw.(uuid.UUID)
	if !ok {
		return Identity{}
	}

	var roles []string
	if value, ok := c.Get(ContextRolesKey); ok {
		roles, _ = value.([]string)
	}
	return Identity{userID: uid, roles: roles}
}
