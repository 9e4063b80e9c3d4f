package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated caller. Handlers read identity
// through this interface instead of reaching into the gin context, which
// keeps services framework-free and testable.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() uuid.UUID
	// PartnerID returns the partner the user acts for, or uuid.Nil for
	// operator accounts that are not bound to a single partner.
	PartnerID() uuid.UUID
	// Roles returns the user's assigned roles.
	Roles() []string
	// HasRole reports whether the user has the given role.
	HasRole(role string) bool
	// IsAuthenticated reports whether the caller is authenticated.
	IsAuthenticated() bool
}

type identity struct {
	userID        uuid.UUID
	partnerID     uuid.UUID
	roles         []string
	authenticated bool
}

func (i *identity) UserID() uuid.UUID    { return i.userID }
func (i *identity) PartnerID() uuid.UUID { return i.partnerID }
func (i *identity) Roles() []string      { return i.roles }

func (i *identity) HasRole(role string) bool {
	for _, r := range i.roles {
		if r == role {
			return true
		}
	}
	return false
}

func (i *identity) IsAuthenticated() bool { return i.authenticated }

// GetIdentity extracts the Identity from a gin context. It returns an
// unauthenticated identity when no user info is present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextUserIDKey)
	if !userOK {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	var roleList []string
	if roles, ok := c.Get(ContextRolesKey); ok {
		roleList, _ = roles.([]string)
	}

	var partnerID uuid.UUID
	if raw, ok := c.Get(ContextPartnerIDKey); ok {
		partnerID, _ = raw.(uuid.UUID)
	}

	return &identity{
		userID:        uid,
		partnerID:     partnerID,
		roles:         roleList,
		authenticated: true,
	}
}

// MustGetIdentity extracts the Identity from a gin context, aborting with
// 401 Unauthorized and returning nil when the caller is not authenticated.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
