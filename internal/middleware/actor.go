package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"
	actorKey       = "actor"
)

// Actor reads the caller identity placed on the request by the gateway.
// Requests without one pass through; handlers that need it call ActorFrom.
func Actor() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if id == "" {
			c.Next()
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid " + UserIDHeader})
			return
		}

		role := domain.Role(c.GetHeader(UserRoleHeader))
		if role == "" {
			role = domain.RoleUser
		}
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid " + UserRoleHeader})
			return
		}

		c.Set(actorKey, domain.Actor{ID: id, Role: role})
		c.Next()
	}
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
