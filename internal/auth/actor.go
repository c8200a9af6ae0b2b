package auth

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lollyshoppe/internal/model"
)

const actorContextKey = "actor"

// Actor is the resolved local user behind the current request. Every
// operation authorizes against it: admins act on anything, clients only on
// records they own.
type Actor struct {
	UserID uuid.UUID
	Role   model.UserRole
}

// IsAdmin reports whether the actor has the ADMIN role.
func (a *Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

// Owns reports whether the actor is the owning client of a record.
func (a *Actor) Owns(clientID uuid.UUID) bool {
	return a.UserID == clientID
}

// SetActor attaches the resolved actor to the request context.
func SetActor(c echo.Context, actor *Actor) {
	c.Set(actorContextKey, actor)
}

// ActorFrom returns the resolved actor, or nil when the request carries none.
func ActorFrom(c echo.Context) *Actor {
	actor, _ := c.Get(actorContextKey).(*Actor)
	return actor
}
