package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	Role           Role
	TelegramChatID *int64
}

type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleSystem Role = "system"
)

// Actor is whoever triggers a reservation change. Identity and role are
// established by the caller; the engine only checks them against the lifecycle.
type Actor struct {
	ID   string
	Role Role
}

// SystemActor performs automatic transitions such as expiry and conflict compensation.
var SystemActor = Actor{ID: "system", Role: RoleSystem}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsSystem() bool {
	return a.Role == RoleSystem
}
