package user

import (
	"time"

	"github.com/wichananm65/drink-shop-backend/internal/session"
)

// User represents an account and maps to the `users` table.
type User struct {
	ID        int          `json:"userId"`
	Email     string       `json:"email"`
	Password  string       `json:"password,omitempty"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Phone     string       `json:"phone"`
	Role      session.Role `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// RolePolicy decides which role an account gets. The mapping is swappable so
// deployments can plug their own resolution without touching the service.
type RolePolicy func(email string) session.Role

// AdminListPolicy grants the admin role to the given emails (compared
// case-insensitively) and the customer role to everyone else.
func AdminListPolicy(adminEmails []string) RolePolicy {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[normalizeEmail(e)] = struct{}{}
	}
	return func(email string) session.Role {
		if _, ok := admins[normalizeEmail(email)]; ok {
			return session.RoleAdmin
		}
		return session.RoleCustomer
	}
}
