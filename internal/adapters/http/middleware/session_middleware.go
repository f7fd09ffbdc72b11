package middleware

import (
	"strings"

	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the session middlewares.
const (
	LocalSession = "session"
	LocalMember  = "member"
	LocalOfficer = "officer"
)

// MemberAuth requires a valid member session cookie. The decoded session
// and the cached member profile are attached to the request context.
func MemberAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := store.LoadMember(c)
		if !ok {
			return c.Redirect("/", fiber.StatusSeeOther)
		}

		var member domain.Member
		if err := sess.Decode(&member); err != nil {
			store.ClearMember(c)
			return c.Redirect("/", fiber.StatusSeeOther)
		}

		c.Locals(LocalSession, sess)
		c.Locals(LocalMember, &member)
		return c.Next()
	}
}

// OfficerAuth requires a valid officer session cookie.
func OfficerAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := store.LoadOfficer(c)
		if !ok {
			return c.Redirect("/officer-login", fiber.StatusSeeOther)
		}

		var officer domain.Officer
		if err := sess.Decode(&officer); err != nil {
			store.ClearOfficer(c)
			return c.Redirect("/officer-login", fiber.StatusSeeOther)
		}

		c.Locals(LocalSession, sess)
		c.Locals(LocalOfficer, &officer)
		return c.Next()
	}
}

// AdminOnly allows only officers whose position is admin. Must run after
// OfficerAuth.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		officer, ok := c.Locals(LocalOfficer).(*domain.Officer)
		if !ok || !officer.IsAdmin() {
			return c.Redirect("/officer-dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// SessionFrom returns the session attached by MemberAuth or OfficerAuth.
func SessionFrom(c *fiber.Ctx) session.Session {
	sess, _ := c.Locals(LocalSession).(session.Session)
	return sess
}

// MemberFrom returns the cached member profile attached by MemberAuth.
func MemberFrom(c *fiber.Ctx) *domain.Member {
	member, _ := c.Locals(LocalMember).(*domain.Member)
	return member
}

// OfficerFrom returns the cached officer profile attached by OfficerAuth.
func OfficerFrom(c *fiber.Ctx) *domain.Officer {
	officer, _ := c.Locals(LocalOfficer).(*domain.Officer)
	return officer
}

func isOfficerPath(path string) bool {
	return strings.HasPrefix(path, "/officer") || strings.HasPrefix(path, "/admin")
}
