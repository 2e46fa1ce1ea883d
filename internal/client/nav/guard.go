package nav

import "github.com/littlerefugees/refugio-cli/internal/client/models"

// UserSource exposes the in-memory current user. The session manager
// satisfies this interface.
type UserSource interface {
	CurrentUser() *models.User
}

// AdminOnly allows a transition iff a current user exists and holds the
// ADMIN role; anyone else is bounced to the application root. The check is
// synchronous and reads only in-memory state, so the session must be
// restored before routing starts.
func AdminOnly(users UserSource) Guard {
	return func(nav Navigator) bool {
		if users.CurrentUser().IsAdmin() {
			return true
		}
		nav.NavigateTo(RootPath)
		return false
	}
}
