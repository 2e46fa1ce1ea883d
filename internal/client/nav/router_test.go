package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littlerefugees/refugio-cli/internal/client/models"
)

type fakeUsers struct {
	user *models.User
}

func (f *fakeUsers) CurrentUser() *models.User { return f.user }

func newGuardedRouter(users UserSource) *Router {
	r := NewRouter()
	r.Protect("/admin", AdminOnly(users))
	return r
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	users := &fakeUsers{user: &models.User{ID: 1, Role: models.RoleAdmin}}
	r := newGuardedRouter(users)

	require.True(t, r.Navigate("/admin/animals"))
	assert.Equal(t, "/admin/animals", r.Current())
}

func TestAdminOnly_DeniesRegularUserAndRedirectsToRoot(t *testing.T) {
	users := &fakeUsers{user: &models.User{ID: 2, Role: models.RoleUser}}
	r := newGuardedRouter(users)

	require.False(t, r.Navigate("/admin/animals"))
	assert.Equal(t, RootPath, r.Current())
}

func TestAdminOnly_DeniesWhenLoggedOut(t *testing.T) {
	users := &fakeUsers{user: nil}
	r := newGuardedRouter(users)

	require.False(t, r.Navigate("/admin"))
	assert.Equal(t, RootPath, r.Current())
}

func TestNavigate_UnguardedPathsAlwaysPass(t *testing.T) {
	r := newGuardedRouter(&fakeUsers{user: nil})

	require.True(t, r.Navigate("/animals"))
	assert.Equal(t, "/animals", r.Current())

	// "/administration" does not live under "/admin".
	require.True(t, r.Navigate("/administration"))
	assert.Equal(t, "/administration", r.Current())
}

func TestNavigate_GuardReevaluatedAfterSessionChange(t *testing.T) {
	users := &fakeUsers{user: &models.User{ID: 1, Role: models.RoleAdmin}}
	r := newGuardedRouter(users)

	require.True(t, r.Navigate("/admin/adoptions"))

	// Session terminated: the same path now denies.
	users.user = nil
	require.False(t, r.Navigate("/admin/adoptions"))
	assert.Equal(t, RootPath, r.Current())
}
