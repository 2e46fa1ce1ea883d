package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
	"github.com/littlerefugees/refugio-cli/internal/client/credstore"
	"github.com/littlerefugees/refugio-cli/internal/client/models"
	"github.com/littlerefugees/refugio-cli/internal/client/nav"
	"github.com/littlerefugees/refugio-cli/internal/client/services"
	"github.com/littlerefugees/refugio-cli/internal/client/session"
	"github.com/littlerefugees/refugio-cli/internal/client/ui"
)

// newTestApp wires a full App against an httptest backend and an in-memory
// credentials database, mirroring NewApp without config or stdin.
func newTestApp(t *testing.T, handler http.Handler) *App {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	dsn := "file:app_" + strings.NewReplacer("/", "_", "#", "_").Replace(t.Name()) +
		"?mode=memory&cache=shared"
	store, err := credstore.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sess := session.New(store)
	require.NoError(t, sess.Restore(ctx))

	notifier := ui.NewNotifier(io.Discard)
	router := nav.NewRouter()
	router.Protect("/admin", nav.AdminOnly(sess))

	apiClient := api.New(srv.URL, store,
		api.WithHTTPClient(&http.Client{Transport: &api.AuthTransport{Tokens: store}}),
		api.WithExpiredHandler(api.NewExpiredInterceptor(sess, notifier, router)),
	)

	return &App{
		store:    store,
		session:  sess,
		router:   router,
		notifier: notifier,

		auth:          services.NewAuthService(apiClient),
		animals:       services.NewAnimalService(apiClient),
		adoptions:     services.NewAdoptionService(apiClient),
		users:         services.NewUserService(apiClient),
		shelters:      services.NewShelterService(apiClient, sess),
		adminAnimals:  services.NewAdminAnimalService(apiClient),
		adminRequests: services.NewAdminAdoptionService(apiClient),

		reader: bufio.NewReader(strings.NewReader("")),
	}
}

// promptAnswers replaces the input seams with canned answers, consumed in
// prompt order.
func promptAnswers(t *testing.T, text []string, passwords []string) {
	t.Helper()

	origText, origPw := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		require.NotEmpty(t, text, "unexpected text prompt")
		answer := text[0]
		text = text[1:]
		return answer, nil
	}
	getPassword = func(io.Writer, string) (string, error) {
		require.NotEmpty(t, passwords, "unexpected password prompt")
		answer := passwords[0]
		passwords = passwords[1:]
		return answer, nil
	}
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestLogin_InstallsSession(t *testing.T) {
	silencePrintln(t)
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "ana@example.com", req.Email)

		json.NewEncoder(w).Encode(models.LoginResponse{
			Token: "tok-123",
			User: models.User{
				ID: 1, FullName: "Ana", Email: req.Email,
				Role: models.RoleUser, FirstLoginCompleted: true,
			},
		})
	})

	a := newTestApp(t, mux)
	promptAnswers(t, []string{"ana@example.com"}, []string{"secret1"})

	require.NoError(t, a.Login(ctx))

	u := a.session.CurrentUser()
	require.NotNil(t, u)
	require.Equal(t, "Ana", u.FullName)

	token, err := a.store.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
}

func TestRegister_InvalidEmailNeverHitsBackend(t *testing.T) {
	silencePrintln(t)

	hits := 0
	a := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	promptAnswers(t, []string{"Ana Torres", "not-an-email"}, nil)

	err := a.Register(context.Background())
	require.Error(t, err)
	require.Zero(t, hits)
}

func TestAdmin_GuardDeniesRegularUser(t *testing.T) {
	silencePrintln(t)
	ctx := context.Background()

	hits := 0
	a := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	require.NoError(t, a.session.SetSession(ctx, "tok", &models.User{
		ID: 2, FullName: "Ana", Email: "ana@example.com", Role: models.RoleUser,
	}))

	require.NoError(t, a.Admin(ctx, []string{"animals"}))
	require.Zero(t, hits, "denied navigation must not reach the backend")
	require.Equal(t, nav.RootPath, a.router.Current())
}

func TestChangePassword_TerminatesSession(t *testing.T) {
	silencePrintln(t)
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		var upd services.ProfileUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
		require.Equal(t, "oldpass", upd.CurrentPassword)
		require.Equal(t, "newpass1", upd.NewPassword)

		json.NewEncoder(w).Encode(models.User{ID: 3, FullName: "Ana", Email: "ana@example.com"})
	})

	a := newTestApp(t, mux)
	require.NoError(t, a.session.SetSession(ctx, "tok", &models.User{
		ID: 3, FullName: "Ana", Email: "ana@example.com", Role: models.RoleUser,
	}))
	promptAnswers(t, nil, []string{"oldpass", "newpass1", "newpass1"})

	require.NoError(t, a.ChangePassword(ctx))

	require.Nil(t, a.session.CurrentUser())
	require.Equal(t, api.LoginPath, a.router.Current())

	token, err := a.store.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

// TestSessionLifecycle_RestoreGuardExpire walks the full session arc: a
// persisted admin session survives a restart, the guard admits the admin
// route, a 401 tears the session down, and the guard denies from then on.
func TestSessionLifecycle_RestoreGuardExpire(t *testing.T) {
	silencePrintln(t)
	ctx := context.Background()

	unauthorized := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if unauthorized {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"animals":[]}`))
	}))
	t.Cleanup(srv.Close)

	store, err := credstore.Open(ctx, "file:app_lifecycle?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	admin := &models.User{ID: 9, FullName: "Sofia", Email: "sofia@example.com", Role: models.RoleAdmin}
	require.NoError(t, session.New(store).SetSession(ctx, "tok-admin", admin))

	// Fresh manager over the same store, as after a process restart.
	sess := session.New(store)
	require.NoError(t, sess.Restore(ctx))
	require.False(t, sess.JustLoggedIn(), "restore must not count as a live login")

	router := nav.NewRouter()
	router.Protect("/admin", nav.AdminOnly(sess))
	require.True(t, router.Navigate("/admin/animals"))

	apiClient := api.New(srv.URL, store,
		api.WithExpiredHandler(api.NewExpiredInterceptor(sess, ui.NewNotifier(io.Discard), router)),
	)
	svc := services.NewAdminAnimalService(apiClient)

	_, err = svc.List(ctx, services.AdminAnimalsQuery{})
	require.NoError(t, err)

	unauthorized = true
	_, err = svc.List(ctx, services.AdminAnimalsQuery{})
	require.ErrorIs(t, err, api.ErrSessionExpired)

	require.Nil(t, sess.CurrentUser())
	require.False(t, sess.IsLoggedIn(ctx))
	require.Equal(t, api.LoginPath, router.Current())
	require.False(t, router.Navigate("/admin/animals"))
}

func TestAnimals_ExpiredTokenEndsSessionSilently(t *testing.T) {
	silencePrintln(t)
	ctx := context.Background()

	a := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	require.NoError(t, a.session.SetSession(ctx, "stale-tok", &models.User{
		ID: 4, FullName: "Ana", Email: "ana@example.com", Role: models.RoleUser,
	}))

	err := a.Animals(ctx, nil)
	require.ErrorIs(t, err, api.ErrSessionExpired)

	require.Nil(t, a.session.CurrentUser())
	require.Equal(t, api.LoginPath, a.router.Current())
}
