package api

import "context"

// SessionTerminator force-closes the client session. The session manager
// satisfies this interface.
type SessionTerminator interface {
	Logout(ctx context.Context) error
}

// Notifier is the user-facing notification sink.
type Notifier interface {
	Error(title, message string)
}

// Navigator performs a client-side route transition.
type Navigator interface {
	NavigateTo(path string)
}

// LoginPath is where the interceptor sends the user after a forced logout.
const LoginPath = "/auth/login"

// ExpiredInterceptor reacts to expired-authentication failures: it is the
// only component allowed to terminate a session as a side effect of an
// ordinary request. It is stateless between calls.
type ExpiredInterceptor struct {
	session  SessionTerminator
	notifier Notifier
	nav      Navigator
}

// NewExpiredInterceptor wires the interceptor to its collaborators.
func NewExpiredInterceptor(session SessionTerminator, notifier Notifier, nav Navigator) *ExpiredInterceptor {
	return &ExpiredInterceptor{session: session, notifier: notifier, nav: nav}
}

// HandleExpired clears the session, emits a single user-facing notification
// and redirects to the login screen. Logout errors are ignored: the store is
// being discarded anyway and the redirect must happen regardless.
func (i *ExpiredInterceptor) HandleExpired(ctx context.Context) {
	_ = i.session.Logout(ctx)
	i.notifier.Error("Session expired", "Your session has expired. Please log in again.")
	i.nav.NavigateTo(LoginPath)
}
