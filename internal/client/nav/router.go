// Package nav models client-side navigation: a route registry with guard
// predicates and the current location. Guards are evaluated synchronously
// before a transition; a denied transition leaves the guard free to redirect
// elsewhere (typically the application root).
//
// The router is meant for the single event loop of the UI and is not
// goroutine-safe.
package nav

import "strings"

// Navigator performs a route transition.
type Navigator interface {
	NavigateTo(path string)
}

// Guard decides whether a transition may proceed. A guard that denies is
// expected to redirect via nav itself.
type Guard func(nav Navigator) bool

// RootPath is the application root, where denied navigations land.
const RootPath = "/"

type guardEntry struct {
	prefix string
	guard  Guard
}

// Router tracks the current path and dispatches guards on transitions.
type Router struct {
	current string
	guards  []guardEntry
}

// NewRouter returns a router positioned at the application root.
func NewRouter() *Router {
	return &Router{current: RootPath}
}

// Protect registers a guard for every path under prefix.
func (r *Router) Protect(prefix string, g Guard) {
	r.guards = append(r.guards, guardEntry{prefix: prefix, guard: g})
}

// Current returns the path of the active route.
func (r *Router) Current() string {
	return r.current
}

// Navigate attempts a transition to path. Every guard whose prefix matches
// is evaluated in registration order; the first denial aborts the
// transition (the guard has already redirected). Returns whether the
// transition happened.
func (r *Router) Navigate(path string) bool {
	for _, entry := range r.guards {
		if !matchesPrefix(path, entry.prefix) {
			continue
		}
		if !entry.guard(r) {
			return false
		}
	}
	r.current = path
	return true
}

// NavigateTo is the fire-and-forget form used by collaborators that do not
// care whether the transition was allowed. Satisfies api.Navigator.
func (r *Router) NavigateTo(path string) {
	r.Navigate(path)
}

func matchesPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, strings.TrimRight(prefix, "/")+"/")
}
