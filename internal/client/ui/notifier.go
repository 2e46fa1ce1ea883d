// Package ui holds the terminal-facing presentation helpers, starting with
// the notification sink used for toast-style messages.
package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultSuppressWindow is how long an identical notification is suppressed
// after being shown. Two concurrent failed requests may both try to report
// "session expired"; only the first one gets through.
const DefaultSuppressWindow = 3 * time.Second

// Notifier prints short-lived user-facing messages, suppressing immediate
// duplicates. Safe for concurrent use.
type Notifier struct {
	mu       sync.Mutex
	w        io.Writer
	window   time.Duration
	now      func() time.Time
	lastMsg  string
	lastSeen time.Time
}

// NewNotifier writes notifications to w with the default suppression window.
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w, window: DefaultSuppressWindow, now: time.Now}
}

func (n *Notifier) emit(kind, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	key := kind + "|" + title + "|" + message
	now := n.now()
	if key == n.lastMsg && now.Sub(n.lastSeen) < n.window {
		return
	}
	n.lastMsg = key
	n.lastSeen = now

	if title != "" {
		fmt.Fprintf(n.w, "[%s] %s: %s\n", kind, title, message)
		return
	}
	fmt.Fprintf(n.w, "[%s] %s\n", kind, message)
}

// Error reports a failure to the user.
func (n *Notifier) Error(title, message string) { n.emit("ERROR", title, message) }

// Success reports a completed action.
func (n *Notifier) Success(title, message string) { n.emit("OK", title, message) }

// Info reports a neutral message.
func (n *Notifier) Info(title, message string) { n.emit("INFO", title, message) }
