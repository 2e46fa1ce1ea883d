package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestNotifier(window time.Duration) (*Notifier, *bytes.Buffer, *time.Time) {
	var buf bytes.Buffer
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := NewNotifier(&buf)
	n.window = window
	n.now = func() time.Time { return clock }
	return n, &buf, &clock
}

func TestNotifier_PrintsKindTitleAndMessage(t *testing.T) {
	n, buf, _ := newTestNotifier(time.Second)

	n.Error("Session expired", "Please log in again.")
	n.Success("", "Saved.")

	out := buf.String()
	assert.Contains(t, out, "[ERROR] Session expired: Please log in again.")
	assert.Contains(t, out, "[OK] Saved.")
}

func TestNotifier_SuppressesImmediateDuplicate(t *testing.T) {
	n, buf, _ := newTestNotifier(time.Second)

	n.Error("Session expired", "Please log in again.")
	n.Error("Session expired", "Please log in again.")

	assert.Equal(t, 1, strings.Count(buf.String(), "Session expired"))
}

func TestNotifier_DifferentMessagesAreNotSuppressed(t *testing.T) {
	n, buf, _ := newTestNotifier(time.Second)

	n.Error("A", "one")
	n.Error("A", "two")
	n.Info("A", "two")

	out := buf.String()
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "[ERROR] A: two")
	assert.Contains(t, out, "[INFO] A: two")
}

func TestNotifier_DuplicateAllowedAfterWindow(t *testing.T) {
	n, buf, clock := newTestNotifier(time.Second)

	n.Error("A", "one")
	*clock = clock.Add(2 * time.Second)
	n.Error("A", "one")

	assert.Equal(t, 2, strings.Count(buf.String(), "one"))
}
