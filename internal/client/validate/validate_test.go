package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  error
	}{
		{name: "valid", email: "ana@example.com", want: nil},
		{name: "valid subdomain", email: "a.b@mail.example.org", want: nil},
		{name: "empty", email: "", want: ErrEmailRequired},
		{name: "no at", email: "ana.example.com", want: ErrEmailInvalid},
		{name: "no tld", email: "ana@example", want: ErrEmailInvalid},
		{name: "one letter tld", email: "ana@example.c", want: ErrEmailInvalid},
		{name: "spaces", email: "ana @example.com", want: ErrEmailInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Email(tc.email), tc.want)
		})
	}
}

func TestFullName(t *testing.T) {
	assert.NoError(t, FullName("Ana"))
	assert.NoError(t, FullName("José"))
	assert.ErrorIs(t, FullName("Al"), ErrFullNameTooShort)
	assert.ErrorIs(t, FullName(""), ErrFullNameTooShort)
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("secret"))
	assert.NoError(t, Password(strings.Repeat("x", 30)))
	assert.ErrorIs(t, Password("five5"[:5]), ErrPasswordLength)
	assert.ErrorIs(t, Password(strings.Repeat("x", 31)), ErrPasswordLength)
}

func TestPasswordsMatch(t *testing.T) {
	assert.NoError(t, PasswordsMatch("abc123", "abc123"))
	assert.ErrorIs(t, PasswordsMatch("abc123", "abc124"), ErrPasswordMismatch)
}

func TestMessage(t *testing.T) {
	assert.NoError(t, Message("I would love to adopt Luna"))
	assert.ErrorIs(t, Message(""), ErrMessageRequired)
}
