package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The backend signals an invalid or expired token either with a plain 401 or
// with a 403 whose message mentions the token being "inválido" or
// "expirado". The message match is a compatibility heuristic inherited from
// the backend's Spanish error strings; keep it confined to this file so it
// can be replaced by a structured error code without touching call sites.

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldMessage lowercases s and strips combining marks, so "Token Inválido"
// and "token invalido" compare equal.
func foldMessage(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// extractMessage pulls a human-readable message out of an error response
// body: the "message" field when the body is a structured object, the raw
// body text otherwise, "" when the body is empty.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != nil {
		return *payload.Message
	}
	return string(body)
}

// IsAuthExpired classifies an API error as an expired-authentication
// condition: status 401, or status 403 with a message mentioning an invalid
// or expired token.
func IsAuthExpired(err *Error) bool {
	if err == nil {
		return false
	}
	if err.Status == http.StatusUnauthorized {
		return true
	}
	if err.Status != http.StatusForbidden {
		return false
	}

	msg := foldMessage(err.Message)
	if !strings.Contains(msg, "token") {
		return false
	}
	return strings.Contains(msg, "invalido") || strings.Contains(msg, "expirado")
}
