package subscriptions

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minEmailLength = 5
	maxEmailLength = 254
)

var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`,
)

// Throwaway mailbox providers refused on the waitlist.
var blockedPatterns = []string{
	".temp.",
	".disposable.",
	"10minute",
	"mailinator",
	"guerrillamail",
}

// Normalize lower-cases and trims an address.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail normalizes raw and checks it can join the waitlist.
// Every rejection wraps ErrInvalidEmail.
func ValidateEmail(raw string) (string, error) {
	email := Normalize(raw)

	switch {
	case email == "" || !strings.Contains(email, "@"):
		return "", fmt.Errorf("%w: missing @", ErrInvalidEmail)
	case len(email) < minEmailLength || len(email) > maxEmailLength:
		return "", fmt.Errorf("%w: length %d", ErrInvalidEmail, len(email))
	case strings.Count(email, "@") > 1:
		return "", fmt.Errorf("%w: several @", ErrInvalidEmail)
	case strings.Contains(email, ".."):
		return "", fmt.Errorf("%w: consecutive dots", ErrInvalidEmail)
	case strings.HasPrefix(email, ".") || strings.HasSuffix(email, "."):
		return "", fmt.Errorf("%w: leading or trailing dot", ErrInvalidEmail)
	case !emailPattern.MatchString(email):
		return "", fmt.Errorf("%w: malformed", ErrInvalidEmail)
	}

	for _, p := range blockedPatterns {
		if strings.Contains(email, p) {
			return "", fmt.Errorf("%w: blocked provider", ErrInvalidEmail)
		}
	}

	return email, nil
}
