package emailer

import "net/mail"

// envelopeFrom is the bare address used in MAIL FROM. A display-name header such as
// "NutriFlow <bonjour@nutri-flow.me>" is reduced to its address; the SMTP user is
// the fallback when the header cannot be parsed.
func envelopeFrom(from, user string) string {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return user
	}
	return addr.Address
}
