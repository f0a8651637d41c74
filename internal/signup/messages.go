package signup

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"
)

const (
	MsgSubscribed      = "Merci ! Vous recevrez votre accès dès l'ouverture."
	MsgTooManyAttempts = "Trop de tentatives. Veuillez patienter quelques minutes."
	MsgAlreadyListed   = "Cette adresse email est déjà inscrite !"
	MsgGenericFailure  = "Une erreur s'est produite. Veuillez réessayer."
	MsgOffline         = "Erreur de connexion. Vérifiez votre connexion internet."
	MsgUnreachable     = "Impossible de contacter le serveur. Réessayez plus tard."
	MsgEmailRequired   = "Veuillez saisir votre adresse email."

	MsgUnsubNotFound    = "Cette adresse email n'est pas inscrite à nos communications."
	MsgUnsubInvalid     = "Adresse email invalide. Veuillez vérifier le format."
	MsgUnsubTooMany     = "Trop de tentatives. Veuillez réessayer dans quelques minutes."
	MsgUnsubGeneric     = "Une erreur est survenue. Veuillez réessayer."
	MsgUnsubOffline     = "Erreur de connexion. Veuillez vérifier votre connexion internet et réessayer."
	MsgUnsubscribed     = "Vous avez été désabonné(e) avec succès. Vous ne recevrez plus nos emails."
	duplicateBodyMarker = "déjà inscrite"
)

// SubscribeMessage maps a subscription API reply to the text shown under the form.
func SubscribeMessage(r Reply) (string, Kind) {
	if r.OK() {
		return MsgSubscribed, KindSuccess
	}
	switch {
	case r.Status == http.StatusTooManyRequests:
		return MsgTooManyAttempts, KindError
	case r.Status == http.StatusBadRequest && strings.Contains(string(r.Body), duplicateBodyMarker):
		return MsgAlreadyListed, KindError
	default:
		return MsgGenericFailure, KindError
	}
}

// TransportMessage maps a request that never got a response.
func TransportMessage(err error) string {
	if unreachable(err) {
		return MsgUnreachable
	}
	return MsgOffline
}

// UnsubscribeMessage maps a non-2xx unsubscribe reply.
func UnsubscribeMessage(r Reply) string {
	switch r.Status {
	case http.StatusNotFound:
		return MsgUnsubNotFound
	case http.StatusBadRequest:
		return MsgUnsubInvalid
	case http.StatusTooManyRequests:
		return MsgUnsubTooMany
	}
	if msg := r.Message(); msg != "" {
		return msg
	}
	return MsgUnsubGeneric
}

// unreachable reports name resolution and connection establishment failures.
func unreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
