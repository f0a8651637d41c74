package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/signup"
)

const (
	HeroForm = "hero"
	CTAForm  = "cta"

	submitLabel   = "Réserver mon accès gratuit"
	inFlightLabel = "Inscription en cours..."
)

// SignupForm renders one instance of the waitlist widget. The form name is posted
// back so the page can show the result next to the form that was used.
func SignupForm(name string, st signup.State) g.Node {
	label := submitLabel
	if st.InFlight {
		label = inFlightLabel
	}

	return Form(
		ID("signup-"+name),
		Class("signup-form"),
		Method("post"),
		Action("/waitlist#signup-"+name),
		Input(Type("hidden"), Name("form"), Value(name)),
		Div(
			Class("signup-row"),
			Input(
				Type("email"),
				Name("email"),
				Value(st.Email),
				Placeholder("Votre email pour l'accès prioritaire"),
				AutoComplete("email"),
				Required(),
			),
			Button(
				Type("submit"),
				Class("btn btn-primary"),
				g.If(st.InFlight, Disabled()),
				g.Text(label),
			),
		),
		formMessage(st.Message, st.Kind),
		P(Class("signup-note"), g.Text("✅ Aucun engagement • Se désinscrire en 1 clic • Données supprimées à votre demande")),
	)
}

func formMessage(message string, kind signup.Kind) g.Node {
	if message == "" {
		return nil
	}
	return Div(
		Class(fmt.Sprintf("message message-%s", kind)),
		Role("status"),
		g.Text(message),
	)
}

// UnsubscribeForm renders the opt-out form together with its current status.
func UnsubscribeForm(st signup.UnsubscribeState) g.Node {
	if st.Status == signup.StatusSuccess {
		return Div(
			Class("unsubscribe-done"),
			formMessage(st.Message, signup.KindSuccess),
			A(Class("btn btn-outline"), Href("/"), g.Text("← Retour à l'accueil")),
		)
	}

	loading := st.Status == signup.StatusLoading
	label := "Me désabonner"
	if loading {
		label = "Désabonnement en cours..."
	}

	var kind signup.Kind
	if st.Status == signup.StatusError {
		kind = signup.KindError
	}

	return Form(
		Class("unsubscribe-form"),
		Method("post"),
		Action("/unsubscribe"),
		Label(For("unsubscribe-email"), g.Text("Adresse email")),
		Input(
			ID("unsubscribe-email"),
			Type("email"),
			Name("email"),
			Value(st.Email),
			Placeholder("votre@email.com"),
			AutoComplete("email"),
			Required(),
		),
		Button(
			Type("submit"),
			Class("btn btn-danger"),
			g.If(loading, Disabled()),
			g.Text(label),
		),
		formMessage(st.Message, kind),
	)
}
