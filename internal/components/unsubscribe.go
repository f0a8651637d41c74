package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/signup"
)

func UnsubscribePage(st signup.UnsubscribeState) g.Node {
	return Layout(
		PageConfig{
			Title:       "Se désabonner - NutriFlow",
			Description: "Désabonnez-vous des communications NutriFlow",
			Robots:      "noindex, nofollow",
		},
		Topbar(),
		Main(
			Class("unsubscribe"),
			Div(
				Class("container narrow card"),
				H1(g.Text("Se désabonner")),
				P(Class("lead"), g.Text("Nous sommes désolés de vous voir partir. Confirmez votre adresse email pour ne plus recevoir nos communications.")),
				UnsubscribeForm(st),
				P(
					Class("unsubscribe-help"),
					g.Text("Une question ? Écrivez-nous à "),
					A(Href("mailto:contact@nutri-flow.me"), g.Text("contact@nutri-flow.me")),
				),
			),
		),
		PageFooter(),
	)
}
