package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	defaultTitle       = "NutriFlow - Logiciel complet pour diététiciens | Plans, suivi, facturation"
	defaultDescription = "NutriFlow simplifie la gestion de votre cabinet de diététique : plans nutritionnels générés par IA en 90 secondes, portail client et facturation automatisée."
)

type PageConfig struct {
	Title       string
	Description string
	// Robots is written to the robots meta tag when set, e.g. "noindex, nofollow".
	Robots string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}

	if config.Description == "" {
		config.Description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("fr"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				g.If(config.Robots != "", Meta(Name("robots"), Content(config.Robots))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("/static/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				g.Group(content),
			),
		),
	})
}

func Logo() g.Node {
	return A(
		Class("logo"),
		Href("/"),
		Span(Class("logo-mark"), g.Text("N")),
		Span(Class("logo-name"), g.Text("NutriFlow")),
	)
}

func Topbar() g.Node {
	return Header(
		Class("topbar"),
		Div(
			Class("container topbar-inner"),
			Logo(),
			Nav(
				Class("topbar-nav"),
				A(Href("/#fonctionnalites"), g.Text("Fonctionnalités")),
				A(Href("/#pourquoi"), g.Text("Pourquoi nous")),
				A(Href("/#tarifs"), g.Text("Tarifs")),
			),
			A(Class("btn btn-primary"), Href("/#inscription"), g.Text("Réserver mon accès gratuit")),
		),
	)
}

type footerLink struct {
	Href  string
	Label string
}

var legalLinks = []footerLink{
	{"/mentions-legales", "Mentions légales"},
	{"/politique-confidentialite", "Politique de confidentialité"},
	{"/cgu", "CGU"},
	{"/cgv", "CGV"},
}

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-brand"),
				Logo(),
				P(g.Text("La plateforme moderne qui simplifie la gestion de votre cabinet de diététique. Conçue par des professionnels, pour des professionnels.")),
				A(Class("btn btn-outline"), Href("/#inscription"), g.Text("Inscription en haut de page")),
			),
			Div(
				P(Class("footer-title"), g.Text("Produit")),
				A(Href("/#fonctionnalites"), g.Text("Fonctionnalités")),
				A(Href("/#pourquoi"), g.Text("Pourquoi nous")),
			),
			Div(
				P(Class("footer-title"), g.Text("Support")),
				A(Href("mailto:contact@nutri-flow.me"), g.Text("Contact")),
			),
		),
		Div(
			Class("container footer-bottom"),
			P(g.Text("© 2025 NutriFlow. Tous droits réservés. Fait avec ❤️ en France.")),
			Nav(
				Class("footer-legal"),
				g.Group(g.Map(legalLinks, func(l footerLink) g.Node {
					return A(Href(l.Href), g.Text(l.Label))
				})),
			),
		),
	)
}
