package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const legalUpdated = "28 juin 2025"

// LegalDocument is a static legal text: a list of numbered sections, each made of
// paragraphs, an optional bullet list and optional subsections.
type LegalDocument struct {
	Path     string
	Title    string
	Subtitle string
	Sections []LegalSection
}

type LegalSection struct {
	Heading     string
	Paragraphs  []string
	Items       []string
	Subsections []LegalSection
}

func LegalPage(doc LegalDocument) g.Node {
	return Layout(
		PageConfig{
			Title:       doc.Title + " - NutriFlow",
			Description: doc.Subtitle,
		},
		Topbar(),
		Main(
			Class("legal"),
			Div(
				Class("container narrow"),
				H1(g.Text(doc.Title)),
				P(Class("lead"), g.Text(doc.Subtitle)),
				g.Group(g.Map(doc.Sections, func(s LegalSection) g.Node {
					return legalSection(s, false)
				})),
				P(Class("legal-updated"), g.Text("Dernière mise à jour : "+legalUpdated)),
				A(Class("btn btn-outline"), Href("/"), g.Text("← Retour à l'accueil")),
			),
		),
		PageFooter(),
	)
}

func legalSection(s LegalSection, nested bool) g.Node {
	heading := H2(g.Text(s.Heading))
	if nested {
		heading = H3(g.Text(s.Heading))
	}

	return Section(
		heading,
		g.Group(g.Map(s.Paragraphs, func(p string) g.Node {
			return P(g.Text(p))
		})),
		g.If(len(s.Items) > 0, Ul(g.Group(g.Map(s.Items, func(item string) g.Node {
			return Li(g.Text(item))
		})))),
		g.Group(g.Map(s.Subsections, func(sub LegalSection) g.Node {
			return legalSection(sub, true)
		})),
	)
}

// LegalDocuments lists every legal page served by the site.
func LegalDocuments() []LegalDocument {
	return []LegalDocument{TermsOfUse, TermsOfSale, PrivacyPolicy, LegalNotice}
}
