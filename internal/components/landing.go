package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/signup"
)

// LandingForms carries the state of both waitlist widgets on the landing page.
type LandingForms struct {
	Hero signup.State
	CTA  signup.State
}

func LandingPage(forms LandingForms) g.Node {
	return Layout(
		PageConfig{},
		Topbar(),
		Main(
			BetaBanner(),
			Hero(forms.Hero),
			ProductPreview(),
			Founder(),
			Features(),
			WhyUs(),
			Pricing(),
			ROI(),
			Testimonials(),
			FinalCTA(forms.CTA),
		),
		PageFooter(),
	)
}

func BetaBanner() g.Node {
	return Div(
		Class("beta-banner"),
		g.Text("🔥 Plus que 13 places pour la bêta fermée • Bêta ouvre fin juillet 2025"),
	)
}

func Hero(st signup.State) g.Node {
	return Section(
		ID("inscription"),
		Class("hero"),
		Div(
			Class("container hero-inner"),
			H1(
				g.Text("Arrêtez d'utiliser 100 outils différents"),
				Br(),
				Span(Class("accent"), g.Text("et de perdre 15h/semaine")),
			),
			P(
				Class("lead"),
				g.Text("NutriFlow est un outil complet qui intègre une IA générant des plans personnalisés en 90 secondes. "),
				Strong(g.Text("150+ diététiciens déjà inscrits sur la liste d'attente.")),
			),
			Div(
				Class("use-case"),
				P(Class("use-case-title"), g.Text("Exemple de cas d'usage typique :")),
				P(Class("use-case-quote"), g.Text(`"Femme 34 ans + Diabète type 2 + Intolérance gluten + 1600 kcal + Budget 12€/jour"`)),
				P(Class("use-case-result"), g.Text("✅ Plan nutritionnel complet généré en moins de 2 minutes")),
			),
			SignupForm(HeroForm, st),
			P(Class("hero-social-proof"), g.Text("⚡ 137 inscrits cette semaine • Plus que 13 places bêta")),
			Ul(
				Class("hero-guarantees"),
				Li(g.Text("🇫🇷 Données sécurisées et hébergées en France")),
				Li(g.Text("Accès prioritaire garanti")),
				Li(g.Text("14 jours gratuits dès l'ouverture")),
				Li(g.Text("Support français inclus")),
			),
		),
	)
}

type stat struct {
	Label string
	Value string
}

var dashboardStats = []stat{
	{"Clients actifs", "47"},
	{"Plans ce mois", "128"},
	{"CA ce mois", "€4,290"},
	{"Taux suivi", "94%"},
}

type screen struct {
	Title   string
	Caption string
}

var productScreens = []screen{
	{"📊 Dashboard principal", "Vue d'ensemble de votre activité"},
	{"🤖 Génération IA", "Plans personnalisés en 90 secondes"},
	{"🍽️ Plans alimentaires", "Gestion et modification des plans"},
	{"👥 Gestion clients", "Suivi et communication"},
	{"📅 Rendez-vous", "Calendrier et planification"},
	{"💰 Facturation", "Gestion financière simplifiée"},
}

func ProductPreview() g.Node {
	return Section(
		Class("section preview"),
		Div(
			Class("container"),
			sectionHeading("Aperçu du produit", "Un aperçu de votre tableau de bord",
				"Simple, clair, efficace. Découvrez l'interface qui va transformer votre façon de travailler."),
			Div(
				Class("stats-grid"),
				g.Group(g.Map(dashboardStats, func(s stat) g.Node {
					return Div(
						Class("stat"),
						P(Class("stat-label"), g.Text(s.Label)),
						P(Class("stat-value"), g.Text(s.Value)),
					)
				})),
			),
			Div(
				Class("screens-grid"),
				g.Group(g.Map(productScreens, func(s screen) g.Node {
					return Div(
						Class("card"),
						H3(g.Text(s.Title)),
						P(g.Text(s.Caption)),
					)
				})),
			),
		),
	)
}

func Founder() g.Node {
	return Section(
		Class("section founder"),
		Div(
			Class("container narrow"),
			P(Class("eyebrow"), g.Text("👨‍💻 Créé par un développeur passionné de nutrition")),
			H2(g.Text("Pourquoi j'ai créé NutriFlow")),
			P(g.Text("Je suis Danis, développeur full-stack passionné de sport et nutrition depuis 8 ans. En observant les difficultés des diététiciens indépendants, j'ai décidé de créer une solution.")),
			P(g.Text("Après avoir interrogé 150+ diététiciens, j'ai réalisé qu'ils perdaient tous 15-20 heures par semaine sur des tâches répétitives.")),
			A(
				Class("btn btn-outline"),
				Href("https://www.linkedin.com/in/danis-cindrak/"),
				Target("_blank"),
				Rel("noopener noreferrer"),
				g.Text("Me suivre sur LinkedIn"),
			),
		),
	)
}

type feature struct {
	Title   string
	Summary string
	Example string
	Points  []string
}

var features = []feature{
	{
		Title:   "Plans IA instantanés",
		Summary: "Générez des plans de repas en 90 secondes avec des contraintes complexes. Notre IA traite simultanément toutes les variables nutritionnelles et médicales.",
		Example: `"Femme 45 ans • Diabète type 2 • Intolérance lactose • 1800 kcal/jour • Budget 12€/jour" ⚡ Plan 7 jours généré en 1min 47s avec 21 recettes adaptées`,
		Points:  []string{"Allergies et intolérances automatiques", "Calculs nutritionnels précis", "Listes de courses incluses"},
	},
	{
		Title:   "Portail client intelligent",
		Summary: "Vos clients accèdent à leur espace personnel 24h/24. Suivi des progrès, communication directe, et engagement automatisé pour de meilleurs résultats.",
		Points:  []string{"Suivi des repas en temps réel", "Messagerie intégrée", "Rappels automatiques", "Partage des plans nutritionnels"},
	},
	{
		Title:   "Facturation sans effort",
		Summary: "Factures professionnelles en un clic. Paiements en ligne sécurisés. Export comptable automatique. Concentrez-vous sur vos patients, pas la paperasse.",
		Points:  []string{"Factures aux normes françaises", "Paiements Stripe intégrés", "Export comptable automatique"},
	},
}

func Features() g.Node {
	return Section(
		ID("fonctionnalites"),
		Class("section features"),
		Div(
			Class("container"),
			sectionHeading("Fonctionnalités principales", "Tout ce dont vous avez vraiment besoin",
				"Oubliez les logiciels complexes. Nos outils sont conçus spécifiquement pour simplifier le quotidien des diététiciens indépendants."),
			Div(
				Class("cards-grid"),
				g.Group(g.Map(features, func(f feature) g.Node {
					return Article(
						Class("card feature"),
						H3(g.Text(f.Title)),
						P(g.Text(f.Summary)),
						g.If(f.Example != "", P(Class("feature-example"), g.Text(f.Example))),
						checklist(f.Points),
					)
				})),
			),
		),
	)
}

var (
	painPoints = []string{
		"15-20h/semaine perdues sur des tâches répétitives",
		"Logiciels complexes et pas adaptés aux indépendants",
		"Clients qui abandonnent par manque de suivi",
		"Facturation et comptabilité fastidieuses",
	}
	solutions = []string{
		"IA qui génère des plans en 90 secondes",
		"Interface simple et moderne",
		"Portail client qui engage vos patients",
		"Facturation automatisée",
	}
)

func WhyUs() g.Node {
	return Section(
		ID("pourquoi"),
		Class("section why"),
		Div(
			Class("container"),
			sectionHeading("Pourquoi NutriFlow ?", "Conçu avec les diététiciens, pour les diététiciens",
				"En tant que développeur passionné de nutrition, j'ai interrogé 150+ diététiciens pour comprendre leurs défis quotidiens et créer une solution qui leur fait vraiment gagner du temps."),
			Div(
				Class("compare"),
				Div(
					Class("card compare-pain"),
					H3(g.Text("Ce que j'ai découvert en parlant avec 50+ diététiciens :")),
					Ul(g.Group(g.Map(painPoints, func(p string) g.Node {
						return Li(g.Text("❌ " + p))
					}))),
				),
				Div(
					Class("card compare-solution"),
					H3(g.Text("Ce que je construis avec NutriFlow :")),
					Ul(g.Group(g.Map(solutions, func(s string) g.Node {
						return Li(g.Text("✅ " + s))
					}))),
				),
			),
			Div(
				Class("stats-grid"),
				Div(Class("stat"), P(Class("stat-value"), g.Text("150+")), P(Class("stat-label"), g.Text("Réponses à mon enquête"))),
				Div(Class("stat"), P(Class("stat-value"), g.Text("8 ans")), P(Class("stat-label"), g.Text("D'expérience en développement"))),
				Div(Class("stat"), P(Class("stat-value"), g.Text("0€")), P(Class("stat-label"), g.Text("Avant d'avoir votre validation"))),
			),
		),
	)
}

type perk struct {
	Title  string
	Detail string
}

var pricingPerks = []perk{
	{"Plans IA illimités", "Générez autant de plans que vous voulez"},
	{"Clients illimités", "Portail client pour tous vos patients"},
	{"Facturation automatique", "Factures, paiements, export comptable"},
	{"Support français 24h", "Réponse garantie sous 24h"},
}

func Pricing() g.Node {
	return Section(
		ID("tarifs"),
		Class("section pricing"),
		Div(
			Class("container"),
			sectionHeading("💰 Tarification transparente", "Un prix juste pour votre réussite",
				"Pas de surprise, pas de frais cachés. Un seul abonnement, tous les outils inclus."),
			Div(
				Class("card price-card"),
				P(Class("badge"), g.Text("🔥 Offre de lancement")),
				H3(g.Text("NutriFlow Complet")),
				P(g.Text("Tout ce dont vous avez besoin pour développer votre cabinet")),
				P(Class("price"), g.Text("29€"), Span(g.Text("/mois"))),
				P(Class("price-offer"), g.Text("✨ 3 premiers mois gratuits pour les 50 premiers • 14 jours d'essai gratuit")),
				Ul(
					Class("perks"),
					g.Group(g.Map(pricingPerks, func(p perk) g.Node {
						return Li(Strong(g.Text(p.Title)), Span(g.Text(p.Detail)))
					})),
				),
				A(Class("btn btn-primary"), Href("#inscription"), g.Text("Réserver ma place (13 restantes)")),
				checklist([]string{
					"Annulation possible à tout moment",
					"Remboursement intégral si pas satisfait",
					"Vos données restent chez vous",
				}),
			),
		),
	)
}

func ROI() g.Node {
	return Section(
		Class("section roi"),
		Div(
			Class("container"),
			H2(g.Text("📊 Calculez votre retour sur investissement")),
			Div(
				Class("compare"),
				Div(
					Class("card compare-pain"),
					H3(g.Text("❌ Sans NutriFlow")),
					Ul(
						Li(g.Text("3h/plan × 10 plans/mois = 30h")),
						Li(g.Text("30h × 50€/h = 1500€ perdus")),
						Li(g.Text("Stress + clients insatisfaits")),
					),
				),
				Div(
					Class("card compare-solution"),
					H3(g.Text("✅ Avec NutriFlow")),
					Ul(
						Li(g.Text("90s/plan × 10 plans = 15 minutes")),
						Li(g.Text("Économie: 1471€/mois")),
						Li(g.Text("Clients plus engagés")),
					),
				),
			),
			P(Class("roi-total"), g.Text("ROI: 5,076% dès le premier mois")),
			P(Class("roi-detail"), g.Text("Investissement: 29€ • Gain: 1,471€")),
		),
	)
}

type testimonial struct {
	Quote  string
	Author string
}

var testimonials = []testimonial{
	{
		Quote:  "Je développe NutriFlow AVEC vous, en validant chaque étape. Vous me faites confiance, je vous livre un produit qui fonctionne.",
		Author: "Danis, fondateur",
	},
	{
		Quote:  "15-20 heures par semaine perdues sur des tâches répétitives : c'est le constat partagé par les diététiciens interrogés.",
		Author: "Enquête auprès de 150+ diététiciens",
	},
}

func Testimonials() g.Node {
	return Section(
		Class("section testimonials"),
		Div(
			Class("container cards-grid"),
			g.Group(g.Map(testimonials, func(t testimonial) g.Node {
				return Figure(
					Class("card testimonial"),
					BlockQuote(g.Text(`"` + t.Quote + `"`)),
					FigCaption(g.Text("- " + t.Author)),
				)
			})),
		),
	)
}

func FinalCTA(st signup.State) g.Node {
	return Section(
		Class("section final-cta"),
		Div(
			Class("container narrow"),
			H2(g.Text("Rejoignez la liste d'accès anticipé")),
			P(g.Text("150+ diététiciens déjà inscrits. 14 jours gratuits dès l'ouverture.")),
			SignupForm(CTAForm, st),
		),
	)
}

func sectionHeading(eyebrow, title, lead string) g.Node {
	return Div(
		Class("section-heading"),
		P(Class("eyebrow"), g.Text(eyebrow)),
		H2(g.Text(title)),
		P(Class("lead"), g.Text(lead)),
	)
}

func checklist(items []string) g.Node {
	return Ul(
		Class("checklist"),
		g.Group(g.Map(items, func(item string) g.Node {
			return Li(g.Text("✅ " + item))
		})),
	)
}
