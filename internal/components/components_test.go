//go:build unit

package components_test

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/components"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/signup"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestLandingPage(t *testing.T) {
	html := render(t, components.LandingPage(components.LandingForms{}))

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `lang="fr"`)
	assert.Contains(t, html, "29€")
	assert.Contains(t, html, "1471€/mois")
	assert.Contains(t, html, "150+ diététiciens")
	assert.Contains(t, html, `id="signup-hero"`)
	assert.Contains(t, html, `id="signup-cta"`)
	assert.Contains(t, html, `href="/mentions-legales"`)
	assert.Contains(t, html, `href="/cgv"`)
	assert.NotContains(t, html, `name="robots"`)
}

func TestSignupForm(t *testing.T) {
	tests := []struct {
		name     string
		state    signup.State
		contains []string
		excludes []string
	}{
		{
			name:     "idle",
			state:    signup.State{},
			contains: []string{"Réserver mon accès gratuit", `name="email"`, "required"},
			excludes: []string{"disabled", "message-"},
		},
		{
			name:     "in flight",
			state:    signup.State{Email: "a@b.fr", InFlight: true},
			contains: []string{"Inscription en cours...", "disabled", `value="a@b.fr"`},
		},
		{
			name:     "success message",
			state:    signup.State{Message: signup.MsgSubscribed, Kind: signup.KindSuccess},
			contains: []string{"message message-success", "Vous recevrez votre accès"},
		},
		{
			name:     "error message",
			state:    signup.State{Email: "dup@b.fr", Message: signup.MsgAlreadyListed, Kind: signup.KindError},
			contains: []string{"message message-error", "déjà inscrite"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, components.SignupForm(components.HeroForm, tt.state))
			for _, s := range tt.contains {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, html, s)
			}
		})
	}
}

func TestUnsubscribePage(t *testing.T) {
	html := render(t, components.UnsubscribePage(signup.UnsubscribeState{
		Email:  "bye@example.com",
		Status: signup.StatusIdle,
	}))

	assert.Contains(t, html, `content="noindex, nofollow"`)
	assert.Contains(t, html, `value="bye@example.com"`)
	assert.Contains(t, html, `action="/unsubscribe"`)

	done := render(t, components.UnsubscribeForm(signup.UnsubscribeState{
		Status:  signup.StatusSuccess,
		Message: signup.MsgUnsubscribed,
	}))
	assert.Contains(t, done, "désabonné(e) avec succès")
	assert.NotContains(t, done, "<form")
}

func TestLegalPages(t *testing.T) {
	docs := components.LegalDocuments()
	require.Len(t, docs, 4)

	for _, doc := range docs {
		t.Run(doc.Path, func(t *testing.T) {
			html := render(t, components.LegalPage(doc))
			assert.Contains(t, html, template.HTMLEscapeString(doc.Title))
			assert.Contains(t, html, "28 juin 2025")
			assert.Contains(t, html, "Retour à l&#39;accueil")
		})
	}
}
