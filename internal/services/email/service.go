package email

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"strings"
)

const (
	htmlHeaders = "MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\""

	welcomeSubject  = "Bienvenue sur la liste d'attente NutriFlow"
	farewellSubject = "Votre désabonnement NutriFlow est confirmé"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Emailer interface {
	Send(to, subject, additionalHeaders, body string) error
}

// Service renders the waitlist emails and hands them to an Emailer.
type Service struct {
	emailer    Emailer
	siteOrigin string
	templates  *template.Template
}

func NewService(service Emailer, siteOrigin string) (*Service, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Service{
		emailer:    service,
		siteOrigin: strings.TrimRight(siteOrigin, "/"),
		templates:  tmpl,
	}, nil
}

func (e *Service) SendWelcome(toEmail string) error {
	body, err := e.render("welcome.html", map[string]string{
		"Email":           toEmail,
		"UnsubscribeLink": UnsubscribeLink(e.siteOrigin, toEmail),
	})
	if err != nil {
		return err
	}
	return e.emailer.Send(toEmail, welcomeSubject, htmlHeaders, body)
}

func (e *Service) SendFarewell(toEmail string) error {
	body, err := e.render("farewell.html", map[string]string{
		"Email":      toEmail,
		"SiteOrigin": e.siteOrigin,
	})
	if err != nil {
		return err
	}
	return e.emailer.Send(toEmail, farewellSubject, htmlHeaders, body)
}

func (e *Service) render(name string, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := e.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// UnsubscribeLink points at the opt-out page with the address pre-filled.
func UnsubscribeLink(siteOrigin, email string) string {
	return strings.TrimRight(siteOrigin, "/") + "/unsubscribe?email=" + url.QueryEscape(email)
}
