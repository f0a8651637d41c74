//go:build unit

package pages_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/handlers/pages"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/handlers/subscription"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/metrics"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/services/subscriptions"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/signup"
)

type fakeClient struct {
	reply signup.Reply
	err   error

	email    string
	clientIP string
}

func (f *fakeClient) Subscribe(_ context.Context, email, clientIP string) (signup.Reply, error) {
	f.email, f.clientIP = email, clientIP
	return f.reply, f.err
}

func (f *fakeClient) Unsubscribe(_ context.Context, email, clientIP string) (signup.Reply, error) {
	f.email, f.clientIP = email, clientIP
	return f.reply, f.err
}

func setupRouter(client *fakeClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pages.NewHandler(client, nil, nil, time.Second, zerolog.Nop()).Register(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStaticPages(t *testing.T) {
	r := setupRouter(&fakeClient{})

	cases := []struct {
		path string
		want string
	}{
		{"/", "NutriFlow Complet"},
		{"/cgu", "Conditions Générales d&#39;Utilisation"},
		{"/cgv", "Formule Cabinet"},
		{"/politique-confidentialite", "Vos droits"},
		{"/mentions-legales", "DigitalOcean"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := get(r, tc.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestWaitlistSubmission(t *testing.T) {
	cases := []struct {
		name     string
		reply    signup.Reply
		err      error
		form     string
		wantText string
		wantKind string
	}{
		{
			name:     "accepted in hero",
			reply:    signup.Reply{Status: http.StatusOK, Body: []byte(`{"message":"ok"}`)},
			form:     "hero",
			wantText: "Merci ! Vous recevrez votre accès dès l&#39;ouverture.",
			wantKind: "message-success",
		},
		{
			name:     "duplicate in cta",
			reply:    signup.Reply{Status: http.StatusBadRequest, Body: []byte(`{"message":"Cette adresse email est déjà inscrite à notre liste."}`)},
			form:     "cta",
			wantText: "Cette adresse email est déjà inscrite !",
			wantKind: "message-error",
		},
		{
			name:     "rate limited",
			reply:    signup.Reply{Status: http.StatusTooManyRequests},
			form:     "hero",
			wantText: "Trop de tentatives. Veuillez patienter quelques minutes.",
			wantKind: "message-error",
		},
		{
			name:     "offline",
			err:      errors.New("connection reset"),
			form:     "hero",
			wantText: "Erreur de connexion. Vérifiez votre connexion internet.",
			wantKind: "message-error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{reply: tc.reply, err: tc.err}
			r := setupRouter(client)

			w := postForm(r, "/waitlist", url.Values{"email": {"  Jane@Example.COM "}, "form": {tc.form}})

			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, tc.wantText)
			assert.Contains(t, body, tc.wantKind)
			assert.Equal(t, "jane@example.com", client.email)
			assert.Equal(t, "203.0.113.7", client.clientIP)

			// The message sits inside the form that was posted.
			formStart := strings.Index(body, `id="signup-`+tc.form+`"`)
			require.NotEqual(t, -1, formStart)
			assert.Greater(t, strings.Index(body, tc.wantKind), formStart)
		})
	}
}

func TestWaitlistEmptyEmail(t *testing.T) {
	client := &fakeClient{}
	r := setupRouter(client)

	w := postForm(r, "/waitlist", url.Values{"email": {"   "}})

	assert.Contains(t, w.Body.String(), signup.MsgEmailRequired)
	assert.Empty(t, client.email)
}

func TestUnsubscribePage(t *testing.T) {
	r := setupRouter(&fakeClient{})

	w := get(r, "/unsubscribe?email=bye%40example.com")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="bye@example.com"`)
	assert.Contains(t, w.Body.String(), `content="noindex, nofollow"`)
}

func TestUnsubscribeSubmission(t *testing.T) {
	cases := []struct {
		name     string
		reply    signup.Reply
		wantText string
	}{
		{"success", signup.Reply{Status: http.StatusOK}, "Vous ne recevrez plus nos emails."},
		{"not found", signup.Reply{Status: http.StatusNotFound}, "n&#39;est pas inscrite à nos communications."},
		{"invalid", signup.Reply{Status: http.StatusBadRequest}, "Veuillez vérifier le format."},
		{"server message", signup.Reply{Status: http.StatusInternalServerError, Body: []byte(`{"message":"Service indisponible"}`)}, "Service indisponible"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(&fakeClient{reply: tc.reply})

			w := postForm(r, "/unsubscribe", url.Values{"email": {"bye@example.com"}})

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantText)
		})
	}
}

type noopWelcomer struct{}

func (noopWelcomer) Welcome(context.Context, models.Subscriber) {}
func (noopWelcomer) Farewell(context.Context, string)           {}

// The landing page form talks to a live subscription API over HTTP.
func TestWaitlistAgainstAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)

	api := gin.New()
	svc := subscriptions.NewService(nil, noopWelcomer{}, zerolog.Nop(), metrics.NewMetrics("pages_test", nil, ""))
	subscription.NewHandler(svc, "1.0.0", zerolog.Nop()).Register(api, nil)
	srv := httptest.NewServer(api)
	defer srv.Close()

	client := signup.NewClient(srv.URL, "http://localhost:3000", srv.Client(), zerolog.Nop())
	site := gin.New()
	pages.NewHandler(client, nil, nil, time.Second, zerolog.Nop()).Register(site)

	ok := postForm(site, "/waitlist", url.Values{"email": {"new@example.com"}})
	assert.Contains(t, ok.Body.String(), "message-success")

	bad := postForm(site, "/waitlist", url.Values{"email": {"not-an-email"}})
	assert.Contains(t, bad.Body.String(), "Une erreur s&#39;est produite. Veuillez réessayer.")
}
