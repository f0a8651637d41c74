package pages

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	g "maragu.dev/gomponents"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/components"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/security"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/signup"
)

type waitlistClient interface {
	Subscribe(ctx context.Context, email, clientIP string) (signup.Reply, error)
	Unsubscribe(ctx context.Context, email, clientIP string) (signup.Reply, error)
}

// Handler serves the HTML pages and the form posts that drive the waitlist widgets.
type Handler struct {
	client   waitlistClient
	tracker  signup.Tracker
	recorder signup.Recorder
	timeout  time.Duration
	log      zerolog.Logger
}

func NewHandler(
	client waitlistClient,
	tracker signup.Tracker,
	recorder signup.Recorder,
	timeout time.Duration,
	logger zerolog.Logger,
) *Handler {
	logger = logger.With().Str("component", "PagesHandler").Logger()
	return &Handler{client: client, tracker: tracker, recorder: recorder, timeout: timeout, log: logger}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.Landing)
	for _, doc := range components.LegalDocuments() {
		r.GET(doc.Path, h.Legal(doc))
	}
	r.GET("/unsubscribe", h.UnsubscribePage)
	r.POST("/waitlist", h.Waitlist)
	r.POST("/unsubscribe", h.Unsubscribe)
}

func (h *Handler) Landing(c *gin.Context) {
	h.render(c, components.LandingPage(components.LandingForms{}))
}

func (h *Handler) Legal(doc components.LegalDocument) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, components.LegalPage(doc))
	}
}

// Waitlist runs one submission of the signup widget and re-renders the landing
// page with the outcome next to the form that was posted.
func (h *Handler) Waitlist(c *gin.Context) {
	form := signup.NewForm(h.client, h.tracker, h.recorder)
	form.SetEmail(c.PostForm("email"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	st, err := form.Submit(ctx, security.ClientIP(c.Request))
	if err != nil {
		h.log.Warn().Err(err).Msg("signup submission refused")
	}
	h.log.Debug().Str("kind", string(st.Kind)).Msg("signup submission finished")

	forms := components.LandingForms{}
	if c.PostForm("form") == components.CTAForm {
		forms.CTA = st
	} else {
		forms.Hero = st
	}
	h.render(c, components.LandingPage(forms))
}

func (h *Handler) UnsubscribePage(c *gin.Context) {
	form := signup.NewUnsubscribeForm(h.client, h.recorder, c.Query("email"))
	h.render(c, components.UnsubscribePage(form.State()))
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	form := signup.NewUnsubscribeForm(h.client, h.recorder, c.PostForm("email"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	st, err := form.Submit(ctx, security.ClientIP(c.Request))
	if err != nil {
		h.log.Warn().Err(err).Msg("unsubscribe submission refused")
	}
	h.render(c, components.UnsubscribePage(st))
}

func (h *Handler) render(c *gin.Context, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to render page")
	}
}
