package subscription

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/models"
	"github.com/Nazarious-ucu/nutriflow-landing/internal/services/subscriptions"
)

const timeoutDuration = 10 * time.Second

const (
	msgMethodNotAllowed  = "Méthode non autorisée"
	msgInvalidEmail      = "Adresse email invalide"
	msgSubscribed        = "Inscription réussie ! Vérifiez votre email pour commencer votre essai gratuit."
	msgAlreadySubscribed = "Cette adresse email est déjà inscrite à notre liste."
	msgUnsubscribed      = "Vous avez été désabonné(e) avec succès."
	msgNotSubscribed     = "Cette adresse email n'est pas inscrite à nos communications."
	msgInternal          = "Une erreur interne s'est produite. Veuillez réessayer plus tard."
)

type subscriber interface {
	Subscribe(ctx context.Context, email string) (models.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) (string, error)
	Count(ctx context.Context) (int, error)
}

type Handler struct {
	Service subscriber
	Version string
	log     zerolog.Logger
}

func NewHandler(svc subscriber, version string, logger zerolog.Logger) *Handler {
	logger = logger.With().Str("component", "SubscriptionHandler").Logger()
	return &Handler{Service: svc, Version: version, log: logger}
}

// Subscribe
// @Summary Join the waitlist
// @Description Registers an email address for early access to NutriFlow.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Email address"
// @Success 200 {object} models.EmailResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 405 {object} models.MessageResponse
// @Failure 429 {object} models.MessageResponse
// @Failure 500 {object} models.MessageResponse
// @Router /api/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		methodNotAllowed(c)
		return
	}

	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("failed to bind subscribe request")
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidEmail})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	sub, err := h.Service.Subscribe(ctx, req.Email)
	switch {
	case errors.Is(err, subscriptions.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidEmail})
		return
	case errors.Is(err, subscriptions.ErrAlreadySubscribed):
		c.JSON(http.StatusBadRequest, gin.H{"message": msgAlreadySubscribed})
		return
	case err != nil:
		h.log.Error().Err(err).Msg("subscribe failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgSubscribed, "email": sub.Email})
}

// Unsubscribe
// @Summary Leave the waitlist
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Email address"
// @Success 200 {object} models.EmailResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Failure 405 {object} models.MessageResponse
// @Failure 429 {object} models.MessageResponse
// @Router /api/unsubscribe [post]
func (h *Handler) Unsubscribe(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		methodNotAllowed(c)
		return
	}

	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidEmail})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	email, err := h.Service.Unsubscribe(ctx, req.Email)
	switch {
	case errors.Is(err, subscriptions.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidEmail})
		return
	case errors.Is(err, subscriptions.ErrNotSubscribed):
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotSubscribed})
		return
	case err != nil:
		h.log.Error().Err(err).Msg("unsubscribe failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUnsubscribed, "email": email})
}

// Count
// @Summary Number of active subscribers
// @Tags waitlist
// @Produce json
// @Success 200 {object} models.CountResponse
// @Router /api/subscribers/count [get]
func (h *Handler) Count(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	n, err := h.Service.Count(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("count failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_subscribers": n})
}

// Health
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "API is running"})
}

// Info
// @Summary API information
// @Tags ops
// @Produce json
// @Success 200
// @Router /api [get]
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "NutriFlow API", "version": h.Version, "status": "running"})
}

// Register mounts the API routes. guards run, in order, on POST requests to the write
// endpoints only, so other methods always get 405.
func (h *Handler) Register(r gin.IRouter, guards ...gin.HandlerFunc) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("", h.Info)
	api.GET("/subscribers/count", h.Count)
	api.Any("/subscribe", append(postOnly(guards), h.Subscribe)...)
	api.Any("/unsubscribe", append(postOnly(guards), h.Unsubscribe)...)
}

func postOnly(guards []gin.HandlerFunc) []gin.HandlerFunc {
	wrapped := make([]gin.HandlerFunc, 0, len(guards))
	for _, g := range guards {
		if g == nil {
			continue
		}
		wrapped = append(wrapped, func(c *gin.Context) {
			if c.Request.Method != http.MethodPost {
				c.Next()
				return
			}
			g(c)
		})
	}
	return wrapped
}

func methodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, gin.H{"message": msgMethodNotAllowed})
}
