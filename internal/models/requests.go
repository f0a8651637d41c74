package models

// EmailRequest is the body of both waitlist endpoints.
type EmailRequest struct {
	Email string `json:"email" binding:"required" example:"marie@cabinet-dieteticienne.fr"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type EmailResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type CountResponse struct {
	TotalSubscribers int `json:"total_subscribers"`
}
