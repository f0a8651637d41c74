package models

import (
	"errors"
	"time"
)

var (
	ErrSubscriberExists   = errors.New("subscriber already exists")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// Subscriber is a waitlist entry. UnsubscribedAt is set once the address opts out.
type Subscriber struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	CreatedAt      time.Time  `json:"created_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

func (s Subscriber) Active() bool {
	return s.UnsubscribedAt == nil
}
