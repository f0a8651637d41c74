package messaging

import "time"

// SubscriberJoinedEvent is published once an address has been accepted on the waitlist.
type SubscriberJoinedEvent struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

type SubscriberLeftEvent struct {
	Email  string    `json:"email"`
	LeftAt time.Time `json:"left_at"`
}
