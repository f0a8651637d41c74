package signup

import (
	"context"
	"strings"
	"sync"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

type unsubscribeClient interface {
	Unsubscribe(ctx context.Context, email, clientIP string) (Reply, error)
}

type UnsubscribeState struct {
	Email   string
	Status  Status
	Message string
}

// UnsubscribeForm drives the opt-out page through idle, loading, success and error.
type UnsubscribeForm struct {
	client   unsubscribeClient
	recorder Recorder

	mu      sync.Mutex
	email   string
	status  Status
	message string
}

// NewUnsubscribeForm pre-fills the address, usually from the ?email= query parameter.
func NewUnsubscribeForm(client unsubscribeClient, recorder Recorder, prefill string) *UnsubscribeForm {
	return &UnsubscribeForm{
		client:   client,
		recorder: recorder,
		email:    strings.TrimSpace(prefill),
		status:   StatusIdle,
	}
}

func (f *UnsubscribeForm) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = email
}

func (f *UnsubscribeForm) State() UnsubscribeState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return UnsubscribeState{Email: f.email, Status: f.status, Message: f.message}
}

func (f *UnsubscribeForm) Submit(ctx context.Context, clientIP string) (UnsubscribeState, error) {
	f.mu.Lock()
	if f.status == StatusLoading {
		f.mu.Unlock()
		return f.State(), ErrSubmissionInFlight
	}
	f.status = StatusLoading
	f.message = ""
	email := strings.ToLower(strings.TrimSpace(f.email))
	f.mu.Unlock()

	status, message := f.send(ctx, email, clientIP)

	f.mu.Lock()
	f.status = status
	f.message = message
	f.mu.Unlock()

	if f.recorder != nil {
		f.recorder.RecordWidget("unsubscribe", string(status))
	}
	return f.State(), nil
}

func (f *UnsubscribeForm) send(ctx context.Context, email, clientIP string) (Status, string) {
	if email == "" {
		return StatusError, MsgUnsubInvalid
	}

	reply, err := f.client.Unsubscribe(ctx, email, clientIP)
	if err != nil {
		return StatusError, MsgUnsubOffline
	}
	if reply.OK() {
		return StatusSuccess, MsgUnsubscribed
	}
	return StatusError, UnsubscribeMessage(reply)
}
