package signup

import (
	"context"
	"errors"
	"strings"
	"sync"
)

type Kind string

const (
	KindNone    Kind = ""
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const (
	trackAction   = "signup"
	trackCategory = "engagement"
	trackLabel    = "newsletter_signup"
)

var ErrSubmissionInFlight = errors.New("submission already in flight")

// Tracker receives analytics events; optional.
type Tracker interface {
	Track(ctx context.Context, action, category, label string)
}

// Recorder counts submission outcomes; optional.
type Recorder interface {
	RecordWidget(form, outcome string)
}

type subscribeClient interface {
	Subscribe(ctx context.Context, email, clientIP string) (Reply, error)
}

// State is a snapshot of the form as it should be rendered.
type State struct {
	Email    string
	InFlight bool
	Message  string
	Kind     Kind
}

// Form is the waitlist signup widget. One Form allows a single submission at a time.
type Form struct {
	client   subscribeClient
	tracker  Tracker
	recorder Recorder

	mu       sync.Mutex
	email    string
	inFlight bool
	message  string
	kind     Kind
}

func NewForm(client subscribeClient, tracker Tracker, recorder Recorder) *Form {
	return &Form{client: client, tracker: tracker, recorder: recorder}
}

func (f *Form) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = email
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{Email: f.email, InFlight: f.inFlight, Message: f.message, Kind: f.kind}
}

// Submit sends the current address to the API and records the outcome message.
// It returns ErrSubmissionInFlight without sending anything while another
// submission of the same form is running.
func (f *Form) Submit(ctx context.Context, clientIP string) (State, error) {
	email, err := f.begin()
	if err != nil {
		return f.State(), err
	}
	f.run(ctx, email, clientIP)
	return f.State(), nil
}

func (f *Form) run(ctx context.Context, email, clientIP string) {
	defer f.release()

	if email == "" {
		f.finish(MsgEmailRequired, KindError, false)
		return
	}

	reply, err := f.client.Subscribe(ctx, email, clientIP)
	if err != nil {
		f.finish(TransportMessage(err), KindError, false)
		f.record("network_error")
		return
	}

	msg, kind := SubscribeMessage(reply)
	f.finish(msg, kind, kind == KindSuccess)
	if kind != KindSuccess {
		f.record("rejected")
		return
	}

	f.record("success")
	if f.tracker != nil {
		f.tracker.Track(ctx, trackAction, trackCategory, trackLabel)
	}
}

func (f *Form) begin() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return "", ErrSubmissionInFlight
	}
	f.inFlight = true
	f.message = ""
	f.kind = KindNone
	return strings.ToLower(strings.TrimSpace(f.email)), nil
}

func (f *Form) finish(message string, kind Kind, clearInput bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.message = message
	f.kind = kind
	if clearInput {
		f.email = ""
	}
}

func (f *Form) release() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}

func (f *Form) record(outcome string) {
	if f.recorder != nil {
		f.recorder.RecordWidget("signup", outcome)
	}
}
