//go:build unit

package signup_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/signup"
)

func TestUnsubscribeForm_Prefill(t *testing.T) {
	form := signup.NewUnsubscribeForm(nil, nil, " marie@example.com ")

	state := form.State()
	assert.Equal(t, "marie@example.com", state.Email)
	assert.Equal(t, signup.StatusIdle, state.Status)
}

func TestUnsubscribeForm_Submit(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantStatus signup.Status
		wantMsg    string
	}{
		{name: "success", status: http.StatusOK, body: `{"message":"ok"}`,
			wantStatus: signup.StatusSuccess, wantMsg: signup.MsgUnsubscribed},
		{name: "not registered", status: http.StatusNotFound, body: `{}`,
			wantStatus: signup.StatusError, wantMsg: signup.MsgUnsubNotFound},
		{name: "invalid", status: http.StatusBadRequest, body: `{}`,
			wantStatus: signup.StatusError, wantMsg: signup.MsgUnsubInvalid},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`,
			wantStatus: signup.StatusError, wantMsg: signup.MsgUnsubTooMany},
		{name: "server message", status: http.StatusInternalServerError,
			body: `{"message":"Service en maintenance"}`,
			wantStatus: signup.StatusError, wantMsg: "Service en maintenance"},
		{name: "no message", status: http.StatusBadGateway, body: `<html>`,
			wantStatus: signup.StatusError, wantMsg: signup.MsgUnsubGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, got := apiServer(t, tc.status, tc.body)
			client := signup.NewClient(srv.URL, "", srv.Client(), zerolog.Nop())
			form := signup.NewUnsubscribeForm(client, nil, "Marie@Example.com")

			state, err := form.Submit(context.Background(), "")
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, state.Status)
			assert.Equal(t, tc.wantMsg, state.Message)
			req := got.snapshot()
			assert.Equal(t, "/api/unsubscribe", req.path)
			assert.Equal(t, "marie@example.com", req.email)
		})
	}
}

func TestUnsubscribeForm_NetworkError(t *testing.T) {
	client := signup.NewClient("http://api.invalid", "", failingClient(errors.New("reset")), zerolog.Nop())
	form := signup.NewUnsubscribeForm(client, nil, "marie@example.com")

	state, err := form.Submit(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, signup.StatusError, state.Status)
	assert.Equal(t, signup.MsgUnsubOffline, state.Message)
}

func TestUnsubscribeForm_EmptyEmail(t *testing.T) {
	form := signup.NewUnsubscribeForm(nil, nil, "")

	state, err := form.Submit(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, signup.StatusError, state.Status)
	assert.Equal(t, signup.MsgUnsubInvalid, state.Message)
}
