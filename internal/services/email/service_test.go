//go:build unit

package email_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/nutriflow-landing/internal/services/email"
)

type mockEmailer struct {
	mock.Mock
}

func (m *mockEmailer) Send(to, subject, headers, body string) error {
	args := m.Called(to, subject, headers, body)
	return args.Error(0)
}

func TestSendWelcome(t *testing.T) {
	cases := []struct {
		name    string
		sendErr error
		wantErr bool
	}{
		{"success", nil, false},
		{"mailer error", errors.New("send failed"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockEmailer{}
			m.On("Send", "jane+test@example.com", mock.Anything, mock.Anything, mock.MatchedBy(func(body string) bool {
				return strings.Contains(body, "jane+test@example.com") &&
					strings.Contains(body, "https://nutri-flow.me/unsubscribe?email=jane%2Btest%40example.com") &&
					strings.Contains(body, "14 jours gratuits")
			})).Return(tc.sendErr).Once()
			t.Cleanup(func() { m.AssertExpectations(t) })

			svc, err := email.NewService(m, "https://nutri-flow.me/")
			require.NoError(t, err)

			err = svc.SendWelcome("jane+test@example.com")
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSendFarewell(t *testing.T) {
	m := &mockEmailer{}
	m.On("Send", "bye@example.com", mock.MatchedBy(func(subject string) bool {
		return subject != ""
	}), mock.Anything, mock.Anything).Return(nil).Once()

	svc, err := email.NewService(m, "https://nutri-flow.me")
	require.NoError(t, err)

	require.NoError(t, svc.SendFarewell("bye@example.com"))
	m.AssertExpectations(t)
}

func TestUnsubscribeLink(t *testing.T) {
	assert.Equal(t,
		"http://localhost:8000/unsubscribe?email=a%40b.fr",
		email.UnsubscribeLink("http://localhost:8000/", "a@b.fr"))
}
