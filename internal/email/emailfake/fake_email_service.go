// Package emailfake provides a recording mail service for tests.
package emailfake

import (
	"context"
	"time"
)

// SentMail is one recorded activation mail.
type SentMail struct {
	To   string
	Link string
}

// FakeEmailService records every activation mail on a buffered channel
// so tests can wait for the detached send goroutine. Setting Err makes
// every send fail after recording.
type FakeEmailService struct {
	Err  error
	sent chan SentMail
}

func NewFakeEmailService() *FakeEmailService {
	return &FakeEmailService{sent: make(chan SentMail, 8)}
}

func (s *FakeEmailService) SendActivationEmail(ctx context.Context, toEmail, activationLink string) error {
	s.sent <- SentMail{To: toEmail, Link: activationLink}
	return s.Err
}

// WaitForMail blocks until a mail is recorded or the timeout fires.
func (s *FakeEmailService) WaitForMail(timeout time.Duration) (SentMail, bool) {
	select {
	case mail := <-s.sent:
		return mail, true
	case <-time.After(timeout):
		return SentMail{}, false
	}
}
