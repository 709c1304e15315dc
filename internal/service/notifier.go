package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"samaysetu/backend/pkg/mailer"
)

const notifyTimeout = 30 * time.Second

// Notifier sends account emails after the state change they announce has been
// persisted. Delivery failures are logged and never propagated, except for the
// password-reset mail which is sent synchronously.
type Notifier struct {
	sender  mailer.Sender
	baseURL string
	logger  *zap.Logger
	wg      sync.WaitGroup
}

// NewNotifier creates a notifier. baseURL prefixes the links in mail bodies.
func NewNotifier(sender mailer.Sender, baseURL string, logger *zap.Logger) *Notifier {
	return &Notifier{sender: sender, baseURL: baseURL, logger: logger}
}

// Verification dispatches the email-verification link.
func (n *Notifier) Verification(to, token string) {
	n.dispatch("verification", mailer.VerificationMessage(n.baseURL, to, token))
}

// Welcome dispatches the post-verification welcome.
func (n *Notifier) Welcome(to, name string) {
	n.dispatch("welcome", mailer.WelcomeMessage(to, name))
}

// Approval dispatches the approval notice.
func (n *Notifier) Approval(to, name string) {
	n.dispatch("approval", mailer.ApprovalMessage(to, name))
}

// Rejection dispatches the rejection notice with its reason.
func (n *Notifier) Rejection(to, name, reason string) {
	n.dispatch("rejection", mailer.RejectionMessage(to, name, reason))
}

// PasswordReset sends the reset link and reports failure to the caller.
func (n *Notifier) PasswordReset(ctx context.Context, to, token string) error {
	return n.sender.Send(ctx, mailer.PasswordResetMessage(n.baseURL, to, token))
}

// Wait blocks until every dispatched message has been handled.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) dispatch(kind string, msg mailer.Message) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := n.sender.Send(ctx, msg); err != nil {
			n.logger.Warn("failed to send notification",
				zap.String("kind", kind),
				zap.String("to", msg.To),
				zap.Error(err),
			)
		}
	}()
}
