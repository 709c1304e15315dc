package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNotifier_DispatchSwallowsFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	n := NewNotifier(sender, "http://localhost:3000", zap.NewNop())

	n.Welcome("asha@mitaoe.ac.in", "Asha")
	n.Approval("asha@mitaoe.ac.in", "Asha")
	n.Wait()

	if got := len(sender.messages()); got != 0 {
		t.Errorf("delivered = %d, want 0", got)
	}
}

func TestNotifier_VerificationLink(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, "http://localhost:3000", zap.NewNop())

	n.Verification("asha@mitaoe.ac.in", "abc")
	n.Wait()

	msgs := sender.messages()
	if len(msgs) != 1 || msgs[0].To != "asha@mitaoe.ac.in" {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if !strings.Contains(msgs[0].Body, "http://localhost:3000/auth/verify-email?token=abc") {
		t.Errorf("body missing link: %s", msgs[0].Body)
	}
}

func TestNotifier_PasswordResetReportsFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	n := NewNotifier(sender, "http://localhost:3000", zap.NewNop())

	if err := n.PasswordReset(context.Background(), "asha@mitaoe.ac.in", "tok"); err == nil {
		t.Error("expected synchronous error from password reset mail")
	}
}
