package mailer

import (
	"fmt"
	"net/url"
	"strings"
)

const signature = "Best regards,\nSamaySetu Team\nMIT Academy of Engineering, Alandi(D), Pune"

// VerificationMessage carries the email-verification link.
func VerificationMessage(baseURL, to, token string) Message {
	link := joinURL(baseURL, "/auth/verify-email", token)
	return Message{
		To:      to,
		Subject: "SamaySetu - Email Verification",
		Body: "Dear Teacher,\n\n" +
			"Thank you for registering with SamaySetu Timetable Management System.\n\n" +
			"Please verify your email address by clicking the link below:\n" +
			link + "\n\n" +
			"This link will expire in 24 hours.\n\n" +
			"If you did not register for this account, please ignore this email.\n\n" +
			signature,
	}
}

// PasswordResetMessage carries the password-reset link.
func PasswordResetMessage(baseURL, to, token string) Message {
	link := joinURL(baseURL, "/auth/reset-password", token)
	return Message{
		To:      to,
		Subject: "SamaySetu - Password Reset Request",
		Body: "Dear Teacher,\n\n" +
			"We received a request to reset your password.\n\n" +
			"Please click the link below to reset your password:\n" +
			link + "\n\n" +
			"This link will expire in 1 hour.\n\n" +
			"If you did not request a password reset, please ignore this email.\n\n" +
			signature,
	}
}

// WelcomeMessage is sent once the email address is verified.
func WelcomeMessage(to, name string) Message {
	return Message{
		To:      to,
		Subject: "Welcome to SamaySetu!",
		Body: fmt.Sprintf("Dear %s,\n\n", name) +
			"Your email has been successfully verified!\n\n" +
			"Your account is now awaiting approval by an administrator. " +
			"You will receive another email once it has been reviewed.\n\n" +
			signature,
	}
}

// ApprovalMessage is sent when an admin approves the account.
func ApprovalMessage(to, name string) Message {
	return Message{
		To:      to,
		Subject: "SamaySetu - Account Approved",
		Body: fmt.Sprintf("Dear %s,\n\n", name) +
			"Your SamaySetu account has been approved by the administrator.\n\n" +
			"You can now log in to SamaySetu Timetable Management System.\n\n" +
			signature,
	}
}

// RejectionMessage is sent when an admin rejects the account.
func RejectionMessage(to, name, reason string) Message {
	return Message{
		To:      to,
		Subject: "SamaySetu - Account Application Rejected",
		Body: fmt.Sprintf("Dear %s,\n\n", name) +
			"We regret to inform you that your SamaySetu account application has been rejected.\n\n" +
			fmt.Sprintf("Reason: %s\n\n", reason) +
			"If you believe this is a mistake, please contact the administrator.\n\n" +
			signature,
	}
}

func joinURL(baseURL, path, token string) string {
	return strings.TrimRight(baseURL, "/") + path + "?token=" + url.QueryEscape(token)
}
