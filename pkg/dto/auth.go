package dto

import "github.com/google/uuid"

// AuthUser is the account snapshot embedded into a token response.
type AuthUser struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// TokenResponse is returned once a login fully succeeds.
type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	User        AuthUser `json:"user"`
}

// OtpChallenge is returned when a login needs email verification before a
// token can be issued. The code itself is never included.
type OtpChallenge struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	OtpGenerated bool      `json:"otp_generated"`
	EmailStatus  string    `json:"email_status"`
	EmailMessage string    `json:"email_message"`
}

// LoginResult carries exactly one of Token or Challenge.
type LoginResult struct {
	Token     *TokenResponse `json:"token,omitempty"`
	Challenge *OtpChallenge  `json:"challenge,omitempty"`
}
