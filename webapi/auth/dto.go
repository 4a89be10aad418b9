package auth

// LoginRequest authenticates by email and password. AppKey 1 marks the admin
// console, which only admin accounts may enter.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	AppKey   int    `json:"app_key"`
}

// GenerateOtpRequest re-issues a verification code outside the login flow.
// The credentials are verified again so the endpoint cannot be used to
// enumerate registered emails.
type GenerateOtpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOtpRequest completes an OTP challenge.
type VerifyOtpRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	OtpCode string `json:"otp_code" validate:"required,len=6"`
}
