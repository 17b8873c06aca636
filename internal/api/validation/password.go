package validation

// ChangePasswordRequest mirrors the fields needed for password change validation.
type ChangePasswordRequest struct {
	Email       string
	NewPassword string
}

// ValidateChangePasswordRequest checks presence and minimum length. It
// returns the caller-facing message for the first failed rule, or "" when
// the request is valid. Length is the only strength rule.
func ValidateChangePasswordRequest(req ChangePasswordRequest) string {
	if req.Email == "" || req.NewPassword == "" {
		return "Email and newPassword are required"
	}
	if len(req.NewPassword) < 8 {
		return "Password must be at least 8 characters long"
	}
	return ""
}
