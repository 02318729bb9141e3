package dto

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse contains the public fields of an account. The password hash is
// never part of any response.
type UserResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginResponse contains the issued session token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse contains the authenticated user's profile.
type MeResponse struct {
	User UserResponse `json:"user"`
}
