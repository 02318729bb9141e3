// Package dto provides data transfer objects for HTTP request and response handling.
package dto

// RegisterRequest contains the parameters for account registration.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest contains the credentials for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
