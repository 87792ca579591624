package models

// RegisterRequest is the body of POST /api/register/.
type RegisterRequest struct {
	// Username is required and must be non-empty.
	Username string `json:"username"`

	// Password is required and must be non-empty. It is transported in
	// plaintext over the wire (TLS is assumed) and hashed before storage.
	Password string `json:"password"`

	// Email is optional and defaults to the empty string.
	Email string `json:"email"`
}

// LoginRequest is the body of POST /api/login/.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the success body of both register and login.
// Message is "User created successfully" or "Login successful".
type AuthResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ErrorResponse is the uniform failure body for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
