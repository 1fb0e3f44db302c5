package models

// RegisterRequest is the JSON body accepted by POST /api/auth/register.
// The plaintext password is hashed immediately after validation and is never
// persisted or logged.
type RegisterRequest struct {
	Email      string `json:"email"`
	GivenNames string `json:"givenNames"`
	Surname    string `json:"surname"`
	Password   string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
