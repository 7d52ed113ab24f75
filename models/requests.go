package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned by POST /auth/register.
type RegisterResponse struct {
	User Identity `json:"user"`
}

// RegisterForm is what the user types on the registration screen.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeTerms      bool
}

// ErrorResponse is the error body returned by the CMS.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Text returns whichever message field is populated.
func (e ErrorResponse) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
