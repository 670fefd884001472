package models

// LoginRequest is the credential payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the payload for account registration.
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RoleAuthority is the role wrapper shape the auth service uses in both the
// login response and the token payload.
type RoleAuthority struct {
	Authority string `json:"authority"`
}

// JwtResponse is the auth service's answer to login and token refresh.
type JwtResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	TokenType    string          `json:"tokenType,omitempty"`
	ID           string          `json:"id,omitempty"`
	FullName     string          `json:"fullName,omitempty"`
	Email        string          `json:"email,omitempty"`
	Roles        []RoleAuthority `json:"roles,omitempty"`
	Permissions  []string        `json:"permissions,omitempty"`
}
