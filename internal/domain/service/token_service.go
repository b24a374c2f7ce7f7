package service

import "github.com/golang-jwt/jwt/v5"

// Claims are the signed contents of a token. Subject identifies the user;
// username and email ride along depending on the token's purpose (login
// tokens carry the username, verification tokens carry the email).
type Claims struct {
	UserID   int64  `json:"sub_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed identity tokens. The signing secret
// is process-wide configuration, loaded once at startup.
type TokenService interface {
	// IssueLoginToken creates a bearer token binding the user's id and username.
	IssueLoginToken(userID int64, username string) (string, error)

	// IssueVerificationToken creates the token embedded in verification mails,
	// binding the user's id and email.
	IssueVerificationToken(userID int64, email string) (string, error)

	// Verify checks signature and, when present, the expiry claim. It fails
	// closed: any parse or signature error yields domain ErrTokenInvalid,
	// an expired token yields domain ErrTokenExpired, never a partial identity.
	Verify(token string) (*Claims, error)
}
