// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/kevindev10/ecommerce-api/config"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// All tokens are signed with the single process-wide secret using HMAC-SHA-256.
type jwtService struct {
	secret          string
	accessTTL       time.Duration // zero disables the expiry claim on login tokens
	verificationTTL time.Duration // zero disables the expiry claim on verification tokens
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	svc := &jwtService{secret: cfg.SecretKey.Signing}
	if cfg.Auth != nil {
		svc.accessTTL = cfg.Auth.AccessTokenTTL
		svc.verificationTTL = cfg.Auth.VerificationTokenTTL
	}

	return svc, nil
}

// IssueLoginToken creates the bearer token returned on login.
func (s *jwtService) IssueLoginToken(userID int64, username string) (string, error) {
	return s.sign(&service.Claims{
		UserID:   userID,
		Username: username,
	}, s.accessTTL)
}

// IssueVerificationToken creates the token embedded in the verification mail link.
func (s *jwtService) IssueVerificationToken(userID int64, email string) (string, error) {
	return s.sign(&service.Claims{
		UserID: userID,
		Email:  email,
	}, s.verificationTTL)
}

// Verify checks the signature and, when the claim is present, the expiry.
// It fails closed: every failure maps onto the domain token error taxonomy and
// no partial claims ever escape.
func (s *jwtService) Verify(tokenString string) (claims *service.Claims, err error) {
	// jwt.ParseWithClaims is not expected to panic, but token decoding is the
	// one place untrusted input meets reflection-heavy code. Normalize any
	// panic to a plain rejection rather than letting it propagate.
	defer func() {
		if r := recover(); r != nil {
			claims = nil
			err = domainerrors.ErrTokenInvalid.WrapMessage("panic during token decode")
		}
	}()

	parsed, parseErr := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if parseErr != nil {
		if errors.Is(parseErr, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(parseErr.Error())
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(parseErr.Error())
	}

	tokenClaims, ok := parsed.Claims.(*service.Claims)
	if !ok || !parsed.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected claims type")
	}

	return tokenClaims, nil
}

// sign serializes the claims, stamps issuance time and the optional expiry,
// and signs with the process-wide secret.
func (s *jwtService) sign(claims *service.Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
