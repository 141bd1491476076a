package auth

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pokereview/pkg/config"
)

// JWT issues and verifies HS256 bearer tokens. Issued tokens are not
// tracked anywhere; identity is asserted purely by the signature.
type JWT struct {
	Issuer   string
	Audience string
	Secret   string
	TTL      time.Duration

	// now is swappable in tests.
	now func() time.Time
}

func NewJWT(cfg config.TokenConfig) *JWT {
	return &JWT{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Secret:   cfg.Secret,
		TTL:      config.TokenTTL,
		now:      time.Now,
	}
}

// Issue signs a claims set {id, email, sub=email, jti, iat, iss, aud}
// expiring exactly TTL after issuance.
func (j *JWT) Issue(userID int, email string) (string, error) {
	now := j.clock()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"email": email,
		"sub":   email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(j.TTL).Unix(),
		"iss":   j.Issuer,
		"aud":   j.Audience,
	})

	return token.SignedString([]byte(j.Secret))
}

// Verify checks signature, algorithm, lifetime, issuer and audience
// against the configured values.
func (j *JWT) Verify(tokenString string) (jwt.MapClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.Issuer),
		jwt.WithAudience(j.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.clock),
	)

	token, err := parser.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(j.Secret), nil
	})

	if err != nil {
		slog.Error("Error verifying token", "error", err)
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}

	return token.Claims.(jwt.MapClaims), nil
}

func (j *JWT) clock() time.Time {
	if j.now != nil {
		return j.now()
	}

	return time.Now()
}
