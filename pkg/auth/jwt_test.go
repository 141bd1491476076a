package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"pokereview/pkg/config"
)

func testJWT() *JWT {
	return NewJWT(config.TokenConfig{
		Issuer:   "pokereview-test",
		Audience: "pokereview-clients",
		Secret:   "test-secret",
	})
}

func TestIssueAndVerify(t *testing.T) {
	j := testJWT()

	token, err := j.Issue(42, "ash@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.Verify(token)

	assert.NoError(t, err)
	assert.Equal(t, float64(42), claims["id"])
	assert.Equal(t, "ash@example.com", claims["email"])
	assert.Equal(t, "ash@example.com", claims["sub"])
	assert.Equal(t, "pokereview-test", claims["iss"])
	assert.Equal(t, "pokereview-clients", claims["aud"])
	assert.NotEmpty(t, claims["jti"])
}

func TestTokenExpiresExactlyAfterTTL(t *testing.T) {
	j := testJWT()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return issuedAt }

	token, err := j.Issue(1, "a@b.com")
	assert.NoError(t, err)

	claims, err := j.Verify(token)
	assert.NoError(t, err)

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))

	assert.Equal(t, issuedAt.Unix(), iat)
	assert.Equal(t, issuedAt.Add(time.Hour).Unix(), exp)

	j.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }

	_, err = j.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSignature(t *testing.T) {
	j := testJWT()

	token, err := j.Issue(1, "a@b.com")
	assert.NoError(t, err)

	other := testJWT()
	other.Secret = "another-secret"

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	j := testJWT()

	token, err := j.Issue(1, "a@b.com")
	assert.NoError(t, err)

	other := testJWT()
	other.Issuer = "someone-else"

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	j := testJWT()

	token, err := j.Issue(1, "a@b.com")
	assert.NoError(t, err)

	other := testJWT()
	other.Audience = "other-clients"

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	j := testJWT()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  1,
		"iss": j.Issuer,
		"aud": j.Audience,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = j.Verify(token)
	assert.Error(t, err)
}
