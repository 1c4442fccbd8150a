package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"popdash/internal/api/handler/v1handler"
	"popdash/internal/api/specs/v1specs"
	"popdash/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns a private key and its PEM encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	return sh
}

func bearer(token string) v1specs.BearerAuth {
	return v1specs.BearerAuth{Token: token}
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(tb, err)

	return signed
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signJWTRS256(t, priv, "ops", now, now.Add(time.Hour))
	ctx, err := sh.HandleBearerAuth(context.Background(), v1specs.EnqueueArchiveOperation, bearer(token))
	require.NoError(t, err)
	require.Equal(t, "ops", ctx.Value(v1handler.SubjectKey))
}

func TestHandleBearerAuth_Rejects(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	privOther, _ := genRSAKeys(t)
	now := time.Now()

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{Subject: "ops"}).SignedString(priv)
	require.NoError(t, err)

	cases := map[string]string{
		"invalid signature": signJWTRS256(t, privOther, "ops", now, now.Add(time.Hour)),
		"expired":           signJWTRS256(t, priv, "ops", now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"empty subject":     signJWTRS256(t, priv, "", now, now.Add(time.Hour)),
		"wrong algorithm":   hs256,
		"no expiry":         noExp,
		"garbage":           "not-a-token",
	}

	sh := newSecHandlerForTest(t, pubPEM)
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), v1specs.EnqueueArchiveOperation, bearer(token))
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestHandleBearerAuth_NotConfigured(t *testing.T) {
	priv, _ := genRSAKeys(t)
	sh := newSecHandlerForTest(t, "")

	now := time.Now()
	token := signJWTRS256(t, priv, "ops", now, now.Add(time.Hour))
	_, err := sh.HandleBearerAuth(context.Background(), v1specs.EnqueueArchiveOperation, bearer(token))
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}
