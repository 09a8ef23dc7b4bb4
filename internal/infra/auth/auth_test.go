package auth

import (
	"context"
	"testing"
	"time"

	"carepush/config"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_bridge_secret_key_very_long_for_testing"

func newTestBridgeConfig(secret string) *config.Config {
	cfg := &config.Config{Bridge: &config.BridgeConfig{Secret: secret, Issuer: "carepush-test"}}

	return cfg
}

func TestBridgeTokenService_IssueAndValidate(t *testing.T) {
	svc, err := NewBridgeTokenService(newTestBridgeConfig(testSecret))
	require.NoError(t, err)

	token, err := svc.IssueToken("shell-1", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "shell-1", claims.Subject)
	assert.Equal(t, "carepush-test", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestBridgeTokenService_RejectsShortSecret(t *testing.T) {
	_, err := NewBridgeTokenService(newTestBridgeConfig("short"))
	assert.Error(t, err)
}

func TestBridgeTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewBridgeTokenService(newTestBridgeConfig(testSecret))
	require.NoError(t, err)

	impl := svc.(*bridgeTokenService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.IssueToken("shell-1", time.Hour)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestBridgeTokenService_RejectsForeignIssuerAndSecret(t *testing.T) {
	issuer, err := NewBridgeTokenService(newTestBridgeConfig(testSecret))
	require.NoError(t, err)

	otherCfg := newTestBridgeConfig("another_bridge_secret_key_also_long_enough")
	other, err := NewBridgeTokenService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.IssueToken("shell-1", time.Hour)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = issuer.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestBridgeTokenService_IssueValidation(t *testing.T) {
	svc, err := NewBridgeTokenService(newTestBridgeConfig(testSecret))
	require.NoError(t, err)

	_, err = svc.IssueToken("", time.Hour)
	assert.Error(t, err)

	_, err = svc.IssueToken("shell-1", 0)
	assert.Error(t, err)
}

func TestSession_SetAndClear(t *testing.T) {
	session := NewSession()
	ctx := context.Background()

	_, ok := session.CurrentUserID(ctx)
	assert.False(t, ok)

	session.SetCurrentUser("u1")
	uid, ok := session.CurrentUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", uid)

	session.ClearCurrentUser()
	uid, ok = session.CurrentUserID(ctx)
	assert.False(t, ok)
	assert.Empty(t, uid)
}

type stubVerifier struct {
	token *fbauth.Token
	err   error
}

func (s stubVerifier) VerifyIDToken(_ context.Context, _ string) (*fbauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier_VerifyIDToken(t *testing.T) {
	ctx := context.Background()

	v := &firebaseVerifier{client: stubVerifier{token: &fbauth.Token{UID: "u1"}}}
	uid, err := v.VerifyIDToken(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)

	_, err = v.VerifyIDToken(ctx, "")
	assert.Error(t, err)

	v = &firebaseVerifier{client: stubVerifier{err: errors.New("expired")}}
	_, err = v.VerifyIDToken(ctx, "id-token")
	assert.Error(t, err)

	v = &firebaseVerifier{client: stubVerifier{token: &fbauth.Token{}}}
	_, err = v.VerifyIDToken(ctx, "id-token")
	assert.Error(t, err)
}
