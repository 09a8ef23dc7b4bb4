package impl

import (
	"context"
	"testing"

	"carepush/internal/domain/entity"
	"carepush/internal/infra/platform/bridge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IOSTokenReleasedByLateAPNSIdentifier(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig("ios")
	cfg.Platform.Permission = "granted"

	shell := bridge.New(cfg, newTestLogger())
	repo := newMemoryTokenRepository()
	auth := &fixedAuth{}
	auth.set("u1")

	manager := NewTokenManager(cfg, newTestLogger(), shell, repo, auth)
	t.Cleanup(manager.Close)

	// The shell reports the delivery token before the APNs identifier exists.
	changed, err := shell.DeliverToken(ctx, "T1")
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, manager.Initialize(ctx, &recordingSink{}))
	assert.Equal(t, entity.StateTokenPending, manager.Status().State)

	shell.SetAPNSToken(ctx, "apns-1")

	status := manager.Status()
	assert.Equal(t, entity.StateActive, status.State)
	assert.True(t, status.HasToken)

	tokens, err := manager.TokensForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, tokens)

	// Re-reporting the same token is not a rotation.
	changed, err = shell.DeliverToken(ctx, "T1")
	require.NoError(t, err)
	assert.False(t, changed)
}
