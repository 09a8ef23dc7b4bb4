package impl

import (
	"context"
	"testing"
	"time"

	"carepush/internal/domain/entity"
	"carepush/internal/domain/repository"
	"carepush/internal/domain/service"
	mockRepo "carepush/internal/mocks/repository"
	mockSvc "carepush/internal/mocks/service"
	"carepush/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTokenManager(t *testing.T, os entity.Platform) (
	usecase.TokenUsecase,
	*mockSvc.MockMessagingPlatform,
	*mockRepo.MockTokenRepository,
	*mockSvc.MockAuthProvider,
) {
	platform := mockSvc.NewMockMessagingPlatform(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	auth := mockSvc.NewMockAuthProvider(t)

	platform.EXPECT().Platform().Return(os).Maybe()

	manager := NewTokenManager(newTestConfig(os.String()), newTestLogger(), platform, tokenRepo, auth)

	return manager, platform, tokenRepo, auth
}

func granted() *entity.NotificationSettings {
	return &entity.NotificationSettings{Status: entity.AuthorizationAuthorized, CriticalAlert: true}
}

// expectSubscriptions registers the three listener subscriptions and counts their teardown.
func expectSubscriptions(platform *mockSvc.MockMessagingPlatform, released *int) {
	unsubscribe := service.Unsubscribe(func() { *released++ })

	platform.EXPECT().OnTokenRefresh(mock.Anything).Return(unsubscribe, nil).Once()
	platform.EXPECT().OnMessage(mock.Anything).Return(unsubscribe, nil).Once()
	platform.EXPECT().OnMessageOpenedApp(mock.Anything).Return(unsubscribe, nil).Once()
}

func TestTokenManager_Initialize_PermissionDenied(t *testing.T) {
	manager, platform, _, _ := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()

	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).
		Return(&entity.NotificationSettings{Status: entity.AuthorizationDenied}, nil).Once()

	err := manager.Initialize(ctx, &recordingSink{})

	require.NoError(t, err)
	assert.False(t, manager.IsInitialized())
	assert.Equal(t, entity.StateDisabled, manager.Status().State)
	assert.False(t, manager.Status().HasToken)

	// Disabled is terminal: no further platform calls.
	require.NoError(t, manager.Initialize(ctx, &recordingSink{}))
	assert.False(t, manager.IsInitialized())
}

func TestTokenManager_Initialize_RequestsCriticalAlerts(t *testing.T) {
	manager, platform, _, _ := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()

	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, mock.Anything).
		Run(func(_ context.Context, opts entity.PermissionOptions) {
			assert.True(t, opts.Alert)
			assert.True(t, opts.Badge)
			assert.True(t, opts.Sound)
			assert.True(t, opts.CriticalAlert)
		}).
		Return(&entity.NotificationSettings{Status: entity.AuthorizationDenied}, nil).Once()

	require.NoError(t, manager.Initialize(ctx, &recordingSink{}))
}

func TestTokenManager_Initialize_Success(t *testing.T) {
	manager, platform, tokenRepo, auth := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()
	sink := &recordingSink{}
	launch := &entity.RemoteMessage{MessageID: "launch", Data: map[string]string{"type": "sos_alert"}}
	released := 0

	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().Token(ctx).Return("T1", nil).Once()
	auth.EXPECT().CurrentUserID(ctx).Return("u1", true)
	tokenRepo.EXPECT().
		UpsertToken(ctx, "u1", mock.MatchedBy(func(token *entity.DeliveryToken) bool {
			return token.Value == "T1" && token.Platform == entity.PlatformAndroid
		})).
		Return(nil).Once()
	tokenRepo.EXPECT().FindOwnersByToken(ctx, "T1").Return([]string{"u1"}, nil).Once()
	expectSubscriptions(platform, &released)
	platform.EXPECT().InitialMessage(ctx).Return(launch, nil).Once()

	err := manager.Initialize(ctx, sink)

	require.NoError(t, err)
	assert.True(t, manager.IsInitialized())
	require.Len(t, sink.opened, 1)
	assert.Same(t, launch, sink.opened[0])

	status := manager.Status()
	assert.Equal(t, entity.StateActive, status.State)
	assert.True(t, status.HasToken)
	assert.Equal(t, "T1", status.TokenPrefix)

	// Idempotent once initialized.
	require.NoError(t, manager.Initialize(ctx, sink))

	manager.Close()
	assert.Equal(t, 3, released)
}

func TestTokenManager_Initialize_NoSignedInUserHoldsToken(t *testing.T) {
	manager, platform, _, auth := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()
	released := 0

	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().Token(ctx).Return("T1", nil).Once()
	auth.EXPECT().CurrentUserID(ctx).Return("", false)
	expectSubscriptions(platform, &released)
	platform.EXPECT().InitialMessage(ctx).Return(nil, nil).Once()

	require.NoError(t, manager.Initialize(ctx, &recordingSink{}))

	assert.True(t, manager.IsInitialized())
	assert.True(t, manager.Status().HasToken)
}

func TestTokenManager_Initialize_IOSRetriesAPNSOnce(t *testing.T) {
	manager, platform, _, auth := createTestTokenManager(t, entity.PlatformIOS)
	ctx := context.Background()
	released := 0

	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().APNSToken(ctx).Return("", nil).Once()
	platform.EXPECT().APNSToken(ctx).Return("apns-1", nil).Once()
	platform.EXPECT().Token(ctx).Return("T1", nil).Once()
	auth.EXPECT().CurrentUserID(ctx).Return("", false)
	expectSubscriptions(platform, &released)
	platform.EXPECT().InitialMessage(ctx).Return(nil, nil).Once()

	require.NoError(t, manager.Initialize(ctx, &recordingSink{}))

	assert.True(t, manager.IsInitialized())
	assert.Equal(t, entity.StateActive, manager.Status().State)
}

func TestTokenManager_Initialize_IOSDegradedWithoutAPNS(t *testing.T) {
	manager, platform, _, _ := createTestTokenManager(t, entity.PlatformIOS)
	ctx := context.Background()
	released := 0

	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().APNSToken(ctx).Return("", nil).Twice()
	expectSubscriptions(platform, &released)
	platform.EXPECT().InitialMessage(ctx).Return(nil, nil).Once()

	require.NoError(t, manager.Initialize(ctx, &recordingSink{}))

	status := manager.Status()
	assert.True(t, status.Initialized)
	assert.Equal(t, entity.StateTokenPending, status.State)
	assert.False(t, status.HasToken)
	platform.AssertNotCalled(t, "Token", mock.Anything)
}

func TestTokenManager_Initialize_APNSWaitHonoursContext(t *testing.T) {
	platform := mockSvc.NewMockMessagingPlatform(t)
	platform.EXPECT().Platform().Return(entity.PlatformIOS).Maybe()

	cfg := newTestConfig("ios")
	cfg.Platform.APNSRetryDelay = time.Hour
	manager := NewTokenManager(cfg, newTestLogger(), platform, mockRepo.NewMockTokenRepository(t), mockSvc.NewMockAuthProvider(t))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().APNSToken(ctx).Return("", nil).Once()
	released := 0
	platform.EXPECT().OnTokenRefresh(mock.Anything).Return(func() { released++ }, nil).Once()

	err := manager.Initialize(ctx, &recordingSink{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, manager.IsInitialized())
	assert.Equal(t, 1, released, "refresh subscription is released")
}

func TestTokenManager_Initialize_KeepsRotationDuringTokenFetch(t *testing.T) {
	manager, platform, tokenRepo, auth := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()
	noop := service.Unsubscribe(func() {})

	var onRefresh service.TokenRefreshHandler

	auth.EXPECT().CurrentUserID(ctx).Return("u1", true)
	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().OnTokenRefresh(mock.Anything).
		Run(func(handler service.TokenRefreshHandler) { onRefresh = handler }).
		Return(noop, nil).Once()
	// The token rotates while the stale value is being read.
	platform.EXPECT().Token(ctx).
		Run(func(ctx context.Context) { onRefresh(ctx, "T2") }).
		Return("T1", nil).Once()
	tokenRepo.EXPECT().UpsertToken(ctx, "u1", mock.MatchedBy(func(token *entity.DeliveryToken) bool {
		return token.Value == "T2"
	})).Return(nil).Once()
	tokenRepo.EXPECT().FindOwnersByToken(ctx, "T2").Return([]string{"u1"}, nil).Once()
	platform.EXPECT().OnMessage(mock.Anything).Return(noop, nil).Once()
	platform.EXPECT().OnMessageOpenedApp(mock.Anything).Return(noop, nil).Once()
	platform.EXPECT().InitialMessage(ctx).Return(nil, nil).Once()

	require.NoError(t, manager.Initialize(ctx, &recordingSink{}))

	status := manager.Status()
	assert.Equal(t, entity.StateActive, status.State)
	assert.Equal(t, "T2", status.TokenPrefix)
	tokenRepo.AssertNotCalled(t, "UpsertToken", ctx, "u1", mock.MatchedBy(func(token *entity.DeliveryToken) bool {
		return token.Value == "T1"
	}))
}

func TestTokenManager_Initialize_FailureIsRetryable(t *testing.T) {
	manager, platform, _, auth := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()
	released := 0
	unsubscribe := service.Unsubscribe(func() { released++ })

	auth.EXPECT().CurrentUserID(ctx).Return("", false)

	// First attempt: the foreground subscription fails.
	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().Token(ctx).Return("T1", nil).Once()
	platform.EXPECT().OnTokenRefresh(mock.Anything).Return(unsubscribe, nil).Once()
	platform.EXPECT().OnMessage(mock.Anything).Return(nil, errors.New("listener registry unavailable")).Once()

	err := manager.Initialize(ctx, &recordingSink{})

	require.Error(t, err)
	assert.False(t, manager.IsInitialized())
	assert.Equal(t, 1, released, "partial subscriptions are released")

	// Second attempt succeeds.
	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().Token(ctx).Return("T1", nil).Once()
	expectSubscriptions(platform, &released)
	platform.EXPECT().InitialMessage(ctx).Return(nil, nil).Once()

	require.NoError(t, manager.Initialize(ctx, &recordingSink{}))
	assert.True(t, manager.IsInitialized())
}

func TestTokenManager_Initialize_PermissionErrorIsRetryable(t *testing.T) {
	manager, platform, _, _ := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()

	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(nil, errors.New("prompt failed")).Once()

	require.Error(t, manager.Initialize(ctx, &recordingSink{}))
	assert.False(t, manager.IsInitialized())
	assert.Equal(t, entity.StateUninitialized, manager.Status().State)
}

func TestTokenManager_Initialize_RequiresSink(t *testing.T) {
	manager, _, _, _ := createTestTokenManager(t, entity.PlatformAndroid)

	assert.Error(t, manager.Initialize(context.Background(), nil))
}

func TestTokenManager_Initialize_RoutesPlatformCallbacks(t *testing.T) {
	manager, platform, _, auth := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()
	sink := &recordingSink{}

	var (
		onMessage service.MessageHandler
		onOpened  service.MessageHandler
		onRefresh service.TokenRefreshHandler
	)
	noop := service.Unsubscribe(func() {})

	auth.EXPECT().CurrentUserID(mock.Anything).Return("", false)
	platform.EXPECT().SetBackgroundMessageHandler(mock.Anything).Return(nil).Once()
	platform.EXPECT().RequestPermission(ctx, pushPermissions).Return(granted(), nil).Once()
	platform.EXPECT().Token(ctx).Return("", nil).Once()
	platform.EXPECT().OnTokenRefresh(mock.Anything).
		Run(func(handler service.TokenRefreshHandler) { onRefresh = handler }).
		Return(noop, nil).Once()
	platform.EXPECT().OnMessage(mock.Anything).
		Run(func(handler service.MessageHandler) { onMessage = handler }).
		Return(noop, nil).Once()
	platform.EXPECT().OnMessageOpenedApp(mock.Anything).
		Run(func(handler service.MessageHandler) { onOpened = handler }).
		Return(noop, nil).Once()
	platform.EXPECT().InitialMessage(ctx).Return(nil, nil).Once()

	require.NoError(t, manager.Initialize(ctx, sink))
	assert.Equal(t, entity.StateTokenPending, manager.Status().State)

	onMessage(ctx, &entity.RemoteMessage{MessageID: "fg"})
	onOpened(ctx, &entity.RemoteMessage{MessageID: "tap"})
	onRefresh(ctx, "T9")

	require.Len(t, sink.foreground, 1)
	assert.Equal(t, "fg", sink.foreground[0].MessageID)
	require.Len(t, sink.opened, 1)
	assert.Equal(t, "tap", sink.opened[0].MessageID)
	assert.Equal(t, entity.StateActive, manager.Status().State)
	assert.Equal(t, "T9", manager.Status().TokenPrefix)
}

func TestTokenManager_StoreToken_NoUserIsNoop(t *testing.T) {
	manager, _, _, _ := createTestTokenManager(t, entity.PlatformAndroid)

	// No repository expectations: any call would fail the test.
	manager.StoreToken(context.Background(), "", "T1")
}

func TestTokenManager_StoreToken_FailureIsSwallowed(t *testing.T) {
	manager, _, tokenRepo, _ := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()

	tokenRepo.EXPECT().UpsertToken(ctx, "u1", mock.Anything).Return(errors.New("store offline")).Once()

	assert.NotPanics(t, func() { manager.StoreToken(ctx, "u1", "T1") })
}

func TestTokenManager_StoreToken_EvictsOtherOwners(t *testing.T) {
	manager, _, tokenRepo, _ := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()

	tokenRepo.EXPECT().UpsertToken(ctx, "u2", mock.Anything).Return(nil).Once()
	tokenRepo.EXPECT().FindOwnersByToken(ctx, "T1").Return([]string{"u1", "u2"}, nil).Once()
	tokenRepo.EXPECT().RemoveToken(ctx, "u1", "T1").Return(nil).Once()

	manager.StoreToken(ctx, "u2", "T1")
}

func TestTokenManager_StoreToken_SharedOwnershipWhenDisabled(t *testing.T) {
	platform := mockSvc.NewMockMessagingPlatform(t)
	platform.EXPECT().Platform().Return(entity.PlatformAndroid).Maybe()
	tokenRepo := mockRepo.NewMockTokenRepository(t)

	cfg := newTestConfig("android")
	shared := false
	cfg.Push.ExclusiveOwnership = &shared
	manager := NewTokenManager(cfg, newTestLogger(), platform, tokenRepo, mockSvc.NewMockAuthProvider(t))

	tokenRepo.EXPECT().UpsertToken(mock.Anything, "u2", mock.Anything).Return(nil).Once()

	manager.StoreToken(context.Background(), "u2", "T1")
}

func TestTokenManager_StoreToken_IdempotentUpsert(t *testing.T) {
	repo := newMemoryTokenRepository()
	platform := mockSvc.NewMockMessagingPlatform(t)
	platform.EXPECT().Platform().Return(entity.PlatformIOS).Maybe()
	manager := NewTokenManager(newTestConfig("ios"), newTestLogger(), platform, repo, &fixedAuth{})
	ctx := context.Background()

	manager.StoreToken(ctx, "u1", "T1")
	first, err := repo.FindTokensByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, first, 1)

	manager.StoreToken(ctx, "u1", "T1")
	second, err := repo.FindTokensByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, "T1", second[0].Value)
	assert.Equal(t, entity.PlatformIOS, second[0].Platform)
	assert.True(t, second[0].UpdatedAt.After(first[0].UpdatedAt))
	assert.Equal(t, first[0].IssuedAt, second[0].IssuedAt)
}

func TestTokenManager_RefreshToken_ReplacesRotatedValue(t *testing.T) {
	repo := newMemoryTokenRepository()
	platform := mockSvc.NewMockMessagingPlatform(t)
	platform.EXPECT().Platform().Return(entity.PlatformAndroid).Maybe()
	auth := &fixedAuth{userID: "u1"}
	manager := NewTokenManager(newTestConfig("android"), newTestLogger(), platform, repo, auth)
	ctx := context.Background()

	manager.RefreshToken(ctx, "T1")
	manager.RefreshToken(ctx, "T2")

	tokens, err := manager.TokensForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, tokens, "T2")
	assert.NotContains(t, tokens, "T1")
	assert.Equal(t, "T2", manager.Status().TokenPrefix)
}

func TestTokenManager_RefreshToken_KeepsRotatedValueWhenPruningDisabled(t *testing.T) {
	repo := newMemoryTokenRepository()
	platform := mockSvc.NewMockMessagingPlatform(t)
	platform.EXPECT().Platform().Return(entity.PlatformAndroid).Maybe()

	cfg := newTestConfig("android")
	keep := false
	cfg.Push.PruneRotatedTokens = &keep
	manager := NewTokenManager(cfg, newTestLogger(), platform, repo, &fixedAuth{userID: "u1"})
	ctx := context.Background()

	manager.RefreshToken(ctx, "T1")
	manager.RefreshToken(ctx, "T2")

	tokens, err := manager.TokensForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"T2", "T1"}, tokens)
}

func TestTokenManager_RefreshToken_WithoutUserOnlyUpdatesMemory(t *testing.T) {
	manager, _, _, auth := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()

	auth.EXPECT().CurrentUserID(ctx).Return("", false).Once()

	manager.RefreshToken(ctx, "T2")
	manager.RefreshToken(ctx, "")

	assert.Equal(t, "T2", manager.Status().TokenPrefix)
}

func TestTokenManager_TokensForUser(t *testing.T) {
	manager, _, tokenRepo, _ := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()

	tokenRepo.EXPECT().FindTokensByUser(ctx, "ghost").Return(nil, repository.ErrUserNotFound).Once()
	tokenRepo.EXPECT().FindTokensByUser(ctx, "u1").
		Return([]*entity.DeliveryToken{{Value: "T2"}, nil, {Value: ""}, {Value: "T1"}}, nil).Once()
	tokenRepo.EXPECT().FindTokensByUser(ctx, "broken").Return(nil, errors.New("store offline")).Once()

	tokens, err := manager.TokensForUser(ctx, "ghost")
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)

	tokens, err = manager.TokensForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"T2", "T1"}, tokens)

	_, err = manager.TokensForUser(ctx, "broken")
	assert.Error(t, err)

	tokens, err = manager.TokensForUser(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenManager_TokensForUser_EmptyRecord(t *testing.T) {
	repo := newMemoryTokenRepository()
	platform := mockSvc.NewMockMessagingPlatform(t)
	manager := NewTokenManager(newTestConfig("android"), newTestLogger(), platform, repo, &fixedAuth{})

	tokens, err := manager.TokensForUser(context.Background(), "never-registered")

	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenManager_RemoveCurrentToken_NoTokenIsNoop(t *testing.T) {
	manager, _, _, _ := createTestTokenManager(t, entity.PlatformAndroid)

	// Neither auth nor the repository is consulted.
	assert.NotPanics(t, func() { manager.RemoveCurrentToken(context.Background()) })
}

func TestTokenManager_RemoveCurrentToken(t *testing.T) {
	manager, _, tokenRepo, auth := createTestTokenManager(t, entity.PlatformAndroid)
	ctx := context.Background()

	auth.EXPECT().CurrentUserID(ctx).Return("", false).Once()
	manager.RefreshToken(ctx, "T1")

	// Signed out: no-op.
	auth.EXPECT().CurrentUserID(ctx).Return("", false).Once()
	manager.RemoveCurrentToken(ctx)

	auth.EXPECT().CurrentUserID(ctx).Return("u1", true).Once()
	tokenRepo.EXPECT().RemoveToken(ctx, "u1", "T1").Return(nil).Once()
	manager.RemoveCurrentToken(ctx)

	// Store failures are logged only.
	auth.EXPECT().CurrentUserID(ctx).Return("u1", true).Once()
	tokenRepo.EXPECT().RemoveToken(ctx, "u1", "T1").Return(errors.New("store offline")).Once()
	manager.RemoveCurrentToken(ctx)

	assert.True(t, manager.Status().HasToken, "the device keeps its token after sign-out")
}

func TestTokenManager_SyncCurrentToken(t *testing.T) {
	repo := newMemoryTokenRepository()
	platform := mockSvc.NewMockMessagingPlatform(t)
	platform.EXPECT().Platform().Return(entity.PlatformAndroid).Maybe()
	auth := &fixedAuth{}
	manager := NewTokenManager(newTestConfig("android"), newTestLogger(), platform, repo, auth)
	ctx := context.Background()

	manager.SyncCurrentToken(ctx)
	manager.RefreshToken(ctx, "T1")

	_, err := repo.FindTokensByUser(ctx, "u1")
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	auth.set("u1")
	manager.SyncCurrentToken(ctx)

	tokens, err := manager.TokensForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, tokens)
}
