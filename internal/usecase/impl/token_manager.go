package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"carepush/config"
	"carepush/internal/domain/entity"
	"carepush/internal/domain/repository"
	"carepush/internal/domain/service"
	"carepush/internal/errors"
	"carepush/internal/usecase"
)

// pushPermissions is what the device is asked for. Critical alerts let SOS pushes bypass
// Do-Not-Disturb where the platform supports it.
var pushPermissions = entity.PermissionOptions{
	Alert:         true,
	Badge:         true,
	Sound:         true,
	CriticalAlert: true,
}

type tokenManager struct {
	logger             *slog.Logger
	platform           service.MessagingPlatform
	tokenRepo          repository.TokenRepository
	auth               service.AuthProvider
	apnsRetryDelay     time.Duration
	exclusiveOwnership bool
	pruneRotated       bool

	// initMu serialises Initialize; mu guards the fields below.
	initMu       sync.Mutex
	mu           sync.RWMutex
	state        entity.ManagerState
	initialized  bool
	currentToken string
	refreshes    uint64
	unsubscribes []service.Unsubscribe
}

// NewTokenManager creates the permission and token manager of this device
func NewTokenManager(
	cfg *config.Config,
	logger *slog.Logger,
	platform service.MessagingPlatform,
	tokenRepo repository.TokenRepository,
	auth service.AuthProvider,
) usecase.TokenUsecase {
	return &tokenManager{
		logger:             logger,
		platform:           platform,
		tokenRepo:          tokenRepo,
		auth:               auth,
		apnsRetryDelay:     cfg.Platform.APNSRetryDelay,
		exclusiveOwnership: cfg.Push.IsExclusiveOwnership(),
		pruneRotated:       cfg.Push.IsPruneRotatedTokens(),
		state:              entity.StateUninitialized,
	}
}

// Initialize runs the startup sequence once
func (m *tokenManager) Initialize(ctx context.Context, sink usecase.MessageSink) error {
	if sink == nil {
		return errors.New("message sink is required")
	}

	m.initMu.Lock()
	defer m.initMu.Unlock()

	m.mu.RLock()
	state, initialized := m.state, m.initialized
	m.mu.RUnlock()

	if initialized {
		return nil
	}
	if state == entity.StateDisabled {
		m.logger.Debug("[TokenManager] Push disabled for this session, skipping initialize")

		return nil
	}

	if err := m.platform.SetBackgroundMessageHandler(HandleBackgroundMessage); err != nil {
		return errors.Wrap(err, "failed to register background message handler")
	}

	settings, err := m.platform.RequestPermission(ctx, pushPermissions)
	if err != nil {
		return errors.Wrap(err, "failed to request notification permission")
	}

	if !settings.Status.IsGranted() {
		m.setState(entity.StateDisabled)
		m.logger.Info("[TokenManager] Notification permission not granted, push disabled",
			slog.String("status", string(settings.Status)))

		return nil
	}

	m.logger.Info("[TokenManager] Notification permission granted",
		slog.String("status", string(settings.Status)),
		slog.Bool("critical_alert", settings.CriticalAlert))
	m.setState(entity.StateTokenPending)

	// Listen for rotations before reading the token, so one landing in between is kept.
	unsubscribes := make([]service.Unsubscribe, 0, 3)
	unsubscribe, err := m.platform.OnTokenRefresh(m.RefreshToken)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to token refresh")
	}
	unsubscribes = append(unsubscribes, unsubscribe)

	m.mu.RLock()
	refreshes := m.refreshes
	m.mu.RUnlock()

	token, err := m.fetchToken(ctx)
	if err != nil {
		release(unsubscribes)

		return err
	}
	if token != "" && m.adoptFetchedToken(token, refreshes) {
		m.storeForCurrentUser(ctx, token)
	}

	messageUnsubscribes, err := m.subscribeMessages(sink)
	unsubscribes = append(unsubscribes, messageUnsubscribes...)
	if err != nil {
		release(unsubscribes)

		return err
	}

	initial, err := m.platform.InitialMessage(ctx)
	if err != nil {
		release(unsubscribes)

		return errors.Wrap(err, "failed to read initial message")
	}
	if initial != nil {
		m.logger.Info("[TokenManager] Replaying launch message", slog.String("message_id", initial.MessageID))
		sink.HandleOpened(ctx, initial)
	}

	m.mu.Lock()
	m.unsubscribes = unsubscribes
	m.initialized = true
	m.mu.Unlock()

	m.logger.Info("[TokenManager] Initialized",
		slog.String("platform", m.platform.Platform().String()),
		slog.Bool("has_token", token != ""))

	return nil
}

// fetchToken obtains the delivery token. On platforms that bridge through APNs the identifier
// is polled once more after a delay; without it the device continues without a token.
func (m *tokenManager) fetchToken(ctx context.Context) (string, error) {
	if m.platform.Platform().RequiresBridgingToken() {
		apnsToken, err := m.platform.APNSToken(ctx)
		if err != nil {
			return "", errors.Wrap(err, "failed to read APNs identifier")
		}

		if apnsToken == "" {
			m.logger.Info("[TokenManager] APNs identifier not ready, retrying once",
				slog.Duration("delay", m.apnsRetryDelay))

			timer := time.NewTimer(m.apnsRetryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()

				return "", errors.Wrap(ctx.Err(), "waiting for APNs identifier")
			case <-timer.C:
			}

			apnsToken, err = m.platform.APNSToken(ctx)
			if err != nil {
				return "", errors.Wrap(err, "failed to read APNs identifier")
			}
			if apnsToken == "" {
				m.logger.Warn("[TokenManager] APNs identifier unavailable, continuing without a delivery token")

				return "", nil
			}
		}
	}

	token, err := m.platform.Token(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get delivery token")
	}

	return token, nil
}

func (m *tokenManager) subscribeMessages(sink usecase.MessageSink) ([]service.Unsubscribe, error) {
	unsubscribes := make([]service.Unsubscribe, 0, 2)

	unsubscribe, err := m.platform.OnMessage(sink.HandleForeground)
	if err != nil {
		return unsubscribes, errors.Wrap(err, "failed to subscribe to foreground messages")
	}
	unsubscribes = append(unsubscribes, unsubscribe)

	unsubscribe, err = m.platform.OnMessageOpenedApp(sink.HandleOpened)
	if err != nil {
		return unsubscribes, errors.Wrap(err, "failed to subscribe to opened messages")
	}
	unsubscribes = append(unsubscribes, unsubscribe)

	return unsubscribes, nil
}

// StoreToken upserts the token into the user's set. Failures are logged.
func (m *tokenManager) StoreToken(ctx context.Context, userID, token string) {
	if userID == "" || token == "" {
		m.logger.Debug("[TokenManager] No signed-in user, token held in memory only")

		return
	}

	now := time.Now().UTC()
	err := m.tokenRepo.UpsertToken(ctx, userID, &entity.DeliveryToken{
		Value:     token,
		Platform:  m.platform.Platform(),
		IssuedAt:  now,
		UpdatedAt: now,
	})
	if err != nil {
		m.logger.Error("[TokenManager] Failed to store delivery token",
			slog.String("user_id", userID),
			slog.String("token_prefix", entity.TokenPrefix(token)),
			slog.Any("error", err))

		return
	}

	m.logger.Info("[TokenManager] Delivery token stored",
		slog.String("user_id", userID),
		slog.String("token_prefix", entity.TokenPrefix(token)))

	if m.exclusiveOwnership {
		m.evictOtherOwners(ctx, userID, token)
	}
}

// evictOtherOwners removes the token from every other user, so a shared device that changed
// hands does not keep notifying the previous user.
func (m *tokenManager) evictOtherOwners(ctx context.Context, userID, token string) {
	owners, err := m.tokenRepo.FindOwnersByToken(ctx, token)
	if err != nil {
		m.logger.Warn("[TokenManager] Failed to look up token owners",
			slog.String("token_prefix", entity.TokenPrefix(token)),
			slog.Any("error", err))

		return
	}

	for _, owner := range owners {
		if owner == userID {
			continue
		}

		if err := m.tokenRepo.RemoveToken(ctx, owner, token); err != nil {
			m.logger.Warn("[TokenManager] Failed to evict token from previous owner",
				slog.String("user_id", owner),
				slog.Any("error", err))

			continue
		}

		m.logger.Info("[TokenManager] Token evicted from previous owner", slog.String("user_id", owner))
	}
}

// SyncCurrentToken stores the held token after a sign-in
func (m *tokenManager) SyncCurrentToken(ctx context.Context) {
	m.mu.RLock()
	token := m.currentToken
	m.mu.RUnlock()

	if token == "" {
		return
	}

	m.storeForCurrentUser(ctx, token)
}

// RefreshToken replaces the current token, stores it and prunes the superseded value
func (m *tokenManager) RefreshToken(ctx context.Context, newToken string) {
	if newToken == "" {
		return
	}

	previous := m.adoptToken(newToken)

	m.logger.Info("[TokenManager] Delivery token refreshed",
		slog.String("token_prefix", entity.TokenPrefix(newToken)),
		slog.Bool("changed", previous != newToken))

	userID, ok := m.auth.CurrentUserID(ctx)
	if !ok {
		return
	}

	m.StoreToken(ctx, userID, newToken)

	if m.pruneRotated && previous != "" && previous != newToken {
		if err := m.tokenRepo.RemoveToken(ctx, userID, previous); err != nil {
			m.logger.Warn("[TokenManager] Failed to prune rotated token",
				slog.String("user_id", userID),
				slog.String("token_prefix", entity.TokenPrefix(previous)),
				slog.Any("error", err))
		}
	}
}

// TokensForUser reads the user's token values
func (m *tokenManager) TokensForUser(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return []string{}, nil
	}

	tokens, err := m.tokenRepo.FindTokensByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []string{}, nil
		}

		return nil, errors.Wrap(err, "failed to read user tokens")
	}

	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == nil || token.Value == "" {
			continue
		}
		values = append(values, token.Value)
	}

	return values, nil
}

// RemoveCurrentToken removes this device's token from the signed-in user's set. The in-memory
// token is kept so a later sign-in can store it again.
func (m *tokenManager) RemoveCurrentToken(ctx context.Context) {
	m.mu.RLock()
	token := m.currentToken
	m.mu.RUnlock()

	if token == "" {
		return
	}

	userID, ok := m.auth.CurrentUserID(ctx)
	if !ok {
		return
	}

	if err := m.tokenRepo.RemoveToken(ctx, userID, token); err != nil {
		m.logger.Error("[TokenManager] Failed to remove delivery token",
			slog.String("user_id", userID),
			slog.Any("error", err))

		return
	}

	m.logger.Info("[TokenManager] Delivery token removed", slog.String("user_id", userID))
}

// IsInitialized reports whether Initialize completed
func (m *tokenManager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Status returns a snapshot of the manager
func (m *tokenManager) Status() entity.PushStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := entity.PushStatus{
		State:       m.state,
		Initialized: m.initialized,
		Platform:    m.platform.Platform(),
		HasToken:    m.currentToken != "",
	}
	if status.HasToken {
		status.TokenPrefix = entity.TokenPrefix(m.currentToken)
	}

	return status
}

// Close detaches every platform subscription
func (m *tokenManager) Close() {
	m.mu.Lock()
	unsubscribes := m.unsubscribes
	m.unsubscribes = nil
	m.mu.Unlock()

	release(unsubscribes)
}

func (m *tokenManager) storeForCurrentUser(ctx context.Context, token string) {
	userID, ok := m.auth.CurrentUserID(ctx)
	if !ok {
		m.logger.Debug("[TokenManager] No signed-in user, token held in memory only")

		return
	}

	m.StoreToken(ctx, userID, token)
}

// adoptToken sets the current token, moves a pending manager to active and returns the
// previous value.
func (m *tokenManager) adoptToken(token string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.currentToken
	m.currentToken = token
	m.refreshes++
	if m.state == entity.StateTokenPending {
		m.state = entity.StateActive
	}

	return previous
}

// adoptFetchedToken adopts a token read during Initialize unless a refresh delivered a newer
// one since refreshes was sampled.
func (m *tokenManager) adoptFetchedToken(token string, refreshes uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.refreshes != refreshes {
		return false
	}

	m.currentToken = token
	if m.state == entity.StateTokenPending {
		m.state = entity.StateActive
	}

	return true
}

func (m *tokenManager) setState(state entity.ManagerState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = state
}

func release(unsubscribes []service.Unsubscribe) {
	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
}
