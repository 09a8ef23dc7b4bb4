package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"carepush/config"
	"carepush/internal/domain/entity"
	"carepush/internal/domain/repository"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig(os string) *config.Config {
	return &config.Config{
		Platform: &config.PlatformConfig{
			OS:               os,
			APNSRetryDelay:   time.Millisecond,
			SubscriberBuffer: 4,
		},
		Push: &config.PushConfig{BatchSize: 500},
	}
}

// recordingSink collects the messages routed to it.
type recordingSink struct {
	mu         sync.Mutex
	foreground []*entity.RemoteMessage
	opened     []*entity.RemoteMessage
}

func (s *recordingSink) HandleForeground(_ context.Context, msg *entity.RemoteMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.foreground = append(s.foreground, msg)
}

func (s *recordingSink) HandleOpened(_ context.Context, msg *entity.RemoteMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opened = append(s.opened, msg)
}

// memoryTokenRepository is an in-memory TokenRepository with a clock that advances on every write.
type memoryTokenRepository struct {
	mu   sync.Mutex
	sets map[string]map[string]*entity.DeliveryToken
	now  time.Time
}

func newMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{
		sets: make(map[string]map[string]*entity.DeliveryToken),
		now:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memoryTokenRepository) UpsertToken(_ context.Context, userID string, token *entity.DeliveryToken) error {
	if userID == "" || token == nil || token.Value == "" {
		return repository.ErrInvalidToken
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.now = r.now.Add(time.Second)

	set, ok := r.sets[userID]
	if !ok {
		set = make(map[string]*entity.DeliveryToken)
		r.sets[userID] = set
	}

	issuedAt := r.now
	if existing, ok := set[token.Value]; ok {
		issuedAt = existing.IssuedAt
	}
	set[token.Value] = &entity.DeliveryToken{
		Value:     token.Value,
		Platform:  token.Platform,
		IssuedAt:  issuedAt,
		UpdatedAt: r.now,
	}

	return nil
}

func (r *memoryTokenRepository) RemoveToken(_ context.Context, userID, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.sets[userID]; ok {
		delete(set, value)
	}

	return nil
}

func (r *memoryTokenRepository) FindTokensByUser(_ context.Context, userID string) ([]*entity.DeliveryToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	tokens := make([]*entity.DeliveryToken, 0, len(set))
	for _, token := range set {
		copied := *token
		tokens = append(tokens, &copied)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].UpdatedAt.After(tokens[j].UpdatedAt) })

	return tokens, nil
}

func (r *memoryTokenRepository) FindOwnersByToken(_ context.Context, value string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owners := make([]string, 0)
	for userID, set := range r.sets {
		if _, ok := set[value]; ok {
			owners = append(owners, userID)
		}
	}
	sort.Strings(owners)

	return owners, nil
}

// fixedAuth is an AuthProvider with a settable user.
type fixedAuth struct {
	mu     sync.Mutex
	userID string
}

func (a *fixedAuth) CurrentUserID(_ context.Context) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.userID, a.userID != ""
}

func (a *fixedAuth) set(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.userID = userID
}
