package impl

import (
	"context"
	"testing"
	"time"

	"carepush/internal/domain/entity"
	mockUC "carepush/internal/mocks/usecase"
	"carepush/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDeliveryRouter(t *testing.T) (usecase.DeliveryUsecase, *mockUC.MockTokenUsecase) {
	tokens := mockUC.NewMockTokenUsecase(t)
	router := NewDeliveryRouter(newTestConfig("android"), newTestLogger(), tokens)
	t.Cleanup(router.Close)

	return router, tokens
}

func receive(t *testing.T, stream usecase.EventStream) *entity.NotificationEvent {
	t.Helper()

	select {
	case event, ok := <-stream.Events():
		require.True(t, ok, "stream closed")

		return event
	case <-time.After(time.Second):
		t.Fatal("no event received")

		return nil
	}
}

func assertNoEvent(t *testing.T, stream usecase.EventStream) {
	t.Helper()

	select {
	case event := <-stream.Events():
		t.Fatalf("unexpected event: %+v", event)
	default:
	}
}

func TestDeliveryRouter_HandleForeground_PublishesToLive(t *testing.T) {
	router, _ := createTestDeliveryRouter(t)
	live := router.SubscribeLive()
	deepLinks := router.SubscribeDeepLinks()

	router.HandleForeground(context.Background(), &entity.RemoteMessage{
		MessageID: "m1",
		Data:      map[string]string{"type": "health_alert", "alert_id": "a1"},
	})

	event := receive(t, live)
	assert.Equal(t, entity.KindHealthAlert, event.Kind)
	require.NotNil(t, event.AlertID)
	assert.Equal(t, "a1", *event.AlertID)
	assertNoEvent(t, deepLinks)
}

func TestDeliveryRouter_HandleOpened_PublishesToDeepLinks(t *testing.T) {
	router, _ := createTestDeliveryRouter(t)
	live := router.SubscribeLive()
	deepLinks := router.SubscribeDeepLinks()

	router.HandleOpened(context.Background(), &entity.RemoteMessage{
		MessageID: "m2",
		Data:      map[string]string{"type": "sos_alert", "sos_session_id": "s1"},
	})

	event := receive(t, deepLinks)
	assert.Equal(t, entity.KindSOSAlert, event.Kind)
	assert.Equal(t, "/sos/s1", event.DeepLink())
	assertNoEvent(t, live)
}

func TestDeliveryRouter_UnknownTypeIsChat(t *testing.T) {
	router, _ := createTestDeliveryRouter(t)
	live := router.SubscribeLive()

	router.HandleForeground(context.Background(), &entity.RemoteMessage{
		Data: map[string]string{"type": "promo", "thread_id": "t1"},
	})

	event := receive(t, live)
	assert.Equal(t, entity.KindChat, event.Kind)
	assert.Equal(t, "promo", event.Raw["type"])
}

func TestDeliveryRouter_EveryListenerReceives(t *testing.T) {
	router, _ := createTestDeliveryRouter(t)
	first := router.SubscribeLive()
	second := router.SubscribeLive()

	router.HandleForeground(context.Background(), &entity.RemoteMessage{Data: map[string]string{"type": "chat"}})

	assert.Equal(t, entity.KindChat, receive(t, first).Kind)
	assert.Equal(t, entity.KindChat, receive(t, second).Kind)
}

func TestDeliveryRouter_LateSubscriberMissesEarlierEvents(t *testing.T) {
	router, _ := createTestDeliveryRouter(t)

	router.HandleForeground(context.Background(), &entity.RemoteMessage{Data: map[string]string{"type": "chat"}})

	late := router.SubscribeLive()
	assertNoEvent(t, late)
}

func TestDeliveryRouter_NoListenersIsFine(t *testing.T) {
	router, _ := createTestDeliveryRouter(t)

	assert.NotPanics(t, func() {
		router.HandleForeground(context.Background(), nil)
		router.HandleOpened(context.Background(), &entity.RemoteMessage{})
	})
}

func TestDeliveryRouter_ResolveTargets(t *testing.T) {
	router, tokens := createTestDeliveryRouter(t)
	ctx := context.Background()

	tokens.EXPECT().TokensForUser(ctx, "u1").Return([]string{"T2", "T1"}, nil).Once()
	tokens.EXPECT().TokensForUser(ctx, "u1").Return([]string{"T3"}, nil).Once()
	tokens.EXPECT().TokensForUser(ctx, "broken").Return(nil, errors.New("store offline")).Once()

	assert.Equal(t, []string{"T2", "T1"}, router.ResolveTargets(ctx, "u1"))
	// Never cached: a second read sees the store's current state.
	assert.Equal(t, []string{"T3"}, router.ResolveTargets(ctx, "u1"))

	targets := router.ResolveTargets(ctx, "broken")
	assert.NotNil(t, targets)
	assert.Empty(t, targets)
}

func TestDeliveryRouter_CloseReleasesListeners(t *testing.T) {
	tokens := mockUC.NewMockTokenUsecase(t)
	router := NewDeliveryRouter(newTestConfig("android"), newTestLogger(), tokens)
	live := router.SubscribeLive()
	deepLinks := router.SubscribeDeepLinks()

	router.Close()

	_, ok := <-live.Events()
	assert.False(t, ok)
	_, ok = <-deepLinks.Events()
	assert.False(t, ok)
}
