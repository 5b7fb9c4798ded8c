package events

import (
	"testing"
)

// TestDispatchNotifiesSubscribers 测试事件派发通知所有订阅者
func TestDispatchNotifiesSubscribers(t *testing.T) {
	bus := NewBus()

	received := 0
	bus.SubscribeFunc(HordeActivated, func(event Event) {
		received++
	})
	bus.SubscribeFunc(HordeActivated, func(event Event) {
		received++
	})

	bus.Dispatch(Event{Type: HordeActivated})

	if received != 2 {
		t.Errorf("received: got %d, want 2", received)
	}
}

// TestDispatchCarriesPayload 测试事件负载传递
func TestDispatchCarriesPayload(t *testing.T) {
	bus := NewBus()

	var got DestroyedPayload
	bus.SubscribeFunc(EntityDestroyed, func(event Event) {
		if payload, ok := event.Data.(DestroyedPayload); ok {
			got = payload
		}
	})

	bus.Dispatch(Event{Type: EntityDestroyed, Data: DestroyedPayload{Entity: 42, IsEnemy: true}})

	if got.Entity != 42 {
		t.Errorf("Entity: got %d, want 42", got.Entity)
	}
	if !got.IsEnemy {
		t.Error("IsEnemy: got false, want true")
	}
}

// TestDispatchDoesNotCrossTypes 测试事件按类型隔离
func TestDispatchDoesNotCrossTypes(t *testing.T) {
	bus := NewBus()

	called := false
	bus.SubscribeFunc(PlayerDocked, func(event Event) {
		called = true
	})

	bus.Dispatch(Event{Type: PlayerUndocked})

	if called {
		t.Error("PlayerDocked listener called for PlayerUndocked event")
	}
}

// TestUnsubscribe 测试取消订阅
func TestUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	listener := ListenerFunc(func(event Event) {
		calls++
	})

	bus.Subscribe(CombatHit, listener)
	bus.Dispatch(Event{Type: CombatHit})
	bus.Unsubscribe(CombatHit, listener)
	bus.Dispatch(Event{Type: CombatHit})

	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
}

// TestDispatchWithoutSubscribers 测试无订阅者时派发不出错
func TestDispatchWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	// 不应 panic
	bus.Dispatch(Event{Type: VFXExplosion})
}
