// Package events 提供进程内同步发布/订阅消息总线
//
// 总线是同步的：Dispatch 在当前调用栈内依次通知所有订阅者，
// 与单线程帧驱动模型一致，不引入异步边界。
package events

// EventType 事件类型
type EventType string

// Event 事件结构
type Event struct {
	Type EventType
	Data interface{} // 事件负载，类型见 types.go 中各 Payload 结构
}

// Listener 订阅者接口
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc 函数式订阅者适配器
type ListenerFunc func(event Event)

// OnEvent 实现 Listener 接口
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Bus 消息总线
type Bus struct {
	listeners map[EventType][]Listener
}

// NewBus 创建消息总线
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe 订阅指定类型的事件
func (b *Bus) Subscribe(eventType EventType, listener Listener) {
	b.listeners[eventType] = append(b.listeners[eventType], listener)
}

// SubscribeFunc 以函数形式订阅指定类型的事件
func (b *Bus) SubscribeFunc(eventType EventType, fn func(event Event)) {
	b.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe 取消订阅
func (b *Bus) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := b.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				b.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch 同步派发事件给所有订阅者
func (b *Bus) Dispatch(event Event) {
	if listeners, exists := b.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
