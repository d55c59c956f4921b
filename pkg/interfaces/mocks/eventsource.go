package mocks

import (
	"sync"

	"github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/types"
)

// ListenerCall AddListener 调用记录
type ListenerCall struct {
	Name types.EventName
	ID   types.ListenerID
}

// MockEventSource 模拟 EventSource 接口实现
//
// 与真实事件源不同，RemoveListener 只把回调标记为已移除，
// Fire 可以绕过标记直接调用，模拟事件源在移除期间仍持有回调的情况。
type MockEventSource struct {
	mu sync.Mutex

	nextID    types.ListenerID
	listeners map[types.ListenerID]registered

	// 可覆盖的方法
	AddListenerFunc    func(name types.EventName, fn interfaces.Listener) types.ListenerID
	RemoveListenerFunc func(name types.EventName, id types.ListenerID)

	// 调用记录
	AddCalls    []ListenerCall
	RemoveCalls []ListenerCall
}

type registered struct {
	name    types.EventName
	fn      interfaces.Listener
	removed bool
}

// NewMockEventSource 创建 MockEventSource
func NewMockEventSource() *MockEventSource {
	return &MockEventSource{
		listeners: make(map[types.ListenerID]registered),
	}
}

// AddListener 注册回调
func (m *MockEventSource) AddListener(name types.EventName, fn interfaces.Listener) types.ListenerID {
	if m.AddListenerFunc != nil {
		id := m.AddListenerFunc(name, fn)
		m.mu.Lock()
		m.AddCalls = append(m.AddCalls, ListenerCall{Name: name, ID: id})
		m.mu.Unlock()
		return id
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.listeners[id] = registered{name: name, fn: fn}
	m.AddCalls = append(m.AddCalls, ListenerCall{Name: name, ID: id})
	return id
}

// RemoveListener 标记回调已移除
func (m *MockEventSource) RemoveListener(name types.EventName, id types.ListenerID) {
	m.mu.Lock()
	m.RemoveCalls = append(m.RemoveCalls, ListenerCall{Name: name, ID: id})
	if r, ok := m.listeners[id]; ok && r.name == name {
		r.removed = true
		m.listeners[id] = r
	}
	m.mu.Unlock()

	if m.RemoveListenerFunc != nil {
		m.RemoveListenerFunc(name, id)
	}
}

// Emit 调用指定名称下所有未移除的回调，返回调用数量
func (m *MockEventSource) Emit(name types.EventName, args ...any) int {
	fns := m.collect(name, false)
	for _, fn := range fns {
		fn(args...)
	}
	return len(fns)
}

// Fire 调用指定名称下的所有回调，包括已移除的
func (m *MockEventSource) Fire(name types.EventName, args ...any) int {
	fns := m.collect(name, true)
	for _, fn := range fns {
		fn(args...)
	}
	return len(fns)
}

// Active 返回未移除的回调数量
func (m *MockEventSource) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, r := range m.listeners {
		if !r.removed {
			n++
		}
	}
	return n
}

// Calls 返回 AddListener 与 RemoveListener 调用记录的副本
func (m *MockEventSource) Calls() (added, removed []ListenerCall) {
	m.mu.Lock()
	defer m.mu.Unlock()

	added = append([]ListenerCall(nil), m.AddCalls...)
	removed = append([]ListenerCall(nil), m.RemoveCalls...)
	return added, removed
}

func (m *MockEventSource) collect(name types.EventName, includeRemoved bool) []interfaces.Listener {
	m.mu.Lock()
	defer m.mu.Unlock()

	var fns []interfaces.Listener
	for id := types.ListenerID(1); id <= m.nextID; id++ {
		r, ok := m.listeners[id]
		if !ok || r.name != name || (r.removed && !includeRemoved) {
			continue
		}
		fns = append(fns, r.fn)
	}
	return fns
}

var _ interfaces.EventSource = (*MockEventSource)(nil)
