// Package abort 提供一次性取消信号
package abort

import (
	"context"
	"sync"

	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/types"
)

// contextSignal 基于 context 的取消信号
type contextSignal struct {
	ctx context.Context

	mu     sync.Mutex
	nextID types.ListenerID
	stops  map[types.ListenerID]func() bool
}

// FromContext 将 context 适配为取消信号
//
// ctx 结束（取消或超时）即视为触发。处理函数通过 context.AfterFunc 注册，
// 在独立 goroutine 中执行。
func FromContext(ctx context.Context) pkgif.CancelSignal {
	return &contextSignal{
		ctx:   ctx,
		stops: make(map[types.ListenerID]func() bool),
	}
}

func (s *contextSignal) Triggered() bool {
	return s.ctx.Err() != nil
}

func (s *contextSignal) OnTrigger(fn func()) types.ListenerID {
	if fn == nil {
		return types.NoListener
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.stops[id] = context.AfterFunc(s.ctx, func() {
		s.forget(id)
		fn()
	})
	return id
}

func (s *contextSignal) RemoveTrigger(id types.ListenerID) {
	s.mu.Lock()
	stop, ok := s.stops[id]
	delete(s.stops, id)
	s.mu.Unlock()

	if ok {
		stop()
	}
}

func (s *contextSignal) forget(id types.ListenerID) {
	s.mu.Lock()
	delete(s.stops, id)
	s.mu.Unlock()
}

// registered 返回尚未触发的处理函数数量
func (s *contextSignal) registered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stops)
}
