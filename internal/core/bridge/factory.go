package bridge

import (
	"errors"
	"sync"

	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/types"
)

// ErrFactoryClosed 工厂已关闭
var ErrFactoryClosed = errors.New("bridge factory closed")

// ============================================================================
// Factory 实现
// ============================================================================

// Factory 桥接器工厂
//
// 为创建的每个桥接器附加统一的默认选项（指标记录器、drain 策略），
// 并跟踪尚未进入终态的桥接器，Close 时统一停止。
type Factory struct {
	defaults []Option

	mu      sync.Mutex
	closed  bool
	bridges map[*Bridge]struct{}
}

// NewFactory 创建桥接器工厂
//
// defaults 在每次 New 时先于调用方选项应用。
func NewFactory(defaults ...Option) *Factory {
	return &Factory{
		defaults: defaults,
		bridges:  make(map[*Bridge]struct{}),
	}
}

// New 创建并跟踪桥接器
func (f *Factory) New(source pkgif.EventSource, names []types.EventName, opts ...Option) (*Bridge, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrFactoryClosed
	}
	f.mu.Unlock()

	all := make([]Option, 0, len(f.defaults)+len(opts)+1)
	all = append(all, f.defaults...)
	all = append(all, opts...)
	all = append(all, withDoneHook(f.untrack))

	b, err := New(source, names, all...)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		b.Stop()
		return nil, ErrFactoryClosed
	}
	if !b.State().IsTerminal() {
		f.bridges[b] = struct{}{}
	}
	f.mu.Unlock()

	return b, nil
}

// Active 返回尚未进入终态的桥接器数量
func (f *Factory) Active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bridges)
}

// Close 停止所有跟踪中的桥接器
//
// 之后 New 返回 ErrFactoryClosed。重复调用是安全的。
func (f *Factory) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	bridges := make([]*Bridge, 0, len(f.bridges))
	for b := range f.bridges {
		bridges = append(bridges, b)
	}
	f.mu.Unlock()

	for _, b := range bridges {
		b.Stop()
	}

	logger.Debug("桥接器工厂已关闭", "stopped", len(bridges))
	return nil
}

func (f *Factory) untrack(b *Bridge) {
	f.mu.Lock()
	delete(f.bridges, b)
	f.mu.Unlock()
}
