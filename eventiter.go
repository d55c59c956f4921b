package eventiter

import (
	"time"

	"github.com/dep2p/go-eventiter/internal/core/abort"
	"github.com/dep2p/go-eventiter/internal/core/bridge"
	"github.com/dep2p/go-eventiter/internal/core/eventbus"
	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// Event 待投递事件
	Event = types.Event

	// EventName 事件名称（任意可比较值或 *Symbol）
	EventName = types.EventName

	// Symbol 唯一事件标识
	Symbol = types.Symbol

	// ListenerID 回调注册句柄
	ListenerID = types.ListenerID

	// Listener 事件回调
	Listener = pkgif.Listener

	// EventSource 推送式事件源
	EventSource = pkgif.EventSource

	// EventEmitter 可发射事件的事件源
	EventEmitter = pkgif.EventEmitter

	// CancelSignal 一次性取消信号
	CancelSignal = pkgif.CancelSignal

	// Bridge 事件桥接器
	Bridge = bridge.Bridge

	// State 桥接器状态
	State = bridge.State

	// Factory 桥接器工厂
	Factory = bridge.Factory

	// Bus 进程内事件总线
	Bus = eventbus.Bus

	// Controller 中止控制器
	Controller = abort.Controller
)

// 桥接器状态
const (
	StateIdle     = bridge.StateIdle
	StateActive   = bridge.StateActive
	StateDraining = bridge.StateDraining
	StateClosed   = bridge.StateClosed
)

// ════════════════════════════════════════════════════════════════════════════
//                              入口函数
// ════════════════════════════════════════════════════════════════════════════

// Wrap 为事件源上的一组名称创建桥接器
//
// 回调在第一次拉取时注册；重复名称会被合并。
func Wrap(src EventSource, names []EventName, opts ...Option) (*Bridge, error) {
	return bridge.New(src, names, opts...)
}

// WrapOne 为单个事件名称创建桥接器
func WrapOne(src EventSource, name EventName, opts ...Option) (*Bridge, error) {
	return bridge.New(src, []EventName{name}, opts...)
}

// NewSymbol 创建新的唯一事件标识
func NewSymbol(desc string) *Symbol {
	return types.NewSymbol(desc)
}

// NewBus 创建进程内事件总线
func NewBus() *Bus {
	return eventbus.NewBus()
}

// NewController 创建中止控制器
func NewController() *Controller {
	return abort.NewController()
}

// NewTimeout 创建在 d 之后自动中止的控制器
func NewTimeout(d time.Duration) *Controller {
	return abort.NewTimeout(nil, d)
}

// NewFactory 创建桥接器工厂，defaults 应用于工厂创建的每个桥接器
func NewFactory(defaults ...Option) *Factory {
	return bridge.NewFactory(defaults...)
}
