package bridge

import "fmt"

// ============================================================================
//                              状态定义
// ============================================================================

// State 桥接器状态
//
// 状态只能向前推进：Idle → Active → Draining → Closed。
// 在第一次拉取前已停止的桥接器直接从 Idle 进入 Closed。
type State int32

const (
	// StateIdle 已创建，尚未开始迭代
	StateIdle State = iota

	// StateActive 回调已注册，消费循环运行中
	StateActive

	// StateDraining 存活标志已清除，消费循环即将退出
	StateDraining

	// StateClosed 回调已全部移除（终态）
	StateClosed
)

// String 返回状态字符串表示
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateDraining:
		return "draining"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// IsTerminal 检查是否为终态
func (s State) IsTerminal() bool {
	return s == StateClosed
}
