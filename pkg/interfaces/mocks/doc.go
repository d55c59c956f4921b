// Package mocks 提供统一的测试 Mock 实现
//
// # 手写 Mock
//
//   - MockEventSource: 模拟 interfaces.EventSource，保留已注册回调，
//     可在回调被移除后继续手动触发，用于验证迟到事件的处理
//
// 手写 Mock 支持通过 XxxFunc 字段注入自定义行为，并记录调用历史。
//
// # gomock Mock
//
//   - MockCancelSignal: interfaces.CancelSignal
//   - MockBridgeRecorder: interfaces.BridgeRecorder
//
// 由 mockgen 生成：
//
//	mockgen -destination=signal_mock.go -package=mocks \
//	    github.com/dep2p/go-eventiter/pkg/interfaces CancelSignal,BridgeRecorder
//
// # 使用示例
//
//	func TestSomething(t *testing.T) {
//	    ctrl := gomock.NewController(t)
//	    sig := mocks.NewMockCancelSignal(ctrl)
//	    sig.EXPECT().Triggered().Return(false)
//	    sig.EXPECT().OnTrigger(gomock.Any()).Return(types.ListenerID(7))
//	    sig.EXPECT().RemoveTrigger(types.ListenerID(7))
//	    ...
//	}
package mocks
