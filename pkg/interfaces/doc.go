// Package interfaces 定义 go-eventiter 的公共接口
//
// 一个接口文件对应一个实现目录：
//   - eventbus.go - 事件源（internal/core/eventbus）
//   - signal.go   - 取消信号（internal/core/abort）
//   - iterable.go - 事件迭代器（internal/core/bridge）
//   - metrics.go  - 指标记录（internal/core/metrics）
//
// # 依赖方向
//
// pkg/interfaces 只依赖 pkg/types，内部实现只依赖接口，
// 便于在测试中使用 mocks 子包替换。
package interfaces
