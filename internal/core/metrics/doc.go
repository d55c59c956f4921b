// Package metrics 提供桥接器监控指标收集
//
// metrics 模块基于 Prometheus client_golang 实现 pkgif.BridgeRecorder：
//   - 桥接器生命周期（开始迭代/完成清理）
//   - 队列流量（入队/交付，按事件名称）
//   - 停止时丢弃的事件数
//
// # 快速开始
//
//	reg := prometheus.NewRegistry()
//	c := metrics.NewCollector("")
//	reg.MustRegister(c)
//
//	b, _ := bridge.New(bus, names, bridge.WithRecorder(c))
//
// # Fx 模块
//
// Module 提供独立的 Registry 和注册好的 Collector，
// 并以 pkgif.BridgeRecorder 的形式交给 bridge 模块。
// 统一配置中 metrics.enabled=false 时提供空实现。
package metrics
