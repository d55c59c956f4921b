package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventiter/config"
	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
)

// Config 指标配置
type Config struct {
	// Enabled 是否启用指标收集
	Enabled bool

	// Namespace 指标名前缀
	Namespace string
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Namespace: DefaultNamespace,
	}
}

// ConfigFromUnified 从统一配置创建指标配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		Enabled:   cfg.Metrics.Enabled,
		Namespace: cfg.Metrics.Namespace,
	}
}

// Params Metrics 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
	Registry   *prometheus.Registry
}

// Result Metrics 模块输出
type Result struct {
	fx.Out

	Collector *Collector
	Recorder  pkgif.BridgeRecorder
}

// Module 是 metrics 的 Fx 模块
//
// 提供独立的 *prometheus.Registry（同时作为 Registerer 和 Gatherer），
// 以及注册在其上的 Collector。指标关闭时 Recorder 为空实现。
var Module = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			prometheus.NewRegistry,
			fx.As(fx.Self()),
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
		NewRecorderFromParams,
	),
	fx.Invoke(registerLifecycle),
)

// NewRecorderFromParams 从参数创建 Collector 并注册
//
// 指标关闭时 Collector 为 nil。
func NewRecorderFromParams(p Params) (Result, error) {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if !cfg.Enabled {
		return Result{Recorder: pkgif.NopRecorder{}}, nil
	}

	c := NewCollector(cfg.Namespace)
	if err := p.Registry.Register(c); err != nil {
		return Result{}, err
	}
	return Result{Collector: c, Recorder: c}, nil
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC        fx.Lifecycle
	Registry  *prometheus.Registry
	Collector *Collector `optional:"true"`
}

// registerLifecycle 停止时注销收集器
func registerLifecycle(input lifecycleInput) {
	if input.Collector == nil {
		return
	}
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			input.Registry.Unregister(input.Collector)
			return nil
		},
	})
}
