package bridge

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventiter/config"
	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params Factory 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config       `optional:"true"`
	Recorder   pkgif.BridgeRecorder `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("bridge",
		fx.Provide(ProvideFactory),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideFactory 从统一配置创建 Factory
func ProvideFactory(p Params) *Factory {
	cfg := config.DefaultBridgeConfig()
	if p.UnifiedCfg != nil {
		cfg = p.UnifiedCfg.Bridge
	}

	opts := []Option{WithDrainOnStop(cfg.DrainOnStop)}
	if p.Recorder != nil {
		opts = append(opts, WithRecorder(p.Recorder))
	}
	return NewFactory(opts...)
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC      fx.Lifecycle
	Factory *Factory
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return input.Factory.Close()
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "bridge"
	// Description 模块描述
	Description = "把推送式命名事件源转换为可拉取的事件序列"
)
