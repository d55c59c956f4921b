package eventiter

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-eventiter/config"
	"github.com/dep2p/go-eventiter/internal/core/bridge"
	"github.com/dep2p/go-eventiter/internal/core/eventbus"
	"github.com/dep2p/go-eventiter/internal/core/metrics"
	"github.com/dep2p/go-eventiter/pkg/lib/log"
)

var fxLogger = log.Logger("eventiter/fx")

// Module 返回按统一配置组装的 Fx 模块
//
// 提供：
//   - *config.Config
//   - *Bus / EventSource / EventEmitter（eventbus）
//   - *prometheus.Registry / BridgeRecorder（metrics）
//   - *Factory（bridge）
//
// cfg 为 nil 时使用默认配置。
func Module(cfg *config.Config) fx.Option {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return fx.Options(
		fx.Supply(cfg),
		eventbus.Module(),
		metrics.Module,
		bridge.Module(),
	)
}

// NewApp 构建 Fx 应用
//
// 先校验配置，再组装 Module(cfg) 与调用方追加的选项。
// Fx 自身的事件日志默认关闭；日志级别为 debug 时通过 zap 输出到 stderr。
func NewApp(cfg *config.Config, extra ...fx.Option) (*fx.App, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{Module(cfg)}
	modules = append(modules, extra...)
	modules = append(modules, fx.WithLogger(fxEventLogger(cfg.Log.Level)))

	fxLogger.Debug("构建 Fx 应用", "modules", len(modules))
	return fx.New(modules...), nil
}

// fxEventLogger 返回 Fx 事件日志构造函数
func fxEventLogger(level string) func() fxevent.Logger {
	return func() fxevent.Logger {
		if fxEventsEnabled(level) {
			if zl, err := zap.NewDevelopment(); err == nil {
				return &fxevent.ZapLogger{Logger: zl}
			}
		}
		return &fxevent.ZapLogger{Logger: zap.NewNop()}
	}
}

// fxEventsEnabled 日志级别为 debug（不区分大小写）时输出 Fx 事件
func fxEventsEnabled(level string) bool {
	lv, err := log.ParseLevel(level)
	return err == nil && lv <= log.LevelDebug
}
