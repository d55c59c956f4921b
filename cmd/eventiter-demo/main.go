// Package main 提供 eventiter 演示程序
//
// 在进程内事件总线上按随机间隔交替触发 tick/tock，
// 通过桥接器逐个拉取并打印，运行时长到期或收到中断信号后停止。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	eventiter "github.com/dep2p/go-eventiter"
	"github.com/dep2p/go-eventiter/config"
	"github.com/dep2p/go-eventiter/pkg/lib/log"
)

var logger = log.Logger("eventiter/cmd")

// Version 演示程序版本
const Version = "0.1.0"

// errInterrupted 收到中断信号
var errInterrupted = errors.New("interrupted")

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
//
//   - 命令行参数：本次运行的覆盖值
//   - JSON 配置文件：持久化配置
//
// 显式设置的命令行参数优先于配置文件。
// ═══════════════════════════════════════════════════════════════════════════
var (
	configFile  = flag.String("config", "", "配置文件路径（JSON）")
	duration    = flag.Duration("duration", 0, "运行时长（0 = 使用配置值）")
	events      = flag.String("events", "", "事件名称，逗号分隔（默认 tick,tock）")
	maxInterval = flag.Duration("max-interval", 0, "两次事件之间的最大间隔")
	drain       = flag.Bool("drain", false, "停止时交付已排队事件")
	seed        = flag.Int64("seed", 0, "随机种子（0 = 使用当前时间）")

	logLevel = flag.String("log-level", "", "日志级别 (debug/info/warn/error)")
	logJSON  = flag.Bool("log-json", false, "JSON 格式日志")

	showVersion = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *showVersion {
		fmt.Printf("eventiter-demo %s\n", Version)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	logFileHandle, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	if logFileHandle != nil {
		defer func() { _ = logFileHandle.Close() }()
	}

	var (
		factory  *eventiter.Factory
		emitter  eventiter.EventEmitter
		gatherer prometheus.Gatherer
	)
	app, err := eventiter.NewApp(cfg, fx.Populate(&factory, &emitter, &gatherer))
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("启动失败: %w", err)
	}
	defer func() {
		if err := app.Stop(ctx); err != nil {
			logger.Warn("停止失败", "error", err)
		}
	}()

	ctl := newController(cfg.Demo.RunFor.Duration())
	names := make([]eventiter.EventName, 0, len(cfg.Demo.Events))
	for _, name := range cfg.Demo.Events {
		names = append(names, name)
	}

	b, err := factory.New(emitter, names, eventiter.WithSignal(ctl))
	if err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	tt := NewTickTock(clock.New(), emitter, cfg.Demo.Events, cfg.Demo.MaxInterval.OrDefault(time.Second), s)

	logger.Info("开始运行", "events", cfg.Demo.Events, "runFor", cfg.Demo.RunFor, "bridge", b.ID())

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var g errgroup.Group

	// 中断信号 → 中止
	g.Go(func() error {
		select {
		case <-sigCtx.Done():
			ctl.Abort(errInterrupted)
		case <-ctl.Done():
		}
		return nil
	})

	// 事件源：中止后停止触发
	emitted := 0
	g.Go(func() error {
		emitted = tt.Run(ctl.Done())
		return nil
	})

	// 消费者
	received := 0
	g.Go(func() error {
		for ev := range b.Events() {
			received++
			printEvent(ev)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("运行结束",
		"reason", ctl.Err(),
		"emitted", emitted,
		"received", received,
		"yielded", yieldedTotal(gatherer))
	return nil
}

// newController 按运行时长创建中止控制器
func newController(runFor time.Duration) *eventiter.Controller {
	if runFor > 0 {
		return eventiter.NewTimeout(runFor)
	}
	return eventiter.NewController()
}

// loadConfig 加载配置文件并应用命令行覆盖
//
// 覆盖写在副本上，文件配置保持原样用于比较。
func loadConfig() (*config.Config, error) {
	base := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			return nil, err
		}
		base = loaded
	}

	cfg := applyFlags(config.CloneConfig(base))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Bridge.DrainOnStop != base.Bridge.DrainOnStop || cfg.Demo.RunFor != base.Demo.RunFor {
		logger.Debug("命令行覆盖配置",
			"drain", cfg.Bridge.DrainOnStop,
			"runFor", cfg.Demo.RunFor)
	}
	return cfg, nil
}

// applyFlags 将显式设置的命令行参数写入 cfg
func applyFlags(cfg *config.Config) *config.Config {
	if isFlagSet("duration") {
		cfg.Demo.RunFor = config.Duration(*duration)
	}
	if isFlagSet("events") {
		cfg.Demo.Events = splitNames(*events)
	}
	if isFlagSet("max-interval") {
		cfg.Demo.MaxInterval = config.Duration(*maxInterval)
	}
	if isFlagSet("drain") {
		cfg.Bridge.DrainOnStop = *drain
	}
	if isFlagSet("log-level") {
		cfg.Log.Level = *logLevel
	}
	if isFlagSet("log-json") {
		cfg.Log.JSON = *logJSON
	}
	return cfg
}

// setupLogging 按配置初始化日志
//
// 配置了日志文件时返回已打开的文件，调用方负责关闭。
func setupLogging(lc config.LogConfig) (*os.File, error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	opts := log.Options{Level: level, JSON: lc.JSON}
	var file *os.File
	if lc.File != "" {
		file, err = os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		opts.Output = file
	}

	log.Setup(opts)
	return file, nil
}

// printEvent 打印事件
func printEvent(ev eventiter.Event) {
	if ts, ok := ev.Value.(time.Time); ok {
		fmt.Printf("%-6v %s\n", ev.Name, ts.Format("15:04:05.000"))
		return
	}
	fmt.Printf("%-6v %v\n", ev.Name, ev.Value)
}

// yieldedTotal 汇总已交付事件数
func yieldedTotal(g prometheus.Gatherer) float64 {
	families, err := g.Gather()
	if err != nil {
		return 0
	}
	total := 0.0
	for _, mf := range families {
		if !strings.HasSuffix(mf.GetName(), "_events_yielded_total") {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

// splitNames 解析逗号分隔的名称列表
func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// isFlagSet 检查参数是否被显式设置
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
